package routes

import (
	"net/http"

	"github.com/go-chi/chi"
)

type StaticEndpoints struct {
	Files http.Handler
}

func NewStaticEndpoints(dir string) *StaticEndpoints {
	return &StaticEndpoints{
		Files: http.StripPrefix("/static/", http.FileServer(http.Dir(dir))),
	}
}

func NewStaticRoutes(endpoints *StaticEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Get("/static/*", endpoints.Files.ServeHTTP)
	}
}
