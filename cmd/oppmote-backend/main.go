package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"golang.org/x/oauth2"

	"github.com/oppmote/oppmote-backend/pkg/cal"
	"github.com/oppmote/oppmote-backend/pkg/config"
	"github.com/oppmote/oppmote-backend/pkg/requestlogger"
	"github.com/oppmote/oppmote-backend/pkg/service/core"
	coreHTTP "github.com/oppmote/oppmote-backend/pkg/service/core/api/http"
	"github.com/oppmote/oppmote-backend/pkg/service/core/handlers"
	"github.com/oppmote/oppmote-backend/pkg/service/core/routes"
	"github.com/oppmote/oppmote-backend/pkg/session"
)

var configFilePath = flag.String("config", "config.yaml", "path to config file")

var upstreamErrs = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "oppmote_backend",
	Name:      "upstream_errors",
}, []string{"operation"})

func main() {
	flag.Parse()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	fileParts, err := config.ProcessConfigPath(*configFilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("processing config path")
	}

	cfg, err := config.NewFileSystemLoader().Load(fileParts.FileName, fileParts.Path, "OPPMOTE", config.NewDefaultEnvBinder())
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	err = cfg.Validate()
	if err != nil {
		log.Fatal().Err(err).Msg("validating config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing log level")
	}
	log = log.Level(level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	calFetcher := cal.New(cfg.Scheduler.APIURL, httpClient)
	tokenStore := session.NewMemory()

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Oauth.ClientID,
		ClientSecret: cfg.Oauth.ClientSecret,
		RedirectURL:  cfg.Oauth.RedirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.Oauth.AuthURL,
			TokenURL: cfg.Oauth.TokenURL,
		},
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		upstreamErrs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	schedulerAPI := coreHTTP.NewSchedulerAPI(calFetcher, upstreamErrs)

	services := core.NewServices(
		core.NewAuthService(oauthConfig, tokenStore),
		core.NewRelayService(schedulerAPI, tokenStore),
		core.NewDemoService("/"),
	)

	h := handlers.NewHandlers(services, cfg)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestlogger.Middleware(log, "/internal/metrics"))

	routes.Add(router,
		routes.NewAuthRoutes(routes.NewAuthEndpoints(log, h.AuthHandler)),
		routes.NewRelayRoutes(routes.NewRelayEndpoints(log, h.RelayHandler)),
		routes.NewDemoRoutes(routes.NewDemoEndpoints(log, h.DemoHandler)),
		routes.NewStaticRoutes(routes.NewStaticEndpoints(cfg.StaticDir)),
		routes.NewMetricsRoutes(routes.NewMetricsEndpoints(promReg)),
	)

	if cfg.Debug {
		err := routes.Print(router, os.Stdout)
		if err != nil {
			log.Fatal().Err(err).Msg("printing routes")
		}
	}

	log.Info().Msgf("Listening on %s", cfg.Server.ListenAddress())

	server := http.Server{
		Addr:    cfg.Server.ListenAddress(),
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("running server")
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("shutdown error")
	}
}
