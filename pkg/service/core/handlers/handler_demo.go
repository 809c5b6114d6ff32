package handlers

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/oppmote/oppmote-backend/pkg/errs"
	"github.com/oppmote/oppmote-backend/pkg/service"
	"github.com/oppmote/oppmote-backend/pkg/service/core/transport"
)

const demoPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <script type="application/ld+json">{{ .SEOJSON }}</script>
  <style>
    body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; }
    .swatch { width: 100%; height: 8rem; border-radius: 0.5rem; border: 1px solid #ccc; background: {{ .Hex }}; }
    .hex { font-family: monospace; }
    form { margin: 1rem 0; display: flex; gap: 0.5rem; }
    input[type=text] { flex: 1; padding: 0.4rem; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <div class="swatch" data-color="{{ .ColorSlug }}"></div>
  {{ if .Found }}
  <p><strong>{{ .ColorName }}</strong> is <span class="hex">{{ .Hex }}</span>.</p>
  {{ else }}
  <p>Unknown color <strong>{{ .ColorName }}</strong>, showing <span class="hex">{{ .Hex }}</span>.</p>
  {{ end }}
  <form method="post" action="/">
    <input type="text" name="color" placeholder="e.g. sea green" value="{{ .ColorName }}">
    <button type="submit">Show</button>
  </form>
  <p><a href="/?randomize=1">Surprise me</a></p>
</body>
</html>
`

type demoPageView struct {
	service.DemoPage
	SEOJSON template.JS
}

type DemoHandler struct {
	service  service.DemoService
	template *template.Template
}

func (h *DemoHandler) render(page service.DemoPage) (*transport.ByteWriter, error) {
	const op errs.Op = "DemoHandler.render"

	seo, err := json.Marshal(page.SEO)
	if err != nil {
		return nil, errs.E(op, errs.Internal, err)
	}

	var buf bytes.Buffer

	err = h.template.Execute(&buf, demoPageView{
		DemoPage: page,
		SEOJSON:  template.JS(seo),
	})
	if err != nil {
		return nil, errs.E(op, errs.Internal, err)
	}

	return transport.NewByteWriter("text/html; charset=utf-8", buf.Bytes()), nil
}

func (h *DemoHandler) Page(_ context.Context, r *http.Request, _ any) (*transport.ByteWriter, error) {
	randomize := r.URL.Query().Get("randomize") == "1"

	return h.render(h.service.Page("", randomize))
}

func (h *DemoHandler) PickColor(_ context.Context, r *http.Request, _ any) (*transport.ByteWriter, error) {
	const op errs.Op = "DemoHandler.PickColor"

	err := r.ParseForm()
	if err != nil {
		return nil, errs.E(op, errs.InvalidRequest, err, "invalid form body")
	}

	return h.render(h.service.Page(r.PostFormValue("color"), false))
}

func NewDemoHandler(service service.DemoService) *DemoHandler {
	return &DemoHandler{
		service:  service,
		template: template.Must(template.New("demo").Parse(demoPageTemplate)),
	}
}
