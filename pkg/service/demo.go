package service

// DemoPage is the view model for the server-rendered color-picker page that
// shares the HTTP server with the relay.
type DemoPage struct {
	Title     string
	ColorName string
	ColorSlug string
	Hex       string
	Found     bool
	SEO       SEOMetadata
}

// SEOMetadata is injected into the demo page as a JSON-LD block.
type SEOMetadata struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type DemoService interface {
	// Page resolves a color name to its presentation. An empty name renders
	// the default color, randomize picks one from the table.
	Page(colorName string, randomize bool) DemoPage
}
