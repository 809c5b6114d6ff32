package core

import (
	"math/rand"
	"strings"

	"github.com/gosimple/slug"

	"github.com/oppmote/oppmote-backend/pkg/service"
)

const defaultColor = "cornflower blue"

// colorTable maps the color names the demo page accepts to their hex value.
var colorTable = map[string]string{
	"alice blue":      "#F0F8FF",
	"cornflower blue": "#6495ED",
	"crimson":         "#DC143C",
	"dark cyan":       "#008B8B",
	"forest green":    "#228B22",
	"gold":            "#FFD700",
	"hot pink":        "#FF69B4",
	"indigo":          "#4B0082",
	"lavender":        "#E6E6FA",
	"olive":           "#808000",
	"orange red":      "#FF4500",
	"rebecca purple":  "#663399",
	"salmon":          "#FA8072",
	"sea green":       "#2E8B57",
	"slate gray":      "#708090",
	"teal":            "#008080",
	"tomato":          "#FF6347",
	"turquoise":       "#40E0D0",
}

var _ service.DemoService = &demoService{}

type demoService struct {
	colorNames []string
	seo        service.SEOMetadata
}

func (s *demoService) Page(colorName string, randomize bool) service.DemoPage {
	name := strings.ToLower(strings.TrimSpace(colorName))

	switch {
	case randomize:
		name = s.colorNames[rand.Intn(len(s.colorNames))]
	case name == "":
		name = defaultColor
	}

	hex, found := colorTable[name]
	if !found {
		hex = "#000000"
	}

	return service.DemoPage{
		Title:     "Color picker",
		ColorName: name,
		ColorSlug: slug.Make(name),
		Hex:       hex,
		Found:     found,
		SEO:       s.seo,
	}
}

func NewDemoService(pageURL string) *demoService {
	names := make([]string, 0, len(colorTable))
	for name := range colorTable {
		names = append(names, name)
	}

	return &demoService{
		colorNames: names,
		seo: service.SEOMetadata{
			Context:     "https://schema.org",
			Type:        "WebPage",
			Name:        "Color picker",
			Description: "Pick a color by name and see its hex value.",
			URL:         pageURL,
		},
	}
}
