package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats a topic for the terminal. format is the file extension
// including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(content, format string) string

func (f RendererFunc) Render(content, format string) string { return f(content, format) }

// passthrough leaves every topic unformatted.
var passthrough = RendererFunc(func(content, _ string) string { return content })

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	Style string // "auto", a glamour standard style name, or a style file path
	Width int    // word wrap; 0 keeps glamour's default
}

func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var opts []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	case "dark", "light", "notty", "dracula", "pink", "ascii":
		opts = append(opts, glamour.WithStandardStyle(r.Style))
	default:
		opts = append(opts, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}
	return opts
}

// Render converts .md topics; anything else, or a glamour failure, is
// returned unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}
	tr, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
