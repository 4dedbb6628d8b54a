package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data handed to the HTML templates
type Page struct {
	Title    string
	Query    string
	Dark     bool
	ThemeURL string
	RawURL   string
	Detail   Detail
}

// BodyClass maps the theme flag to the body CSS class
func (p Page) BodyClass() string {
	if p.Dark {
		return "theme-dark"
	}
	return "theme-light"
}

// Renderer executes the embedded HTML templates
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Home renders the search page
func (r *Renderer) Home(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "home", p)
}

// Detail renders the video detail page
func (r *Renderer) Detail(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "detail", p)
}
