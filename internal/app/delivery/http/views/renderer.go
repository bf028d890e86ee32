package views

import (
	"bytes"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/responses"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutTemplate = "layout"

	PageHome     = "home"
	PageDoctors  = "doctors"
	PageServices = "services"
	PageOffers   = "offers"
	PageDevices  = "devices"
	PagePatients = "patients"
	PageContact  = "contact"
)

// Page is the value every page template executes against.
type Page struct {
	Title  string
	Path   string
	Layout responses.Layout
	Data   interface{}
}

// Renderer holds one parsed template set per page, each sharing the layout and partials.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer(funcs template.FuncMap) (*Renderer, error) {
	base, err := template.New(layoutTemplate).
		Funcs(sprig.FuncMap()).
		Funcs(funcs).
		ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	entries, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		page, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := page.ParseFS(templateFS, entry); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry, err)
		}
		pages[strings.TrimSuffix(path.Base(entry), ".html")] = page
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the page into a buffer first so a template error never leaves a half written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page *Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutTemplate, page); err != nil {
		return err
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
