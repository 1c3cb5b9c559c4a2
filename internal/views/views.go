// Package views renders the HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"bookshelf/internal/dto"
	"bookshelf/internal/models"
	"bookshelf/internal/session"
)

const (
	IndexPage   = "index.html"
	AddPage     = "add.html"
	DetailsPage = "details.html"
	LoginPage   = "login.html"
	SignupPage  = "signup.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the data every template receives.
type Page struct {
	Flashes []session.Flash
	HideNav bool

	Books []models.Book
	Book  *models.Book
	Form  dto.BookInput

	Username string
}

type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{IndexPage, AddPage, DetailsPage, LoginPage, SignupPage} {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
