package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"clinica-ginecologica/internal/delivery/http/middleware"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutTemplate = "templates/layout.html"

// Page is the value every template receives.
type Page struct {
	Title   string
	Patient *middleware.Identity
	Flashes []Flash
	Data    interface{}
}

// ErrorPage is the data of the generic error template.
type ErrorPage struct {
	Status  int
	Message string
}

type Renderer struct {
	pages map[string]*template.Template
	log   *logrus.Logger
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template)
	for _, file := range files {
		if file == layoutTemplate {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, layoutTemplate, file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages, log: log}, nil
}

// Render writes the named page. Extra flashes are shown alongside queued ones,
// for forms that re-render instead of redirecting.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name, title string, data interface{}, flashes ...Flash) {
	tmpl, ok := v.pages[name]
	if !ok {
		v.log.Errorf("Unknown template %q", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page := Page{
		Title:   title,
		Patient: middleware.GetIdentityFromContext(r.Context()),
		Flashes: append(popFlashes(w, r), flashes...),
		Data:    data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		v.log.Errorf("Failed to render template %s: %+v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (v *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusNotFound, "error", "Página no encontrada", ErrorPage{
		Status:  http.StatusNotFound,
		Message: "La página que buscas no existe.",
	})
}

func (v *Renderer) InternalError(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusInternalServerError, "error", "Error del servidor", ErrorPage{
		Status:  http.StatusInternalServerError,
		Message: "Ocurrió un error inesperado. Por favor intenta de nuevo más tarde.",
	})
}
