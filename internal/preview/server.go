// Package preview serves a browser page whose asset bundle is resolved
// through the resource resolver, so the effect of each deployment mode can
// be inspected in a real browser.
package preview

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gobokeh/gobokeh/internal/assets"
	"github.com/gobokeh/gobokeh/internal/htmlpage"
	"github.com/gobokeh/gobokeh/internal/resources"
)

type PreviewServer struct {
	mode     resources.Mode
	modeName string
	title    string
	router   *chi.Mux
}

// NewPreviewServer creates a new preview server instance. An unrecognized
// mode selector is a startup error, not a fallback.
func NewPreviewServer(cfg *Config) (*PreviewServer, error) {
	mode, err := resources.FromString(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("cannot start preview server: %w", err)
	}
	mode.RootDir = cfg.ResourceRoot

	s := &PreviewServer{
		mode:     mode,
		modeName: cfg.Mode,
		title:    cfg.Title,
		router:   chi.NewRouter(),
	}

	s.setupRoutes()
	return s, nil
}

func (s *PreviewServer) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
	}))

	s.router.Get("/", s.indexHandler)
	s.router.Get("/modes", s.modesHandler)

	// Serve the bundled assets so pages resolved against this server can
	// fetch them without an extracted copy.
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets.FS()))))
}

// indexHandler renders a page whose head is the resolved bundle for this
// server's mode. Query parameters widgets=1 and compiler=1 simulate
// documents that reference widget models or compilable custom models.
func (s *PreviewServer) indexHandler(w http.ResponseWriter, r *http.Request) {
	var refs []resources.ModelRef
	refs = append(refs, resources.PlotRef())
	if boolParam(r, "widgets") {
		refs = append(refs, resources.WidgetRef())
	}
	if boolParam(r, "compiler") {
		refs = append(refs, resources.CustomRef(true))
	}

	bundle, err := resources.Resolve(s.mode, refs)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to resolve asset bundle: %v", err), http.StatusInternalServerError)
		return
	}

	info, err := htmlpage.Payload(s.mode, map[string]any{
		"mode":    s.modeName,
		"dev":     s.mode.Dev(),
		"scripts": len(bundle.Scripts),
		"styles":  len(bundle.Styles),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	content := fmt.Sprintf(
		"<div class=\"bk-root\">\n<p>resolved %d script and %d style references</p>\n</div>\n"+
			"<script type=\"text/javascript\">var bundleInfo = %s;</script>",
		len(bundle.Scripts), len(bundle.Styles), info)

	page, err := htmlpage.Render(htmlpage.PageData{
		Title:   s.title,
		Head:    htmlpage.HeadTags(bundle),
		Content: template.HTML(content),
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to render page: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page)) //nolint:errcheck
}

// modesHandler lists the recognized mode selector strings and the known
// asset components.
func (s *PreviewServer) modesHandler(w http.ResponseWriter, r *http.Request) {
	components := make([]string, 0, len(resources.Components()))
	for _, comp := range resources.Components() {
		components = append(components, comp.Name)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"current":    s.modeName,
		"modes":      resources.ModeNames(),
		"components": components,
	})
}

func boolParam(r *http.Request, name string) bool {
	val, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && val
}

func (s *PreviewServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the server's HTTP handler.
func (s *PreviewServer) Handler() http.Handler {
	return s.router
}
