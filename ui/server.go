// Package ui serves a small web frontend for parsing HTML interactively
// and inspecting the resulting tokens, tree, trace and audit reports.
package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Silvio777-hub/Agentic-HTML5-Parser/audit"
	"github.com/Silvio777-hub/Agentic-HTML5-Parser/html5"
)

//go:embed templates
var embeddedFS embed.FS

type Server struct {
	cfg       html5.Config
	templates *template.Template
	mux       *http.ServeMux
}

func NewServer() (*Server, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(embeddedFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		cfg:       html5.DefaultConfig(),
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("/parse", s.handleParse)
	s.mux.HandleFunc("/", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// ParseViewData carries everything the result page shows for one parse.
type ParseViewData struct {
	Markup        string
	Result        *html5.Result
	Tree          string
	Nesting       audit.NestingReport
	Accessibility []audit.AccessibilityIssue
	Integrity     audit.IntegrityReport
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
		return
	}
	markup := r.FormValue("markup")
	if markup == "" {
		http.Error(w, "must provide markup", http.StatusBadRequest)
		return
	}

	result, err := html5.ParseWithTrace(markup, s.cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.Header.Get("Accept") == "application/json" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	data := ParseViewData{
		Markup:        markup,
		Result:        result,
		Tree:          result.Tree.String(),
		Nesting:       audit.AuditNesting(result.Tree),
		Accessibility: audit.AuditAccessibility(result.Tree),
		Integrity:     audit.VerifyIntegrity(result.Tree, audit.DefaultIntegrityLimits()),
	}
	s.render(w, "parse.html", data)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, "index.html", nil)
}
