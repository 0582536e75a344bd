// Package server serves the static practice site and its consolidated
// question data over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/display"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/question"
)

// Server is the practice-site HTTP server.
type Server struct {
	siteDir string
	dataDir string
	mux     *http.ServeMux
}

// Config holds the server configuration.
type Config struct {
	// SiteDir is the static site root (index.html and assets).
	SiteDir string
	// DataDir holds the consolidated <Subject>.json files.
	DataDir string
}

// SubjectSummary is one entry of the /api/subjects listing.
type SubjectSummary struct {
	Subject        string `json:"subject"`
	TotalQuestions int    `json:"total_questions"`
	File           string `json:"file"`
}

// New creates a Server rooted at the given site directory.
func New(cfg Config) (*Server, error) {
	info, err := os.Stat(cfg.SiteDir)
	if err != nil {
		return nil, fmt.Errorf("site directory %q: %w", cfg.SiteDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("site directory %q: not a directory", cfg.SiteDir)
	}

	s := &Server{
		siteDir: cfg.SiteDir,
		dataDir: cfg.DataDir,
		mux:     http.NewServeMux(),
	}
	s.registerRoutes()
	return s, nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return logMiddleware(corsMiddleware(noStoreMiddleware(s.mux)))
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/subjects", s.handleSubjects)
	s.mux.Handle("/data/", http.StripPrefix("/data/", http.FileServer(http.Dir(s.dataDir))))
	s.mux.Handle("/", http.FileServer(http.Dir(s.siteDir)))
}

// Subjects lists the consolidated subject files currently on disk.
func (s *Server) Subjects() ([]SubjectSummary, error) {
	matches, err := filepath.Glob(filepath.Join(s.dataDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list data dir %q: %w", s.dataDir, err)
	}

	subjects := make([]SubjectSummary, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var doc question.SubjectDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			continue
		}
		subjects = append(subjects, SubjectSummary{
			Subject:        doc.Subject,
			TotalQuestions: doc.TotalQuestions,
			File:           filepath.Base(path),
		})
	}
	return subjects, nil
}

// QuestionCount totals the questions across every subject file.
func (s *Server) QuestionCount() int {
	subjects, err := s.Subjects()
	if err != nil {
		return 0
	}
	total := 0
	for _, sub := range subjects {
		total += sub.TotalQuestions
	}
	return total
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSubjects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	subjects, err := s.Subjects()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subjects)
}

// noStoreMiddleware disables caching so edits to the question data show
// up on refresh during practice sessions.
func noStoreMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		remote := r.RemoteAddr
		if i := strings.LastIndex(remote, ":"); i > 0 {
			remote = remote[:i]
		}
		display.LogRequest(r.Method, r.URL.Path, rec.status, time.Since(start), remote)
	})
}
