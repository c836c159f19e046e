// Package server exposes the informational HTTP routes.
package server

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"flask-demo-go/internal/config"
	"flask-demo-go/internal/logger"
)

const version = "1.0.0"

// Field order on the wire follows struct order, so keep these in the
// documented payload order.

type homeResponse struct {
	Message  string `json:"message"`
	Hostname string `json:"hostname"`
	Version  string `json:"version"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type infoResponse struct {
	App         string `json:"app"`
	Environment string `json:"environment"`
	Hostname    string `json:"hostname"`
}

type Server struct {
	config *config.Config
	router *mux.Router
}

// New creates a server with its route table resolved up front. Unmatched
// paths and wrong methods on matched paths fall through to the router's
// default 404/405 responses.
func New(cfg *config.Config) *Server {
	s := &Server{config: cfg}

	router := mux.NewRouter()
	router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/info", s.handleInfo).Methods(http.MethodGet)
	s.router = router

	return s
}

// Handler returns the full handler chain, for serving and for tests.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.router)
}

// Start blocks serving requests until the listener fails. A bind error
// (e.g. port already in use) is returned to the caller.
func (s *Server) Start() error {
	return http.ListenAndServe(s.config.Addr(), s.Handler())
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, homeResponse{
		Message:  "Hello from Flask Demo!",
		Hostname: s.hostname(),
		Version:  version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, infoResponse{
		App:         "Flask Demo Container",
		Environment: s.environment(),
		Hostname:    s.hostname(),
	})
}

// environment reads ENVIRONMENT fresh on every call; it must not be cached
// across requests.
func (s *Server) environment() string {
	if value := os.Getenv("ENVIRONMENT"); value != "" {
		return value
	}
	return s.config.DefaultEnvironment
}

func (s *Server) hostname() string {
	name, err := os.Hostname()
	if err != nil {
		logger.Warnf("Failed to resolve host name: %v", err)
		return "unknown"
	}
	return name
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Errorf("Failed to encode response: %v", err)
	}
}

// statusRecorder captures the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		logger.Debugf("%s %s %d %s", r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}
