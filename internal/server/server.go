package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"amazon-review-sentiment/internal/aggregate"
	"amazon-review-sentiment/internal/config"
	"amazon-review-sentiment/internal/storage"
	"amazon-review-sentiment/internal/urls"
)

// SentimentAnalyzer runs the full review pipeline for a product URL.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, rawURL string) (*aggregate.Report, error)
}

// ReviewSampler returns random reviews from a stored artifact.
type ReviewSampler interface {
	FetchSample(ctx context.Context, key string, n int) ([]string, error)
}

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	analyzer   SentimentAnalyzer
	sampler    ReviewSampler
}

func New(cfg *config.Config, logger *slog.Logger, analyzer SentimentAnalyzer, sampler ReviewSampler) *Server {
	s := &Server{
		logger:   logger,
		analyzer: analyzer,
		sampler:  sampler,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/get-product-sentiment", s.handleProductSentiment)
	mux.HandleFunc("/get-reviews-from-s3", s.handleReviewSample)
	mux.HandleFunc("/health", s.handleHealth)
	if cfg.Server.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.Server.StaticDir)))
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      requestLogging(logger, cors(mux)),
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	return s
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleProductSentiment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method not allowed"))
		return
	}

	productURL := r.URL.Query().Get("productUrl")
	report, err := s.analyzer.Analyze(r.Context(), productURL)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleReviewSample(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method not allowed"))
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("key is required"))
		return
	}

	reviews, err := s.sampler.FetchSample(r.Context(), key, storage.DefaultSampleSize)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps the error taxonomy to status codes: client input errors
// are 400 and never logged as faults, unknown artifact keys are 404,
// everything else is a 500 pipeline fault.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case urls.IsClientError(err):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "error", err.Error())
	}
	writeJSON(w, status, errorBody(err.Error()))
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
