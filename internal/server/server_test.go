package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amazon-review-sentiment/internal/aggregate"
	"amazon-review-sentiment/internal/config"
	"amazon-review-sentiment/internal/renderer"
	"amazon-review-sentiment/internal/storage"
	"amazon-review-sentiment/internal/urls"
)

type fakeAnalyzer struct {
	report *aggregate.Report
	err    error
	calls  int
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, rawURL string) (*aggregate.Report, error) {
	f.calls++
	return f.report, f.err
}

type fakeSampler struct {
	reviews []string
	err     error
}

func (f *fakeSampler) FetchSample(ctx context.Context, key string, n int) ([]string, error) {
	return f.reviews, f.err
}

func testServer(analyzer SentimentAnalyzer, sampler ReviewSampler) *httptest.Server {
	cfg := &config.Config{}
	cfg.Server.Addr = ":0"
	cfg.Server.ReadTimeoutS = 5
	cfg.Server.WriteTimeoutS = 5
	cfg.Server.ShutdownTimeoutS = 5

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(cfg, logger, analyzer, sampler)
	return httptest.NewServer(s.httpServer.Handler)
}

func getJSON(t *testing.T, url string, target any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	return resp.StatusCode
}

func TestProductSentimentSuccess(t *testing.T) {
	score := 2.5
	analyzer := &fakeAnalyzer{report: &aggregate.Report{
		ProductURL:   "https://www.amazon.com/W/dp/B1/",
		ProductTitle: "Widget",
		AverageScore: &score,
		ReviewCount:  4,
		ArtifactKey:  "abc.json",
	}}
	srv := testServer(analyzer, &fakeSampler{})
	defer srv.Close()

	var report aggregate.Report
	status := getJSON(t, srv.URL+"/get-product-sentiment?productUrl=https%3A%2F%2Fwww.amazon.com%2FW%2Fdp%2FB1%2F", &report)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Widget", report.ProductTitle)
	assert.Equal(t, "abc.json", report.ArtifactKey)
	assert.Equal(t, 1, analyzer.calls)
}

func TestProductSentimentClientErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"missing url", urls.ErrNotProvided},
		{"invalid url", urls.ErrInvalid},
		{"wrong domain", urls.ErrUnsupportedDomain},
		{"not a product", urls.ErrNotProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testServer(&fakeAnalyzer{err: tt.err}, &fakeSampler{})
			defer srv.Close()

			var body map[string]string
			status := getJSON(t, srv.URL+"/get-product-sentiment?productUrl=whatever", &body)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestProductSentimentPipelineFault(t *testing.T) {
	err := fmt.Errorf("render listing page 3: %w", renderer.ErrRenderFailure)
	srv := testServer(&fakeAnalyzer{err: err}, &fakeSampler{})
	defer srv.Close()

	var body map[string]string
	status := getJSON(t, srv.URL+"/get-product-sentiment?productUrl=https%3A%2F%2Fwww.amazon.com%2FW%2Fdp%2FB1%2F", &body)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotEmpty(t, body["error"])
}

func TestReviewSampleSuccess(t *testing.T) {
	sampler := &fakeSampler{reviews: []string{"one", "two"}}
	srv := testServer(&fakeAnalyzer{}, sampler)
	defer srv.Close()

	var reviews []string
	status := getJSON(t, srv.URL+"/get-reviews-from-s3?key=abc.json", &reviews)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"one", "two"}, reviews)
}

func TestReviewSampleMissingKey(t *testing.T) {
	srv := testServer(&fakeAnalyzer{}, &fakeSampler{})
	defer srv.Close()

	var body map[string]string
	status := getJSON(t, srv.URL+"/get-reviews-from-s3", &body)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "key is required", body["error"])
}

func TestReviewSampleUnknownKey(t *testing.T) {
	srv := testServer(&fakeAnalyzer{}, &fakeSampler{err: storage.ErrNotFound})
	defer srv.Close()

	var body map[string]string
	status := getJSON(t, srv.URL+"/get-reviews-from-s3?key=missing.json", &body)

	assert.Equal(t, http.StatusNotFound, status)
}

func TestReviewSampleStoreFailure(t *testing.T) {
	srv := testServer(&fakeAnalyzer{}, &fakeSampler{err: errors.New("s3 timeout")})
	defer srv.Close()

	var body map[string]string
	status := getJSON(t, srv.URL+"/get-reviews-from-s3?key=abc.json", &body)

	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestHealth(t *testing.T) {
	srv := testServer(&fakeAnalyzer{}, &fakeSampler{})
	defer srv.Close()

	var body map[string]string
	status := getJSON(t, srv.URL+"/health", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestCORSHeaders(t *testing.T) {
	srv := testServer(&fakeAnalyzer{}, &fakeSampler{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
