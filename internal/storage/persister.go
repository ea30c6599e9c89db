package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"amazon-review-sentiment/internal/checksum"
)

// DefaultSampleSize is how many reviews FetchSample returns by default.
const DefaultSampleSize = 10

// Persister writes artifacts to the object store and reads samples back.
type Persister struct {
	store         ObjectStore
	logger        *slog.Logger
	uploadTimeout time.Duration
	uploads       sync.WaitGroup
}

func NewPersister(store ObjectStore, logger *slog.Logger, uploadTimeout time.Duration) *Persister {
	return &Persister{
		store:         store,
		logger:        logger,
		uploadTimeout: uploadTimeout,
	}
}

// SaveAsync uploads the artifact in the background and returns its key
// immediately. Upload failure is logged, never surfaced: the caller's report
// stays valid even when persistence is down.
func (p *Persister) SaveAsync(artifact *Artifact) string {
	key := checksum.ArtifactKey(artifact.ProductTitle)

	payload, err := json.Marshal(artifact)
	if err != nil {
		p.logger.Error("Failed to serialize artifact",
			"key", key,
			"error", err.Error(),
		)
		return key
	}

	p.uploads.Add(1)
	go func() {
		defer p.uploads.Done()

		ctx, cancel := context.WithTimeout(context.Background(), p.uploadTimeout)
		defer cancel()

		if err := p.store.Put(ctx, key, payload); err != nil {
			p.logger.Error("Failed to upload artifact",
				"key", key,
				"error", err.Error(),
			)
			return
		}
		p.logger.Info("Artifact uploaded",
			"key", key,
			"bytes", len(payload),
		)
	}()

	return key
}

// Wait blocks until in-flight uploads finish. Called on shutdown.
func (p *Persister) Wait() {
	p.uploads.Wait()
}

// FetchSample reads the artifact under key, shuffles its reviews and returns
// the first n (DefaultSampleSize when n <= 0, fewer when the artifact holds
// fewer reviews).
func (p *Persister) FetchSample(ctx context.Context, key string, n int) ([]string, error) {
	data, err := p.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", key, err)
	}

	if n <= 0 {
		n = DefaultSampleSize
	}

	reviews := make([]string, len(artifact.Reviews))
	copy(reviews, artifact.Reviews)
	rand.Shuffle(len(reviews), func(i, j int) {
		reviews[i], reviews[j] = reviews[j], reviews[i]
	})

	if len(reviews) > n {
		reviews = reviews[:n]
	}
	return reviews, nil
}
