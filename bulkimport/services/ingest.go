package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/natserract/veryfi/pkg/retry"
	"github.com/natserract/veryfi/pkg/veryfi"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// IngestMetrics tracks the overall ingestion run
type IngestMetrics struct {
	Succeeded int
	Failed    int
	mu        sync.Mutex
}

// AddSuccess increments the succeeded count
func (m *IngestMetrics) AddSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Succeeded++
}

// AddFailure increments the failed count
func (m *IngestMetrics) AddFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failed++
}

// Total returns the number of files attempted
func (m *IngestMetrics) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Succeeded + m.Failed
}

// IngestService submits every document in a directory through the client
type IngestService struct {
	client veryfi.Client
	logger *zap.Logger
	// PoolSize bounds how many files are in flight at once.
	PoolSize int
	// DeleteAfterProcessing forwards the auto-delete flag on every file.
	DeleteAfterProcessing bool
	// Retry wraps each submission in the opt-in backoff helper.
	Retry bool
}

// NewIngestService creates a new ingestion service
func NewIngestService(client veryfi.Client, logger *zap.Logger) *IngestService {
	return &IngestService{
		client:   client,
		logger:   logger,
		PoolSize: 4,
	}
}

// IngestDirectory submits every regular file under dir concurrently. Each
// run gets a batch ID and each file a submission ID so log lines from
// parallel uploads stay correlatable.
func (s *IngestService) IngestDirectory(ctx context.Context, dir string) (*IngestMetrics, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	batchID := uuid.NewString()
	s.logger.Info("Starting ingestion batch",
		zap.String("batch_id", batchID),
		zap.String("dir", dir),
		zap.Int("files", len(files)),
		zap.Int("pool_size", s.PoolSize))

	metrics := &IngestMetrics{}
	ingestPool := pool.New().WithMaxGoroutines(s.PoolSize).WithErrors()
	for _, file := range files {
		file := file // capture loop variable
		ingestPool.Go(func() error {
			submissionID := uuid.NewString()
			if err := s.submit(ctx, file); err != nil {
				metrics.AddFailure()
				s.logger.Error("Failed to process document",
					zap.String("batch_id", batchID),
					zap.String("submission_id", submissionID),
					zap.String("file", file),
					zap.Error(err))
				return fmt.Errorf("failed to process document %s: %w", file, err)
			}
			metrics.AddSuccess()
			s.logger.Info("Processed document",
				zap.String("batch_id", batchID),
				zap.String("submission_id", submissionID),
				zap.String("file", file))
			return nil
		})
	}

	// A failed file should not abort the rest of the batch; the error and
	// the metrics both carry the outcome.
	err = ingestPool.Wait()

	s.logger.Info("Ingestion batch finished",
		zap.String("batch_id", batchID),
		zap.Int("succeeded", metrics.Succeeded),
		zap.Int("failed", metrics.Failed))

	return metrics, err
}

func (s *IngestService) submit(ctx context.Context, file string) error {
	operation := func() (map[string]interface{}, error) {
		return s.client.ProcessDocument(ctx, file, nil, s.DeleteAfterProcessing)
	}
	if !s.Retry {
		_, err := operation()
		return err
	}
	_, err := retry.Do(ctx, operation)
	return err
}
