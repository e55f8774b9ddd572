// Package veryfi provides a client for the Veryfi document-OCR API.
//
// Veryfi ingests receipts, invoices and other business documents and returns
// the extracted structured fields. This package handles authentication
// (Client-Id plus either an apikey Authorization pair or HMAC request
// signing), payload serialization, and the document lifecycle operations:
// list, fetch, submit (from disk, stream, or URL), update, and delete.
//
// A Client owns one shared HTTP transport and is safe for use from multiple
// goroutines.
package veryfi

import (
	"time"

	httpclient "github.com/natserract/veryfi/pkg/http"
	"go.uber.org/zap"
)

// Veryfi is the main client for the document API.
type Veryfi struct {
	config     *Config
	httpClient *httpclient.Client
	logger     *zap.Logger
	// now is the timestamp source for request signing.
	now func() time.Time
}

// NewClient creates a new Veryfi client with default production logger
func NewClient(cfg *Config) (*Veryfi, error) {
	logger, _ := zap.NewProduction()
	return NewClientWithLogger(cfg, logger)
}

// NewClientWithLogger creates a new Veryfi client with a custom logger
func NewClientWithLogger(cfg *Config, logger *zap.Logger) (*Veryfi, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Veryfi{
		config:     cfg,
		httpClient: httpclient.NewClientWithTimeout(logger, cfg.timeout()),
		logger:     logger,
		now:        time.Now,
	}, nil
}
