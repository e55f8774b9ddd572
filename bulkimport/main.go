package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/natserract/veryfi/bulkimport/services"
	"github.com/natserract/veryfi/pkg/veryfi"
	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", ".", "directory of documents to submit")
	poolSize := flag.Int("pool", 4, "max concurrent submissions")
	autoDelete := flag.Bool("auto-delete", false, "delete documents from the service after extraction")
	withRetry := flag.Bool("retry", false, "retry transient failures with exponential backoff")
	flag.Parse()

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := veryfi.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Create Veryfi client
	client, err := veryfi.NewClientWithLogger(cfg, logger)
	if err != nil {
		logger.Error("Failed to create client", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		os.Exit(1)
	}

	// Create ingestion service
	ingestSvc := services.NewIngestService(client, logger)
	ingestSvc.PoolSize = *poolSize
	ingestSvc.DeleteAfterProcessing = *autoDelete
	ingestSvc.Retry = *withRetry

	ctx := context.Background()
	metrics, err := ingestSvc.IngestDirectory(ctx, *dir)
	if err != nil {
		logger.Error("Ingestion finished with failures", zap.Error(err))
	}
	if metrics == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Ingestion finished: %d succeeded, %d failed (of %d)\n",
		metrics.Succeeded, metrics.Failed, metrics.Total())
	if metrics.Failed > 0 {
		os.Exit(1)
	}
}
