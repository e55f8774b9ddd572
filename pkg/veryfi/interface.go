package veryfi

import (
	"context"
	"io"
)

// Client defines the interface for Veryfi document operations
type Client interface {
	// GetDocuments retrieves the list of previously processed documents
	GetDocuments(ctx context.Context) (map[string]interface{}, error)

	// GetDocument retrieves one document by ID
	GetDocument(ctx context.Context, documentID int) (map[string]interface{}, error)

	// ProcessDocument submits a file from disk for data extraction
	ProcessDocument(ctx context.Context, filePath string, categories []string, deleteAfterProcessing bool) (map[string]interface{}, error)

	// ProcessDocumentStream submits a document as a raw binary body
	ProcessDocumentStream(ctx context.Context, fileStream io.Reader, fileName string, categories []string, deleteAfterProcessing bool) (map[string]interface{}, error)

	// ProcessDocumentURL submits one or more file URLs for data extraction
	ProcessDocumentURL(ctx context.Context, opts ProcessDocumentURLOptions) (map[string]interface{}, error)

	// UpdateDocument updates fields of a previously processed document
	UpdateDocument(ctx context.Context, documentID int, fields *RequestParams) (map[string]interface{}, error)

	// DeleteDocument removes a document from the service
	DeleteDocument(ctx context.Context, documentID int) error
}

var _ Client = (*Veryfi)(nil)
