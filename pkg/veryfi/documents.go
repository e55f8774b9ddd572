package veryfi

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// GetDocuments retrieves the list of previously processed documents.
func (v *Veryfi) GetDocuments(ctx context.Context) (map[string]interface{}, error) {
	v.logger.Info("Getting documents")
	return v.request(ctx, http.MethodGet, "/documents/", NewRequestParams(), requestOptions{})
}

// GetDocument retrieves one document by ID.
func (v *Veryfi) GetDocument(ctx context.Context, documentID int) (map[string]interface{}, error) {
	v.logger.Info("Getting document", zap.Int("document_id", documentID))
	endpointName := fmt.Sprintf("/documents/%d/", documentID)
	params := NewRequestParams().Set("id", documentID)
	return v.request(ctx, http.MethodGet, endpointName, params, requestOptions{})
}

// ProcessDocument submits a file from disk for data extraction. The file
// contents travel base64-embedded in the JSON payload. When no categories
// are given the default taxonomy applies.
func (v *Veryfi) ProcessDocument(ctx context.Context, filePath string, categories []string, deleteAfterProcessing bool) (map[string]interface{}, error) {
	if len(categories) == 0 {
		categories = defaultCategories()
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("cannot stat file %s: %v", filePath, err)}
	}
	if info.Size() > MaxFileSizeMB*1024*1024 {
		return nil, &ValidationError{Reason: fmt.Sprintf("file %s exceeds the %d MB limit", filePath, MaxFileSizeMB)}
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("cannot read file %s: %v", filePath, err)}
	}

	v.logger.Info("Processing document",
		zap.String("file_name", filepath.Base(filePath)),
		zap.Int64("size_bytes", info.Size()))

	params := NewRequestParams().
		Set("file_name", filepath.Base(filePath)).
		Set("file_data", base64.StdEncoding.EncodeToString(fileData)).
		Set("categories", categories).
		Set("auto_delete", deleteAfterProcessing)

	return v.request(ctx, http.MethodPost, "/documents/", params, requestOptions{})
}

// ProcessDocumentStream submits a document as a raw binary body instead of
// base64-embedded JSON. The Content-Type header is omitted so the transport
// negotiates the binary content type.
func (v *Veryfi) ProcessDocumentStream(ctx context.Context, fileStream io.Reader, fileName string, categories []string, deleteAfterProcessing bool) (map[string]interface{}, error) {
	if fileStream == nil {
		return nil, &ValidationError{Reason: "fileStream is required"}
	}
	if fileName == "" {
		return nil, &ValidationError{Reason: "fileName is required"}
	}
	if len(categories) == 0 {
		categories = defaultCategories()
	}

	v.logger.Info("Processing document stream", zap.String("file_name", fileName))

	params := NewRequestParams().
		Set("file_name", fileName).
		Set("categories", categories).
		Set("auto_delete", deleteAfterProcessing)

	return v.request(ctx, http.MethodPost, "/documents/", params, requestOptions{fileStream: fileStream})
}

// ProcessDocumentURL submits one or more publicly accessible file URLs for
// data extraction.
func (v *Veryfi) ProcessDocumentURL(ctx context.Context, opts ProcessDocumentURLOptions) (map[string]interface{}, error) {
	if opts.FileURL == "" && len(opts.FileURLs) == 0 {
		return nil, &ValidationError{Reason: "either FileURL or FileURLs is required"}
	}

	v.logger.Info("Processing document from URL",
		zap.String("file_url", opts.FileURL),
		zap.Int("file_urls", len(opts.FileURLs)))

	params := NewRequestParams().
		Set("auto_delete", opts.DeleteAfterProcessing).
		Set("boost_mode", opts.BoostMode)
	if len(opts.Categories) > 0 {
		params.Set("categories", opts.Categories)
	}
	if opts.ExternalID != "" {
		params.Set("external_id", opts.ExternalID)
	}
	if opts.FileURL != "" {
		params.Set("file_url", opts.FileURL)
	}
	if len(opts.FileURLs) > 0 {
		params.Set("file_urls", opts.FileURLs)
	}
	if opts.MaxPagesToProcess > 0 {
		params.Set("max_pages_to_process", opts.MaxPagesToProcess)
	}

	return v.request(ctx, http.MethodPost, "/documents/", params, requestOptions{})
}

// UpdateDocument updates fields of a previously processed document, e.g.
// vendor, date or notes. Fields the service considers read-only come back
// unchanged.
func (v *Veryfi) UpdateDocument(ctx context.Context, documentID int, fields *RequestParams) (map[string]interface{}, error) {
	if fields == nil || fields.Len() == 0 {
		return nil, &ValidationError{Reason: "at least one field to update is required"}
	}

	v.logger.Info("Updating document", zap.Int("document_id", documentID))
	endpointName := fmt.Sprintf("/documents/%d/", documentID)
	return v.request(ctx, http.MethodPut, endpointName, fields, requestOptions{})
}

// DeleteDocument removes a document from the service.
func (v *Veryfi) DeleteDocument(ctx context.Context, documentID int) error {
	v.logger.Info("Deleting document", zap.Int("document_id", documentID))
	endpointName := fmt.Sprintf("/documents/%d/", documentID)
	params := NewRequestParams().Set("id", documentID)
	_, err := v.request(ctx, http.MethodDelete, endpointName, params, requestOptions{})
	return err
}
