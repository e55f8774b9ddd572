package veryfi

// ProcessDocumentURLOptions are the arguments for ProcessDocumentURL. At
// least one of FileURL or FileURLs must be set.
type ProcessDocumentURLOptions struct {
	// FileURL is a publicly accessible URL to a single file, e.g.
	// "https://cdn.example.com/receipt.jpg".
	FileURL string
	// FileURLs lists publicly accessible URLs to multiple files.
	FileURLs []string
	// Categories to use when categorizing the document.
	Categories []string
	// DeleteAfterProcessing removes the document from the service once data
	// has been extracted.
	DeleteAfterProcessing bool
	// BoostMode skips data enrichment steps to process the document faster.
	BoostMode int
	// ExternalID is an optional custom document identifier.
	ExternalID string
	// MaxPagesToProcess caps how many pages of a long document are read,
	// starting from page 1.
	MaxPagesToProcess int
}
