package veryfi

import "fmt"

// buildHeaders prepares the base header set for a request. File-bearing
// requests omit Content-Type so the transport can negotiate the binary
// content type downstream.
func buildHeaders(hasFiles bool, cfg *Config) map[string]string {
	headers := map[string]string{
		"User-Agent": userAgent,
		"Accept":     "application/json",
		"Client-Id":  cfg.ClientID,
	}
	if !hasFiles {
		headers["Content-Type"] = "application/json"
	}
	if cfg.Username != "" && cfg.APIKey != "" {
		headers["Authorization"] = fmt.Sprintf("apikey %s:%s", cfg.Username, cfg.APIKey)
	}
	return headers
}
