package http

import (
	"fmt"
	"net/url"
)

// AppendQuery adds query parameters to an already-assembled URL, merging with
// any parameters the URL carries.
func AppendQuery(rawURL string, queryParams map[string]string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("error parsing URL: %w", err)
	}

	q := parsedURL.Query()
	for key, value := range queryParams {
		q.Set(key, value)
	}
	parsedURL.RawQuery = q.Encode()

	return parsedURL.String(), nil
}
