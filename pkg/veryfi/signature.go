package veryfi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// canonicalPayload renders the string the service verifies the signature
// against: "timestamp:<millis>" followed by ",<key>:<value>" for every
// parameter in insertion order. Values render with fmt's default formatting;
// the service's verification depends on the exact rendering and on the key
// order, so neither may be normalized here.
func canonicalPayload(params *RequestParams, timestampMillis int64) string {
	payload := fmt.Sprintf("timestamp:%d", timestampMillis)
	if params == nil {
		return payload
	}
	for _, key := range params.keys {
		payload = fmt.Sprintf("%s,%s:%v", payload, key, params.values[key])
	}
	return payload
}

// GenerateSignature computes the request signature: HMAC-SHA256 over the
// canonical payload, keyed by the client secret, base64-encoded.
func GenerateSignature(params *RequestParams, timestampMillis int64, secret string) (string, error) {
	if secret == "" {
		return "", &ConfigurationError{Reason: "cannot sign request with empty client secret"}
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonicalPayload(params, timestampMillis)))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
