package veryfi

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	httpclient "github.com/natserract/veryfi/pkg/http"
	"go.uber.org/zap"
)

// requestOptions carries the per-call variations of the request pipeline.
type requestOptions struct {
	// fileStream, when set, is sent as the raw request body instead of the
	// JSON-encoded parameters. Implies hasFiles.
	fileStream io.Reader
	// queryParams are appended to the endpoint URL.
	queryParams map[string]string
}

var successStatuses = map[int]bool{200: true, 201: true, 202: true, 204: true}

// request submits one HTTP request through the authenticated pipeline:
// URL assembly, base headers, signature headers when a client secret is
// configured, JSON body encoding, and the uniform status-to-error mapping.
func (v *Veryfi) request(ctx context.Context, httpVerb, endpointName string, params *RequestParams, opts requestOptions) (map[string]interface{}, error) {
	if params == nil {
		params = NewRequestParams()
	}
	hasFiles := opts.fileStream != nil

	apiURL := v.config.baseURL() + APIVersion + "/partner" + endpointName
	if len(opts.queryParams) > 0 {
		withQuery, err := httpclient.AppendQuery(apiURL, opts.queryParams)
		if err != nil {
			v.logger.Error("Failed to build URL", zap.Error(err), zap.String("endpoint", endpointName))
			return nil, &ValidationError{Reason: err.Error()}
		}
		apiURL = withQuery
	}

	headers := buildHeaders(hasFiles, v.config)

	if v.config.SigningEnabled() {
		timestamp := v.now().UnixMilli()
		signature, err := GenerateSignature(params, timestamp, v.config.ClientSecret)
		if err != nil {
			v.logger.Error("Failed to sign request", zap.Error(err), zap.String("endpoint", endpointName))
			return nil, err
		}
		headers[headerTimestamp] = strconv.FormatInt(timestamp, 10)
		headers[headerSignature] = signature
	}

	var body interface{}
	if hasFiles {
		body = opts.fileStream
	} else {
		encoded, err := json.Marshal(params)
		if err != nil {
			v.logger.Error("Failed to encode request payload", zap.Error(err), zap.String("endpoint", endpointName))
			return nil, &SerializationError{Err: err}
		}
		// The service accepts a JSON body on every verb, GET and DELETE
		// included.
		body = encoded
	}

	v.logger.Debug("Submitting request",
		zap.String("method", httpVerb),
		zap.String("endpoint", endpointName),
		zap.Bool("signed", v.config.SigningEnabled()),
		zap.Bool("has_files", hasFiles))

	resp, err := v.httpClient.Do(httpclient.RequestOptions{
		Method:  httpVerb,
		URL:     apiURL,
		Headers: headers,
		Body:    body,
		Context: ctx,
	})
	if err != nil {
		v.logger.Error("Request failed before a response was obtained",
			zap.Error(err),
			zap.String("method", httpVerb),
			zap.String("endpoint", endpointName))
		return nil, &TransportError{Err: err}
	}

	if !successStatuses[resp.StatusCode] {
		apiErr := apiErrorFromResponse(resp)
		v.logger.Error("Request rejected by the service",
			zap.Int("status_code", apiErr.StatusCode),
			zap.String("message", apiErr.Message),
			zap.String("method", httpVerb),
			zap.String("endpoint", endpointName))
		return nil, apiErr
	}

	// An absent body (e.g. 204 on delete) decodes as an empty object.
	if len(resp.Body) == 0 {
		return map[string]interface{}{}, nil
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		v.logger.Error("Failed to decode response body",
			zap.Error(err),
			zap.Int("status_code", resp.StatusCode),
			zap.String("endpoint", endpointName))
		return nil, &SerializationError{Err: err}
	}

	return decoded, nil
}
