package veryfi

import (
	"bytes"
	"encoding/json"
)

// RequestParams is the logical payload of one API call: a mapping from key
// to JSON-serializable value that remembers insertion order. The service
// verifies signatures against the parameters in the order the client
// rendered them, so the order keys were set in must survive both signing and
// body encoding. Re-setting a key updates its value in place.
type RequestParams struct {
	keys   []string
	values map[string]interface{}
}

// NewRequestParams returns an empty ordered parameter set.
func NewRequestParams() *RequestParams {
	return &RequestParams{values: make(map[string]interface{})}
}

// Set adds or updates a parameter, preserving first-insertion order.
func (p *RequestParams) Set(key string, value interface{}) *RequestParams {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value for key and whether it is present.
func (p *RequestParams) Get(key string) (interface{}, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the parameter keys in insertion order.
func (p *RequestParams) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of parameters.
func (p *RequestParams) Len() int {
	return len(p.keys)
}

// MarshalJSON encodes the parameters as a JSON object with keys in
// insertion order.
func (p *RequestParams) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
