package veryfi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestParams_InsertionOrder(t *testing.T) {
	params := NewRequestParams().
		Set("zebra", 1).
		Set("alpha", 2).
		Set("mike", 3)

	assert.Equal(t, []string{"zebra", "alpha", "mike"}, params.Keys())
	assert.Equal(t, 3, params.Len())
}

func TestRequestParams_ResetKeepsPosition(t *testing.T) {
	params := NewRequestParams().
		Set("a", 1).
		Set("b", 2).
		Set("a", 10)

	assert.Equal(t, []string{"a", "b"}, params.Keys())
	v, ok := params.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestRequestParams_MarshalJSON(t *testing.T) {
	params := NewRequestParams().
		Set("file_name", "receipt.jpg").
		Set("auto_delete", false).
		Set("categories", []string{"Travel"})

	encoded, err := json.Marshal(params)
	require.NoError(t, err)
	assert.Equal(t, `{"file_name":"receipt.jpg","auto_delete":false,"categories":["Travel"]}`, string(encoded))
}

func TestRequestParams_MarshalJSON_Empty(t *testing.T) {
	encoded, err := json.Marshal(NewRequestParams())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(encoded))
}
