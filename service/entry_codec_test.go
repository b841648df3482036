package service

import (
	"testing"

	"mypresence/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEntry(t *testing.T) {
	hash, err := encodeEntry(domain.Entry{
		CreatedAt: 1700000000000,
		UpdatedAt: 1700000000500,
		Meta:      map[string]any{"region": "eu", "slots": 4},
	})
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", hash["createdAt"])
	assert.Equal(t, "1700000000500", hash["updatedAt"])
	assert.JSONEq(t, `{"region":"eu","slots":4}`, hash["meta"])
}

func TestEncodeEntry_NilMetaIsEmptyObject(t *testing.T) {
	hash, err := encodeEntry(domain.Entry{CreatedAt: 1, UpdatedAt: 1})
	require.NoError(t, err)
	assert.Equal(t, "{}", hash["meta"])
}

func TestDecodeEntry(t *testing.T) {
	tests := []struct {
		name          string
		fields        map[string]string
		expected      domain.Entry
		expectedError string
	}{
		{
			name:   "valid",
			fields: map[string]string{"createdAt": "10", "updatedAt": "20", "meta": `{"a":"b"}`},
			expected: domain.Entry{
				CreatedAt: 10,
				UpdatedAt: 20,
				Meta:      map[string]any{"a": "b"},
			},
		},
		{
			name:     "missing meta decodes as empty",
			fields:   map[string]string{"createdAt": "10", "updatedAt": "20"},
			expected: domain.Entry{CreatedAt: 10, UpdatedAt: 20, Meta: map[string]any{}},
		},
		{
			name:     "null meta decodes as empty",
			fields:   map[string]string{"createdAt": "10", "updatedAt": "20", "meta": "null"},
			expected: domain.Entry{CreatedAt: 10, UpdatedAt: 20, Meta: map[string]any{}},
		},
		{
			name:          "missing createdAt",
			fields:        map[string]string{"updatedAt": "20", "meta": "{}"},
			expectedError: "field createdAt is missing",
		},
		{
			name:          "non numeric updatedAt",
			fields:        map[string]string{"createdAt": "10", "updatedAt": "soon", "meta": "{}"},
			expectedError: "can't parse field updatedAt",
		},
		{
			name:          "meta is not an object",
			fields:        map[string]string{"createdAt": "10", "updatedAt": "20", "meta": "[1,2]"},
			expectedError: "can't unmarshal field meta",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeEntry(tt.fields)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEntryCodec_PreservesNestedMeta(t *testing.T) {
	in := domain.Entry{
		CreatedAt: 5,
		UpdatedAt: 6,
		Meta:      map[string]any{"nested": map[string]any{"ok": true}, "tags": []any{"a", "b"}},
	}
	hash, err := encodeEntry(in)
	require.NoError(t, err)

	out, err := decodeEntry(hash)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
