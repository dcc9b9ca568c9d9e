package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOCRResult(t *testing.T) {
	payload := []byte(`{
		"success": true,
		"text": "Cafe\n1x Kopi $1.40",
		"text_blocks": [
			{"text": "Cafe", "confidence": 98.5, "line_number": 0},
			{"text": "1x Kopi $1.40", "confidence": 91.0, "line_number": 1,
			 "bounding_polygon": [{"x": 0, "y": 0}, {"x": 120, "y": 0}]}
		]
	}`)
	res, err := DecodeOCRResult(payload)
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.TextBlocks, 2)
	assert.InDelta(t, 91.0, res.TextBlocks[1].Confidence, 1e-9)
	assert.Len(t, res.TextBlocks[1].BoundingPolygon, 2)
}

func TestDecodeOCRResultRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing text", `{"success": true}`},
		{"confidence out of range", `{"success": true, "text": "x", "text_blocks": [{"text": "x", "confidence": 150, "line_number": 0}]}`},
		{"unknown field", `{"success": true, "text": "x", "surprise": 1}`},
		{"not json", `{"success":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeOCRResult([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}
