package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Direction
	}{
		{"empty", "", Neutral},
		{"digits only", "2024 - 12", Neutral},
		{"latin", "Quarterly Review", LTR},
		{"hebrew", "שלום עולם", RTL},
		{"arabic", "مرحبا بالعالم", RTL},
		{"mostly arabic", "مرحبا بالعالم OK", RTL},
		{"mostly latin", "Hello שלום world", LTR},
		{"cjk", "会议议程", LTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectDirection(tt.text))
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "LTR", LTR.String())
	assert.Equal(t, "RTL", RTL.String())
	assert.Equal(t, "Neutral", Neutral.String())
	assert.Equal(t, "Unknown", Direction(9).String())
}
