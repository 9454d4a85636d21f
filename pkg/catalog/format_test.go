package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"pikachu": "Pikachu",
		"ho-oh":   "Ho-oh",
		"":        "",
		"élan":    "Élan",
	}
	for in, want := range tests {
		assert.Equal(t, want, DisplayName(in))
	}
}

func TestLabelAndUnits(t *testing.T) {
	assert.Equal(t, "special attack", Label("special-attack"))
	assert.Equal(t, "overgrow", Label("overgrow"))
	assert.Equal(t, "0.7 m", FormatHeight(0.7))
	assert.Equal(t, "69.0 kg", FormatWeight(69))
	assert.Equal(t, "#0025", FormatID(25))
}
