package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "valid", raw: "3", expected: 3},
		{name: "padded", raw: " 2 ", expected: 2},
		{name: "blank", raw: "", expected: 1},
		{name: "whitespace only", raw: "   ", expected: 1},
		{name: "non numeric", raw: "abc", expected: 1},
		{name: "zero", raw: "0", expected: 1},
		{name: "negative", raw: "-4", expected: 1},
		{name: "fractional", raw: "2.5", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeQuantity(tt.raw))
		})
	}
}
