package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPostcode(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"2000", true},
		{"0800", true},
		{"9999", true},
		{"200", false},
		{"20000", false},
		{"abcd", false},
		{"20a0", false},
		{"+200", false},
		{"-200", false},
		{"2.00", false},
		{"", false},
		{" 2000", false},
		{"２０００", false}, // full-width digits
		{"٢٠٠٠", false}, // Arabic-Indic digits
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPostcode(tt.token))
		})
	}
}

func TestSplitPostcodes(t *testing.T) {
	assert.Equal(t, []string{""}, SplitPostcodes(""))
	assert.Equal(t, []string{"2000", " 3000", ""}, SplitPostcodes("2000, 3000,"))
}

func TestNormalizePostcode(t *testing.T) {
	assert.Equal(t, "2000", NormalizePostcode(" \t2000\n"))
	assert.Equal(t, "", NormalizePostcode("   "))
}
