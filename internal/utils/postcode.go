package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// PostcodeSeparator splits the raw list field into tokens
const PostcodeSeparator = ","

// postcodeRule accepts exactly four ASCII digits
const postcodeRule = "len=4,number"

var validate = validator.New()

// SplitPostcodes splits the raw comma-separated field into untrimmed tokens.
// An empty field yields a single empty token.
func SplitPostcodes(raw string) []string {
	return strings.Split(raw, PostcodeSeparator)
}

// NormalizePostcode strips surrounding whitespace from a token
func NormalizePostcode(token string) string {
	return strings.TrimSpace(token)
}

// IsValidPostcode reports whether token is a well-formed postcode
func IsValidPostcode(token string) bool {
	return validate.Var(token, postcodeRule) == nil
}
