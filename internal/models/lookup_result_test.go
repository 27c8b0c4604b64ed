package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupResultPreservesInsertionOrder(t *testing.T) {
	r := NewLookupResult(3)
	r.Set("9999", ErrorEntryFor("404, Postcode 9999 not found in the database"))
	r.Set("2000", MatchedEntry([]PostcodeRecord{{Postcode: "2000", Locality: "SYDNEY", State: "NSW"}}))
	r.Set("abcd", ErrorEntryFor("Invalid postcode: abcd. Please enter a 4-digit numeric value."))

	body, err := json.Marshal(r)
	require.NoError(t, err)

	want := `{"9999":{"error":"404, Postcode 9999 not found in the database"},` +
		`"2000":[{"Postcode":"2000","Locality":"SYDNEY","State":"NSW"}],` +
		`"abcd":{"error":"Invalid postcode: abcd. Please enter a 4-digit numeric value."}}`
	assert.Equal(t, want, string(body))
	assert.Equal(t, []string{"9999", "2000", "abcd"}, r.Keys())
}

func TestLookupResultOverwriteKeepsPosition(t *testing.T) {
	r := NewLookupResult(3)
	r.Set("2000", ErrorEntryFor("first"))
	r.Set("3000", ErrorEntryFor("other"))
	r.Set("2000", MatchedEntry([]PostcodeRecord{{Postcode: "2000"}}))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"2000", "3000"}, r.Keys())

	entry, ok := r.Get("2000")
	require.True(t, ok)
	assert.False(t, entry.IsError())
	assert.Len(t, entry.Records, 1)

	matched, failed := r.Counts()
	assert.Equal(t, 1, matched)
	assert.Equal(t, 1, failed)
}

func TestLookupEntryJSONShapes(t *testing.T) {
	single, err := json.Marshal(MatchedEntry([]PostcodeRecord{{Postcode: "0800", Locality: "DARWIN", State: "NT"}}))
	require.NoError(t, err)
	assert.Equal(t, `[{"Postcode":"0800","Locality":"DARWIN","State":"NT"}]`, string(single))

	errBody, err := json.Marshal(ErrorEntryFor("boom"))
	require.NoError(t, err)
	assert.Equal(t, `{"error":"boom"}`, string(errBody))
}

func TestEmptyLookupResult(t *testing.T) {
	body, err := json.Marshal(NewLookupResult(0))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(body))
}
