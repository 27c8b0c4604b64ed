package models

import (
	"bytes"
	"encoding/json"
)

// LookupEntry holds the outcome for a single token: either the matched
// records or an error, never both.
type LookupEntry struct {
	Records []PostcodeRecord
	Err     *ErrorEntry
}

// MatchedEntry builds an entry for a postcode with at least one row
func MatchedEntry(records []PostcodeRecord) LookupEntry {
	return LookupEntry{Records: records}
}

// ErrorEntryFor builds an entry carrying an error message
func ErrorEntryFor(message string) LookupEntry {
	return LookupEntry{Err: &ErrorEntry{Error: message}}
}

// IsError reports whether the entry is an error entry
func (e LookupEntry) IsError() bool {
	return e.Err != nil
}

// MarshalJSON renders an error entry as {"error": "..."} and a match as an array of records
func (e LookupEntry) MarshalJSON() ([]byte, error) {
	if e.Err != nil {
		return json.Marshal(e.Err)
	}
	records := e.Records
	if records == nil {
		records = []PostcodeRecord{}
	}
	return json.Marshal(records)
}

// LookupResult maps each trimmed token to its entry, preserving the order in
// which tokens were first seen. Setting an existing token replaces its entry
// in place.
type LookupResult struct {
	keys    []string
	entries map[string]LookupEntry
}

// NewLookupResult creates an empty result sized for n tokens
func NewLookupResult(n int) *LookupResult {
	return &LookupResult{
		keys:    make([]string, 0, n),
		entries: make(map[string]LookupEntry, n),
	}
}

// Set stores the entry for token; a repeated token keeps its first position
func (r *LookupResult) Set(token string, entry LookupEntry) {
	if _, exists := r.entries[token]; !exists {
		r.keys = append(r.keys, token)
	}
	r.entries[token] = entry
}

// Get returns the entry for token
func (r *LookupResult) Get(token string) (LookupEntry, bool) {
	entry, ok := r.entries[token]
	return entry, ok
}

// Keys returns the tokens in insertion order
func (r *LookupResult) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of distinct tokens
func (r *LookupResult) Len() int {
	return len(r.keys)
}

// Counts returns how many entries matched and how many carry errors
func (r *LookupResult) Counts() (matched, failed int) {
	for _, k := range r.keys {
		if r.entries[k].IsError() {
			failed++
		} else {
			matched++
		}
	}
	return matched, failed
}

// MarshalJSON writes the object with keys in insertion order
func (r *LookupResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(r.entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
