package storage

import "strings"

// CodeIndex maps normalized IATA codes to airport identities.
// It is not safe for concurrent use; GraphStorage guards it with its own lock.
type CodeIndex struct {
	index map[string]int
}

// NewCodeIndex creates an empty code index.
func NewCodeIndex() *CodeIndex {
	return &CodeIndex{index: make(map[string]int)}
}

// NormalizeIATA strips one pair of enclosing double quotes and upper-cases the
// code. Empty codes and the null marker normalize to "".
func NormalizeIATA(code string) string {
	key := strings.ToUpper(StripQuotes(code))
	if key == NullMarker {
		return ""
	}
	return key
}

// StripQuotes removes a single pair of enclosing double quotes.
func StripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// Insert registers code for airportID. Placeholder codes are ignored and
// reported as not indexed.
func (idx *CodeIndex) Insert(code string, airportID int) bool {
	key := NormalizeIATA(code)
	if key == "" {
		return false
	}
	idx.index[key] = airportID
	return true
}

// Lookup returns the airport identity registered for code.
func (idx *CodeIndex) Lookup(code string) (int, bool) {
	key := NormalizeIATA(code)
	if key == "" {
		return 0, false
	}
	id, ok := idx.index[key]
	return id, ok
}

// Len returns the number of indexed codes.
func (idx *CodeIndex) Len() int {
	return len(idx.index)
}
