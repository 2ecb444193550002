package scriptbuilder

import (
	"fmt"
	"strings"
	"sync"
)

// keywordSpellings holds the lower-cased spelling of every Keyword. It is
// derived from keywordNames exactly once, on first use, and never mutated
// afterwards.
var (
	keywordSpellingsOnce sync.Once
	keywordSpellings     []string
)

// spellingTable returns the process-wide keyword spelling table, building
// it on first call.
func spellingTable() []string {
	keywordSpellingsOnce.Do(func() {
		table := make([]string, len(keywordNames))
		for i, name := range keywordNames {
			table[i] = strings.ToLower(name)
		}
		keywordSpellings = table
	})
	return keywordSpellings
}

// Spelling returns the source spelling of the keyword, e.g. "public" for
// [KeywordPublic]. Out-of-range values are an error.
func (k Keyword) Spelling() (string, error) {
	table := spellingTable()
	if k < 0 || int(k) >= len(table) {
		return "", fmt.Errorf("keyword %d: %w", int(k), ErrUnknownToken)
	}
	return table[k], nil
}
