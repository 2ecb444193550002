package keywordgen

import (
	"fmt"
	"strings"
	"unicode"
)

// normalizeNames canonicalizes the configured keyword names and rejects
// entries that cannot become Go identifiers or that collide after
// normalization.
func normalizeNames(keywords []string) ([]string, error) {
	names := make([]string, 0, len(keywords))
	seen := make(map[string]string) // lower-cased name → original entry
	for _, kw := range keywords {
		name, err := toConstName(kw)
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", kw, err)
		}
		lower := strings.ToLower(name)
		if prev, ok := seen[lower]; ok {
			return nil, fmt.Errorf("keyword %q duplicates %q", kw, prev)
		}
		seen[lower] = kw
		names = append(names, name)
	}
	return names, nil
}

// toConstName converts a configured keyword ("public" or "Public") into
// the name used for its enum constant ("Public"). Only ASCII letters are
// allowed: the emitted spelling is derived from the name by lower-casing,
// so the name must round-trip through case conversion.
func toConstName(kw string) (string, error) {
	if kw == "" {
		return "", fmt.Errorf("empty name")
	}
	for _, r := range kw {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return "", fmt.Errorf("invalid character %q", r)
		}
	}
	return capitalize(kw), nil
}

// capitalize returns s with its first rune uppercased and the rest
// lowercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
