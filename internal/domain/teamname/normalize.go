package teamname

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var separatorReplacer = strings.NewReplacer(
	".", " ",
	"&", " ",
	"'", " ",
	",", " ",
	"-", " ",
)

var leadingPrefixes = map[string]struct{}{
	"afc": {},
	"as":  {},
	"ac":  {},
	"rc":  {},
	"ud":  {},
}

var fillerTokens = map[string]struct{}{
	"calcio":   {},
	"club":     {},
	"futbol":   {},
	"sporting": {},
}

// Normalize turns a raw team name into the key used for every comparison
// between provider names, manual table names and user input.
//
// Stripping rules are applied until the token list is stable, so the result
// is idempotent. The fc suffix and the leading prefixes are only stripped
// next to another token; filler tokens are always removed, so a name made of
// filler alone normalizes to "".
func Normalize(name string) string {
	value := strings.ToLower(strings.TrimSpace(name))
	if value == "" {
		return ""
	}

	value = stripDiacritics(value)
	value = separatorReplacer.Replace(value)

	tokens := strings.Fields(value)
	for {
		next := stripTokens(tokens)
		if len(next) == len(tokens) {
			break
		}
		tokens = next
	}

	return strings.Join(tokens, " ")
}

func stripDiacritics(value string) string {
	// transform.Chain keeps internal state, build a fresh one per call.
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, value)
	if err != nil {
		return value
	}
	return out
}

func stripTokens(tokens []string) []string {
	if len(tokens) > 1 && tokens[len(tokens)-1] == "fc" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) > 1 {
		if _, ok := leadingPrefixes[tokens[0]]; ok {
			tokens = tokens[1:]
		}
	}

	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := fillerTokens[token]; ok {
			continue
		}
		out = append(out, token)
	}
	return out
}
