package lexicon

import "strings"

// Matcher decides whether a token of review text matches a lexicon keyword.
// The classification logic is strategy-agnostic: substring matching is the
// documented default (compound words containing a keyword match), token
// matching is the stricter alternative.
type Matcher interface {
	Name() string
	MatchToken(token, keyword string) bool
}

// SubstringMatcher matches a keyword anywhere inside a token.
// Korean particles attach to nouns (품질이, 실밥도), so substring matching
// is the behavior that finds keywords in inflected text.
type SubstringMatcher struct{}

func (SubstringMatcher) Name() string { return "substring" }

func (SubstringMatcher) MatchToken(token, keyword string) bool {
	return strings.Contains(token, keyword)
}

// TokenMatcher matches only when the token, stripped of trailing
// punctuation, equals the keyword or starts with it (keyword + particle).
type TokenMatcher struct{}

func (TokenMatcher) Name() string { return "token" }

func (TokenMatcher) MatchToken(token, keyword string) bool {
	token = strings.TrimRight(token, ".,!?~")
	return token == keyword || strings.HasPrefix(token, keyword)
}

// ForStrategy returns the matcher for a configured strategy name,
// defaulting to substring matching
func ForStrategy(name string) Matcher {
	switch strings.ToLower(name) {
	case "token":
		return TokenMatcher{}
	default:
		return SubstringMatcher{}
	}
}
