package review

import (
	"sort"
	"strings"

	"github.com/hyeonwoos/marketlens/internal/lexicon"
	"github.com/hyeonwoos/marketlens/internal/model"
)

// Classifier classifies single reviews against an injected lexicon.
// Classification is a pure function of the review text: it never fails,
// never mutates state, and ignores the star rating by design of the
// contract (text content decides sentiment, rating is metadata).
type Classifier struct {
	lex         *lexicon.Lexicon
	matcher     lexicon.Matcher
	guardWindow int

	// keyword → categories it belongs to, built once at construction
	categoriesOf map[string][]string
	negKeywords  []string
}

// NewClassifier creates a classifier for the given lexicon and matching
// strategy. guardWindow is the number of tokens after a negative match in
// which a positive qualifier neutralizes it; values <= 0 fall back to 3.
func NewClassifier(lex *lexicon.Lexicon, matcher lexicon.Matcher, guardWindow int) *Classifier {
	if guardWindow <= 0 {
		guardWindow = 3
	}

	categoriesOf := make(map[string][]string)
	var negKeywords []string
	for _, category := range lex.Categories() {
		for _, keyword := range lex.Negative(category) {
			if _, seen := categoriesOf[keyword]; !seen {
				negKeywords = append(negKeywords, keyword)
			}
			categoriesOf[keyword] = append(categoriesOf[keyword], category)
		}
	}
	sort.Strings(negKeywords)

	return &Classifier{
		lex:          lex,
		matcher:      matcher,
		guardWindow:  guardWindow,
		categoriesOf: categoriesOf,
		negKeywords:  negKeywords,
	}
}

// Classify produces the verdict for one review
func (c *Classifier) Classify(review model.ReviewRecord) model.ReviewVerdict {
	content := strings.TrimSpace(review.Content)
	if content == "" {
		return model.ReviewVerdict{Sentiment: model.SentimentNeutral}
	}

	positives := make(map[string]bool)
	negatives := make(map[string]bool) // All matches, guarded included
	unguarded := make(map[string]bool)
	guarded := make(map[string]bool)

	for _, sentence := range splitSentences(content) {
		tokens := strings.Fields(sentence)

		for i, token := range tokens {
			for _, keyword := range c.lex.Positive() {
				if c.matcher.MatchToken(token, keyword) {
					positives[keyword] = true
				}
			}

			for _, keyword := range c.negKeywords {
				if !c.matcher.MatchToken(token, keyword) {
					continue
				}
				negatives[keyword] = true
				if c.isGuarded(tokens, i, keyword) {
					guarded[keyword] = true
				} else {
					unguarded[keyword] = true
				}
			}
		}
	}

	categories := make(map[string]bool)
	for keyword := range unguarded {
		for _, category := range c.categoriesOf[keyword] {
			categories[category] = true
		}
	}

	sentiment := model.SentimentNeutral
	switch {
	case len(unguarded) > 0:
		sentiment = model.SentimentNegative
	case len(positives) > 0:
		sentiment = model.SentimentPositive
	}

	// Keywords guarded in one occurrence but not another stay negative
	for keyword := range unguarded {
		delete(guarded, keyword)
	}

	return model.ReviewVerdict{
		Sentiment:        sentiment,
		IsComplaint:      sentiment == model.SentimentNegative,
		NegativeKeywords: sortedKeys(negatives),
		PositiveKeywords: sortedKeys(positives),
		Categories:       sortedKeys(categories),
		GuardedKeywords:  sortedKeys(guarded),
	}
}

// isGuarded reports whether the negative match at token index i is
// neutralized by a positive qualifier: a positive keyword inside the same
// token after the match, or within guardWindow tokens following it in the
// same sentence ("품질이 좋아요" reads as praise, not complaint).
func (c *Classifier) isGuarded(tokens []string, i int, negKeyword string) bool {
	// Remainder of the same token after the negative keyword
	if idx := strings.Index(tokens[i], negKeyword); idx >= 0 {
		rest := tokens[i][idx+len(negKeyword):]
		for _, keyword := range c.lex.Positive() {
			if rest != "" && strings.Contains(rest, keyword) {
				return true
			}
		}
	}

	end := i + c.guardWindow
	if end >= len(tokens) {
		end = len(tokens) - 1
	}
	for j := i + 1; j <= end; j++ {
		for _, keyword := range c.lex.Positive() {
			if c.matcher.MatchToken(tokens[j], keyword) {
				return true
			}
		}
	}
	return false
}

// splitSentences splits review text into rough sentences.
// Korean review text terminates clauses with the same ./!/? marks;
// newlines also separate clauses in marketplace reviews.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for _, r := range text {
		switch r {
		case '.', '!', '?', '\n':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return sentences
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
