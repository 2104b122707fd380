package claims

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hyeonwoos/marketlens/internal/model"
)

// Extractor parses marketing copy into typed claims. Extraction is
// pattern-driven and total: copy that matches nothing yields zero claims,
// never an error.
type Extractor struct {
	numericRe    *regexp.Regexp
	percentRe    *regexp.Regexp
	comparisonRe *regexp.Regexp

	loadBefore    []string
	loadAfter     []string
	exaggerations []string
}

// NewExtractor creates an extractor with the built-in claim grammar
func NewExtractor() *Extractor {
	return &Extractor{
		// A number followed by a weight unit, with optional qualifiers
		numericRe: regexp.MustCompile(`(?:약\s*)?(\d+(?:[.,]\d+)?)\s*(kg|KG|Kg|㎏|킬로그램|킬로|g|그램)`),
		percentRe: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`),
		// Competitor/baseline comparison phrases
		comparisonRe: regexp.MustCompile(`타사\s*대비|경쟁\s*제품\s*대비|경쟁사\s*대비|보다\s*더|비교(?:해도|하면|해\s*보면)?`),

		// Context words that turn a numeric weight into a load claim,
		// split by which side of the number they attach to
		loadBefore: []string{"최대", "하중"},
		loadAfter:  []string{"까지", "지지", "견딤", "견디", "거뜬", "수용", "하중"},

		// Superlative/absolute terms, longest first so 최고급 wins over 최고
		exaggerations: []string{
			"최고급", "최상급", "압도적", "독보적", "궁극의",
			"프리미엄", "완벽", "최고", "최상", "유일한", "100%",
		},
	}
}

type span struct{ start, end int }

// Extract parses the copy text into claims ordered by position.
// Each substring maps to exactly one claim type: numeric claims take
// precedence over comparisons, comparisons over exaggeration terms.
func (e *Extractor) Extract(copyText string) []model.Claim {
	if strings.TrimSpace(copyText) == "" {
		return nil
	}

	var claims []model.Claim
	var taken []span

	overlaps := func(s span) bool {
		for _, t := range taken {
			if s.start < t.end && t.start < s.end {
				return true
			}
		}
		return false
	}
	claim := func(c model.Claim, s span) {
		claims = append(claims, c)
		taken = append(taken, s)
	}

	// 1. Numeric weight/load claims
	for _, loc := range e.numericRe.FindAllStringSubmatchIndex(copyText, -1) {
		s := span{loc[0], loc[1]}
		if overlaps(s) {
			continue
		}
		raw := copyText[loc[0]:loc[1]]
		value, ok := parseKilograms(copyText[loc[2]:loc[3]], copyText[loc[4]:loc[5]])
		if !ok {
			continue // Unparseable number degrades to "no claim"
		}

		claimType := model.ClaimTypeWeight
		if e.hasLoadContext(copyText, loc[0], loc[1]) {
			claimType = model.ClaimTypeLoad
		}
		v := value
		claim(model.Claim{Type: claimType, RawText: raw, Value: &v, Offset: loc[0]}, s)
	}

	// 2. Comparison claims, with an optional nearby percentage
	for _, loc := range e.comparisonRe.FindAllStringIndex(copyText, -1) {
		s := span{loc[0], loc[1]}
		if overlaps(s) {
			continue
		}
		c := model.Claim{
			Type:    model.ClaimTypeComparison,
			RawText: copyText[loc[0]:loc[1]],
			Offset:  loc[0],
		}
		if pct := e.nearbyPercent(copyText, loc[1]); pct != nil {
			c.Value = pct
		}
		claim(c, s)
	}

	// 3. Exaggeration terms
	for _, term := range e.exaggerations {
		for offset := 0; ; {
			idx := strings.Index(copyText[offset:], term)
			if idx < 0 {
				break
			}
			start := offset + idx
			s := span{start, start + len(term)}
			offset = s.end
			if overlaps(s) {
				continue
			}
			claim(model.Claim{Type: model.ClaimTypeExaggeration, RawText: term, Offset: start}, s)
		}
	}

	sort.SliceStable(claims, func(i, j int) bool { return claims[i].Offset < claims[j].Offset })
	return claims
}

// loadWindow bounds the marker search to the immediate neighborhood of
// a numeric match, in bytes. Korean syllables are 3 bytes in UTF-8, so
// this is roughly five characters on each side.
const loadWindow = 15

// hasLoadContext checks the immediate neighborhood of a numeric match
// for words implying maximum supported load ("최대 100kg까지 지지").
// The window never crosses a clause boundary: copy that states weight
// and load in one breath ("초경량 1.0kg 캠핑의자, 최대 150kg까지 지지")
// keeps the weight typed as weight.
func (e *Extractor) hasLoadContext(text string, start, end int) bool {
	winStart := start - loadWindow
	if winStart < 0 {
		winStart = 0
	}
	for i := start; i > winStart; i-- {
		if isClauseBoundary(text[i-1]) {
			winStart = i
			break
		}
	}
	before := text[winStart:start]
	for _, marker := range e.loadBefore {
		if strings.Contains(before, marker) {
			return true
		}
	}

	winEnd := end + loadWindow
	if winEnd > len(text) {
		winEnd = len(text)
	}
	for i := end; i < winEnd; i++ {
		if isClauseBoundary(text[i]) {
			winEnd = i
			break
		}
	}
	after := text[end:winEnd]
	for _, marker := range e.loadAfter {
		if strings.Contains(after, marker) {
			return true
		}
	}
	return false
}

func isClauseBoundary(b byte) bool {
	return b == '.' || b == ',' || b == '\n'
}

// nearbyPercent parses a percentage within a short window after a
// comparison phrase ("타사 대비 30% 가벼운")
func (e *Extractor) nearbyPercent(text string, from int) *float64 {
	window := text[from:]
	if len(window) > 30 {
		window = window[:30]
	}
	m := e.percentRe.FindStringSubmatch(window)
	if m == nil {
		return nil
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &value
}

// parseKilograms converts a matched number and unit into kilograms
func parseKilograms(number, unit string) (float64, bool) {
	number = strings.ReplaceAll(number, ",", ".")
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, false
	}
	switch unit {
	case "g", "그램":
		return value / 1000, true
	default:
		return value, true
	}
}
