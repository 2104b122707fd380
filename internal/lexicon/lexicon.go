package lexicon

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Lexicon is the immutable keyword dictionary used for sentiment and
// complaint-category matching. It is built once and injected into the
// classifier; it is never mutated at runtime.
type Lexicon struct {
	negative map[string][]string
	positive []string
}

// lexiconFile is the YAML shape for custom lexicon files
type lexiconFile struct {
	Negative map[string][]string `yaml:"negative"`
	Positive []string            `yaml:"positive"`
}

// New builds a lexicon from explicit category and positive keyword lists
func New(negative map[string][]string, positive []string) *Lexicon {
	neg := make(map[string][]string, len(negative))
	for category, keywords := range negative {
		neg[category] = append([]string(nil), keywords...)
	}
	return &Lexicon{
		negative: neg,
		positive: append([]string(nil), positive...),
	}
}

// Builtin returns the default Korean e-commerce review lexicon
func Builtin() *Lexicon {
	return New(map[string][]string{
		"품질":  {"품질", "불량", "하자", "실밥", "조잡", "마감"},
		"배송":  {"배송", "지연", "파손", "늦게"},
		"사이즈": {"사이즈", "크기", "작아", "커요", "안맞"},
		"가격":  {"비싸", "가격", "아까"},
		"내구성": {"내구성", "고장", "망가", "부러", "찢어"},
		"상이":  {"다르", "색감", "사진"},
		"불만족": {"별로", "실망", "최악", "후회", "환불", "반품"},
	}, []string{
		"좋아", "좋네", "좋습니다", "만족", "최고", "추천", "훌륭",
		"예쁘", "빠르", "감사", "괜찮", "튼튼", "가성비",
	})
}

// Load reads a custom lexicon from a YAML file
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	if len(file.Negative) == 0 && len(file.Positive) == 0 {
		return nil, fmt.Errorf("lexicon %s defines no keywords", path)
	}

	return New(file.Negative, file.Positive), nil
}

// Categories returns all negative-lexicon category names, sorted
func (l *Lexicon) Categories() []string {
	categories := make([]string, 0, len(l.negative))
	for category := range l.negative {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Negative returns the keywords for one category
func (l *Lexicon) Negative(category string) []string {
	return l.negative[category]
}

// Positive returns the positive keyword list
func (l *Lexicon) Positive() []string {
	return l.positive
}
