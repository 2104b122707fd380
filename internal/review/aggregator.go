package review

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hyeonwoos/marketlens/internal/model"
)

// DigestHeader is the fixed first line of the complaint digest.
// Downstream enrichment consumers key on this phrase; do not change it.
const DigestHeader = "[고객 불만 리뷰 분석 요청]"

// digestListLabel labels the complaint list section of the digest
const digestListLabel = "불만 리뷰:"

// Aggregator batches classifier verdicts into a FilterResult
type Aggregator struct {
	classifier *Classifier
}

// NewAggregator creates an aggregator over the given classifier
func NewAggregator(classifier *Classifier) *Aggregator {
	return &Aggregator{classifier: classifier}
}

// Filter classifies every review in order and aggregates the verdicts
func (a *Aggregator) Filter(reviews []model.ReviewRecord) model.FilterResult {
	classified := make([]model.ClassifiedReview, len(reviews))
	for i, review := range reviews {
		classified[i] = model.ClassifiedReview{
			Review:  review,
			Verdict: a.classifier.Classify(review),
		}
	}
	return Aggregate(classified)
}

// Classifier exposes the underlying classifier for batch runners
func (a *Aggregator) Classifier() *Classifier {
	return a.classifier
}

// Aggregate builds a FilterResult from already-classified reviews.
// Counts are order-insensitive; the complaint list preserves input order,
// so parallel classification only needs to keep the slice indexed.
func Aggregate(classified []model.ClassifiedReview) model.FilterResult {
	result := model.FilterResult{
		TotalReviews:   len(classified),
		CategoryCounts: make(map[string]int),
	}

	for _, pair := range classified {
		switch pair.Verdict.Sentiment {
		case model.SentimentNegative:
			result.ComplaintCount++
			result.Complaints = append(result.Complaints, pair)
			for _, category := range pair.Verdict.Categories {
				result.CategoryCounts[category]++
			}
		case model.SentimentPositive:
			result.PositiveCount++
		default:
			result.NeutralCount++
		}
	}

	return result
}

// Digest renders up to limit complaint reviews into the fixed-shape text
// block consumed by the enrichment service. It performs no classification,
// only formatting; an empty complaint list still yields a well-formed block.
func Digest(result model.FilterResult, limit int) string {
	if limit <= 0 {
		limit = len(result.Complaints)
	}

	var b strings.Builder
	b.WriteString(DigestHeader)
	b.WriteString("\n")
	fmt.Fprintf(&b, "전체 리뷰 %d건 중 불만 리뷰 %d건입니다.\n\n", result.TotalReviews, result.ComplaintCount)

	b.WriteString(digestListLabel)
	b.WriteString("\n")
	for i, pair := range result.Complaints {
		if i >= limit {
			fmt.Fprintf(&b, "... 외 %d건 생략\n", len(result.Complaints)-limit)
			break
		}
		fmt.Fprintf(&b, "%d. (평점 %d) %s\n", i+1, pair.Review.Rating, strings.TrimSpace(pair.Review.Content))
	}
	if len(result.Complaints) == 0 {
		b.WriteString("(없음)\n")
	}

	b.WriteString("\n카테고리별 집계:\n")
	for _, category := range SortedCategories(result.CategoryCounts) {
		fmt.Fprintf(&b, "- %s: %d건\n", category, result.CategoryCounts[category])
	}
	if len(result.CategoryCounts) == 0 {
		b.WriteString("(없음)\n")
	}

	return b.String()
}

// SortedCategories orders a category histogram for display: highest
// count first, ties alphabetical. Map iteration order must never leak
// into digests or CLI output.
func SortedCategories(counts map[string]int) []string {
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if counts[categories[i]] != counts[categories[j]] {
			return counts[categories[i]] > counts[categories[j]]
		}
		return categories[i] < categories[j]
	})
	return categories
}
