package model

// Sentiment is the single-valued sentiment of one review
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
)

// ReviewRecord represents one customer review as imported
type ReviewRecord struct {
	ID      string `json:"id"`
	Content string `json:"content"`          // Raw review text
	Rating  int    `json:"rating,omitempty"` // 1..5 star rating, auxiliary metadata only
}

// ReviewVerdict is the classifier output for a single review.
// Derived deterministically from a ReviewRecord; never mutated afterwards.
type ReviewVerdict struct {
	Sentiment        Sentiment `json:"sentiment"`
	IsComplaint      bool      `json:"is_complaint"`
	NegativeKeywords []string  `json:"matched_negative_keywords,omitempty"`
	PositiveKeywords []string  `json:"matched_positive_keywords,omitempty"`
	Categories       []string  `json:"complaint_categories,omitempty"` // Negative-lexicon categories hit
	GuardedKeywords  []string  `json:"guarded_keywords,omitempty"`     // Negative matches neutralized by a positive qualifier
}

// ClassifiedReview pairs a review with its verdict, preserving batch order
type ClassifiedReview struct {
	Review  ReviewRecord  `json:"review"`
	Verdict ReviewVerdict `json:"verdict"`
}

// FilterResult aggregates verdicts over one review batch
type FilterResult struct {
	TotalReviews   int                `json:"total_reviews"`
	ComplaintCount int                `json:"complaint_reviews"`
	PositiveCount  int                `json:"positive_reviews"`
	NeutralCount   int                `json:"neutral_reviews"`
	Complaints     []ClassifiedReview `json:"complaints"`           // Input order preserved
	CategoryCounts map[string]int     `json:"complaint_categories"` // Category → occurrence count
}
