package worker

import (
	"context"

	"github.com/hyeonwoos/marketlens/internal/model"
)

// Classifier is the single-review classification capability the batch
// runner parallelizes over
type Classifier interface {
	Classify(review model.ReviewRecord) model.ReviewVerdict
}

// classifyJob classifies one review, carrying its batch index so the
// output slice preserves input order regardless of execution order
type classifyJob struct {
	index      int
	review     model.ReviewRecord
	classifier Classifier
}

// classifyResult pairs a verdict with its batch index
type classifyResult struct {
	index   int
	review  model.ReviewRecord
	verdict model.ReviewVerdict
}

func (r *classifyResult) GetError() error { return nil }

// Execute runs the classification; it is pure and cannot fail
func (j *classifyJob) Execute(ctx context.Context) Result {
	return &classifyResult{
		index:   j.index,
		review:  j.review,
		verdict: j.classifier.Classify(j.review),
	}
}

// ClassifyBatch classifies a review batch across workers, returning
// classified reviews in the original input order. Per-review
// classification is independent and side-effect-free, so parallel
// execution cannot change any verdict.
func ClassifyBatch(ctx context.Context, classifier Classifier, reviews []model.ReviewRecord, workers int) []model.ClassifiedReview {
	classified := make([]model.ClassifiedReview, len(reviews))

	if workers <= 1 || len(reviews) < 2 {
		for i, review := range reviews {
			classified[i] = model.ClassifiedReview{
				Review:  review,
				Verdict: classifier.Classify(review),
			}
		}
		return classified
	}

	pool := NewPool(workers)
	pool.Start()

	// Submission and draining must overlap: the pool channels buffer only
	// workers*2 entries, far fewer than a realistic review file
	go func() {
		for i, review := range reviews {
			pool.Submit(&classifyJob{index: i, review: review, classifier: classifier})
		}
		pool.Finish()
	}()

	for result := range pool.Results() {
		r := result.(*classifyResult)
		classified[r.index] = model.ClassifiedReview{
			Review:  r.review,
			Verdict: r.verdict,
		}
	}

	return classified
}
