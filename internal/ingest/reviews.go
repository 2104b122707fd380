package ingest

import (
	"fmt"
	"strconv"

	"github.com/hyeonwoos/marketlens/internal/model"
)

// LoadReviews reads ReviewRecords from a marketplace review export
// (.xlsx or .csv). The content column is required; id and rating are
// optional. Rows with empty content are skipped, not errors.
func LoadReviews(path string) ([]model.ReviewRecord, error) {
	rows, err := loadRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("review file %s needs a header row and at least one data row", path)
	}

	header := rows[0]
	contentIdx := findColumn(header, "content", "review", "리뷰", "내용", "리뷰내용")
	if contentIdx < 0 {
		return nil, fmt.Errorf("review file %s has no content column (want one of: content, review, 리뷰, 내용)", path)
	}
	idIdx := findColumn(header, "id", "review_id", "리뷰ID", "번호")
	ratingIdx := findColumn(header, "rating", "star", "평점", "별점")

	var reviews []model.ReviewRecord
	for i, row := range rows[1:] {
		content := cell(row, contentIdx)
		if content == "" {
			continue
		}

		review := model.ReviewRecord{
			ID:      cell(row, idIdx),
			Content: content,
		}
		if review.ID == "" {
			review.ID = strconv.Itoa(i + 1)
		}
		if rating, err := strconv.Atoi(cell(row, ratingIdx)); err == nil {
			review.Rating = rating
		}

		reviews = append(reviews, review)
	}

	return reviews, nil
}
