package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadReviews_CSV(t *testing.T) {
	path := writeTempFile(t, "reviews.csv", `번호,평점,리뷰내용
1,1,품질이 너무 별로예요
2,5,아주 만족합니다
3,3,
4,2,배송이 늦었어요
`)

	reviews, err := LoadReviews(path)
	if err != nil {
		t.Fatalf("LoadReviews() error = %v", err)
	}

	// The empty row is skipped
	if len(reviews) != 3 {
		t.Fatalf("len(reviews) = %d, want 3", len(reviews))
	}
	if reviews[0].ID != "1" || reviews[0].Rating != 1 {
		t.Errorf("reviews[0] = %+v, want ID 1 rating 1", reviews[0])
	}
	if reviews[2].Content != "배송이 늦었어요" {
		t.Errorf("reviews[2].Content = %q", reviews[2].Content)
	}
}

func TestLoadReviews_MissingIDDefaultsToRowNumber(t *testing.T) {
	path := writeTempFile(t, "reviews.csv", `content
first review
second review
`)

	reviews, err := LoadReviews(path)
	if err != nil {
		t.Fatalf("LoadReviews() error = %v", err)
	}

	if reviews[0].ID != "1" || reviews[1].ID != "2" {
		t.Errorf("IDs = %s, %s; want row numbers", reviews[0].ID, reviews[1].ID)
	}
}

func TestLoadReviews_MissingContentColumn(t *testing.T) {
	path := writeTempFile(t, "reviews.csv", `id,rating
1,5
`)

	if _, err := LoadReviews(path); err == nil {
		t.Error("Expected error for missing content column")
	}
}

func TestLoadReviews_HeaderOnly(t *testing.T) {
	path := writeTempFile(t, "reviews.csv", "리뷰\n")

	if _, err := LoadReviews(path); err == nil {
		t.Error("Expected error for header-only file")
	}
}

func TestLoadReviews_UnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "reviews.txt", "whatever")

	if _, err := LoadReviews(path); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestLoadReviews_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"리뷰ID", "별점", "리뷰"},
		{"a", 1, "사이즈가 안맞아요"},
		{"b", 5, "튼튼하고 좋습니다"},
	}
	for i, row := range rows {
		cellRef, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	reviews, err := LoadReviews(path)
	if err != nil {
		t.Fatalf("LoadReviews() error = %v", err)
	}

	if len(reviews) != 2 {
		t.Fatalf("len(reviews) = %d, want 2", len(reviews))
	}
	if reviews[0].ID != "a" || reviews[0].Rating != 1 {
		t.Errorf("reviews[0] = %+v, want ID a rating 1", reviews[0])
	}
}

func TestLoadKeywords_CSV(t *testing.T) {
	path := writeTempFile(t, "keywords.csv", `키워드,검색량,상품수
캠핑의자,"52,000","11,000"
경량 체어,8000,12000
`)

	keywords, err := LoadKeywords(path)
	if err != nil {
		t.Fatalf("LoadKeywords() error = %v", err)
	}

	if len(keywords) != 2 {
		t.Fatalf("len(keywords) = %d, want 2", len(keywords))
	}
	if keywords[0].Keyword != "캠핑의자" || keywords[0].SearchVolume != 52000 {
		t.Errorf("keywords[0] = %+v", keywords[0])
	}
	if keywords[0].CompetitionRate <= 0 {
		t.Errorf("CompetitionRate = %v, want > 0", keywords[0].CompetitionRate)
	}
	if keywords[0].Opportunity <= keywords[1].Opportunity {
		t.Errorf("Head keyword opportunity %v should beat %v", keywords[0].Opportunity, keywords[1].Opportunity)
	}
}

func TestLoadKeywords_MissingKeywordColumn(t *testing.T) {
	path := writeTempFile(t, "keywords.csv", `검색량,상품수
1000,500
`)

	if _, err := LoadKeywords(path); err == nil {
		t.Error("Expected error for missing keyword column")
	}
}

func TestLoadSpec_YAML(t *testing.T) {
	path := writeTempFile(t, "spec.yaml", `product_name: 캠핑의자 A1
category: 캠핑용품
weight_kg: 2.5
max_load_kg: 120
material: 알루미늄
`)

	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("LoadSpec() error = %v", err)
	}

	if spec.ProductName != "캠핑의자 A1" {
		t.Errorf("ProductName = %q", spec.ProductName)
	}
	if spec.WeightKg == nil || *spec.WeightKg != 2.5 {
		t.Errorf("WeightKg = %v, want 2.5", spec.WeightKg)
	}
	if spec.MaxLoadKg == nil || *spec.MaxLoadKg != 120 {
		t.Errorf("MaxLoadKg = %v, want 120", spec.MaxLoadKg)
	}
}

func TestLoadSpec_OptionalFieldsAbsent(t *testing.T) {
	path := writeTempFile(t, "spec.yaml", "product_name: 수건\n")

	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("LoadSpec() error = %v", err)
	}
	if spec.WeightKg != nil || spec.MaxLoadKg != nil {
		t.Errorf("Expected nil optional fields, got %+v", spec)
	}
}

func TestLoadSpec_MissingProductName(t *testing.T) {
	path := writeTempFile(t, "spec.yaml", "category: 캠핑용품\n")

	if _, err := LoadSpec(path); err == nil {
		t.Error("Expected error for missing product_name")
	}
}

func TestFindColumn_CaseInsensitive(t *testing.T) {
	header := []string{" Review_ID ", "RATING", "Content"}

	if got := findColumn(header, "review_id"); got != 0 {
		t.Errorf("findColumn(review_id) = %d, want 0", got)
	}
	if got := findColumn(header, "rating"); got != 1 {
		t.Errorf("findColumn(rating) = %d, want 1", got)
	}
	if got := findColumn(header, "missing"); got != -1 {
		t.Errorf("findColumn(missing) = %d, want -1", got)
	}
}
