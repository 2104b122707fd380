package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hyeonwoos/marketlens/internal/keyword"
	"github.com/hyeonwoos/marketlens/internal/model"
)

// LoadKeywords reads keyword demand data (.xlsx or .csv) and converts
// each row into a KeywordOpportunity. Expected columns: keyword name,
// monthly search volume, competing product count.
func LoadKeywords(path string) ([]model.KeywordOpportunity, error) {
	rows, err := loadRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("keyword file %s needs a header row and at least one data row", path)
	}

	header := rows[0]
	keywordIdx := findColumn(header, "keyword", "키워드", "검색어")
	if keywordIdx < 0 {
		return nil, fmt.Errorf("keyword file %s has no keyword column (want one of: keyword, 키워드, 검색어)", path)
	}
	volumeIdx := findColumn(header, "volume", "search_volume", "검색량", "월간검색수", "월검색량")
	productsIdx := findColumn(header, "products", "product_count", "상품수", "경쟁상품수")

	var keywords []model.KeywordOpportunity
	for _, row := range rows[1:] {
		name := cell(row, keywordIdx)
		if name == "" {
			continue
		}

		keywords = append(keywords, keyword.Opportunity(keyword.Metrics{
			Keyword:      name,
			SearchVolume: parseCount(cell(row, volumeIdx)),
			ProductCount: parseCount(cell(row, productsIdx)),
		}))
	}

	return keywords, nil
}

// parseCount parses counts that may carry thousands separators
func parseCount(s string) int {
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
