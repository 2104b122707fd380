package claims

import (
	"fmt"
	"strings"

	"github.com/hyeonwoos/marketlens/internal/model"
	"golang.org/x/net/html"
)

// ExtractHTML extracts claims from an HTML product detail page by
// walking its visible text, skipping scripts and styles
func (e *Extractor) ExtractHTML(htmlContent string) ([]model.Claim, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return e.Extract(visibleText(doc)), nil
}

// visibleText collects text nodes, skipping non-content elements
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}
