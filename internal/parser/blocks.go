package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractBlocks returns the outer HTML of every outermost element matching selector, in
// document order. Matches nested inside another match belong to their ancestor's block.
// Unclosed elements run to the end of the document.
func ExtractBlocks(html, selector string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	blocks := make([]string, 0)
	var outerErr error
	outermost(doc.Selection, selector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		block, err := goquery.OuterHtml(s)
		if err != nil {
			outerErr = fmt.Errorf("failed to render block %d: %w", i, err)
			return false
		}
		blocks = append(blocks, block)
		return true
	})
	if outerErr != nil {
		return nil, outerErr
	}

	return blocks, nil
}

func outermost(root *goquery.Selection, selector string) *goquery.Selection {
	return root.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsFiltered(selector).Length() == 0
	})
}
