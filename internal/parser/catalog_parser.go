package parser

import (
	"fmt"
	"strings"

	"turtlewax/migrator/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

const (
	CategoryLinkSelector = "a.product__item"
	ProductCardSelector  = "div.products__card"
)

// CatalogParser pulls structured fields out of legacy catalog pages. A field whose markup
// is missing is left empty; it is never an error.
type CatalogParser interface {
	ParseCategoryLinks(html string) ([]domain.CategoryLink, error)
	ParseProductCards(html string) ([]domain.ProductCard, error)
	ParseProductCard(block string) (domain.ProductCard, error)
	ParseProductDetail(html string) (domain.ProductDetail, error)
}

type catalogParser struct{}

func NewCatalogParser() CatalogParser {
	return &catalogParser{}
}

func (p *catalogParser) ParseCategoryLinks(html string) ([]domain.CategoryLink, error) {
	blocks, err := ExtractBlocks(html, CategoryLinkSelector)
	if err != nil {
		return nil, err
	}

	links := make([]domain.CategoryLink, 0, len(blocks))
	for i, block := range blocks {
		doc, err := parseFragment(block)
		if err != nil {
			return nil, fmt.Errorf("failed to parse category link %d: %w", i, err)
		}

		link := doc.Find(CategoryLinkSelector).First()
		links = append(links, domain.CategoryLink{
			Href:     attr(link, "href"),
			ImageSrc: attr(link.Find("img"), "src"),
			Title:    text(link.Find("span")),
		})
	}

	log.Debugf("Extracted %d category links", len(links))
	return links, nil
}

func (p *catalogParser) ParseProductCards(html string) ([]domain.ProductCard, error) {
	blocks, err := ExtractBlocks(html, ProductCardSelector)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.ProductCard, 0, len(blocks))
	for i, block := range blocks {
		card, err := p.ParseProductCard(block)
		if err != nil {
			return nil, fmt.Errorf("failed to parse product card %d: %w", i, err)
		}
		cards = append(cards, card)
	}

	log.Debugf("Extracted %d product cards", len(cards))
	return cards, nil
}

func (p *catalogParser) ParseProductCard(block string) (domain.ProductCard, error) {
	doc, err := parseFragment(block)
	if err != nil {
		return domain.ProductCard{}, err
	}

	return domain.ProductCard{
		Href:      attr(doc.Find("a.products__content"), "href"),
		ImageSrc:  attr(doc.Find("img.products__img"), "src"),
		Title:     text(doc.Find("div.products__title")),
		PriceText: text(doc.Find("div.product__price, div.products__price")),
		Size:      text(doc.Find("div.products__size")),
		OrderLink: attr(doc.Find("a.products__btn"), "href"),
	}, nil
}

func (p *catalogParser) ParseProductDetail(html string) (domain.ProductDetail, error) {
	doc, err := parseFragment(html)
	if err != nil {
		return domain.ProductDetail{}, err
	}

	detail := domain.ProductDetail{
		Title:    text(doc.Find("div[class^='products__title']")),
		ImageSrc: attr(doc.Find("img.products__img"), "src"),
	}

	if descr := doc.Find("div.products__detail-descr").First(); descr.Length() > 0 {
		raw, err := descr.Html()
		if err != nil {
			return domain.ProductDetail{}, fmt.Errorf("failed to render description: %w", err)
		}
		detail.Body = StripHTML(raw)
		detail.Excerpt = FirstParagraph(raw)
	}

	return detail, nil
}

func parseFragment(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// attr reads an attribute of the first match. Fragment links ("#...") count as absent.
func attr(s *goquery.Selection, name string) string {
	value, exists := s.First().Attr(name)
	if !exists {
		return ""
	}
	value = strings.TrimSpace(value)
	if strings.Contains(value, "#") {
		return ""
	}
	return value
}

func text(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	return DecodeEntities(s.First().Text())
}
