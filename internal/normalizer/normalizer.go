package normalizer

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"turtlewax/migrator/internal/domain"
	"turtlewax/migrator/internal/legacy"
	"turtlewax/migrator/internal/parser"
	"turtlewax/migrator/internal/report"

	log "github.com/sirupsen/logrus"
)

var htmlExtRegex = regexp.MustCompile(`(?i)\.html?$`)

// Listing is the parsed product cards of one legacy category page.
type Listing struct {
	Category domain.LegacyCategory
	Cards    []domain.ProductCard
}

// Normalizer turns legacy pages into one canonical record per slug. It belongs to one run.
type Normalizer struct {
	site   legacy.Site
	parser parser.CatalogParser
	report *report.Report
}

func New(site legacy.Site, catalogParser parser.CatalogParser, rep *report.Report) *Normalizer {
	return &Normalizer{
		site:   site,
		parser: catalogParser,
		report: rep,
	}
}

// Categories reads the legacy navigation and returns categories in menu order.
func (n *Normalizer) Categories() (*OrderedMap[*domain.Category], error) {
	html, err := n.site.ReadIndex()
	if err != nil {
		return nil, err
	}

	links, err := n.parser.ParseCategoryLinks(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse legacy navigation: %w", err)
	}

	return n.MergeCategories(links), nil
}

// MergeCategories keys links by canonical slug; the first link for a slug wins.
func (n *Normalizer) MergeCategories(links []domain.CategoryLink) *OrderedMap[*domain.Category] {
	categories := NewOrderedMap[*domain.Category]()

	for i, link := range links {
		if link.Href == "" {
			n.report.Warn(report.KindSkipped, fmt.Sprintf("category link %d", i+1), "no usable href (title %q)", link.Title)
			continue
		}

		key := linkKey(link.Href)
		slug := parser.Slugify(key)
		titleRu := link.Title
		known, ok := domain.LookupLegacyCategory(key)
		if ok {
			slug = known.Slug
			titleRu = known.TitleRu
		}
		if slug == "" {
			n.report.Warn(report.KindSkipped, link.Href, "cannot derive a slug")
			continue
		}
		if _, seen := categories.Get(slug); !ok && !seen {
			n.report.Warn(report.KindUnknownCategory, domain.CategoryDocumentID(slug), "no listing page is mapped for %s, its products will not be seeded", link.Href)
		}

		category := &domain.Category{
			Slug:      slug,
			TitleAz:   link.Title,
			TitleRu:   titleRu,
			Order:     categories.Len() + 1,
			ImagePath: link.ImageSrc,
		}
		if !categories.Add(slug, category) {
			log.Debugf("Category %s already discovered, ignoring %s", slug, link.Href)
		}
	}

	return categories
}

// Products reads every legacy listing, then enriches each product from its detail page.
func (n *Normalizer) Products() (*OrderedMap[*domain.Product], error) {
	listings := make([]Listing, 0, len(domain.LegacyCategories))
	for _, category := range domain.LegacyCategories {
		html, found, err := n.site.ReadPage(category.File)
		if err != nil {
			return nil, err
		}
		if !found {
			n.report.Warn(report.KindMissingCategoryPage, category.DocumentID(), "listing page %s not found", category.File)
			continue
		}

		cards, err := n.parser.ParseProductCards(html)
		if err != nil {
			return nil, fmt.Errorf("failed to parse listing %s: %w", category.File, err)
		}
		log.Infof("📄 %s: %d product cards", category.File, len(cards))
		listings = append(listings, Listing{Category: category, Cards: cards})
	}

	products := n.MergeListings(listings)

	for _, product := range products.Values() {
		html, found, err := n.site.ReadPage(product.LegacyPath)
		if err != nil {
			return nil, err
		}
		if !found {
			n.report.Warn(report.KindMissingDetailPage, product.DocumentID(), "detail page %s not found", product.LegacyPath)
			continue
		}

		detail, err := n.parser.ParseProductDetail(html)
		if err != nil {
			return nil, fmt.Errorf("failed to parse detail page %s: %w", product.LegacyPath, err)
		}
		ApplyDetail(product, detail)
	}

	return products, nil
}

// MergeListings keys cards by product slug. The first category listing a slug wins; later
// listings of the same slug are dropped with a warning.
func (n *Normalizer) MergeListings(listings []Listing) *OrderedMap[*domain.Product] {
	products := NewOrderedMap[*domain.Product]()

	for _, listing := range listings {
		categoryID := listing.Category.DocumentID()

		for i, card := range listing.Cards {
			if card.Href == "" {
				continue
			}
			slug := ProductSlug(card.Href)
			if slug == "" {
				continue
			}

			product := &domain.Product{
				Slug:       slug,
				LegacyPath: card.Href,
				CategoryID: categoryID,
				Order:      i + 1,
				Title:      card.Title,
				Price:      parser.ParsePrice(card.PriceText),
				Size:       card.Size,
				OrderLink:  card.OrderLink,
				ImagePath:  card.ImageSrc,
			}
			if !products.Add(slug, product) {
				owner, _ := products.Get(slug)
				n.report.Warn(report.KindDuplicateSlug, slug, "listed in %s, keeping %s", categoryID, owner.CategoryID)
			}
		}
	}

	return products
}

// ApplyDetail overlays detail-page values on a listing record; empty detail values keep
// the listing value.
func ApplyDetail(product *domain.Product, detail domain.ProductDetail) {
	if detail.Title != "" {
		product.Title = detail.Title
	}
	if detail.ImageSrc != "" {
		product.ImagePath = detail.ImageSrc
	}
	if detail.Body != "" {
		product.Body = detail.Body
	}

	switch {
	case detail.Excerpt != "":
		product.Excerpt = detail.Excerpt
	case product.Excerpt == "" && product.Body != "":
		product.Excerpt = firstParagraph(product.Body)
	}
}

// ProductSlug derives the slug from a legacy detail link such as "product-spot-clean.html".
func ProductSlug(href string) string {
	base := htmlExtRegex.ReplaceAllString(path.Base(href), "")
	return parser.Slugify(strings.TrimPrefix(base, "product-"))
}

func linkKey(href string) string {
	return htmlExtRegex.ReplaceAllString(path.Base(strings.TrimSpace(href)), "")
}

func firstParagraph(body string) string {
	for _, p := range strings.Split(body, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			return p
		}
	}
	return ""
}
