package publisher

import "turtlewax/migrator/internal/domain"

// NewCategoryDocument maps a category to its CMS document. imageAssetID may be empty.
func NewCategoryDocument(c *domain.Category, imageAssetID string) *domain.CategoryDocument {
	doc := &domain.CategoryDocument{
		ID:      c.DocumentID(),
		Type:    domain.DocumentTypeCategory,
		TitleAz: c.TitleAz,
		TitleRu: c.TitleRu,
		Slug:    c.Slug,
		Order:   c.Order,
	}
	if imageAssetID != "" {
		doc.Image = domain.NewImage(imageAssetID, c.TitleAz, c.TitleRu)
	}
	return doc
}

// NewProductDocument maps a product to its CMS document. The legacy site has no Russian
// copy, so the Russian fields repeat the Azerbaijani ones.
func NewProductDocument(p *domain.Product, imageAssetID string) *domain.ProductDocument {
	title := p.DisplayTitle()
	doc := &domain.ProductDocument{
		ID:           p.DocumentID(),
		Type:         domain.DocumentTypeProduct,
		TitleAz:      title,
		TitleRu:      title,
		Slug:         p.Slug,
		Category:     domain.NewReference(p.CategoryID),
		Order:        p.Order,
		Size:         p.Size,
		WhatsappLink: p.OrderLink,
		ExcerptAz:    p.Excerpt,
		ExcerptRu:    p.Excerpt,
		BodyAz:       p.Body,
		BodyRu:       p.Body,
	}
	if p.Price != nil {
		price := p.Price.InexactFloat64()
		doc.Price = &price
	}
	if imageAssetID != "" {
		doc.Image = domain.NewImage(imageAssetID, title, title)
	}
	return doc
}
