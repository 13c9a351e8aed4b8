package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductCard is what a legacy category listing says about one product.
type ProductCard struct {
	Href      string `json:"href,omitempty"`
	ImageSrc  string `json:"image_src,omitempty"`
	Title     string `json:"title,omitempty"`
	PriceText string `json:"price_text,omitempty"`
	Size      string `json:"size,omitempty"`
	OrderLink string `json:"order_link,omitempty"`
}

// ProductDetail is what a legacy product page says about one product.
type ProductDetail struct {
	Title    string `json:"title,omitempty"`
	ImageSrc string `json:"image_src,omitempty"`
	Body     string `json:"body,omitempty"`
	Excerpt  string `json:"excerpt,omitempty"`
}

// Product is the canonical record of one product after merging listing and detail sources.
type Product struct {
	Slug       string           `json:"slug"`
	LegacyPath string           `json:"legacy_path"`
	CategoryID string           `json:"category_id"`
	Order      int              `json:"order"`
	Title      string           `json:"title,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Size       string           `json:"size,omitempty"`
	OrderLink  string           `json:"order_link,omitempty"`
	Excerpt    string           `json:"excerpt,omitempty"`
	Body       string           `json:"body,omitempty"`
	ImagePath  string           `json:"image_path,omitempty"` // legacy relative path
}

func (p *Product) DocumentID() string {
	return ProductDocumentID(p.Slug)
}

// DisplayTitle falls back to a humanized slug when neither source carried a title.
func (p *Product) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return strings.ReplaceAll(p.Slug, "-", " ")
}
