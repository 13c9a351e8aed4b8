package content

import "github.com/shopspring/decimal"

// ProductMedia is the demo block attached to one product.
type ProductMedia struct {
	Slug          string
	DiscountPrice decimal.Decimal
	Media         map[string]any
}

func SpotCleanMedia() ProductMedia {
	return ProductMedia{
		Slug:          "spot-clean",
		DiscountPrice: decimal.RequireFromString("6.5"),
		Media: map[string]any{
			"sectionTitleAz":    "Spot Clean",
			"sectionTitleRu":    "Spot Clean",
			"sectionSubtitleAz": "İstifadə təlimatları və nümayişlər",
			"sectionSubtitleRu": "Инструкции по применению и демонстрации",
			"youtubeVideoId":    "tSu7uBDVdc8",
			"instagramPostUrl":  "https://www.instagram.com/p/Cl6vgogDfJY/?utm_source=ig_embed&utm_campaign=loading",
		},
	}
}

// Set is the patch payload for the product.
func (m ProductMedia) Set() map[string]any {
	return map[string]any{
		"media":         m.Media,
		"discountPrice": m.DiscountPrice.InexactFloat64(),
	}
}
