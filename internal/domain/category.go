package domain

// LegacyCategory ties a navigation key of the legacy site to its listing page and CMS slug.
type LegacyCategory struct {
	Key     string // base name of the legacy link, e.g. "teker"
	File    string // listing page under public_html
	Slug    string // canonical slug in the CMS
	TitleRu string // Russian display name; the legacy site is Azerbaijani only
}

func (c LegacyCategory) DocumentID() string {
	return CategoryDocumentID(c.Slug)
}

// LegacyCategories is the fixed navigation of the legacy site, in menu order.
var LegacyCategories = []LegacyCategory{
	{Key: "interior", File: "interior.html", Slug: "interior", TitleRu: "Интерьер"},
	{Key: "exterior", File: "exterior.html", Slug: "exterior", TitleRu: "Экстерьер"},
	{Key: "teker", File: "teker.html", Slug: "tires", TitleRu: "Шины"},
	{Key: "glass", File: "glass.html", Slug: "glass", TitleRu: "Стекло"},
	{Key: "restoration", File: "restoration.html", Slug: "restoration", TitleRu: "Восстановление"},
	{Key: "hybrid", File: "hybrid.html", Slug: "hybrid-solutions", TitleRu: "Hybrid Solutions"},
	{Key: "aksesuar", File: "aksesuar.html", Slug: "accessories", TitleRu: "Аксессуары"},
	{Key: "dest", File: "dest.html", Slug: "special-offers", TitleRu: "Спецпредложения"},
}

// LookupLegacyCategory finds the navigation entry for a legacy link key.
func LookupLegacyCategory(key string) (LegacyCategory, bool) {
	for _, c := range LegacyCategories {
		if c.Key == key {
			return c, true
		}
	}
	return LegacyCategory{}, false
}

// CategoryLink is one navigation tile of the legacy index page.
type CategoryLink struct {
	Href     string `json:"href,omitempty"`
	ImageSrc string `json:"image_src,omitempty"`
	Title    string `json:"title,omitempty"`
}

// Category is the canonical record of one category.
type Category struct {
	Slug      string `json:"slug"`
	TitleAz   string `json:"title_az,omitempty"`
	TitleRu   string `json:"title_ru,omitempty"`
	Order     int    `json:"order"`
	ImagePath string `json:"image_path,omitempty"` // legacy relative path
}

func (c *Category) DocumentID() string {
	return CategoryDocumentID(c.Slug)
}
