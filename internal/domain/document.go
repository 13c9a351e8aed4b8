package domain

const (
	DocumentTypeCategory     = "category"
	DocumentTypeProduct      = "product"
	DocumentTypeSiteSettings = "siteSettings"
)

func CategoryDocumentID(slug string) string {
	return "category-" + slug
}

func ProductDocumentID(slug string) string {
	return "product-" + slug
}

// DraftID is the id the CMS uses for the unpublished copy of a document.
func DraftID(id string) string {
	return "drafts." + id
}

// Document is anything that can be written to the CMS as a whole document.
type Document interface {
	DocumentID() string
	DocumentType() string
}

type Reference struct {
	Type string `json:"_type"`
	Ref  string `json:"_ref"`
}

func NewReference(id string) Reference {
	return Reference{Type: "reference", Ref: id}
}

// Image is an image field with bilingual alt text.
type Image struct {
	Type  string    `json:"_type"`
	Asset Reference `json:"asset"`
	AltAz string    `json:"altAz,omitempty"`
	AltRu string    `json:"altRu,omitempty"`
}

func NewImage(assetID, altAz, altRu string) *Image {
	if altRu == "" {
		altRu = altAz
	}
	return &Image{Type: "image", Asset: NewReference(assetID), AltAz: altAz, AltRu: altRu}
}

type File struct {
	Type  string    `json:"_type"`
	Asset Reference `json:"asset"`
}

type CategoryDocument struct {
	ID      string `json:"_id"`
	Type    string `json:"_type"`
	TitleAz string `json:"titleAz,omitempty"`
	TitleRu string `json:"titleRu,omitempty"`
	Slug    string `json:"slug"`
	Order   int    `json:"order"`
	Image   *Image `json:"image,omitempty"`
}

func (d *CategoryDocument) DocumentID() string   { return d.ID }
func (d *CategoryDocument) DocumentType() string { return d.Type }

type ProductDocument struct {
	ID           string    `json:"_id"`
	Type         string    `json:"_type"`
	TitleAz      string    `json:"titleAz"`
	TitleRu      string    `json:"titleRu,omitempty"`
	Slug         string    `json:"slug"`
	Category     Reference `json:"category"`
	Order        int       `json:"order"`
	Price        *float64  `json:"price,omitempty"`
	Size         string    `json:"size,omitempty"`
	WhatsappLink string    `json:"whatsappLink,omitempty"`
	ExcerptAz    string    `json:"excerptAz,omitempty"`
	ExcerptRu    string    `json:"excerptRu,omitempty"`
	BodyAz       string    `json:"bodyAz,omitempty"`
	BodyRu       string    `json:"bodyRu,omitempty"`
	Image        *Image    `json:"image,omitempty"`
}

func (d *ProductDocument) DocumentID() string   { return d.ID }
func (d *ProductDocument) DocumentType() string { return d.Type }

// RawDocument is a free-form document for pages whose fields are plain copy.
type RawDocument map[string]any

func (d RawDocument) DocumentID() string {
	id, _ := d["_id"].(string)
	return id
}

func (d RawDocument) DocumentType() string {
	t, _ := d["_type"].(string)
	return t
}
