package client

import "turtlewax/migrator/internal/domain"

// Mutation is one entry of a mutate request, e.g. {"createOrReplace": {...}}.
type Mutation map[string]any

// Patch changes fields of an existing document.
type Patch struct {
	ID           string         `json:"id"`
	SetIfMissing map[string]any `json:"setIfMissing,omitempty"`
	Set          map[string]any `json:"set,omitempty"`
	Unset        []string       `json:"unset,omitempty"`
}

func CreateOrReplace(doc domain.Document) Mutation {
	return Mutation{"createOrReplace": doc}
}

func CreateIfNotExists(doc domain.Document) Mutation {
	return Mutation{"createIfNotExists": doc}
}

func PatchMutation(p Patch) Mutation {
	return Mutation{"patch": p}
}

type MutationResult struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

// Asset is the stored document of an uploaded image or file.
type Asset struct {
	ID       string `json:"_id"`
	SHA1Hash string `json:"sha1hash"`
	URL      string `json:"url"`
}

type AssetKind string

const (
	AssetKindImage AssetKind = "images"
	AssetKindFile  AssetKind = "files"
)

// DocumentType is the type of the asset document the CMS stores for an upload.
func (k AssetKind) DocumentType() string {
	if k == AssetKindFile {
		return "sanity.fileAsset"
	}
	return "sanity.imageAsset"
}
