package publisher

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"turtlewax/migrator/internal/client"
	"turtlewax/migrator/internal/domain"
	"turtlewax/migrator/internal/legacy"
	"turtlewax/migrator/internal/report"
	"turtlewax/migrator/internal/repository"
	"turtlewax/migrator/internal/state"

	"github.com/gabriel-vasile/mimetype"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Publisher writes canonical records to the CMS. It belongs to one run: uploaded assets
// are memoized by absolute path until the Publisher is dropped.
type Publisher struct {
	client    client.SanityClient
	site      legacy.Site
	ledger    state.Ledger
	snapshots repository.DocumentRepository
	report    *report.Report

	assets map[string]string
}

func New(
	sanityClient client.SanityClient,
	site legacy.Site,
	ledger state.Ledger,
	snapshots repository.DocumentRepository,
	rep *report.Report,
) *Publisher {
	return &Publisher{
		client:    sanityClient,
		site:      site,
		ledger:    ledger,
		snapshots: snapshots,
		report:    rep,
		assets:    make(map[string]string),
	}
}

// UploadImage returns the asset id for a legacy image path. A missing image is a warning
// on subject and yields "".
func (p *Publisher) UploadImage(ctx context.Context, src, subject string) (string, error) {
	if src == "" {
		p.report.Warn(report.KindMissingImage, subject, "no image in legacy markup")
		return "", nil
	}

	path, exists := p.site.ResolveAsset(src)
	if !exists {
		p.report.Warn(report.KindMissingImage, subject, "image not found: %s", path)
		return "", nil
	}

	return p.upload(ctx, client.AssetKindImage, path)
}

// UploadFile uploads a legacy file that must exist.
func (p *Publisher) UploadFile(ctx context.Context, src string) (string, error) {
	path, exists := p.site.ResolveAsset(src)
	if !exists {
		return "", fmt.Errorf("legacy file not found at %s", path)
	}
	return p.upload(ctx, client.AssetKindFile, path)
}

func (p *Publisher) upload(ctx context.Context, kind client.AssetKind, path string) (string, error) {
	if id, ok := p.assets[path]; ok {
		return id, nil
	}

	data, err := afero.ReadFile(p.site.Fs(), path)
	if err != nil {
		return "", fmt.Errorf("failed to read asset %s: %w", path, err)
	}

	sum := sha1.Sum(data)
	hash := hex.EncodeToString(sum[:])

	// Content-addressed lookup keeps re-runs from uploading the same bytes again.
	id, err := p.client.FindAssetBySHA1(ctx, kind, hash)
	if err != nil {
		return "", err
	}
	if id != "" {
		log.Debugf("♻️ Reusing %s for %s", id, filepath.Base(path))
		p.assets[path] = id
		return id, nil
	}

	filename := filepath.Base(path)
	asset, err := p.client.UploadAsset(ctx, kind, filename, mimetype.Detect(data).String(), data)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}

	p.report.Uploads++
	p.assets[path] = asset.ID
	log.Infof("🖼️ Uploaded %s", filename)
	return asset.ID, nil
}

// Write creates or replaces doc. The write is always sent so the CMS matches the legacy
// source again; the ledger only tells whether the payload changed since the last run.
// A failed write is returned as is and ends the run.
func (p *Publisher) Write(ctx context.Context, doc domain.Document) error {
	id := doc.DocumentID()

	digest, err := state.DocumentDigest(doc)
	if err != nil {
		return fmt.Errorf("failed to hash %s: %w", id, err)
	}
	previous, err := p.ledger.Digest(ctx, id)
	if err != nil {
		return err
	}

	if err := p.client.CreateOrReplace(ctx, doc); err != nil {
		return err
	}
	p.report.Writes++
	if previous == digest {
		p.report.Unchanged++
		log.Debugf("Rewrote %s, payload unchanged since last run", id)
	}

	if err := p.ledger.Record(ctx, id, digest); err != nil {
		return err
	}
	return p.snapshots.SaveDocument(ctx, doc)
}

// PublishCategories writes categories in order.
func (p *Publisher) PublishCategories(ctx context.Context, categories []*domain.Category) error {
	for _, category := range categories {
		assetID, err := p.UploadImage(ctx, category.ImagePath, category.DocumentID())
		if err != nil {
			return err
		}
		if err := p.Write(ctx, NewCategoryDocument(category, assetID)); err != nil {
			return err
		}
		log.Infof("✔ Seeded category: %s (%s)", category.TitleAz, category.Slug)
	}
	return nil
}

// PublishProducts writes products in order.
func (p *Publisher) PublishProducts(ctx context.Context, products []*domain.Product) error {
	for _, product := range products {
		assetID, err := p.UploadImage(ctx, product.ImagePath, product.DocumentID())
		if err != nil {
			return err
		}
		if err := p.Write(ctx, NewProductDocument(product, assetID)); err != nil {
			return err
		}
		log.Infof("✔ Seeded product: %s (%s)", product.DisplayTitle(), product.Slug)
	}
	return nil
}
