package service

import (
	"context"
	"fmt"

	"turtlewax/migrator/internal/client"
	"turtlewax/migrator/internal/content"
	"turtlewax/migrator/internal/domain"
	"turtlewax/migrator/internal/report"

	log "github.com/sirupsen/logrus"
)

const (
	productBySlugQuery        = `*[_type == "product" && slug == $slug][0]{ _id }`
	productsWithWhatsAppQuery = `*[_type == "product" && defined(whatsappLink)]._id`
	productsWithLegacyQuery   = `*[_type == "product" && defined(legacyPath)]{ _id }`
)

type documentRef struct {
	ID string `json:"_id"`
}

// SeedProductMedia attaches the demo media block to its product. A product that has not
// been seeded yet is skipped with a warning.
func (s *Service) SeedProductMedia(ctx context.Context) (*report.Report, error) {
	rep := report.New()
	media := content.SpotCleanMedia()

	var product documentRef
	if err := s.client.Query(ctx, productBySlugQuery, map[string]any{"slug": media.Slug}, &product); err != nil {
		return rep, fmt.Errorf("failed to find product %s: %w", media.Slug, err)
	}
	if product.ID == "" {
		rep.Warn(report.KindSkipped, domain.ProductDocumentID(media.Slug), "product not found")
		return rep, nil
	}

	if err := s.client.Patch(ctx, client.Patch{ID: product.ID, Set: media.Set()}); err != nil {
		return rep, err
	}
	rep.Writes++

	log.Infof("✅ Product media seeded on %s", product.ID)
	return rep, nil
}

// ClearProductWhatsAppLinks removes per-product order links so the site-wide link applies.
// Each product is patched on its own.
func (s *Service) ClearProductWhatsAppLinks(ctx context.Context) (*report.Report, error) {
	rep := report.New()

	var ids []string
	if err := s.client.Query(ctx, productsWithWhatsAppQuery, nil, &ids); err != nil {
		return rep, fmt.Errorf("failed to list products with whatsapp links: %w", err)
	}
	if len(ids) == 0 {
		log.Info("No products with custom WhatsApp links found")
		return rep, nil
	}

	for _, id := range ids {
		if err := s.client.Patch(ctx, client.Patch{ID: id, Unset: []string{"whatsappLink"}}); err != nil {
			return rep, err
		}
		rep.Writes++
		log.Infof("✔ Cleared whatsappLink on %s", id)
	}

	return rep, nil
}

// RemoveLegacyPath drops the legacyPath field from every product in one transaction.
func (s *Service) RemoveLegacyPath(ctx context.Context) (*report.Report, error) {
	rep := report.New()

	var refs []documentRef
	if err := s.client.Query(ctx, productsWithLegacyQuery, nil, &refs); err != nil {
		return rep, fmt.Errorf("failed to list products with legacyPath: %w", err)
	}
	if len(refs) == 0 {
		log.Info("No products still contain legacyPath")
		return rep, nil
	}

	mutations := make([]client.Mutation, 0, len(refs))
	for _, ref := range refs {
		mutations = append(mutations, client.PatchMutation(client.Patch{ID: ref.ID, Unset: []string{"legacyPath"}}))
	}
	if _, err := s.client.Commit(ctx, mutations); err != nil {
		return rep, fmt.Errorf("failed to remove legacyPath from %d product(s): %w", len(refs), err)
	}
	rep.Writes += len(refs)

	log.Infof("✅ Removed legacyPath from %d product(s)", len(refs))
	return rep, nil
}
