package service

import (
	"context"

	"turtlewax/migrator/internal/normalizer"
	"turtlewax/migrator/internal/report"

	log "github.com/sirupsen/logrus"
)

// SeedCategories publishes the legacy navigation as category documents.
func (s *Service) SeedCategories(ctx context.Context) (*report.Report, error) {
	rep, pub := s.newRun()

	categories, err := normalizer.New(s.site, s.parser, rep).Categories()
	if err != nil {
		return rep, err
	}
	if categories.Len() == 0 {
		return rep, ErrNoCategories
	}
	log.Infof("🔄 Seeding %d categories", categories.Len())

	if err := pub.PublishCategories(ctx, categories.Values()); err != nil {
		return rep, err
	}

	log.Infof("✅ Finished seeding %d categories", categories.Len())
	return rep, nil
}

// SeedProducts publishes every product found in the legacy listings and detail pages.
func (s *Service) SeedProducts(ctx context.Context) (*report.Report, error) {
	rep, pub := s.newRun()

	products, err := normalizer.New(s.site, s.parser, rep).Products()
	if err != nil {
		return rep, err
	}
	if products.Len() == 0 {
		return rep, ErrNoProducts
	}
	log.Infof("🔄 Seeding %d products", products.Len())

	if err := pub.PublishProducts(ctx, products.Values()); err != nil {
		return rep, err
	}

	log.Infof("✅ Finished seeding %d products", products.Len())
	return rep, nil
}
