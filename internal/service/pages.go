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

// SeedSiteSettings uploads the catalog brochure and points the site settings at it.
// A missing brochure fails the run before anything is written.
func (s *Service) SeedSiteSettings(ctx context.Context) (*report.Report, error) {
	rep, pub := s.newRun()

	log.Info("Uploading catalog PDF...")
	assetID, err := pub.UploadFile(ctx, s.brochureFile)
	if err != nil {
		return rep, fmt.Errorf("failed to upload catalog brochure: %w", err)
	}

	if err := pub.Write(ctx, content.SiteSettings(assetID)); err != nil {
		return rep, err
	}

	log.Infof("✅ Site settings updated: %s", content.SiteSettingsID)
	return rep, nil
}

// SeedLegalPages writes the privacy and terms pages together with their drafts, so the
// studio shows the seeded copy rather than a stale draft.
func (s *Service) SeedLegalPages(ctx context.Context) (*report.Report, error) {
	rep, pub := s.newRun()

	for _, page := range content.LegalPages() {
		for _, id := range []string{page.ID, domain.DraftID(page.ID)} {
			if err := pub.Write(ctx, page.Document(id)); err != nil {
				return rep, err
			}
		}
		log.Infof("✔ %s synced", page.Title)
	}

	return rep, nil
}

func (s *Service) SeedAboutPage(ctx context.Context) (*report.Report, error) {
	return s.seedPage(ctx, content.AboutPageSeed(), content.AboutPageCopy(), client.WithAutoGenerateArrayKeys())
}

func (s *Service) SeedContactPage(ctx context.Context) (*report.Report, error) {
	return s.seedPage(ctx, content.ContactPageSeed(), content.ContactPageCopy())
}

// seedPage creates a singleton page when it is missing, then sets its copy. Fields not
// named in fields are left as editors saved them.
func (s *Service) seedPage(ctx context.Context, seed domain.RawDocument, fields map[string]any, opts ...client.CommitOption) (*report.Report, error) {
	rep := report.New()
	id := seed.DocumentID()

	if err := s.client.CreateIfNotExists(ctx, seed); err != nil {
		return rep, err
	}
	if err := s.client.Patch(ctx, client.Patch{ID: id, Set: fields}, opts...); err != nil {
		return rep, err
	}
	rep.Writes++

	log.Infof("✅ %s copy synced", id)
	return rep, nil
}

// SeedHomeSections fills the section copy of the home page, which must already exist.
func (s *Service) SeedHomeSections(ctx context.Context) (*report.Report, error) {
	rep := report.New()

	skeleton := client.Patch{ID: content.HomeSectionsID, SetIfMissing: content.HomeSectionsSkeleton()}
	if err := s.client.Patch(ctx, skeleton); err != nil {
		return rep, err
	}

	sections := client.Patch{ID: content.HomeSectionsID, Set: content.HomeSectionsCopy()}
	if err := s.client.Patch(ctx, sections, client.WithAutoGenerateArrayKeys()); err != nil {
		return rep, err
	}
	rep.Writes++

	log.Info("✅ Home page copy synced")
	return rep, nil
}
