package service

import (
	"errors"

	"turtlewax/migrator/internal/client"
	"turtlewax/migrator/internal/legacy"
	"turtlewax/migrator/internal/parser"
	"turtlewax/migrator/internal/publisher"
	"turtlewax/migrator/internal/report"
	"turtlewax/migrator/internal/repository"
	"turtlewax/migrator/internal/state"
)

var (
	ErrNoCategories = errors.New("no categories found in legacy HTML")
	ErrNoProducts   = errors.New("no products discovered in legacy HTML")
)

// Service runs the migration commands. Every command is one sequential run with its own
// report; nothing is shared between runs except the ledger and the snapshot store.
type Service struct {
	client       client.SanityClient
	site         legacy.Site
	parser       parser.CatalogParser
	ledger       state.Ledger
	snapshots    repository.DocumentRepository
	brochureFile string
}

func NewService(
	sanityClient client.SanityClient,
	site legacy.Site,
	catalogParser parser.CatalogParser,
	ledger state.Ledger,
	snapshots repository.DocumentRepository,
	brochureFile string,
) *Service {
	return &Service{
		client:       sanityClient,
		site:         site,
		parser:       catalogParser,
		ledger:       ledger,
		snapshots:    snapshots,
		brochureFile: brochureFile,
	}
}

func (s *Service) newRun() (*report.Report, *publisher.Publisher) {
	rep := report.New()
	return rep, publisher.New(s.client, s.site, s.ledger, s.snapshots, rep)
}
