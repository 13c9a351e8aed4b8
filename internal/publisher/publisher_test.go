package publisher

import (
	"context"
	"testing"

	"turtlewax/migrator/internal/client"
	"turtlewax/migrator/internal/client/sanitytest"
	"turtlewax/migrator/internal/domain"
	"turtlewax/migrator/internal/legacy"
	"turtlewax/migrator/internal/report"
	"turtlewax/migrator/internal/repository"
	"turtlewax/migrator/internal/state"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type fixture struct {
	server *sanitytest.Server
	client client.SanityClient
	site   legacy.Site
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/site/img", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/site/img/spot.png", pngBytes, 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/site/img/copy-of-spot.png", pngBytes, 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/site/brochure.pdf", []byte("%PDF-1.4\n%test\n"), 0o644))

	site, err := legacy.NewSite(fsys, "/site", "index.html")
	require.NoError(t, err)

	server := sanitytest.NewServer(t)
	sanityClient := client.NewSanityClient(server.Config())
	t.Cleanup(func() { sanityClient.Close() })

	return &fixture{server: server, client: sanityClient, site: site}
}

func (f *fixture) publisher(ledger state.Ledger, rep *report.Report) *Publisher {
	return New(f.client, f.site, ledger, repository.NewNoopRepository(), rep)
}

func products() []*domain.Product {
	price := decimal.NewFromInt(12500)
	return []*domain.Product{
		{Slug: "spot-clean", CategoryID: "category-interior", Order: 1, Title: "Spot Clean", Price: &price, ImagePath: "/img/spot.png", Body: "Cleans.\n\nFast.", Excerpt: "Cleans."},
		{Slug: "tire-shine", CategoryID: "category-tires", Order: 1, ImagePath: "img/spot.png"},
		{Slug: "glass-cleaner", CategoryID: "category-glass", Order: 1, ImagePath: "img/copy-of-spot.png"},
	}
}

func TestPublishProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("should upload each image once across runs and write identical documents", func(t *testing.T) {
		f := newFixture(t)

		first := report.New()
		require.NoError(t, f.publisher(state.NewMemoryLedger(), first).PublishProducts(ctx, products()))
		afterFirst := f.server.Documents()

		second := report.New()
		require.NoError(t, f.publisher(state.NewMemoryLedger(), second).PublishProducts(ctx, products()))

		assert.Equal(t, 1, first.Uploads)
		assert.Equal(t, 0, second.Uploads)
		assert.Equal(t, []string{"spot.png"}, f.server.Uploads())
		assert.Equal(t, []string{"image/png"}, f.server.UploadContentTypes())
		assert.Equal(t, 3, first.Writes)
		assert.Equal(t, 3, second.Writes)
		assert.Equal(t, afterFirst, f.server.Documents())
	})

	t.Run("should map fields onto the product document", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.publisher(state.NewMemoryLedger(), report.New()).PublishProducts(ctx, products()))

		doc, ok := f.server.Document("product-spot-clean")
		require.True(t, ok)
		assert.Equal(t, "product", doc["_type"])
		assert.Equal(t, "Spot Clean", doc["titleAz"])
		assert.Equal(t, "Spot Clean", doc["titleRu"])
		assert.Equal(t, float64(12500), doc["price"])
		assert.Equal(t, "Cleans.", doc["excerptRu"])
		assert.Equal(t, map[string]any{"_type": "reference", "_ref": "category-interior"}, doc["category"])

		image := doc["image"].(map[string]any)
		assert.Equal(t, "Spot Clean", image["altRu"])

		untitled, ok := f.server.Document("product-tire-shine")
		require.True(t, ok)
		assert.Equal(t, "tire shine", untitled["titleAz"])
		assert.NotContains(t, untitled, "price")
		assert.NotContains(t, untitled, "bodyAz")
	})

	t.Run("should warn and omit the image when the file is missing", func(t *testing.T) {
		f := newFixture(t)
		rep := report.New()
		missing := []*domain.Product{{Slug: "ghost", CategoryID: "category-interior", ImagePath: "img/ghost.png"}}

		require.NoError(t, f.publisher(state.NewMemoryLedger(), rep).PublishProducts(ctx, missing))

		doc, ok := f.server.Document("product-ghost")
		require.True(t, ok)
		assert.NotContains(t, doc, "image")
		warnings := rep.WarningsOf(report.KindMissingImage)
		require.Len(t, warnings, 1)
		assert.Equal(t, "product-ghost", warnings[0].Subject)
		assert.Empty(t, f.server.Uploads())
	})

	t.Run("should stop at the first failed write", func(t *testing.T) {
		f := newFixture(t)
		f.server.FailWritesTo("product-tire-shine")
		rep := report.New()

		err := f.publisher(state.NewMemoryLedger(), rep).PublishProducts(ctx, products())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product-tire-shine")

		_, written := f.server.Document("product-spot-clean")
		assert.True(t, written)
		_, written = f.server.Document("product-glass-cleaner")
		assert.False(t, written)
		assert.Equal(t, 1, rep.Writes)
	})

	t.Run("should rewrite documents the ledger has already seen", func(t *testing.T) {
		f := newFixture(t)
		ledger := state.NewMemoryLedger()

		require.NoError(t, f.publisher(ledger, report.New()).PublishProducts(ctx, products()))
		commits := f.server.Commits()

		edited, _ := f.server.Document("product-spot-clean")
		edited["titleAz"] = "edited in studio"
		edited["discountPrice"] = 1.0
		f.server.Put(edited)

		rep := report.New()
		require.NoError(t, f.publisher(ledger, rep).PublishProducts(ctx, products()))
		assert.Equal(t, commits+3, f.server.Commits())
		assert.Equal(t, 3, rep.Writes)
		assert.Equal(t, 3, rep.Unchanged)

		restored, _ := f.server.Document("product-spot-clean")
		assert.Equal(t, "Spot Clean", restored["titleAz"])
		assert.NotContains(t, restored, "discountPrice")
	})
}

func TestPublishCategories(t *testing.T) {
	f := newFixture(t)
	rep := report.New()
	categories := []*domain.Category{
		{Slug: "interior", TitleAz: "İnteryer", TitleRu: "Интерьер", Order: 1, ImagePath: "img/spot.png"},
		{Slug: "tires", TitleAz: "Təkər", TitleRu: "Шины", Order: 2},
	}

	require.NoError(t, f.publisher(state.NewMemoryLedger(), rep).PublishCategories(context.Background(), categories))

	doc, ok := f.server.Document("category-interior")
	require.True(t, ok)
	assert.Equal(t, "Интерьер", doc["titleRu"])
	assert.Equal(t, float64(1), doc["order"])
	image := doc["image"].(map[string]any)
	assert.Equal(t, "İnteryer", image["altAz"])
	assert.Equal(t, "Интерьер", image["altRu"])

	tires, ok := f.server.Document("category-tires")
	require.True(t, ok)
	assert.NotContains(t, tires, "image")
	assert.Len(t, rep.WarningsOf(report.KindMissingImage), 1)
}

func TestUploadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("should upload a file asset with its detected type", func(t *testing.T) {
		f := newFixture(t)
		rep := report.New()

		id, err := f.publisher(state.NewMemoryLedger(), rep).UploadFile(ctx, "brochure.pdf")
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, []string{"application/pdf"}, f.server.UploadContentTypes())
		assert.Equal(t, 1, rep.Uploads)
	})

	t.Run("should fail when the file is missing", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.publisher(state.NewMemoryLedger(), report.New()).UploadFile(ctx, "missing.pdf")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.pdf")
	})
}
