package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	r := New()
	assert.Empty(t, r.Warnings)

	r.Warn(KindMissingImage, "product-foo", "image not found: %s", "/tmp/foo.png")
	r.Warn(KindDuplicateSlug, "foo", "already claimed by %s", "category-interior")
	r.Warn(KindMissingImage, "product-bar", "image not found: %s", "/tmp/bar.png")

	missing := r.WarningsOf(KindMissingImage)
	assert.Len(t, missing, 2)
	assert.Equal(t, "product-foo", missing[0].Subject)
	assert.Equal(t, "image not found: /tmp/foo.png", missing[0].Message)
	assert.Equal(t, "duplicate-slug foo: already claimed by category-interior", r.Warnings[1].String())
	assert.Equal(t, "0 written, 0 unchanged, 0 uploads, 3 warnings", r.Summary())
}
