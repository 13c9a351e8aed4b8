package legacy

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSite(t *testing.T) Site {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/legacy/index.html", []byte("<html>index</html>"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/legacy/interior.html", []byte("<html>interior</html>"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/legacy/img/products/spot.png", []byte("png"), 0o644))

	s, err := NewSite(fsys, "/legacy", "index.html")
	require.NoError(t, err)
	return s
}

func TestSite(t *testing.T) {
	t.Run("should fail when the root does not exist", func(t *testing.T) {
		_, err := NewSite(afero.NewMemMapFs(), "/missing", "index.html")
		assert.Error(t, err)
	})

	t.Run("should read the index", func(t *testing.T) {
		html, err := newTestSite(t).ReadIndex()
		require.NoError(t, err)
		assert.Equal(t, "<html>index</html>", html)
	})

	t.Run("should report a missing page as not found", func(t *testing.T) {
		s := newTestSite(t)

		html, found, err := s.ReadPage("interior.html")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "<html>interior</html>", html)

		_, found, err = s.ReadPage("product-nope.html")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("should resolve assets with or without a leading slash", func(t *testing.T) {
		s := newTestSite(t)

		path, ok := s.ResolveAsset("/img/products/spot.png")
		assert.True(t, ok)
		assert.Equal(t, "/legacy/img/products/spot.png", path)

		path, ok = s.ResolveAsset("img/products/spot.png")
		assert.True(t, ok)
		assert.Equal(t, "/legacy/img/products/spot.png", path)

		path, ok = s.ResolveAsset("img/products/gone.png")
		assert.False(t, ok)
		assert.Equal(t, "/legacy/img/products/gone.png", path)

		_, ok = s.ResolveAsset("img/products")
		assert.False(t, ok)
	})

	t.Run("should not reach outside the root", func(t *testing.T) {
		s := newTestSite(t)
		require.NoError(t, afero.WriteFile(s.Fs(), "/secret.png", []byte("png"), 0o644))
		require.NoError(t, afero.WriteFile(s.Fs(), "/legacy-other/page.html", []byte("<html>other</html>"), 0o644))

		_, ok := s.ResolveAsset("../secret.png")
		assert.False(t, ok)
		_, ok = s.ResolveAsset("/img/../../secret.png")
		assert.False(t, ok)

		_, found, err := s.ReadPage("../legacy-other/page.html")
		require.NoError(t, err)
		assert.False(t, found)

		path, ok := s.ResolveAsset("img/../img/products/spot.png")
		assert.True(t, ok)
		assert.Equal(t, "/legacy/img/products/spot.png", path)
	})
}
