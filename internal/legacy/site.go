package legacy

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	log "github.com/sirupsen/logrus"
)

// Site gives read-only access to the legacy public_html tree.
type Site interface {
	Root() string
	ReadIndex() (string, error)
	// ReadPage returns found=false when the page does not exist.
	ReadPage(name string) (html string, found bool, err error)
	// ResolveAsset maps a legacy relative path to an absolute one and reports whether it exists.
	ResolveAsset(src string) (path string, exists bool)
	Fs() afero.Fs
}

type site struct {
	fs        afero.Fs
	root      string
	indexFile string
}

func NewSite(fsys afero.Fs, root, indexFile string) (Site, error) {
	abs := root
	if _, ok := fsys.(*afero.OsFs); ok {
		var err error
		abs, err = filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve legacy root %s: %w", root, err)
		}
	}

	info, err := fsys.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("legacy site not found at %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("legacy site root %s is not a directory", abs)
	}

	log.Debugf("Using legacy site at %s", abs)
	return &site{fs: fsys, root: abs, indexFile: indexFile}, nil
}

func (s *site) Root() string {
	return s.root
}

func (s *site) Fs() afero.Fs {
	return s.fs
}

func (s *site) ReadIndex() (string, error) {
	html, found, err := s.ReadPage(s.indexFile)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("legacy index file not found at %s", filepath.Join(s.root, s.indexFile))
	}
	return html, nil
}

func (s *site) ReadPage(name string) (string, bool, error) {
	path, inside := s.join(name)
	if !inside {
		log.Warnf("Legacy page %s points outside %s", name, s.root)
		return "", false, nil
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read legacy page %s: %w", path, err)
	}
	return string(data), true, nil
}

func (s *site) ResolveAsset(src string) (string, bool) {
	path, inside := s.join(src)
	if !inside {
		return path, false
	}
	info, err := s.fs.Stat(path)
	if err != nil || info.IsDir() {
		return path, false
	}
	return path, true
}

// join resolves a legacy path against the root, whether or not it starts with "/".
// inside is false when ".." segments climb out of the root.
func (s *site) join(rel string) (path string, inside bool) {
	rel = strings.TrimLeft(strings.TrimSpace(rel), "/")
	path = filepath.Join(s.root, filepath.FromSlash(rel))

	fromRoot, err := filepath.Rel(s.root, path)
	if err != nil || fromRoot == ".." || strings.HasPrefix(fromRoot, ".."+string(filepath.Separator)) {
		return path, false
	}
	return path, true
}
