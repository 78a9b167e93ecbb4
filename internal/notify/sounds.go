package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Default sound catalog location and naming convention on macOS.
const (
	DefaultSoundsDir = "/System/Library/Sounds"
	DefaultSoundExt  = ".aiff"
)

// SoundCatalog resolves sound names to files in a single directory.
// A sound named "Glass" lives at <Dir>/Glass<Ext>.
type SoundCatalog struct {
	Dir string
	Ext string
}

// NewSoundCatalog creates a catalog, falling back to the macOS defaults for empty values.
func NewSoundCatalog(dir, ext string) *SoundCatalog {
	if dir == "" {
		dir = DefaultSoundsDir
	}
	if ext == "" {
		ext = DefaultSoundExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &SoundCatalog{Dir: dir, Ext: ext}
}

// Path returns the file for the named sound and whether it exists as a regular file.
// Names containing a path separator never resolve.
func (c *SoundCatalog) Path(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", false
	}

	path := filepath.Join(c.Dir, name+c.Ext)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// List returns the names of every sound in the catalog, sorted.
func (c *SoundCatalog) List() ([]string, error) {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading sounds directory %s: %w", c.Dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), c.Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names, nil
}
