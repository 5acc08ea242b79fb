package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// IsSupportedExt reports whether path has one of the gallery's image extensions.
func IsSupportedExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	default:
		return false
	}
}

// List enumerates the images directly under dir, orders them with strategy and
// assigns dense IDs in that order. If dir is an archive file, its image entries
// are listed instead.
func List(dir string, strategy SortStrategy) ([]ImageRef, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, ioError(dir, err)
	}

	var locations []Location
	switch {
	case info.IsDir():
		locations, err = listDirectory(dir)
	case IsArchive(dir):
		locations, err = archiveEntries(dir)
	default:
		err = fmt.Errorf("not a directory or archive")
	}
	if err != nil {
		return nil, ioError(dir, err)
	}

	if strategy == nil {
		strategy = GetSortStrategy(SortEntryOrder)
	}
	locations = strategy.Sort(locations)

	refs := make([]ImageRef, len(locations))
	for i, loc := range locations {
		refs[i] = ImageRef{ID: ID(i), Location: loc}
	}
	return refs, nil
}

// Discover is List without an error: unreadable or missing directories yield
// an empty gallery.
func Discover(dir string, strategy SortStrategy) []ImageRef {
	refs, err := List(dir, strategy)
	if err != nil {
		klog.Warningf("discover %s: %v", dir, err)
		return []ImageRef{}
	}
	return refs
}

func listDirectory(dir string) ([]Location, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, err
	}

	var locations []Location
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		if IsSupportedExt(de.Name()) {
			locations = append(locations, File(filepath.Join(dir, de.Name())))
		}
	}
	klog.V(1).Infof("listed %s: %d of %d entries are images", dir, len(locations), len(dirents))
	return locations, nil
}
