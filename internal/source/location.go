package source

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode"
)

// Location is an opaque handle to the bytes of one image.
type Location interface {
	Open() (io.ReadCloser, error)
	String() string
}

// File is an image on the local filesystem.
type File string

func (f File) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

func (f File) String() string {
	return string(f)
}

// backingFile returns the filesystem path whose contents loc is read from.
func backingFile(loc Location) (string, bool) {
	switch l := loc.(type) {
	case File:
		return string(l), true
	case ArchiveEntry:
		return l.Archive, true
	}
	return "", false
}

// ArchiveEntry is an image stored inside a .zip, .rar or .7z archive.
type ArchiveEntry struct {
	Archive string
	Entry   string
}

func (a ArchiveEntry) String() string {
	return a.Archive + ":" + a.Entry
}

func (a ArchiveEntry) Open() (io.ReadCloser, error) {
	var (
		data []byte
		err  error
	)
	switch archiveExt(a.Archive) {
	case ".zip":
		data, err = readFromZip(a.Archive, a.Entry)
	case ".rar":
		data, err = readFromRar(a.Archive, a.Entry)
	case ".7z":
		data, err = readFrom7z(a.Archive, a.Entry)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", filepath.Ext(a.Archive))
	}
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func archiveExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsArchive reports whether path names a supported archive by extension.
func IsArchive(path string) bool {
	switch archiveExt(path) {
	case ".zip", ".rar", ".7z":
		return true
	default:
		return false
	}
}

func readFromZip(archivePath, entryPath string) ([]byte, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func readFromRar(archivePath, entryPath string) ([]byte, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.Name == entryPath {
			return io.ReadAll(r)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func readFrom7z(archivePath, entryPath string) ([]byte, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

// archiveEntries lists the image entries directly stored in an archive, in archive order.
func archiveEntries(archivePath string) ([]Location, error) {
	var names []string
	switch archiveExt(archivePath) {
	case ".zip":
		r, err := zip.OpenReader(archivePath)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		for _, f := range r.File {
			if !f.FileInfo().IsDir() {
				names = append(names, f.Name)
			}
		}
	case ".rar":
		f, err := os.Open(archivePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, err := rardecode.NewReader(f, "")
		if err != nil {
			return nil, err
		}
		for {
			header, err := r.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			if !header.IsDir {
				names = append(names, header.Name)
			}
		}
	case ".7z":
		r, err := sevenzip.OpenReader(archivePath)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		for _, f := range r.File {
			if !f.FileInfo().IsDir() {
				names = append(names, f.Name)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", filepath.Ext(archivePath))
	}

	var locations []Location
	for _, name := range names {
		if IsSupportedExt(name) {
			locations = append(locations, ArchiveEntry{Archive: archivePath, Entry: name})
		}
	}
	return locations, nil
}
