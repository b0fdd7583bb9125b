package nsglob

import (
	"strings"

	"github.com/spf13/afero"
)

// FS adapts an [afero.Fs] into a [Provider]. Entries are path strings.
type FS struct {
	fs afero.Fs
}

// NewFS wraps fsys as a Provider. Use afero.NewOsFs for the real
// filesystem, or afero.NewMemMapFs in tests.
func NewFS(fsys afero.Fs) *FS {
	return &FS{fs: fsys}
}

// PathOf returns the entry itself - entries are already paths.
func (f *FS) PathOf(entry string) string { return entry }

// List returns the full paths of the children of the directory at path,
// in directory order. Unlistable directories yield nil.
func (f *FS) List(path string) []string {
	infos, err := afero.ReadDir(f.fs, path)
	if err != nil {
		return nil
	}
	children := make([]string, 0, len(infos))
	for _, fi := range infos {
		if strings.HasSuffix(path, "/") {
			children = append(children, path+fi.Name())
		} else {
			children = append(children, path+"/"+fi.Name())
		}
	}
	return children
}

// FindDirectory resolves path if a directory exists there.
func (f *FS) FindDirectory(path string) (string, bool) {
	lookup := path
	if len(lookup) > 1 {
		lookup = strings.TrimSuffix(lookup, "/")
	}
	fi, err := f.fs.Stat(lookup)
	if err != nil || !fi.IsDir() {
		return "", false
	}
	return path, true
}

// FindFile resolves path if a file exists there.
func (f *FS) FindFile(path string) (string, bool) {
	fi, err := f.fs.Stat(path)
	if err != nil || fi.IsDir() {
		return "", false
	}
	return path, true
}
