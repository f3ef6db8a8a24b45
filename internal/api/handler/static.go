package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// StaticHandler serves the public site from a directory.
type StaticHandler struct {
	dir   string
	files http.Handler
}

// NewStaticHandler creates a StaticHandler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{
		dir:   dir,
		files: http.FileServer(noListingFS{fs: http.Dir(dir)}),
	}
}

// Index handles GET / with the site's entry document.
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}

// Assets serves any other file under the static directory.
func (h *StaticHandler) Assets(w http.ResponseWriter, r *http.Request) {
	h.files.ServeHTTP(w, r)
}

// noListingFS hides directories that have no index.html so the file server
// answers 404 instead of rendering a listing.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !stat.IsDir() {
		return f, nil
	}

	index, err := n.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		f.Close()
		return nil, os.ErrNotExist
	}
	index.Close()
	return f, nil
}
