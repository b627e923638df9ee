package web

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/rs/zerolog/hlog"
)

// StaticHandler serves files from a directory on disk. Paths with a ".."
// segment are refused, and directories are only served through their
// index.html.
type StaticHandler struct {
	fsys fs.FS
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{fsys: os.DirFS(dir)}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, ok := staticName(r.URL.Path)
	if !ok {
		notFound(w, r)
		return
	}

	f, info, err := h.open(name)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrPermission):
			hlog.FromRequest(r).Warn().Err(err).Str("file", name).Msg("static: permission denied")
			writeStatus(w, http.StatusForbidden)
		default:
			notFound(w, r)
		}
		return
	}
	defer f.Close()

	rs, ok := f.(io.ReadSeeker)
	if !ok {
		hlog.FromRequest(r).Error().Str("file", name).Msg("static: file is not seekable")
		writeStatus(w, http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), rs)
}

// open returns the file for name, or the index.html of the directory name.
func (h *StaticHandler) open(name string) (fs.File, fs.FileInfo, error) {
	f, err := h.fsys.Open(name)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.IsDir() {
		return f, info, nil
	}
	f.Close()

	index := path.Join(name, "index.html")
	f, err = h.fsys.Open(index)
	if err != nil {
		return nil, nil, err
	}
	info, err = f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, fs.ErrNotExist
	}
	return f, info, nil
}

// staticName maps a URL path to a name inside the static root.
func staticName(urlPath string) (string, bool) {
	if strings.ContainsRune(urlPath, 0) {
		return "", false
	}
	for _, seg := range strings.Split(urlPath, "/") {
		if seg == ".." {
			return "", false
		}
	}

	name := strings.TrimSuffix(strings.TrimPrefix(urlPath, "/"), "/")
	if name == "" {
		name = "."
	}
	if !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}
