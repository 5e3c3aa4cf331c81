package web

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/JaimeStill/verdant/pkg/routes"
)

const assetCacheControl = "public, max-age=3600"

// DistServer serves the subdir of fsys under urlPrefix. It panics when
// subdir is not a valid path within fsys.
func DistServer(fsys fs.FS, subdir, urlPrefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		panic("web: static subdir: " + err.Error())
	}
	server := http.StripPrefix(urlPrefix, http.FileServer(http.FS(sub)))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", assetCacheControl)
		server.ServeHTTP(w, r)
	}
}

// PublicFile serves a single file read from fsys once, at construction.
// A file that cannot be read answers 404.
func PublicFile(fsys fs.FS, subdir, filename string) http.HandlerFunc {
	data, err := fs.ReadFile(fsys, path.Join(subdir, filename))
	if err != nil {
		return http.NotFound
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", assetCacheControl)
		http.ServeContent(w, r, filename, time.Time{}, bytes.NewReader(data))
	}
}

// PublicFileRoutes maps each file to GET /<file>.
func PublicFileRoutes(fsys fs.FS, subdir string, files ...string) []routes.Route {
	list := make([]routes.Route, 0, len(files))
	for _, file := range files {
		list = append(list, routes.Route{
			Method:  http.MethodGet,
			Pattern: "/" + file,
			Handler: PublicFile(fsys, subdir, file),
		})
	}
	return list
}
