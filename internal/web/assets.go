package web

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"net/http"
	"strings"
)

// Assets serves embedded static files with cache headers and weak ETags
// computed once at startup.
type Assets struct {
	fsys  fs.FS
	etags map[string]string
	short map[string]string
}

// NewAssets fingerprints every embedded static file.
func NewAssets() (*Assets, error) {
	root := staticRoot()
	a := &Assets{
		fsys:  root,
		etags: map[string]string{},
		short: map[string]string{},
	}

	err := fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(root, p)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(data)
		hexSum := hex.EncodeToString(sum[:])
		a.etags[p] = `W/"` + hexSum + `"`
		a.short[p] = hexSum[:12]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Path returns the public URL of an asset with a content version suffix.
func (a *Assets) Path(name string) string {
	name = cleanAssetName(name)
	if v, ok := a.short[name]; ok {
		return "/assets/" + name + "?v=" + v
	}
	return "/assets/" + name
}

// ETag returns the weak ETag of an asset, or "" when unknown.
func (a *Assets) ETag(name string) string {
	return a.etags[cleanAssetName(name)]
}

// Handler serves files under the /assets/ prefix. Names that are not
// embedded files, directories included, go to notFound.
func (a *Assets) Handler(notFound http.Handler) http.Handler {
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}
	files := http.StripPrefix("/assets/", http.FileServer(http.FS(a.fsys)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/assets/")
		et, ok := a.etags[name]
		if !ok {
			notFound.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
		w.Header().Set("ETag", et)
		if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		files.ServeHTTP(w, r)
	})
}
