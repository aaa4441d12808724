// Package static embeds the site's stylesheet, script, and logo.
//
// Raster assets (favicon PNGs, social cards) are not part of the source
// tree. cmd/iconsgen and cmd/ogimage generate them into an assets directory
// during the release build, and Handler overlays that directory on top of
// the embedded files.
package static

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
	"strings"
)

// FS exposes site static assets for HTTP serving.
//
//go:embed *.css *.js *.svg
var FS embed.FS

// Handler serves the embedded assets. When dir is not empty, files found
// under it win over the embedded ones, which is how generated icons and
// social cards get served without living in source control.
func Handler(dir string) http.Handler {
	embedded := http.FileServer(http.FS(FS))
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return embedded
	}

	disk := os.DirFS(trimmed)
	diskServer := http.FileServer(http.FS(disk))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if fs.ValidPath(name) {
			if info, err := fs.Stat(disk, name); err == nil && !info.IsDir() {
				diskServer.ServeHTTP(w, r)
				return
			}
		}
		embedded.ServeHTTP(w, r)
	})
}
