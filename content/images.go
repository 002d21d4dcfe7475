package content

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// probeImage returns the intrinsic size of a local cover image, or zeros when
// the image is remote, missing, or not decodable.
func (l *Loader) probeImage(src string) (int, int) {
	if l.ImageRoot == "" || l.ImagePrefix == "" || !strings.HasPrefix(src, l.ImagePrefix) {
		return 0, 0
	}
	rel := filepath.FromSlash(strings.TrimPrefix(src, l.ImagePrefix))
	if strings.Contains(rel, "..") {
		return 0, 0
	}
	f, err := os.Open(filepath.Join(l.ImageRoot, rel))
	if err != nil {
		l.Logger.Debug().Err(err).Str("image", src).Msg("cover image not readable")
		return 0, 0
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		l.Logger.Debug().Err(err).Str("image", src).Msg("cover image not decodable")
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
