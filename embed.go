package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the binary. site.css
// carries the page transition and parallax cover styles.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
