// Package scaffold embeds the starter site written by "folio new": a config
// file, a sample post and the pages the footer links to.
package scaffold

import "embed"

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS
