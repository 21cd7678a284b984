package templates

import "embed"

// FS holds the page layout, page bodies and email bodies.
//
//go:embed email/*.html pages/*.html
var FS embed.FS
