// Package web carries the embedded HTML templates served by the HTTP layer.
package web

import "embed"

// Templates holds the page templates under templates/.
//
//go:embed templates/*.html
var Templates embed.FS
