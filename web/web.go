// Package web embeds the HTML views served by the API process.
package web

import "embed"

//go:embed views/*.html
var Views embed.FS
