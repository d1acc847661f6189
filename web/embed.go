// Package web embeds the static frontend.
package web

import "embed"

//go:embed static
var Static embed.FS
