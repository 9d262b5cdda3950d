// Package web embeds the demo front end that exercises the catalog API.
package web

import "embed"

//go:embed static
var Static embed.FS
