// Package assets embeds the default tunables and level definitions.
package assets

import "embed"

//go:embed levels/*.yaml
var Levels embed.FS

// Config holds the default tunables, overlaid by the -config file.
//
//go:embed config.yaml
var Config []byte
