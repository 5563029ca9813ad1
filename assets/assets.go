// Package assets embeds the default HUD data.
package assets

import "embed"

// Data holds data/hud.yaml.
//
//go:embed data/*.yaml
var Data embed.FS
