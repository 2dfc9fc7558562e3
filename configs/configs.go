// Package configs embeds the default match tuning and formation tables so
// both hosts run without a config directory.
package configs

import "embed"

// FS holds match.json and formations/*.yaml
//
//go:embed match.json formations
var FS embed.FS
