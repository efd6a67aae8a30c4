// Package configs embeds the stock game configuration.
package configs

import "embed"

// FS holds physics.json, entities.json and levels/*.yaml
//
//go:embed *.json levels/*.yaml
var FS embed.FS
