package main

import "embed"

// configFS holds the default game.json and bundled levels
//
//go:embed configs
var configFS embed.FS
