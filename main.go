package main

import (
	"github.com/pawandazzler/french-vocab-anki/internal/config"
	"github.com/pawandazzler/french-vocab-anki/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
