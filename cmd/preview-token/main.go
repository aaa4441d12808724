// Package main mints draft-preview tokens for sharing unpublished posts.
package main

import (
	"flag"
	"os"

	"github.com/murmurhq/website/internal/platform/config"
	"github.com/murmurhq/website/internal/tools/previewtoken"
)

func main() {
	cfg, err := previewtoken.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := previewtoken.Run(cfg, os.Stdout); err != nil {
		config.Exitf("mint preview token: %v", err)
	}
}
