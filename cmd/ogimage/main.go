// Package main renders the social sharing card images.
package main

import (
	"flag"
	"os"

	"github.com/murmurhq/website/internal/platform/config"
	"github.com/murmurhq/website/internal/tools/ogimage"
)

func main() {
	cfg, err := ogimage.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := ogimage.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("generate cards: %v", err)
	}
}
