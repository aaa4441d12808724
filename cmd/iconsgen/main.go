// Package main regenerates the application icon set from the master logo.
package main

import (
	"flag"
	"os"

	"github.com/murmurhq/website/internal/platform/config"
	"github.com/murmurhq/website/internal/tools/iconsgen"
)

func main() {
	cfg, err := iconsgen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := iconsgen.Run(cfg, os.Stdout); err != nil {
		config.Exitf("generate icons: %v", err)
	}
}
