package main

import (
	"flag"
	"os"

	"github.com/murmurhq/website/internal/platform/config"
	"github.com/murmurhq/website/internal/tools/previewkey"
)

func main() {
	cfg, err := previewkey.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := previewkey.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("generate key: %v", err)
	}
}
