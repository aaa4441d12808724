// Package main reports locale dictionary coverage and fails on drift.
package main

import (
	"flag"
	"os"

	"github.com/murmurhq/website/internal/platform/config"
	"github.com/murmurhq/website/internal/tools/dictstatus"
)

func main() {
	cfg, err := dictstatus.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := dictstatus.Run(cfg, os.Stdout); err != nil {
		config.Exitf("dictionary status: %v", err)
	}
}
