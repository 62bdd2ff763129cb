package main

import (
	"os"

	"github.com/trebuchet-org/subnetctl/internal/cli"
	"github.com/trebuchet-org/subnetctl/internal/config"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)
	os.Exit(cli.Execute())
}
