package main

import (
	"log"
	"os"

	"github.com/wintrace/wintrace/cmd"
	"github.com/wintrace/wintrace/config"
)

// Build information set by linker
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	config.Version = Version
	if err := cmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
