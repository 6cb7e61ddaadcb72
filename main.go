package main

import (
	"github.com/joho/godotenv"
	"github.com/matheuskafuri/verse/cmd"
	"github.com/matheuskafuri/verse/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()
	config.Reload()

	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
