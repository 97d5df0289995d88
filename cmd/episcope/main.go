// episcope is a transcript search tool for podcast episodes: keyword
// highlighting, corpus-wide grep with context, and a local JSON API.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/haru/episcope/cmd/episcope/cmd"
)

func main() {
	// Optional .env beside the binary; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
