package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/haru/episcope/internal/adapters/bbolt"
	"github.com/haru/episcope/internal/app"
)

var (
	flagSourceDir string
	flagKeywords  string
	flagDataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "episcope",
	Short: "episcope — episode transcript search",
	Long:  "Keyword highlighting, corpus grep with context, and a local JSON API over podcast transcripts.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagSourceDir, "dir", envOr("EPISCOPE_DIR", "transcripts"), "transcript directory")
	pf.StringVar(&flagKeywords, "keywords", envOr("EPISCOPE_KEYWORDS", "keywords.json"), "curated keywords file")
	pf.StringVar(&flagDataDir, "data", envOr("EPISCOPE_DATA", ".episcope"), "data directory for the index")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func dbPath() string {
	return filepath.Join(flagDataDir, "episcope.db")
}

func appConfig() app.Config {
	return app.Config{
		SourceDir:    flagSourceDir,
		KeywordsFile: flagKeywords,
	}
}

// openStore opens the index database, creating the data directory on demand.
func openStore() (*bbolt.Store, error) {
	if err := os.MkdirAll(flagDataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", flagDataDir, err)
	}
	return bbolt.NewStore(dbPath())
}

// loadApp opens the store and loads the persisted snapshot into an App.
// The caller must invoke the returned closer.
func loadApp() (*app.App, func(), error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	a := app.New(appConfig(), store)
	ok, err := a.LoadSnapshot()
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	if !ok {
		store.Close()
		return nil, nil, fmt.Errorf("no index found in %s — run: episcope analyze", flagDataDir)
	}
	return a, func() { store.Close() }, nil
}
