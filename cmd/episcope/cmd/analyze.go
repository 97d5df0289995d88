package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haru/episcope/internal/app"
)

var analyzeWorkers int

var analyzeCmd = &cobra.Command{
	Use:          "analyze",
	Short:        "Build the keyword index from the transcript directory",
	Long:         "Loads transcripts, extracts keyword candidates, maps keywords to episodes, applies the frequency and substring filters, and persists the index.",
	Args:         cobra.NoArgs,
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "analyzer pool size (0 = default)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := appConfig()
	cfg.Workers = analyzeWorkers
	a := app.New(cfg, store)

	start := time.Now()
	snap, err := a.Rebuild()
	if err != nil {
		return err
	}

	curated := len(snap.Vocabulary.Curated)
	fmt.Printf("%s⚡ index built%s │ %s\n", colorBold, colorReset, time.Since(start).Round(time.Millisecond))
	fmt.Printf("  Episodes:  %d\n", snap.Corpus.Len())
	fmt.Printf("  Keywords:  %d (%d curated)\n", len(snap.Vocabulary.Keywords), curated)
	fmt.Printf("  DB:        %s\n", dbPath())
	return nil
}
