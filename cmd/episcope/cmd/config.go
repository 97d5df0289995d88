package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:          "config",
	Short:        "Show configuration and index status",
	Args:         cobra.NoArgs,
	RunE:         runConfig,
	SilenceUsage: true,
}

func runConfig(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s⚡ episcope config%s\n", colorBold, colorReset)
	fmt.Printf("  Transcripts:  %s\n", flagSourceDir)
	fmt.Printf("  Keywords:     %s\n", flagKeywords)
	fmt.Printf("  DB:           %s\n", dbPath())

	if _, err := os.Stat(dbPath()); err != nil {
		fmt.Printf("  Index:        %s✗ not built%s — run: episcope analyze\n", colorYellow, colorReset)
		return nil
	}

	a, done, err := loadApp()
	if err != nil {
		return err
	}
	defer done()

	snap := a.Snapshot()
	fmt.Printf("  Index:        %s✓ %d episodes, %d keywords%s\n",
		colorGreen, snap.Corpus.Len(), len(snap.Vocabulary.Keywords), colorReset)
	fmt.Printf("  Built:        %s\n", time.Unix(snap.BuiltAt, 0).Format(time.RFC3339))
	return nil
}
