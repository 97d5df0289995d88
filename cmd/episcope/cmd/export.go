package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haru/episcope/internal/adapters/jsonio"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:          "export",
	Short:        "Write the index as site JSON files",
	Long:         "Exports transcripts.json, keyword_to_episodes.json, episode_to_keywords.json, and json_source_keywords.json from the persisted index.",
	Args:         cobra.NoArgs,
	RunE:         runExport,
	SilenceUsage: true,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "public", "output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, done, err := loadApp()
	if err != nil {
		return err
	}
	defer done()

	if err := jsonio.Export(exportOut, a.Snapshot()); err != nil {
		return err
	}
	fmt.Printf("%s⚡ exported%s → %s\n", colorBold, colorReset, exportOut)
	return nil
}
