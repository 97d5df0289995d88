package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchMinLength int

var searchCmd = &cobra.Command{
	Use:          "search <query>",
	Short:        "Search all transcripts for a literal substring",
	Long:         "Scans every transcript line by line. The query is matched as literal text — regex metacharacters have no special meaning. Hits are grouped by episode with one line of context.",
	Args:         cobra.ExactArgs(1),
	RunE:         runSearch,
	SilenceUsage: true,
}

func init() {
	searchCmd.Flags().IntVar(&searchMinLength, "min-length", 2, "minimum query length")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	if len(strings.TrimSpace(query)) < searchMinLength {
		return fmt.Errorf("query too short (minimum %d characters)", searchMinLength)
	}

	a, done, err := loadApp()
	if err != nil {
		return err
	}
	defer done()

	groups := a.Search(query)
	fmt.Print(formatGroups(query, groups))
	return nil
}
