package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var relatedCmd = &cobra.Command{
	Use:          "related <keyword>",
	Short:        "List the episodes containing a keyword",
	Args:         cobra.ExactArgs(1),
	RunE:         runRelated,
	SilenceUsage: true,
}

func runRelated(cmd *cobra.Command, args []string) error {
	a, done, err := loadApp()
	if err != nil {
		return err
	}
	defer done()

	keyword := args[0]
	docs := a.Related(keyword)
	if len(docs) == 0 {
		fmt.Printf("%s⚡ no episodes for %q%s\n", colorBold, keyword, colorReset)
		return nil
	}

	fmt.Printf("%s⚡ %q │ %d episodes%s\n", colorBold, keyword, len(docs), colorReset)
	for _, d := range docs {
		fmt.Printf("  %s%s%s  %s%s%s\n", colorCyan, d.Title, colorReset, colorGray, d.ID, colorReset)
	}
	return nil
}
