package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	keywordsCuratedOnly bool
	keywordsByCoverage  bool
)

var keywordsCmd = &cobra.Command{
	Use:          "keywords",
	Short:        "List the keyword vocabulary with episode coverage",
	Args:         cobra.NoArgs,
	RunE:         runKeywords,
	SilenceUsage: true,
}

func init() {
	f := keywordsCmd.Flags()
	f.BoolVar(&keywordsCuratedOnly, "curated", false, "only keywords from the curated list")
	f.BoolVar(&keywordsByCoverage, "by-coverage", false, "sort by episode coverage, highest first")
}

func runKeywords(cmd *cobra.Command, args []string) error {
	a, done, err := loadApp()
	if err != nil {
		return err
	}
	defer done()

	list := a.Keywords()
	if keywordsCuratedOnly {
		filtered := list[:0]
		for _, k := range list {
			if k.Curated {
				filtered = append(filtered, k)
			}
		}
		list = filtered
	}
	if keywordsByCoverage {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Coverage > list[j].Coverage
		})
	}

	fmt.Printf("%s⚡ %d keywords%s\n", colorBold, len(list), colorReset)
	for _, k := range list {
		mark := ""
		if k.Curated {
			mark = fmt.Sprintf("  %s✎ curated%s", colorGreen, colorReset)
		}
		fmt.Printf("  %s%3d%s  %s%s\n", colorGray, k.Coverage, colorReset, k.Keyword, mark)
	}
	return nil
}
