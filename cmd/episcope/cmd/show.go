package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showPlain bool

var showCmd = &cobra.Command{
	Use:          "show <episode>",
	Short:        "Print a transcript with keywords highlighted",
	Long:         "Resolves keyword spans over one episode's transcript and prints it with every span highlighted. Overlapping keywords resolve leftmost-longest.",
	Args:         cobra.ExactArgs(1),
	RunE:         runShow,
	SilenceUsage: true,
}

func init() {
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "print without highlighting")
}

func runShow(cmd *cobra.Command, args []string) error {
	a, done, err := loadApp()
	if err != nil {
		return err
	}
	defer done()

	doc, spans, ok := a.Episode(args[0])
	if !ok {
		return fmt.Errorf("unknown episode %q — try: episcope config", args[0])
	}

	fmt.Printf("%s%s%s  %s(%s, %d keywords)%s\n\n",
		colorBold, doc.Title, colorReset, colorGray, doc.ID, len(spans), colorReset)
	if showPlain {
		fmt.Println(doc.Content)
		return nil
	}
	fmt.Println(annotate(doc.Content, spans))
	return nil
}
