package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	fsw "github.com/haru/episcope/internal/adapters/fsnotify"
	"github.com/haru/episcope/internal/adapters/web"
	"github.com/haru/episcope/internal/ports"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Serve the JSON API on localhost",
	Long:         "Serves search, episode, and keyword endpoints over HTTP. With --watch, transcript changes trigger re-analysis.",
	Args:         cobra.NoArgs,
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	f := serveCmd.Flags()
	f.IntVarP(&servePort, "port", "p", defaultPort(), "listen port (0 = pick a free one)")
	f.BoolVarP(&serveWatch, "watch", "w", false, "re-analyze when transcripts change")
}

func defaultPort() int {
	if v := os.Getenv("EPISCOPE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			return p
		}
	}
	return 8730
}

func runServe(cmd *cobra.Command, args []string) error {
	a, done, err := loadApp()
	if err != nil {
		return err
	}
	defer done()

	srv := web.NewServer(a)
	if err := srv.Start(servePort); err != nil {
		return err
	}
	defer srv.Stop()
	fmt.Printf("%s⚡ episcope%s │ http://127.0.0.1:%d\n", colorBold, colorReset, srv.Port())

	if serveWatch {
		watcher, err := fsw.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Stop()
		err = a.WatchSource(watcher, func(snap *ports.Snapshot, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "  %sre-analysis failed:%s %v\n", colorYellow, colorReset, err)
				return
			}
			fmt.Printf("  %sre-analyzed%s │ %d episodes, %d keywords\n",
				colorGreen, colorReset, snap.Corpus.Len(), len(snap.Vocabulary.Keywords))
		})
		if err != nil {
			return err
		}
		fmt.Printf("  watching %s\n", flagSourceDir)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
