// Command pdfwatchd watches a directory and writes a text sidecar for
// every PDF that shows up in it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/docpipe/poppler/pdf"
	"github.com/docpipe/poppler/watch"
)

var opts = struct {
	Config   string
	Incoming string
	TextDir  string
	Verbose  bool
}{}

// CheckTargetDir ensures that dir exists and is a directory.
func CheckTargetDir(log logrus.FieldLogger, dir string) error {
	fi, err := os.Lstat(dir)
	if os.IsNotExist(err) {
		log.Printf("creating target dir %v", dir)

		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return fmt.Errorf("creating target dir %v: %w", dir, err)
		}

		fi, err = os.Lstat(dir)
	}

	if err != nil {
		return fmt.Errorf("accessing target dir %v: %w", dir, err)
	}

	if !fi.IsDir() {
		return fmt.Errorf("target dir %v is not a directory", dir)
	}

	return nil
}

// setupRootContext creates a root context that is cancelled when
// SIGINT is received, tied to a new errgroup.Group. The returned
// cancel() function cancels the outermost context.
func setupRootContext() (wg *errgroup.Group, ctx context.Context, cancel func()) {
	ctx, cancel = context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)

	go func() {
		select {
		case <-ch:
			cancel()
		case <-ctx.Done():
		}
	}()

	// couple this context with an errgroup
	wg, ctx = errgroup.WithContext(ctx)

	return wg, ctx, cancel
}

func main() {
	fs := pflag.NewFlagSet("pdfwatchd", pflag.ContinueOnError)
	fs.StringVar(&opts.Config, "config", "", "read configuration from `file`")
	fs.StringVar(&opts.Incoming, "incoming", "incoming", "watch `directory` for new files")
	fs.StringVar(&opts.TextDir, "textdir", "", "write text sidecars to `directory` (default: next to the document)")
	fs.BoolVar(&opts.Verbose, "verbose", false, "print verbose messages")

	err := fs.Parse(os.Args[1:])
	if err == pflag.ErrHelp {
		os.Exit(0)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger := logrus.New()
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg := Config{
		Incoming: opts.Incoming,
		TextDir:  opts.TextDir,
	}

	if opts.Config != "" {
		cfg, err = LoadConfig(opts.Config)
		if err != nil {
			logger.Fatal(err)
		}
	}

	if cfg.TextDir == "" {
		cfg.TextDir = cfg.Incoming
	}

	for _, dir := range []string{cfg.Incoming, cfg.TextDir} {
		err = CheckTargetDir(logger, dir)
		if err != nil {
			logger.Fatal(err)
		}
	}

	var password pdf.Password

	switch {
	case cfg.OwnerPassword != "":
		password = pdf.OwnerPassword(cfg.OwnerPassword)
	case cfg.UserPassword != "":
		password = pdf.UserPassword(cfg.UserPassword)
	}

	wg, ctx, cancel := setupRootContext()
	defer cancel()

	newFiles := make(chan string, 20)

	wg.Go(func() error {
		watcher := &watch.Watcher{
			Dir: cfg.Incoming,
			OnFile: func(filename string) {
				newFiles <- filename
			},
		}
		watcher.SetLogger(logger)

		return watcher.Run(ctx)
	})

	wg.Go(func() error {
		extracter := &Extracter{
			TextDir:  cfg.TextDir,
			Password: password,
		}
		extracter.SetLogger(logger)

		return extracter.Run(ctx, newFiles)
	})

	err = wg.Wait()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
