// Command pdfq is a one-shot frontend for the poppler wrapper: it
// prints document metadata, extracts text, renders pages to image
// files and splits or merges documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/pflag"

	"github.com/docpipe/poppler/info"
	"github.com/docpipe/poppler/pdf"
	"github.com/docpipe/poppler/text"
)

const usage = `usage: pdfq <command> [flags] <file>

commands:
  info     print document metadata
  text     extract text
  render   render pages to image files
  split    write one file per page
  merge    merge several files into one`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	ctx, cancel := rootContext()
	defer cancel()

	var err error

	switch cmd := os.Args[1]; cmd {
	case "info":
		err = runInfo(ctx, os.Args[2:])
	case "text":
		err = runText(ctx, os.Args[2:])
	case "render":
		err = runRender(ctx, os.Args[2:])
	case "split":
		err = runSplit(os.Args[2:])
	case "merge":
		err = runMerge(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Println(usage)

		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%v\n", cmd, usage)
		os.Exit(1)
	}

	if errors.Is(err, pflag.ErrHelp) {
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// rootContext creates a root context that is cancelled when SIGINT is
// received, so outstanding subprocesses are killed on Ctrl-C.
func rootContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)

	go func() {
		select {
		case <-ch:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// passwordFlags registers the password flags on fs and returns a
// function producing the resulting password after parsing.
func passwordFlags(fs *pflag.FlagSet) func() pdf.Password {
	owner := fs.String("owner-password", "", "owner `password` for the document")
	user := fs.String("user-password", "", "user `password` for the document")

	return func() pdf.Password {
		switch {
		case *owner != "":
			return pdf.OwnerPassword(*owner)
		case *user != "":
			return pdf.UserPassword(*user)
		default:
			return pdf.Password{}
		}
	}
}

// inputFile returns the single positional argument.
func inputFile(fs *pflag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one input file, got %d arguments", fs.NArg())
	}

	return fs.Arg(0), nil
}

func runInfo(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("pdfq info", pflag.ContinueOnError)
	password := passwordFlags(fs)

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	filename, err := inputFile(fs)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %v: %w", filename, err)
	}

	docinfo, err := info.Extract(ctx, data, info.Args{Password: password()})
	if err != nil {
		return fmt.Errorf("pdfinfo for %v failed: %w", filename, err)
	}

	fields := docinfo.Fields()

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%-16v %v\n", key+":", fields[key])
	}

	return nil
}

func runText(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("pdfq text", pflag.ContinueOnError)
	password := passwordFlags(fs)
	page := fs.Int("page", 0, "extract only page `n`")
	split := fs.Bool("split", false, "print a page break line between pages")

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	filename, err := inputFile(fs)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %v: %w", filename, err)
	}

	textArgs := text.Args{Password: password()}

	if *page > 0 {
		docinfo, err := info.Extract(ctx, data, info.Args{Password: password()})
		if err != nil {
			return fmt.Errorf("pdfinfo for %v failed: %w", filename, err)
		}

		value, err := text.Page(ctx, data, docinfo, *page, textArgs)
		if err != nil {
			return err
		}

		fmt.Print(value)

		return nil
	}

	if *split {
		pages, err := text.AllPagesSplit(ctx, data, textArgs)
		if err != nil {
			return err
		}

		for i, value := range pages {
			fmt.Printf("--- page %d ---\n%v", i+1, value)
		}

		return nil
	}

	value, err := text.AllPages(ctx, data, textArgs)
	if err != nil {
		return err
	}

	fmt.Print(value)

	return nil
}
