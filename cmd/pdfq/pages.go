package main

import (
	"fmt"

	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/pflag"
)

func runSplit(args []string) error {
	fs := pflag.NewFlagSet("pdfq split", pflag.ContinueOnError)
	outdir := fs.String("outdir", ".", "write single-page files to `dir`")

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	filename, err := inputFile(fs)
	if err != nil {
		return err
	}

	err = pdfcpu.SplitFile(filename, *outdir, 1, nil)
	if err != nil {
		return fmt.Errorf("split %v: %w", filename, err)
	}

	return nil
}

func runMerge(args []string) error {
	fs := pflag.NewFlagSet("pdfq merge", pflag.ContinueOnError)
	out := fs.String("out", "merged.pdf", "write the merged document to `file`")

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	if fs.NArg() < 2 {
		return fmt.Errorf("expected at least two input files, got %d", fs.NArg())
	}

	err = pdfcpu.MergeCreateFile(fs.Args(), *out, nil)
	if err != nil {
		return fmt.Errorf("merge into %v: %w", *out, err)
	}

	return nil
}
