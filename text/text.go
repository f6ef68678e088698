// Package text wraps the pdftotext tool. Whole-document extraction is
// a single subprocess, per-page extraction runs one subprocess per
// page, concurrently, with results collected in request order.
package text

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/docpipe/poppler/info"
	"github.com/docpipe/poppler/pdf"
)

const tool = "pdftotext"

// PageBreak is the form feed character pdftotext emits after each
// page.
const PageBreak = "\f"

// Args holds the options passed through to pdftotext.
type Args struct {
	Password pdf.Password
}

// AllPages extracts the text of the whole document as a single string,
// with the page breaks replaced by newlines.
func AllPages(ctx context.Context, data []byte, args Args) (string, error) {
	out, err := run(ctx, data, nil, args)
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(out, PageBreak, "\n"), nil
}

// AllPagesSplit extracts the text of the whole document as one string
// per page, split on PageBreak.
func AllPagesSplit(ctx context.Context, data []byte, args Args) ([]string, error) {
	out, err := run(ctx, data, nil, args)
	if err != nil {
		return nil, err
	}

	return strings.Split(out, PageBreak), nil
}

// Pages extracts the text of the requested pages. The result is in the
// order the pages were requested, independent of completion order. The
// first error aborts the whole batch and cancels the remaining
// subprocesses.
func Pages(ctx context.Context, data []byte, docinfo *info.Info, pages []int, args Args) ([]string, error) {
	count, err := pageCount(docinfo, args)
	if err != nil {
		return nil, err
	}

	if err := pdf.CheckPages(count, pages...); err != nil {
		return nil, err
	}

	texts := make([]string, len(pages))

	wg, ctx := errgroup.WithContext(ctx)

	for i, page := range pages {
		i, page := i, page

		wg.Go(func() error {
			value, err := pageText(ctx, data, page, args)
			if err != nil {
				return err
			}

			texts[i] = value

			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return nil, err
	}

	return texts, nil
}

// Page extracts the text of a single page.
func Page(ctx context.Context, data []byte, docinfo *info.Info, page int, args Args) (string, error) {
	count, err := pageCount(docinfo, args)
	if err != nil {
		return "", err
	}

	if err := pdf.CheckPages(count, page); err != nil {
		return "", err
	}

	return pageText(ctx, data, page, args)
}

// pageCount rejects encrypted documents without a password before any
// subprocess is dispatched, then returns the page count from the info.
func pageCount(docinfo *info.Info, args Args) (int, error) {
	if docinfo.Encrypted() && !args.Password.IsSet() {
		return 0, pdf.ErrEncrypted
	}

	return docinfo.Pages()
}

// pageText runs pdftotext for one page. Bounds are not checked here.
// The trailing page break is stripped.
func pageText(ctx context.Context, data []byte, page int, args Args) (string, error) {
	extra := []string{
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
	}

	out, err := run(ctx, data, extra, args)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(out, PageBreak), nil
}

func run(ctx context.Context, data []byte, extra []string, args Args) (string, error) {
	// read from stdin, write to stdout
	cliArgs := []string{"-", "-"}
	cliArgs = append(cliArgs, extra...)
	cliArgs = args.Password.AppendArgs(cliArgs)

	out, err := pdf.Run(ctx, tool, data, args.Password.IsSet(), cliArgs...)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
