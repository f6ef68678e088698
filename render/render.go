// Package render wraps the pdftocairo tool. Pages are rendered one
// subprocess per page, concurrently, with the results collected in
// request order.
package render

import (
	"context"
	"fmt"
	"image"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/docpipe/poppler/info"
	"github.com/docpipe/poppler/pdf"
)

const tool = "pdftocairo"

// Page renders a single page from the document.
func Page(ctx context.Context, data []byte, docinfo *info.Info, format Format, page int, args Args) (image.Image, error) {
	count, err := pageCount(docinfo, args)
	if err != nil {
		return nil, err
	}

	if err := pdf.CheckPages(count, page); err != nil {
		return nil, err
	}

	return renderPage(ctx, data, format, page, args)
}

// Pages renders the requested pages. The result is in the order the
// pages were requested, independent of completion order. The first
// error aborts the whole batch and cancels the remaining subprocesses.
func Pages(ctx context.Context, data []byte, docinfo *info.Info, format Format, pages []int, args Args) ([]image.Image, error) {
	count, err := pageCount(docinfo, args)
	if err != nil {
		return nil, err
	}

	if err := pdf.CheckPages(count, pages...); err != nil {
		return nil, err
	}

	return renderPages(ctx, data, format, pages, args)
}

// AllPages renders every page of the document in ascending order.
func AllPages(ctx context.Context, data []byte, docinfo *info.Info, format Format, args Args) ([]image.Image, error) {
	count, err := pageCount(docinfo, args)
	if err != nil {
		return nil, err
	}

	pages := make([]int, count)
	for i := range pages {
		pages[i] = i + 1
	}

	return renderPages(ctx, data, format, pages, args)
}

// pageCount rejects encrypted documents without a password before any
// subprocess is dispatched, then returns the page count from the info.
func pageCount(docinfo *info.Info, args Args) (int, error) {
	if docinfo.Encrypted() && !args.Password.IsSet() {
		return 0, pdf.ErrEncrypted
	}

	return docinfo.Pages()
}

func renderPages(ctx context.Context, data []byte, format Format, pages []int, args Args) ([]image.Image, error) {
	images := make([]image.Image, len(pages))

	wg, ctx := errgroup.WithContext(ctx)

	for i, page := range pages {
		i, page := i, page

		wg.Go(func() error {
			img, err := renderPage(ctx, data, format, page, args)
			if err != nil {
				return err
			}

			images[i] = img

			return nil
		})
	}

	if err := wg.Wait(); err != nil {
		return nil, err
	}

	return images, nil
}

// renderPage runs pdftocairo for one page. Bounds are not checked here.
func renderPage(ctx context.Context, data []byte, format Format, page int, args Args) (image.Image, error) {
	// read from stdin, write to stdout, single page without a filename
	// suffix
	cliArgs := []string{
		"-", "-",
		"-singlefile",
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
	}
	cliArgs = format.appendArgs(cliArgs)
	cliArgs = args.appendArgs(cliArgs)

	out, err := pdf.Run(ctx, tool, data, args.Password.IsSet(), cliArgs...)
	if err != nil {
		return nil, err
	}

	img, err := format.decode(out)
	if err != nil {
		return nil, fmt.Errorf("decode %v for page %d: %w", format, page, err)
	}

	return img, nil
}
