package render

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/docpipe/poppler/info"
	"github.com/docpipe/poppler/pdf"
)

// installTool places a fake shell script with the given name on the
// PATH and returns the directory it lives in.
func installTool(t testing.TB, name, script string) string {
	t.Helper()

	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+script+"\n"), 0755)
	if err != nil {
		t.Fatalf("write fake %v: %v", name, err)
	}

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	return dir
}

// fakeInfo builds an Info through a fake pdfinfo printing the given
// output.
func fakeInfo(t testing.TB, output string) *info.Info {
	t.Helper()

	installTool(t, "pdfinfo", `cat >/dev/null
printf '`+output+`'`)

	docinfo, err := info.Extract(context.Background(), []byte("%PDF-1.4"), info.Args{})
	if err != nil {
		t.Fatal(err)
	}

	return docinfo
}

func TestPageOutOfBounds(t *testing.T) {
	docinfo := fakeInfo(t, `Pages: 2\nEncrypted: no\n`)

	_, err := Page(context.Background(), []byte("%PDF-1.4"), docinfo, JPEG, 99, Args{})

	var pageErr *pdf.PageError
	if !errors.As(err, &pageErr) {
		t.Fatalf("want *PageError, got %v", err)
	}

	if pageErr.Page != 99 || pageErr.Pages != 2 {
		t.Errorf("wrong error values: %v", pageErr)
	}

	_, err = Pages(context.Background(), []byte("%PDF-1.4"), docinfo, JPEG, []int{1, 99}, Args{})
	if !errors.As(err, &pageErr) {
		t.Fatalf("want *PageError, got %v", err)
	}
}

func TestEncryptedWithoutPassword(t *testing.T) {
	docinfo := fakeInfo(t, `Pages: 2\nEncrypted: yes (print:yes copy:yes change:yes addNotes:yes algorithm:AES-256)\n`)

	_, err := Page(context.Background(), []byte("%PDF-1.4"), docinfo, JPEG, 1, Args{})
	if !errors.Is(err, pdf.ErrEncrypted) {
		t.Errorf("want ErrEncrypted, got %v", err)
	}

	_, err = AllPages(context.Background(), []byte("%PDF-1.4"), docinfo, JPEG, Args{})
	if !errors.Is(err, pdf.ErrEncrypted) {
		t.Errorf("want ErrEncrypted, got %v", err)
	}
}

func TestPageCountUnknown(t *testing.T) {
	docinfo := fakeInfo(t, `Title: no pages field\n`)

	_, err := AllPages(context.Background(), []byte("%PDF-1.4"), docinfo, JPEG, Args{})
	if !errors.Is(err, info.ErrPageCountUnknown) {
		t.Errorf("want ErrPageCountUnknown, got %v", err)
	}
}

// writeTestPNG writes a small PNG into dir for the fake pdftocairo to
// serve.
func writeTestPNG(t testing.TB, dir string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	f, err := os.Create(filepath.Join(dir, "page.png"))
	if err != nil {
		t.Fatal(err)
	}

	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestAllPages(t *testing.T) {
	docinfo := fakeInfo(t, `Pages: 2\nEncrypted: no\n`)

	dir := installTool(t, "pdftocairo", `cat >/dev/null
cat "$(dirname "$0")/page.png"`)
	writeTestPNG(t, dir)

	images, err := AllPages(context.Background(), []byte("%PDF-1.4"), docinfo, PNG, Args{})
	if err != nil {
		t.Fatal(err)
	}

	if len(images) != 2 {
		t.Fatalf("wrong number of images, want 2, got %d", len(images))
	}

	for i, img := range images {
		bounds := img.Bounds()
		if bounds.Dx() != 2 || bounds.Dy() != 2 {
			t.Errorf("image %d has wrong bounds %v", i, bounds)
		}
	}
}

func TestDecodeFailure(t *testing.T) {
	docinfo := fakeInfo(t, `Pages: 1\nEncrypted: no\n`)

	installTool(t, "pdftocairo", `cat >/dev/null
printf 'this is not an image'`)

	_, err := Page(context.Background(), []byte("%PDF-1.4"), docinfo, PNG, 1, Args{})
	if err == nil {
		t.Fatal("expected decode error not found")
	}
}

func TestRenderNotPDF(t *testing.T) {
	docinfo := fakeInfo(t, `Pages: 1\nEncrypted: no\n`)

	installTool(t, "pdftocairo", `cat >/dev/null
echo "I/O Error: May not be a PDF file (continuing anyway)" >&2
exit 1`)

	_, err := Page(context.Background(), []byte("A"), docinfo, PNG, 1, Args{})
	if !errors.Is(err, pdf.ErrNotPDF) {
		t.Errorf("want ErrNotPDF, got %v", err)
	}
}

func TestRenderPermission(t *testing.T) {
	docinfo := fakeInfo(t, `Pages: 1\nEncrypted: no\n`)

	installTool(t, "pdftocairo", `cat >/dev/null
echo "Printing this document is not allowed." >&2
exit 3`)

	_, err := Page(context.Background(), []byte("%PDF-1.4"), docinfo, PNG, 1, Args{})
	if !errors.Is(err, pdf.ErrPermission) {
		t.Errorf("want ErrPermission, got %v", err)
	}
}
