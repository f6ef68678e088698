package main

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"golang.org/x/image/tiff"

	"github.com/docpipe/poppler/info"
	"github.com/docpipe/poppler/render"
)

var formats = map[string]render.Format{
	"jpeg": render.JPEG,
	"png":  render.PNG,
	"tiff": render.TIFF,
}

var antialiasModes = map[string]render.Antialias{
	"default":  render.AntialiasDefault,
	"none":     render.AntialiasNone,
	"gray":     render.AntialiasGray,
	"subpixel": render.AntialiasSubpixel,
	"fast":     render.AntialiasFast,
	"good":     render.AntialiasGood,
	"best":     render.AntialiasBest,
}

func runRender(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("pdfq render", pflag.ContinueOnError)
	password := passwordFlags(fs)
	page := fs.Int("page", 0, "render only page `n`")
	formatName := fs.String("format", "png", "output `format` (jpeg, png, tiff)")
	resolution := fs.Int("resolution", 0, "render at `ppi` pixels per inch")
	scaleTo := fs.Int("scale-to", 0, "scale the longer side to `pixels`")
	mono := fs.Bool("mono", false, "render monochrome")
	gray := fs.Bool("gray", false, "render grayscale")
	transparent := fs.Bool("transparent", false, "transparent page background (png/tiff)")
	cropbox := fs.Bool("cropbox", false, "render the crop box instead of the media box")
	antialiasName := fs.String("antialias", "default", "antialias `mode`")
	outdir := fs.String("outdir", ".", "write images to `dir`")

	err := fs.Parse(args)
	if err != nil {
		return err
	}

	filename, err := inputFile(fs)
	if err != nil {
		return err
	}

	format, ok := formats[*formatName]
	if !ok {
		return fmt.Errorf("unknown format %q", *formatName)
	}

	antialias, ok := antialiasModes[*antialiasName]
	if !ok {
		return fmt.Errorf("unknown antialias mode %q", *antialiasName)
	}

	renderArgs := render.Args{
		Area:      render.MediaBox,
		Antialias: antialias,
		Password:  password(),
	}

	if *resolution > 0 {
		renderArgs.Resolution = render.ResolutionUniform(*resolution)
	}

	if *scaleTo > 0 {
		renderArgs.ScaleTo = render.ScaleToUniform(*scaleTo)
	}

	if *cropbox {
		renderArgs.Area = render.CropBox
	}

	switch {
	case *mono:
		renderArgs.Color = render.Monochrome
	case *gray:
		renderArgs.Color = render.Grayscale
	}

	if *transparent {
		renderArgs.Background = render.TransparentBackground
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %v: %w", filename, err)
	}

	docinfo, err := info.Extract(ctx, data, info.Args{Password: password()})
	if err != nil {
		return fmt.Errorf("pdfinfo for %v failed: %w", filename, err)
	}

	if *page > 0 {
		img, err := render.Page(ctx, data, docinfo, format, *page, renderArgs)
		if err != nil {
			return err
		}

		return writeImage(*outdir, *page, format, img)
	}

	images, err := render.AllPages(ctx, data, docinfo, format, renderArgs)
	if err != nil {
		return err
	}

	for i, img := range images {
		err = writeImage(*outdir, i+1, format, img)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeImage(dir string, page int, format render.Format, img image.Image) error {
	filename := filepath.Join(dir, fmt.Sprintf("page-%03d.%v", page, format))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %v: %w", filename, err)
	}

	switch format {
	case render.PNG:
		err = png.Encode(f, img)
	case render.TIFF:
		err = tiff.Encode(f, img, nil)
	default:
		err = jpeg.Encode(f, img, nil)
	}

	if err != nil {
		_ = f.Close()

		return fmt.Errorf("encode %v: %w", filename, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close %v: %w", filename, err)
	}

	fmt.Printf("wrote %v\n", filename)

	return nil
}
