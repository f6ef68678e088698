package render

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/tiff"
)

// Format is the encoding pdftocairo is asked to write. The tool
// supports more formats, these are the raster ones it can write to
// stdout.
type Format int

const (
	JPEG Format = iota
	PNG
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	default:
		return "jpeg"
	}
}

func (f Format) appendArgs(args []string) []string {
	switch f {
	case PNG:
		return append(args, "-png")
	case TIFF:
		return append(args, "-tiff")
	default:
		return append(args, "-jpeg")
	}
}

func (f Format) decode(data []byte) (image.Image, error) {
	rd := bytes.NewReader(data)

	switch f {
	case PNG:
		return png.Decode(rd)
	case TIFF:
		return tiff.Decode(rd)
	default:
		return jpeg.Decode(rd)
	}
}
