package render

import (
	"strconv"

	"github.com/docpipe/poppler/pdf"
)

// DefaultResolution is what pdftocairo renders at when no resolution
// flag is passed, in pixels per inch.
const DefaultResolution = 150

// Args holds the options passed through to pdftocairo. The zero value
// renders with the tool defaults.
type Args struct {
	// Resolution to render at, nil renders at DefaultResolution.
	Resolution *Resolution
	// ScaleTo scales the output to fit inside a specific size.
	ScaleTo *ScaleTo
	// Crop limits rendering to a rectangle of the page.
	Crop *Crop
	// Area selects which page box to render.
	Area Area
	// Color selects how page content is colored.
	Color Color
	// Background selects the page background.
	Background Background
	// Antialias hints how the backend should antialias.
	Antialias Antialias
	// Password for the document.
	Password pdf.Password
}

func (a Args) appendArgs(args []string) []string {
	if a.Resolution != nil {
		args = a.Resolution.appendArgs(args)
	}

	if a.ScaleTo != nil {
		args = a.ScaleTo.appendArgs(args)
	}

	args = a.Area.appendArgs(args)
	args = a.Color.appendArgs(args)
	args = a.Background.appendArgs(args)
	args = a.Antialias.appendArgs(args)

	if a.Crop != nil {
		args = a.Crop.appendArgs(args)
	}

	return a.Password.AppendArgs(args)
}

// Resolution in pixels per inch, per axis.
type Resolution struct {
	X int
	Y int
}

// ResolutionXY returns a resolution with separate values per axis.
func ResolutionXY(x, y int) *Resolution {
	return &Resolution{X: x, Y: y}
}

// ResolutionUniform returns the same resolution for both axes.
func ResolutionUniform(ppi int) *Resolution {
	return ResolutionXY(ppi, ppi)
}

// ResolutionX sets the X resolution, Y stays at the default.
func ResolutionX(x int) *Resolution {
	return ResolutionXY(x, DefaultResolution)
}

// ResolutionY sets the Y resolution, X stays at the default.
func ResolutionY(y int) *Resolution {
	return ResolutionXY(DefaultResolution, y)
}

func (r *Resolution) appendArgs(args []string) []string {
	return append(args,
		"-rx", strconv.Itoa(r.X),
		"-ry", strconv.Itoa(r.Y))
}

// MaintainAspectRatio is the sentinel for a ScaleTo axis that should
// follow the other axis instead of a fixed size.
const MaintainAspectRatio = -1

// ScaleTo scales the rendered page to fit inside the given size in
// pixels.
type ScaleTo struct {
	X int
	Y int
}

// ScaleToFit scales to fit within both bounds.
func ScaleToFit(x, y int) *ScaleTo {
	return &ScaleTo{X: x, Y: y}
}

// ScaleToX scales the X axis, the Y axis keeps the aspect ratio.
func ScaleToX(x int) *ScaleTo {
	return &ScaleTo{X: x, Y: MaintainAspectRatio}
}

// ScaleToY scales the Y axis, the X axis keeps the aspect ratio.
func ScaleToY(y int) *ScaleTo {
	return &ScaleTo{X: MaintainAspectRatio, Y: y}
}

// ScaleToUniform scales both axes to the same size.
func ScaleToUniform(size int) *ScaleTo {
	return &ScaleTo{X: size, Y: size}
}

func (s *ScaleTo) appendArgs(args []string) []string {
	return append(args,
		"-scale-to-x", strconv.Itoa(s.X),
		"-scale-to-y", strconv.Itoa(s.Y))
}

// Crop limits rendering to a rectangle of the page, in pixels.
type Crop struct {
	X      int
	Y      int
	Width  int
	Height int
}

// CropRect returns a crop rectangle.
func CropRect(x, y, width, height int) *Crop {
	return &Crop{X: x, Y: y, Width: width, Height: height}
}

// CropSquare returns a square crop.
func CropSquare(x, y, size int) *Crop {
	return CropRect(x, y, size, size)
}

func (c *Crop) appendArgs(args []string) []string {
	return append(args,
		"-x", strconv.Itoa(c.X),
		"-y", strconv.Itoa(c.Y),
		"-W", strconv.Itoa(c.Width),
		"-H", strconv.Itoa(c.Height))
}

// Area selects which page box pdftocairo renders.
type Area int

const (
	// MediaBox renders the full page.
	MediaBox Area = iota
	// CropBox renders the crop box instead of the media box.
	CropBox
)

func (a Area) appendArgs(args []string) []string {
	if a == CropBox {
		return append(args, "-cropbox")
	}

	return args
}

// Color selects how page content is colored.
type Color int

const (
	FullColor Color = iota
	Monochrome
	Grayscale
)

func (c Color) appendArgs(args []string) []string {
	switch c {
	case Monochrome:
		return append(args, "-mono")
	case Grayscale:
		return append(args, "-gray")
	default:
		return args
	}
}

// Background selects the page background color.
type Background int

const (
	WhiteBackground Background = iota
	// TransparentBackground is only supported for PNG and TIFF output.
	TransparentBackground
)

func (b Background) appendArgs(args []string) []string {
	if b == TransparentBackground {
		return append(args, "-transp")
	}

	return args
}

// Antialias hints how the cairo backend should antialias.
type Antialias int

const (
	// AntialiasDefault leaves the choice to the target device.
	AntialiasDefault Antialias = iota
	AntialiasNone
	AntialiasGray
	AntialiasSubpixel
	// AntialiasFast prefers speed over quality.
	AntialiasFast
	// AntialiasGood balances quality against performance.
	AntialiasGood
	// AntialiasBest renders at the highest quality, whatever the cost.
	AntialiasBest
)

var antialiasNames = map[Antialias]string{
	AntialiasDefault:  "default",
	AntialiasNone:     "none",
	AntialiasGray:     "gray",
	AntialiasSubpixel: "subpixel",
	AntialiasFast:     "fast",
	AntialiasGood:     "good",
	AntialiasBest:     "best",
}

func (a Antialias) String() string {
	return antialiasNames[a]
}

func (a Antialias) appendArgs(args []string) []string {
	if a == AntialiasDefault {
		return args
	}

	return append(args, "-antialias", a.String())
}
