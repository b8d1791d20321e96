package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fontgate/ftface"
)

var args struct {
	Size      uint32 `short:"s" default:"12" help:"Point size"`
	DPI       uint32 `short:"d" default:"96" help:"Dots per inch"`
	FaceIndex int    `short:"i" default:"0" help:"Face index for font collections"`
	Mono      bool   `short:"m" help:"Render without antialiasing"`
	Out       string `short:"o" type:"path" help:"Write the rendered glyph as PNG to this path"`
	Char      string `short:"c" default:"A" help:"Character to load"`

	Font string `arg:"" name:"font" help:"Font file path, or an installed font name"`
}

func endIfErr(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	kong.Parse(&args)

	runes := []rune(args.Char)
	if len(runes) != 1 {
		log.Fatalln("--char must be exactly one character")
	}
	codePoint := runes[0]

	lib, err := ftface.NewLibrary()
	endIfErr(err)
	defer lib.Close()

	face, err := openFace(lib)
	endIfErr(err)
	defer face.Close()

	err = face.SetPointSizeDPI(args.Size, args.DPI)
	endIfErr(err)

	index, err := face.GetCharIndex(ftface.CharCode(codePoint))
	endIfErr(err)

	glyph, err := face.LoadGlyph(index, ftface.LoadDefault)
	endIfErr(err)

	mode := ftface.RenderNormal
	if args.Mono {
		mode = ftface.RenderMono
	}
	err = glyph.Render(mode)
	endIfErr(err)

	printReport(face, glyph, index)

	if args.Out != "" {
		endIfErr(writePNG(args.Out, glyph))
	}
}

func openFace(lib *ftface.Library) (*ftface.Face, error) {
	if _, err := os.Stat(args.Font); err == nil {
		return lib.NewFace(args.Font, args.FaceIndex)
	}
	return lib.NewFaceByName(args.Font, args.FaceIndex)
}

func printReport(face *ftface.Face, glyph ftface.Glyph, index ftface.GlyphIndex) {
	sizeMetrics := face.Metrics()
	glyphMetrics := glyph.Metrics()
	bitmap := glyph.Bitmap()

	fmt.Printf("font: %s (%d glyphs)\n", face.Name(), face.NumGlyphs())
	fmt.Printf("size: %dpt at %ddpi (line height %.2fpx, ascender %.2fpx, descender %.2fpx)\n",
		args.Size, args.DPI,
		sizeMetrics.Height.ToFloat64(),
		sizeMetrics.Ascender.ToFloat64(),
		sizeMetrics.Descender.ToFloat64())
	fmt.Printf("glyph: %q -> index %d\n", args.Char, index)
	fmt.Printf("advance: %.2fpx, bearing: (%.2f, %.2f)px, box: %.2fx%.2fpx\n",
		glyphMetrics.HoriAdvance.ToFloat64(),
		glyphMetrics.HoriBearingX.ToFloat64(),
		glyphMetrics.HoriBearingY.ToFloat64(),
		glyphMetrics.Width.ToFloat64(),
		glyphMetrics.Height.ToFloat64())
	fmt.Printf("bitmap: %dx%d px, offset (%d, %d)\n",
		bitmap.Width, bitmap.Rows, glyph.BitmapLeft(), glyph.BitmapTop())
}

func writePNG(path string, glyph ftface.Glyph) error {
	bitmap := glyph.Bitmap()
	img := image.NewGray(image.Rect(0, 0, bitmap.Width, bitmap.Rows))
	for y := 0; y < bitmap.Rows; y++ {
		row := bitmap.Pix[y*bitmap.Pitch : y*bitmap.Pitch+bitmap.Width]
		for x, value := range row {
			// white glyph on black background
			img.Pix[y*img.Stride+x] = value
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(file, img)
	if err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
