package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/esimov/goldspiral"
	"github.com/esimov/goldspiral/utils"
)

const HelpBanner = `
┌─┐┌─┐┬  ┌┬┐┌─┐┌─┐┬┬─┐┌─┐┬
│ ┬│ ││   ││└─┐├─┘│├┬┘├─┤│
└─┘└─┘┴─┘─┴┘└─┘┴  ┴┴└─┴ ┴┴─┘

Golden angle spiral SVG generator.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	width       = flag.Int("width", goldspiral.DefaultWidth, "Canvas width")
	height      = flag.Int("height", goldspiral.DefaultHeight, "Canvas height")
	iterations  = flag.Int("iterations", goldspiral.DefaultIterations, "Number of shapes placed along the spiral")
	angle       = flag.Float64("angle", goldspiral.GoldenAngle, "Angle increment in degrees")
	distance    = flag.Float64("distance", goldspiral.DefaultDistance, "Distance scale")
	size        = flag.Float64("size", goldspiral.DefaultSize, "Shape size")
	title       = flag.String("title", goldspiral.DefaultTitle, "HTML page title")
	justSvg     = flag.Bool("justsvg", false, "Output only the SVG document")
	shape       = flag.String("shape", string(goldspiral.ShapeTriangle), "Shape type: triangle, circle, rect, line, ellipse")
	destination = flag.String("out", pipeName, "Destination")
	preview     = flag.String("preview", "", "Save a raster preview of the spiral (.png, .jpg, .gif, .bmp)")
	config      = flag.String("config", "", "YAML parameter file")
	debug       = flag.Bool("debug", false, "Print the effective parameters")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	proc := goldspiral.DefaultProcessor()
	if *config != "" {
		if err := goldspiral.LoadConfig(*config, proc); err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the config file: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}

	// The explicitly set flags take precedence over the config file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			proc.Width = *width
		case "height":
			proc.Height = *height
		case "iterations":
			proc.Iterations = *iterations
		case "angle":
			proc.Angle = *angle
		case "distance":
			proc.Distance = *distance
		case "size":
			proc.Size = *size
		case "title":
			proc.Title = *title
		case "justsvg":
			proc.JustSVG = *justSvg
		case "shape":
			proc.Shape = goldspiral.ShapeType(*shape)
		case "preview":
			proc.Preview = *preview
		case "debug":
			proc.Debug = *debug
		}
	})

	op := &goldspiral.Ops{
		Dst:      *destination,
		PipeName: pipeName,
	}

	if err := proc.Execute(op); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the spiral: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
}
