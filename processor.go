package goldspiral

import (
	"fmt"
	"io"
	"math"

	"github.com/esimov/goldspiral/utils"
)

// Default parameter values.
const (
	DefaultWidth      = 1100
	DefaultHeight     = 950
	DefaultIterations = 1000
	DefaultDistance   = 8.0
	DefaultSize       = 5.0
	DefaultTitle      = "ResBaz D3 SVG Challenge"
)

// Processor options
type Processor struct {
	Angle      float64
	Distance   float64
	Size       float64
	Title      string
	Shape      ShapeType
	Preview    string
	Width      int
	Height     int
	Iterations int
	Spinner    *utils.Spinner
	JustSVG    bool
	Debug      bool
}

// DefaultProcessor returns a processor initialized with the default parameters.
func DefaultProcessor() *Processor {
	return &Processor{
		Angle:      GoldenAngle,
		Distance:   DefaultDistance,
		Size:       DefaultSize,
		Title:      DefaultTitle,
		Shape:      ShapeTriangle,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Iterations: DefaultIterations,
	}
}

// Validate checks the parameters before any generation takes place.
func (p *Processor) Validate() error {
	switch {
	case p.Width <= 0:
		return fmt.Errorf("%w: width should be positive, got %d", ErrInvalidConfig, p.Width)
	case p.Height <= 0:
		return fmt.Errorf("%w: height should be positive, got %d", ErrInvalidConfig, p.Height)
	case p.Iterations <= 0:
		return fmt.Errorf("%w: iterations should be positive, got %d", ErrInvalidConfig, p.Iterations)
	case !isFinite(p.Angle):
		return fmt.Errorf("%w: angle should be a finite number", ErrInvalidConfig)
	case !isFinite(p.Distance):
		return fmt.Errorf("%w: distance should be a finite number", ErrInvalidConfig)
	case !isFinite(p.Size) || p.Size <= 0:
		return fmt.Errorf("%w: size should be a positive number, got %v", ErrInvalidConfig, p.Size)
	}

	if _, err := NewShape(p.Shape, 0, 0, p.Size); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Render generates the spiral and assembles the final document.
// Either the complete document or an error is returned.
func (p *Processor) Render() (string, error) {
	doc, _, err := p.render(false)
	return doc, err
}

// Process writes the generated document into w. In case the Preview option
// is set, a raster preview of the same spiral is saved to that path.
func (p *Processor) Process(w io.Writer) error {
	doc, preview, err := p.render(p.Preview != "")
	if err != nil {
		return err
	}

	if preview != nil {
		if err := preview.Save(p.Preview); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, doc); err != nil {
		return fmt.Errorf("unable to write the document: %w", err)
	}
	return nil
}

func (p *Processor) render(withPreview bool) (string, *RasterPreview, error) {
	if err := p.Validate(); err != nil {
		return "", nil, err
	}

	cx, cy := float64(p.Width)/2.0, float64(p.Height)/2.0
	shape, err := NewShape(p.Shape, cx, cy, p.Size)
	if err != nil {
		return "", nil, err
	}

	var preview *RasterPreview
	spiral := NewSpiral(shape, p.Iterations, p.Angle, p.Distance)
	if withPreview {
		preview = NewRasterPreview(p.Width, p.Height)
		spiral.OnEmit = preview.Add
	}

	body, err := collect(spiral)
	if err != nil {
		return "", nil, err
	}

	doc := SvgDocument(body, p.Width, p.Height)
	if !p.JustSVG {
		doc = HtmlDocument(p.Title, doc)
	}
	return doc, preview, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
