package goldspiral

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the processor options in a YAML file.
// Keys missing from the file are nil and leave the processor untouched.
type fileConfig struct {
	Width      *int     `yaml:"width"`
	Height     *int     `yaml:"height"`
	Iterations *int     `yaml:"iterations"`
	Angle      *float64 `yaml:"angle"`
	Distance   *float64 `yaml:"distance"`
	Size       *float64 `yaml:"size"`
	Title      *string  `yaml:"title"`
	JustSVG    *bool    `yaml:"justsvg"`
	Shape      *string  `yaml:"shape"`
	Preview    *string  `yaml:"preview"`
	Debug      *bool    `yaml:"debug"`
}

// LoadConfig reads the YAML parameter file and applies it over p.
func LoadConfig(path string, p *Processor) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open the config file: %w", err)
	}
	defer file.Close()

	return DecodeConfig(file, p)
}

// DecodeConfig decodes YAML parameters from r and applies them over p.
// Unknown keys are rejected.
func DecodeConfig(r io.Reader, p *Processor) error {
	var cfg fileConfig

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if cfg.Width != nil {
		p.Width = *cfg.Width
	}
	if cfg.Height != nil {
		p.Height = *cfg.Height
	}
	if cfg.Iterations != nil {
		p.Iterations = *cfg.Iterations
	}
	if cfg.Angle != nil {
		p.Angle = *cfg.Angle
	}
	if cfg.Distance != nil {
		p.Distance = *cfg.Distance
	}
	if cfg.Size != nil {
		p.Size = *cfg.Size
	}
	if cfg.Title != nil {
		p.Title = *cfg.Title
	}
	if cfg.JustSVG != nil {
		p.JustSVG = *cfg.JustSVG
	}
	if cfg.Shape != nil {
		p.Shape = ShapeType(*cfg.Shape)
	}
	if cfg.Preview != nil {
		p.Preview = *cfg.Preview
	}
	if cfg.Debug != nil {
		p.Debug = *cfg.Debug
	}
	return nil
}
