/*
Package goldspiral generates decorative vector graphics. It places a simple shape
repeatedly along a spiral, rotating it by the golden angle on every step,
and emits the accumulated shapes as an SVG document, optionally wrapped in an HTML page.

The package provides a command line interface, supporting various flags for tuning the spiral.
To check the supported commands type:

	$ goldspiral --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/goldspiral"
	)

	func main() {
		p := goldspiral.DefaultProcessor()
		p.Iterations = 500
		p.JustSVG = true

		if err := p.Process(os.Stdout); err != nil {
			fmt.Printf("Error generating the spiral: %s", err.Error())
		}
	}
*/
package goldspiral
