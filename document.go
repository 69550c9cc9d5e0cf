package goldspiral

import (
	"fmt"
	"html"
)

// StylesheetPath is the stylesheet referenced by the generated HTML page.
const StylesheetPath = "svg.css"

const htmlTemplate = `<!DOCTYPE html>
<html>
  <head>
    <title>%s</title>
    <link rel="stylesheet" href="%s">
  </head>
  <body>
    %s
  </body>
</html>`

// SvgDocument wraps the shape markup into the SVG root element.
func SvgDocument(body string, width, height int) string {
	return fmt.Sprintf(
		`<svg version="1.1" baseProfile="full" width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">%s</svg>`,
		width, height, body,
	)
}

// HtmlDocument embeds the SVG document into a minimal HTML page.
func HtmlDocument(title, svg string) string {
	return fmt.Sprintf(htmlTemplate, html.EscapeString(title), StylesheetPath, svg)
}
