package goldspiral

import (
	"fmt"
	"strings"
)

// Attr is a single name/value pair of a markup element.
type Attr struct {
	Name  string
	Value string
}

// attrAliases maps the attribute names which cannot be used directly
// by some callers to the name written into the markup.
var attrAliases = map[string]string{
	"clss":      "class",
	"css_class": "class",
}

// Element is a generic markup tag. The attributes are kept in insertion order
// so the rendered output is deterministic.
type Element struct {
	Name     string
	Children []*Element

	attrs   []Attr
	initial []Attr
}

// NewElement creates a new element. The attributes are copied,
// the copy being the state restored by Reset.
func NewElement(name string, attrs []Attr, children ...*Element) *Element {
	return &Element{
		Name:     name,
		Children: children,
		attrs:    copyAttrs(attrs),
		initial:  copyAttrs(attrs),
	}
}

// Set updates the value of an existing attribute or appends a new one.
func (e *Element) Set(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// Get returns the value of the named attribute.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the current attributes.
func (e *Element) Attrs() []Attr {
	return copyAttrs(e.attrs)
}

// Reset restores the attributes supplied on construction.
func (e *Element) Reset() {
	e.attrs = copyAttrs(e.initial)
}

// Render serializes the element. An element without children is written as a
// self closing tag. Otherwise the attributes are placed after the children,
// right before the closing tag, which is how the legacy templates rendered it.
func (e *Element) Render() string {
	attrs := e.attrString()

	if len(e.Children) == 0 {
		return fmt.Sprintf("<%s %s/>", e.Name, attrs)
	}

	children := make([]string, 0, len(e.Children))
	for _, c := range e.Children {
		children = append(children, c.Render())
	}
	return fmt.Sprintf("<%s>%s%s</%s>", e.Name, strings.Join(children, "\n"), attrs, e.Name)
}

// String implements the fmt.Stringer interface.
func (e *Element) String() string {
	return e.Render()
}

func (e *Element) attrString() string {
	parts := make([]string, 0, len(e.attrs))
	for _, a := range e.attrs {
		name := a.Name
		if alias, ok := attrAliases[name]; ok {
			name = alias
		}
		parts = append(parts, fmt.Sprintf(`%s="%s"`, name, a.Value))
	}
	return strings.Join(parts, " ")
}

func copyAttrs(attrs []Attr) []Attr {
	if attrs == nil {
		return nil
	}
	dst := make([]Attr, len(attrs))
	copy(dst, attrs)
	return dst
}
