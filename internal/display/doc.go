// Package display paints a rendered element tree onto a terminal. It is
// a host of the render engine, not part of it: it consumes the element
// tree the pipeline produced and maps leaf-block elements to terminal
// rows and leaf spans to styled cells.
//
// The package also provides a plain-text tree writer used by the CLI
// when stdout is not a terminal.
package display
