// Package stitcher turns circle stitching commands into templates.
//
// A command string such as
//
//	H 16 K 0.3 N 3 L 7,1 S 2 ; L 4 C 10
//
// is read by Parse into a ParsedCommand. A Renderer lays it out as an ordered
// list of primitives (rects, circles, lines, text and closed polylines) in
// pixels, and WriteSVG or WritePNG serialize the result.
//
// Errors are typed: *SyntaxError from Parse, *ConfigurationError for values
// that parse but cannot be drawn, and *DomainError when the shape formula is
// undefined at some hole. Match them with errors.Is against ErrSyntax,
// ErrConfiguration and ErrDomain.
package stitcher
