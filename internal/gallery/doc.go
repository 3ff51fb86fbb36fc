// Package gallery defines the platform-neutral gallery model and turns
// untyped records into a validated Spec.
//
// A gallery is an ordered list of images. Each image carries a source, an
// optional caption and its dimensions in logical pixels:
//
//	version: "1.0"
//	layout:
//	  columns: 3
//	images:
//	  - src: /a.jpg
//	    caption: Cap A
//	    width: 200
//	    height: 150
//	  - src: /b.jpg
//	    width: 200
//	    height: 150
//
// # Validation
//
// Validate checks records in order and stops at the first problem. The
// returned *ValidationError names the kind of failure and the offending
// record index:
//
//   - EmptySequence: no records at all
//   - MissingSource: src absent, not a string, or blank
//   - InvalidDimension: width/height absent, fractional, non-numeric or < 1
//   - InvalidCaption: caption present but not a string
//
// # Captions
//
// A missing (or null) caption and an empty caption are different things.
// The first renders no caption at all, the second renders an empty caption
// node. ImageEntry keeps the difference with a *string.
//
// # Styling
//
// Records carry no styling. Keys such as "border" or "style" are not part of
// the model; Lint reports them, Validate ignores them.
package gallery
