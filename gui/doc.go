// Package gui builds hierarchical panel trees and resolves them into
// drawable rectangles once per frame.
//
// A Panel positions itself inside its parent with two Transforms (one
// for position, one for size), each either an absolute pixel measure
// or a fraction of the parent's resolved dimensions. Panel content is
// a closed set of variants: a bitmap, rasterized text, a background
// color with nested child panels, or an embedded g2d.Surface.
//
// The Resolver walks the source tree top-down and produces a parallel
// tree of ResolvedNodes, each carrying a rectangle clamped into its
// parent and a ready-to-draw payload. The display pass walks the
// resolved tree in pre-order against a DrawTarget, so children always
// draw on top of their parents.
//
// Trees have no parent pointers and are re-resolved from scratch every
// frame; nothing is cached between frames. That keeps mutation by game
// logic trivially safe within the single-threaded frame model.
package gui
