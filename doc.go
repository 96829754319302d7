// Package g2d provides a software 2D rasterizer and a hierarchical
// panel layout engine for Go.
//
// # Overview
//
// g2d renders into plain pixel buffers on the CPU. The root package
// holds the color/blend math and the Surface type with its primitive
// drawing operations (pixel, line, circle, triangle, rectangle, sprite
// blit, text blit). The gui subpackage builds panel trees and resolves
// them into drawable rectangles every frame; the text subpackage
// rasterizes strings into RGBA buffers; the config subpackage loads
// TOML themes.
//
// # Quick Start
//
//	import "github.com/gogfx/g2d"
//
//	s := g2d.NewSurface(320, 240, g2d.White)
//	s.DrawCircle(g2d.Pt(160, 120), 60, g2d.Red, true)
//	s.DrawLine(g2d.Pt(0, 0), g2d.Pt(319, 239), g2d.Black)
//	s.SavePNG("output.png")
//
// # Compositing
//
// Surfaces store premultiplied alpha. Every drawing operation
// premultiplies its input color and either replaces the destination
// pixel or composites over it with the Porter-Duff "over" operator,
// depending on the surface's draw mode.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Out-of-bounds writes are silently dropped per pixel; drawing never
// fails.
//
// # Frame Model
//
// The library is single-threaded and frame-synchronous: game logic
// mutates surfaces and panel trees, the gui resolver produces a fresh
// resolved tree, and a display pass walks it back-to-front. Nothing in
// the drawing path blocks, locks, or returns errors.
package g2d
