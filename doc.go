// Package rowan is a 2D sprite batching and culling layer for [Ebitengine].
//
// Rowan owns a flat collection of sprites, resolves their screen-space
// transforms each frame, culls them against a camera viewport, sorts the
// visible set by depth and texture to minimize state changes, and submits
// one draw call per sprite with a shared, reused options scratch.
//
// It is not a scene graph, physics system, or asset pipeline: game logic
// mutates sprite fields directly between frames and the batch handles
// visibility and ordering.
//
// # Quick start
//
// The simplest way to get started is [Loop], which implements [ebiten.Game]
// and schedules the batch's update and draw phases for you:
//
//	loop := rowan.NewLoop(640, 480)
//	batch := rowan.New(rowan.Options{UseDefaultCamera: true})
//	batch.Register(loop, 100)
//
//	s := batch.Add(texture)
//	s.Position = rowan.Vec2{X: 100, Y: 50}
//	s.Size = rowan.Vec2{X: 32, Y: 32}
//
//	ebiten.RunGame(loop)
//
// For full control, call [Batch.Update] and [Batch.Draw] from your own game
// loop; update must run before draw within a frame.
//
// # Sprite sheets
//
// Sprites select an atlas sub-region via Frame and FrameSize. [Sheet] maps
// JSON-defined frame names to grid cells, and [FrameAnimation] steps a
// sprite through a cell sequence at a fixed rate.
//
// [Ebitengine]: https://ebitengine.org
package rowan
