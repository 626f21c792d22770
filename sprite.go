package rowan

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a single renderable entity owned by a Batch. External game logic
// mutates the exported fields between frames; Batch.Update resolves the
// screen-space cache and visibility each frame before Batch.Draw consumes
// them.
type Sprite struct {
	// Position is the world-space anchor.
	Position Vec2
	// Size is the render extent in world units.
	Size Vec2
	// Offset is an additive local offset applied before Position is used.
	// Not applied when a transform function supplies screen position
	// directly.
	Offset Vec2

	// FrameSize and Frame select a sub-region of the texture atlas:
	// the viewport is (Frame.X*FrameSize.X, Frame.Y*FrameSize.Y,
	// FrameSize.X, FrameSize.Y). FrameSize must be non-zero in both axes;
	// the render scale divides by it.
	FrameSize Vec2
	Frame     Vec2

	// Z is the primary sort key, ascending.
	Z float64
	// Rotation is in radians, applied about the sprite's center.
	Rotation float64

	// Visible is the user-controlled inclusion flag.
	Visible bool
	// OnScreen is the last-computed cull result. Overwritten for every
	// sprite on every Batch.Update; not authoritative before the first.
	OnScreen bool

	// FlipX and FlipY mirror the sprite, realized as negative scale factors.
	FlipX, FlipY bool

	// Texture is the atlas image. Stored verbatim; identity is used for
	// draw-order batching.
	Texture *ebiten.Image

	// ScreenPosition and ScreenRotation are the per-frame resolved
	// transform, written by Batch.Update and read by Batch.Draw.
	ScreenPosition Vec2
	ScreenRotation float64

	// Sort keys assigned during the cull filter each update.
	texRank     int
	filterOrder int
}

// newSprite returns a sprite with default frame geometry. Creation goes
// through Batch.Add so the batch owns the sprite list.
func newSprite(tex *ebiten.Image) *Sprite {
	return &Sprite{
		FrameSize: Vec2{1, 1},
		Visible:   true,
		Texture:   tex,
	}
}

// frameRect returns the atlas viewport for the current frame selection, in
// texture pixel space.
func (s *Sprite) frameRect() Rect {
	return Rect{
		X:      s.Frame.X * s.FrameSize.X,
		Y:      s.Frame.Y * s.FrameSize.Y,
		Width:  s.FrameSize.X,
		Height: s.FrameSize.Y,
	}
}

// renderScale returns the per-axis draw scale: Size over FrameSize, negated
// by the flip flags. A zero FrameSize component yields an infinite scale that
// propagates to the backend unmodified.
func (s *Sprite) renderScale() (sx, sy float64) {
	sx = s.Size.X / s.FrameSize.X
	sy = s.Size.Y / s.FrameSize.Y
	if s.FlipX {
		sx = -sx
	}
	if s.FlipY {
		sy = -sy
	}
	return sx, sy
}

// resolve returns the position and rotation the draw op uses: the
// screen-space cache when screenSpace is true, raw Position+Offset and
// Rotation otherwise.
func (s *Sprite) resolve(screenSpace bool) (Vec2, float64) {
	if screenSpace {
		return s.ScreenPosition, s.ScreenRotation
	}
	return s.Position.Add(s.Offset), s.Rotation
}

// draw issues one textured-quad draw call for the sprite. The options value
// is the batch-owned scratch, reconfigured per sprite; only its GeoM is
// touched here. Errors from the backend (e.g. a deallocated texture) are not
// caught.
func (s *Sprite) draw(target *ebiten.Image, op *ebiten.DrawImageOptions, screenSpace bool) {
	pos, rot := s.resolve(screenSpace)

	fr := s.frameRect()
	sub := s.Texture.SubImage(image.Rect(
		int(fr.X), int(fr.Y),
		int(fr.X+fr.Width), int(fr.Y+fr.Height),
	)).(*ebiten.Image)

	sx, sy := s.renderScale()

	// Origin at the quad center, then scale, rotate, place.
	op.GeoM.Reset()
	op.GeoM.Translate(-fr.Width/2, -fr.Height/2)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(rot)
	op.GeoM.Translate(pos.X, pos.Y)

	target.DrawImage(sub, op)
}

// drawShader is the shader-pipeline variant of draw, using the batch-owned
// DrawRectShaderOptions scratch.
func (s *Sprite) drawShader(target *ebiten.Image, shader *ebiten.Shader, op *ebiten.DrawRectShaderOptions, screenSpace bool) {
	pos, rot := s.resolve(screenSpace)

	fr := s.frameRect()
	sub := s.Texture.SubImage(image.Rect(
		int(fr.X), int(fr.Y),
		int(fr.X+fr.Width), int(fr.Y+fr.Height),
	)).(*ebiten.Image)

	sx, sy := s.renderScale()

	op.GeoM.Reset()
	op.GeoM.Translate(-fr.Width/2, -fr.Height/2)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(rot)
	op.GeoM.Translate(pos.X, pos.Y)

	op.Images[0] = sub
	target.DrawRectShader(int(fr.Width), int(fr.Height), shader, op)
	op.Images[0] = nil
}
