package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Culler is the camera capability the batch consumes: it reports whether an
// axis-aligned bounding box is on screen. The batch forwards either
// screen-space or raw coordinates per Options; the interpretation belongs to
// the implementation.
type Culler interface {
	AABBOnScreen(pos, size Vec2) bool
}

// Placement is a partial screen-transform result returned by a
// TransformFunc. Components left unset keep the sprite's prior screen-space
// values — stale carry-over across frames is intentional, not a reset.
type Placement struct {
	x, y, rot          float64
	hasX, hasY, hasRot bool
}

// WithX sets the screen X component.
func (p Placement) WithX(x float64) Placement {
	p.x = x
	p.hasX = true
	return p
}

// WithY sets the screen Y component.
func (p Placement) WithY(y float64) Placement {
	p.y = y
	p.hasY = true
	return p
}

// WithRotation sets a rotation offset in radians, added to the sprite's own
// Rotation when the placement is applied.
func (p Placement) WithRotation(rot float64) Placement {
	p.rot = rot
	p.hasRot = true
	return p
}

// TransformFunc resolves a sprite's screen placement each update. When nil,
// screen position is Position+Offset and screen rotation is Rotation.
type TransformFunc func(s *Sprite) Placement

// Options configures a Batch. The zero value matches the defaults: no
// transform function, no culling, screen-space culling and drawing, default
// render pipeline.
type Options struct {
	// Transform, when set, resolves screen placement per sprite instead of
	// the Position+Offset copy.
	Transform TransformFunc

	// Camera is a custom culling camera. When nil and UseDefaultCamera is
	// false, no culling occurs and the filter is Visible alone.
	Camera Culler
	// UseDefaultCamera culls against the scheduler's default camera,
	// resolved at registration time. Ignored when Camera is set.
	UseDefaultCamera bool

	// CullInWorldSpace culls using raw Position/Size instead of the
	// resolved ScreenPosition/Size.
	CullInWorldSpace bool
	// DrawInWorldSpace draws using raw Position+Offset/Rotation instead of
	// the resolved screen-space cache.
	DrawInWorldSpace bool

	// Shader, when set, is applied to every sprite in the batch.
	Shader *ebiten.Shader
}

// Batch owns a flat collection of sprites and runs the per-frame pipeline:
// transform resolution, viewport culling, depth/texture sorting, and batched
// draw submission. All methods must be called from the frame thread; nothing
// is locked.
type Batch struct {
	opts    Options
	sprites []*Sprite

	// render is the filtered, sorted subset rebuilt on every Update and
	// consumed by Draw. sortBuf is the merge sort scratch.
	render  []*Sprite
	sortBuf []*Sprite

	order textureOrder

	total    int
	rendered int

	// Draw scratch, reconfigured per sprite. Owned for the batch's
	// lifetime to avoid per-frame allocation.
	op       ebiten.DrawImageOptions
	shaderOp ebiten.DrawRectShaderOptions
}

// New creates a batch with the given options.
func New(opts Options) *Batch {
	return &Batch{opts: opts}
}

// Add creates a sprite for the given texture and appends it to the batch.
// The returned pointer is the sole handle external code uses to mutate the
// sprite thereafter. The texture is stored verbatim, no validation.
func (b *Batch) Add(tex *ebiten.Image) *Sprite {
	s := newSprite(tex)
	b.sprites = append(b.sprites, s)
	return s
}

// Remove deletes the first entry identical to s from the batch. No-op if s
// is absent. O(n) in list size; remaining sprite handles stay valid.
func (b *Batch) Remove(s *Sprite) {
	for i, cur := range b.sprites {
		if cur == s {
			b.sprites = append(b.sprites[:i], b.sprites[i+1:]...)
			return
		}
	}
}

// Sprites returns the owned sprite list in insertion order. The returned
// slice MUST NOT be mutated.
func (b *Batch) Sprites() []*Sprite {
	return b.sprites
}

// RenderList returns the render list produced by the last Update: the
// filtered subset in draw order. The returned slice MUST NOT be mutated.
func (b *Batch) RenderList() []*Sprite {
	return b.render
}

// Update runs the per-frame pipeline: transform resolution, cull filter,
// stable sort, counter refresh. cam is the active camera for this frame; nil
// means no culling. Every sprite's OnScreen flag is freshly written, not
// only those passing the filter.
func (b *Batch) Update(cam Culler) {
	for _, s := range b.sprites {
		if b.opts.Transform != nil {
			p := b.opts.Transform(s)
			if p.hasX {
				s.ScreenPosition.X = p.x
			}
			if p.hasY {
				s.ScreenPosition.Y = p.y
			}
			if p.hasRot {
				s.ScreenRotation = s.Rotation + p.rot
			}
		} else {
			s.ScreenPosition = s.Position.Add(s.Offset)
			s.ScreenRotation = s.Rotation
		}
	}

	b.render = b.render[:0]
	for _, s := range b.sprites {
		on := s.Visible
		if on && cam != nil {
			if b.opts.CullInWorldSpace {
				on = cam.AABBOnScreen(s.Position, s.Size)
			} else {
				on = cam.AABBOnScreen(s.ScreenPosition, s.Size)
			}
		}
		s.OnScreen = on
		if on {
			s.texRank = b.order.rank(s.Texture)
			s.filterOrder = len(b.render)
			b.render = append(b.render, s)
		}
	}

	b.mergeSort()

	b.total = len(b.sprites)
	b.rendered = len(b.render)
}

// Draw submits one draw call per sprite in the current render list, in
// sorted order, reusing the batch-owned options scratch. The draw color is
// opaque white; the configured shader, if any, is applied to every sprite.
func (b *Batch) Draw(target *ebiten.Image) {
	screenSpace := !b.opts.DrawInWorldSpace

	if b.opts.Shader != nil {
		b.shaderOp.ColorScale.Reset()
		for _, s := range b.render {
			s.drawShader(target, b.opts.Shader, &b.shaderOp, screenSpace)
		}
		return
	}

	b.op.ColorScale.Reset()
	for _, s := range b.render {
		s.draw(target, &b.op, screenSpace)
	}
}

// Counts returns the debug counters from the last Update: total sprite count
// and post-filter rendered count.
func (b *Batch) Counts() (total, rendered int) {
	return b.total, b.rendered
}

// Register adds the batch's update and draw routines to the scheduler. The
// update task runs at basePriority+1000 and the draw task at basePriority,
// so update precedes draw within a frame under the scheduler's phase
// contract. The active camera is resolved once here: a custom Camera option
// is used as-is, UseDefaultCamera takes the scheduler's default camera, and
// neither means no culling.
func (b *Batch) Register(sched FrameScheduler, basePriority int) {
	var cam Culler
	switch {
	case b.opts.Camera != nil:
		cam = b.opts.Camera
	case b.opts.UseDefaultCamera:
		if dc := sched.DefaultCamera(); dc != nil {
			cam = dc
		}
	}
	sched.AddUpdateTask(func() { b.Update(cam) }, basePriority+1000)
	sched.AddDrawTask(b.Draw, basePriority)
}

// AddDebugWatch registers a watch formatter producing "<N>s, <M>r" (sprite
// count, rendered count) under the given name.
func (b *Batch) AddDebugWatch(name string, w Watcher) {
	w.AddWatch(name, func() string {
		return fmt.Sprintf("%ds, %dr", b.total, b.rendered)
	})
}

// --- Render list sort ---

// spriteLessOrEqual returns true if a should sort before or at the same
// position as b: ascending Z, then first-seen texture rank, then filter
// order. Using <= on filterOrder ensures stability.
func spriteLessOrEqual(a, b *Sprite) bool {
	if a.Z != b.Z {
		return a.Z < b.Z
	}
	if a.texRank != b.texRank {
		return a.texRank < b.texRank
	}
	return a.filterOrder <= b.filterOrder
}

// mergeSort sorts b.render in-place using b.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches its
// high-water mark.
func (b *Batch) mergeSort() {
	n := len(b.render)
	if n <= 1 {
		return
	}
	if cap(b.sortBuf) < n {
		b.sortBuf = make([]*Sprite, n)
	}
	b.sortBuf = b.sortBuf[:n]

	src := b.render
	dst := b.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			mergeRun(src, dst, lo, mid, hi)
		}
		src, dst = dst, src
		swapped = !swapped
	}

	if swapped {
		copy(b.render, b.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []*Sprite, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if spriteLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
