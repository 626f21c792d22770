package rowan

import "github.com/hajimehoshi/ebiten/v2"

// textureOrder assigns each distinct texture a stable integer rank in
// first-seen order. Used only as a sort tie-breaker so sprites sharing a
// texture become contiguous within a depth layer.
//
// Each Batch owns its own registry; the ordering is deterministic within a
// run but depends on lookup order, so it is not stable across runs.
type textureOrder struct {
	ranks map[*ebiten.Image]int
}

// rank returns the texture's rank, assigning the next free rank on first
// lookup of an unseen texture.
func (o *textureOrder) rank(tex *ebiten.Image) int {
	if r, ok := o.ranks[tex]; ok {
		return r
	}
	if o.ranks == nil {
		o.ranks = make(map[*ebiten.Image]int)
	}
	r := len(o.ranks)
	o.ranks[tex] = r
	return r
}
