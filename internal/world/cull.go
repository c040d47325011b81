package world

import "github.com/tomz197/dodger/internal/object"

// Cull removes inactive entities and those outside the simulation band.
// Survivors keep their relative order.
func (w *World) Cull() {
	for _, seq := range w.sequences() {
		*seq = cull(*seq)
	}
}

func cull(entities []object.Entity) []object.Entity {
	kept := entities[:0] // reuse backing array
	for _, e := range entities {
		if e.IsActive() && e.Y >= CullTop && e.Y <= CullBottom {
			kept = append(kept, e)
		}
	}
	clear(entities[len(kept):])
	return kept
}
