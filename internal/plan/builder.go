package plan

import (
	"gallery-compiler/internal/common"
	"gallery-compiler/internal/gallery"
)

// Build projects a validated Spec onto a RenderPlan. It is deterministic and
// keeps order: the i-th entry becomes the slot with Index i. Captions are
// copied so the plan shares no memory with the Spec.
func Build(spec gallery.Spec) RenderPlan {
	slots := make([]Slot, spec.Len())

	for i := range slots {
		entry := spec.At(i)

		slots[i] = Slot{
			Index:   i,
			Src:     entry.Src,
			Width:   entry.Width,
			Height:  entry.Height,
			Caption: common.Clone(entry.Caption),
		}
	}

	return RenderPlan{Slots: slots}
}
