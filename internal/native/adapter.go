package native

import (
	"gallery-compiler/internal/plan"
)

// DefaultColumnCount is used when Options.ColumnCount is not positive.
const DefaultColumnCount = 2

// Options configures the native adapter.
type Options struct {
	// ColumnCount is the grid span hint.
	ColumnCount int
}

// DefaultOptions returns the default native options.
func DefaultOptions() Options {
	return Options{ColumnCount: DefaultColumnCount}
}

// Adapter renders plans into native Descriptors. It is safe for concurrent use.
type Adapter struct {
	columns int
}

// NewAdapter creates a new Adapter.
func NewAdapter(opts Options) *Adapter {
	columns := opts.ColumnCount
	if columns < 1 {
		columns = DefaultColumnCount
	}

	return &Adapter{columns: columns}
}

// ColumnCount returns the column count the adapter emits.
func (a *Adapter) ColumnCount() int {
	return a.columns
}

// Render produces a Descriptor whose items align 1:1 with the plan slots.
func (a *Adapter) Render(p plan.RenderPlan) *Descriptor {
	return a.RenderColumns(p, a.columns)
}

// RenderColumns is Render with a per-call column count; values below 1
// fall back to the adapter's own count.
func (a *Adapter) RenderColumns(p plan.RenderPlan, columns int) *Descriptor {
	if columns < 1 {
		columns = a.columns
	}

	items := make([]Item, 0, p.Len())

	for _, slot := range p.Slots {
		item := Item{
			Src:    slot.Src,
			Width:  slot.Width,
			Height: slot.Height,
		}

		if text, ok := slot.CaptionText(); ok {
			item.Caption = &text
		}

		items = append(items, item)
	}

	return &Descriptor{
		ColumnCount: columns,
		Items:       items,
	}
}
