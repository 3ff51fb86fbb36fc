package web

import (
	"strconv"

	"gallery-compiler/internal/plan"
)

// Options configures the class names put on generated nodes. An empty
// class name leaves the class attribute off that node.
type Options struct {
	ContainerClass string
	ImageClass     string
	CaptionClass   string
}

// DefaultOptions returns the default class names.
func DefaultOptions() Options {
	return Options{
		ContainerClass: "gallery-item",
		ImageClass:     "gallery-image",
		CaptionClass:   "gallery-caption",
	}
}

// Adapter renders plans into web Instructions. It is safe for concurrent use.
type Adapter struct {
	opts Options
}

// NewAdapter creates a new Adapter.
func NewAdapter(opts Options) *Adapter {
	return &Adapter{opts: opts}
}

// Render produces one container node per slot, in plan order.
func (a *Adapter) Render(p plan.RenderPlan) Instructions {
	out := make(Instructions, 0, p.Len())

	for _, slot := range p.Slots {
		out = append(out, a.container(slot))
	}

	return out
}

func (a *Adapter) container(slot plan.Slot) Node {
	children := []Node{a.image(slot)}

	if text, ok := slot.CaptionText(); ok {
		children = append(children, a.caption(text))
	}

	attrs := a.attrs(a.opts.ContainerClass)
	attrs[AttrDataIndex] = strconv.Itoa(slot.Index)

	return Node{
		Tag:        TagDiv,
		Attributes: attrs,
		Children:   children,
	}
}

func (a *Adapter) image(slot plan.Slot) Node {
	attrs := a.attrs(a.opts.ImageClass)
	attrs[AttrSrc] = slot.Src
	attrs[AttrWidth] = strconv.Itoa(slot.Width)
	attrs[AttrHeight] = strconv.Itoa(slot.Height)

	return Node{
		Tag:        TagImg,
		Attributes: attrs,
		Children:   []Node{},
	}
}

func (a *Adapter) caption(text string) Node {
	return Node{
		Tag:        TagSpan,
		Attributes: a.attrs(a.opts.CaptionClass),
		Children:   []Node{},
		Text:       &text,
	}
}

func (a *Adapter) attrs(class string) map[string]string {
	attrs := make(map[string]string, 4)
	if class != "" {
		attrs[AttrClass] = class
	}

	return attrs
}
