package web

// Element tags emitted by the adapter.
const (
	TagDiv  = "div"
	TagImg  = "img"
	TagSpan = "span"
)

// Attribute names emitted by the adapter.
const (
	AttrClass     = "class"
	AttrDataIndex = "data-index"
	AttrSrc       = "src"
	AttrWidth     = "width"
	AttrHeight    = "height"
)

// Node describes one DOM element to be created by caller-owned rendering code.
type Node struct {
	// Tag is the element name: "div", "img" or "span".
	Tag string `json:"tag" yaml:"tag"`
	// Attributes are the element attributes.
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
	// Children in document order.
	Children []Node `json:"children" yaml:"children"`
	// Text is the element's text content; nil means no text node.
	Text *string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Instructions is the ordered list of container nodes, one per slot.
type Instructions []Node

// Len returns the number of container nodes.
func (ins Instructions) Len() int {
	return len(ins)
}

// Find returns the first direct child with the given tag.
func (n Node) Find(tag string) (Node, bool) {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c, true
		}
	}

	return Node{}, false
}
