package state

// Command is a reversible document mutation. A command records exactly the
// state it needs to take itself back; the document's two stacks move
// commands between Execute and Undo.
type Command interface {
	Execute(doc *Document)
	Undo(doc *Document)
}

// AddObject appends an object to the document. The landing index is captured
// at execute time, not at construction, and re-executing (redo) restores the
// object at that same index.
type AddObject struct {
	object Drawable
	index  int
}

func NewAddObject(obj Drawable) *AddObject {
	return &AddObject{object: obj}
}

// Object returns the drawable this command adds.
func (c *AddObject) Object() Drawable { return c.object }

func (c *AddObject) Execute(doc *Document) {
	doc.push(c.object)
	c.index = doc.LastIndex()
}

func (c *AddObject) Undo(doc *Document) {
	doc.RemoveAt(c.index)
}

// ReplaceObjectAt swaps the object in one slot for another, keeping both
// references so the swap can run in either direction. The index is fixed:
// adds only ever append and replaces never change the list length, so a
// recorded index stays valid for as long as the command is on a stack.
type ReplaceObjectAt struct {
	index       int
	original    Drawable
	replacement Drawable
}

func NewReplaceObjectAt(index int, original, replacement Drawable) *ReplaceObjectAt {
	return &ReplaceObjectAt{index: index, original: original, replacement: replacement}
}

func (c *ReplaceObjectAt) Execute(doc *Document) {
	doc.ReplaceAt(c.index, c.replacement)
}

func (c *ReplaceObjectAt) Undo(doc *Document) {
	doc.ReplaceAt(c.index, c.original)
}
