// Package state holds the sketch model: drawable objects, the reversible
// command abstraction and the document that owns the object list and the
// undo/redo history, plus the per-session editing state built on top.
//
// Everything here is confined to the UI event thread (one logical session,
// no interleaved mutation), so the package does no locking.
package state

// Document owns the ordered object list (index = z-order = insertion order)
// and the two command stacks. All mutation of the list goes through commands
// applied via Apply, Undo and Redo.
type Document struct {
	objects []Drawable
	undo    []Command
	redo    []Command
}

func NewDocument() *Document {
	return &Document{}
}

// push appends without touching history; commands call it from Execute.
func (d *Document) push(obj Drawable) {
	d.objects = append(d.objects, obj)
}

// Apply executes a fresh command and records it. Any redoable future is
// invalidated: a new user action always clears the redo stack.
func (d *Document) Apply(cmd Command) {
	cmd.Execute(d)
	d.undo = append(d.undo, cmd)
	d.redo = nil
}

// Undo reverses the most recent command and moves it to the redo stack.
// With nothing to undo it reports false and does nothing.
func (d *Document) Undo() bool {
	if len(d.undo) == 0 {
		return false
	}
	cmd := d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]
	cmd.Undo(d)
	d.redo = append(d.redo, cmd)
	return true
}

// Redo re-executes the most recently undone command and moves it back to the
// undo stack. With nothing to redo it reports false and does nothing.
func (d *Document) Redo() bool {
	if len(d.redo) == 0 {
		return false
	}
	cmd := d.redo[len(d.redo)-1]
	d.redo = d.redo[:len(d.redo)-1]
	cmd.Execute(d)
	d.undo = append(d.undo, cmd)
	return true
}

func (d *Document) CanUndo() bool { return len(d.undo) > 0 }
func (d *Document) CanRedo() bool { return len(d.redo) > 0 }

func (d *Document) Len() int { return len(d.objects) }

// Objects returns a copy of the object list in z-order.
func (d *Document) Objects() []Drawable {
	out := make([]Drawable, len(d.objects))
	copy(out, d.objects)
	return out
}

// At returns the object at index i, or nil when out of range.
func (d *Document) At(i int) Drawable {
	if i < 0 || i >= len(d.objects) {
		return nil
	}
	return d.objects[i]
}

// Last returns the most recently placed object, or nil for an empty document.
func (d *Document) Last() Drawable {
	if len(d.objects) == 0 {
		return nil
	}
	return d.objects[len(d.objects)-1]
}

// LastIndex returns the index of the last object, or 0 when empty.
func (d *Document) LastIndex() int {
	if len(d.objects) == 0 {
		return 0
	}
	return len(d.objects) - 1
}

// ReplaceAt swaps the object at index i. Out-of-range indices are ignored.
func (d *Document) ReplaceAt(i int, obj Drawable) {
	if i < 0 || i >= len(d.objects) {
		return
	}
	d.objects[i] = obj
}

// RemoveAt deletes the object at index i. Out-of-range indices are ignored.
func (d *Document) RemoveAt(i int) {
	if i < 0 || i >= len(d.objects) {
		return
	}
	d.objects = append(d.objects[:i], d.objects[i+1:]...)
}

// Reset replaces the object list wholesale and clears both history stacks.
// Used when loading a document from disk.
func (d *Document) Reset(objects []Drawable) {
	d.objects = append([]Drawable(nil), objects...)
	d.undo = nil
	d.redo = nil
}

// Draw renders every object in z-order.
func (d *Document) Draw(r Renderer) {
	for _, obj := range d.objects {
		obj.Draw(r)
	}
}
