package state

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"

	"sketchpad/internal/geom"
)

// Serialized document format: a JSON array of type-tagged objects. Object
// identity (ID) survives a round trip; the undo/redo history does not, a
// loaded document always starts with empty stacks.

const (
	typeStroke  = "stroke"
	typeLine    = "line"
	typeEllipse = "ellipse"
)

type objectJSON struct {
	Type    string        `json:"type"`
	ID      string        `json:"id"`
	Color   [4]uint8      `json:"color"`
	Width   float32       `json:"width"`
	Points  []geom.Point  `json:"points,omitempty"`
	Start   *geom.Point   `json:"start,omitempty"`
	End     *geom.Point   `json:"end,omitempty"`
	Ellipse *geom.Ellipse `json:"ellipse,omitempty"`
}

func encodeColor(c color.Color) [4]uint8 {
	r, g, b, a := c.RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func decodeColor(q [4]uint8) color.Color {
	return color.NRGBA{R: q[0], G: q[1], B: q[2], A: q[3]}
}

// EncodeDocument writes the document's object list as indented JSON.
func EncodeDocument(w io.Writer, doc *Document) error {
	objs := doc.Objects()
	out := make([]objectJSON, 0, len(objs))
	for _, obj := range objs {
		switch o := obj.(type) {
		case *Stroke:
			out = append(out, objectJSON{
				Type:   typeStroke,
				ID:     o.ID(),
				Color:  encodeColor(o.Color()),
				Width:  o.Width(),
				Points: o.Points(),
			})
		case *LineSegment:
			start, end := o.Start(), o.End()
			out = append(out, objectJSON{
				Type:  typeLine,
				ID:    o.ID(),
				Color: encodeColor(o.Color()),
				Width: o.Width(),
				Start: &start,
				End:   &end,
			})
		case *EllipseSegment:
			e := o.Ellipse()
			out = append(out, objectJSON{
				Type:    typeEllipse,
				ID:      o.ID(),
				Color:   encodeColor(o.Color()),
				Width:   o.Width(),
				Ellipse: &e,
			})
		default:
			return fmt.Errorf("encode document: unknown object type %T", obj)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// DecodeDocument reads a serialized object list into a fresh document with
// empty history stacks.
func DecodeDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	var in []objectJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	objects := make([]Drawable, 0, len(in))
	for _, o := range in {
		c := decodeColor(o.Color)
		switch o.Type {
		case typeStroke:
			s := NewStroke(c, o.Width)
			for _, p := range o.Points {
				s.AddPoint(p)
			}
			if o.ID != "" {
				s.id = o.ID
			}
			objects = append(objects, s)
		case typeLine:
			if o.Start == nil || o.End == nil {
				return nil, fmt.Errorf("decode document: line %q missing endpoints", o.ID)
			}
			l := NewLineSegment(*o.Start, *o.End, c, o.Width)
			if o.ID != "" {
				l.id = o.ID
			}
			objects = append(objects, l)
		case typeEllipse:
			if o.Ellipse == nil {
				return nil, fmt.Errorf("decode document: ellipse %q missing parameters", o.ID)
			}
			e := NewEllipseSegment(*o.Ellipse, c, o.Width)
			if o.ID != "" {
				e.id = o.ID
			}
			objects = append(objects, e)
		default:
			return nil, fmt.Errorf("decode document: unknown object type %q", o.Type)
		}
	}

	doc := NewDocument()
	doc.Reset(objects)
	return doc, nil
}
