package state

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchpad/internal/geom"
)

func TestDocumentRoundTrip(t *testing.T) {
	doc := NewDocument()
	red := color.NRGBA{R: 255, A: 255}

	stroke := NewStroke(red, 5)
	stroke.AddPoint(geom.Point{X: 1, Y: 2})
	stroke.AddPoint(geom.Point{X: 3, Y: 4})
	line := NewLineSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 50}, color.Black, 3)
	ellipse := NewEllipseSegment(geom.Ellipse{Center: geom.Point{X: 50, Y: 50}, RadiusX: 20, RadiusY: 30}, red, 2)

	doc.Apply(NewAddObject(stroke))
	doc.Apply(NewAddObject(line))
	doc.Apply(NewAddObject(ellipse))

	var buf bytes.Buffer
	require.NoError(t, EncodeDocument(&buf, doc))

	loaded, err := DecodeDocument(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())

	// Identity and geometry survive; history does not.
	assert.Equal(t, objectIDs(doc), objectIDs(loaded))
	assert.False(t, loaded.CanUndo())
	assert.False(t, loaded.CanRedo())

	s, ok := loaded.At(0).(*Stroke)
	require.True(t, ok)
	assert.Equal(t, stroke.Points(), s.Points())
	assert.Equal(t, red, s.Color())
	assert.Equal(t, float32(5), s.Width())

	l, ok := loaded.At(1).(*LineSegment)
	require.True(t, ok)
	assert.Equal(t, line.End(), l.End())

	e, ok := loaded.At(2).(*EllipseSegment)
	require.True(t, ok)
	assert.Equal(t, ellipse.Ellipse(), e.Ellipse())
}

func TestDecodeDocumentRejectsUnknownType(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader(`[{"type":"spline","id":"x"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown object type")
}

func TestDecodeDocumentRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestDecodeDocumentMissingGeometry(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader(`[{"type":"line","id":"x","color":[0,0,0,255],"width":3}]`))
	assert.Error(t, err)
}
