// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"bytes"
	"errors"
	"testing"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
)

func TestBufferCreate(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	vb := env.dev.NewVertexBuffer(64, true)
	expectCalls(t, env.rec,
		call("GenBuffer", vb.obj),
		call("BindBuffer", gl.Enum(gl.ARRAY_BUFFER), vb.obj),
		call("BufferData", gl.Enum(gl.ARRAY_BUFFER), 64, gl.Enum(gl.STREAM_DRAW)),
	)
	env.rec.Reset()
	ib := env.dev.NewIndexBuffer(gpu.Index32, 6, false)
	expectCalls(t, env.rec,
		call("GenBuffer", ib.obj),
		call("BindBuffer", gl.Enum(gl.ELEMENT_ARRAY_BUFFER), ib.obj),
		call("BufferData", gl.Enum(gl.ELEMENT_ARRAY_BUFFER), 24, gl.Enum(gl.STATIC_DRAW)),
	)
	if got := ib.Size(); got != 24 {
		t.Errorf("got size %d, expected 24", got)
	}
}

func TestBufferSetData(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	vb := d.NewVertexBuffer(16, false)
	rec.Reset()
	vb.SetData(4, []byte{1, 2, 3, 4}, gpu.SetDataNone)
	expectCalls(t, rec, call("BufferSubData", gl.Enum(gl.ARRAY_BUFFER), 4, 4))
	if got, exp := rec.Contents(vb.obj), []byte{0, 0, 0, 0, 1, 2, 3, 4, 0, 0, 0, 0, 0, 0, 0, 0}; !bytes.Equal(got, exp) {
		t.Errorf("got contents %v, expected %v", got, exp)
	}

	rec.Reset()
	vb.SetData(0, []byte{9}, gpu.SetDataDiscard)
	expectCalls(t, rec,
		call("BufferData", gl.Enum(gl.ARRAY_BUFFER), 16, gl.Enum(gl.STATIC_DRAW)),
		call("BufferSubData", gl.Enum(gl.ARRAY_BUFFER), 0, 1),
	)
	if got := rec.Contents(vb.obj)[4]; got != 0 {
		t.Errorf("discarded contents survived: got %d", got)
	}
}

func TestBufferSetDataRange(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	vb := env.dev.NewVertexBuffer(4, false)
	defer func() {
		if recover() == nil {
			t.Error("out of range write did not panic")
		}
	}()
	vb.SetData(2, []byte{1, 2, 3}, gpu.SetDataNone)
}

func TestBufferGetData(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	vb := d.NewVertexBuffer(8, false)
	vb.SetData(0, []byte{1, 2, 3, 4, 5, 6, 7, 8}, gpu.SetDataNone)
	rec.Reset()
	dst := make([]byte, 3)
	if err := vb.GetData(2, dst); err != nil {
		t.Fatal(err)
	}
	if exp := []byte{3, 4, 5}; !bytes.Equal(dst, exp) {
		t.Errorf("got %v, expected %v", dst, exp)
	}
	expectCalls(t, rec,
		call("MapBuffer", gl.Enum(gl.ARRAY_BUFFER), gl.Enum(gl.READ_ONLY)),
		call("UnmapBuffer", gl.Enum(gl.ARRAY_BUFFER)),
	)
}

func TestBufferGetElementsStrided(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	vb := env.dev.NewVertexBuffer(24, false)
	src := make([]byte, 24)
	for i := range src {
		src[i] = byte(i)
	}
	vb.SetData(0, src, gpu.SetDataNone)
	dst := make([]byte, 6)
	if err := vb.GetElements(4, dst, 2, 8); err != nil {
		t.Fatal(err)
	}
	if exp := []byte{4, 5, 12, 13, 20, 21}; !bytes.Equal(dst, exp) {
		t.Errorf("got %v, expected %v", dst, exp)
	}
}

func TestBufferGetDataErrors(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	vb := d.NewVertexBuffer(8, false)

	rec.UnmapFails = true
	if err := vb.GetData(0, make([]byte, 8)); !errors.Is(err, ErrContentLost) {
		t.Errorf("got error %v, expected %v", err, ErrContentLost)
	}
	rec.UnmapFails = false

	rec.MapFails = true
	rec.Reset()
	err := vb.GetData(0, make([]byte, 8))
	if err == nil || errors.Is(err, ErrContentLost) {
		t.Errorf("got error %v, expected a map failure", err)
	}
	if n := rec.Count("UnmapBuffer"); n != 0 {
		t.Errorf("got %d unmaps of a buffer that was not mapped", n)
	}
	rec.MapFails = false

	// The device stays usable after a failed readback.
	if err := vb.GetData(0, make([]byte, 8)); err != nil {
		t.Errorf("readback after failure: %v", err)
	}
}

func TestVertexDataGeneric(t *testing.T) {
	type vertex struct {
		X, Y  float32
		Color uint32
	}
	type position struct {
		X, Y float32
	}
	env := newTestEnv(t, DefaultConfig(), nil)
	vb := env.dev.NewVertexBuffer(4*12, false)
	verts := []vertex{
		{1, 2, 0xff0000ff},
		{3, 4, 0xff00ff00},
		{5, 6, 0xffff0000},
	}
	SetVertexData(vb, 1, verts, gpu.SetDataNone)

	got := make([]vertex, 3)
	if err := GetVertexData(vb, 1, got, 0); err != nil {
		t.Fatal(err)
	}
	for i := range verts {
		if got[i] != verts[i] {
			t.Errorf("vertex %d: got %v, expected %v", i, got[i], verts[i])
		}
	}

	pos := make([]position, 2)
	if err := GetVertexData(vb, 2, pos, 12); err != nil {
		t.Fatal(err)
	}
	if exp := []position{{3, 4}, {5, 6}}; pos[0] != exp[0] || pos[1] != exp[1] {
		t.Errorf("got positions %v, expected %v", pos, exp)
	}
}

func TestIndexDataGeneric(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	ib := env.dev.NewIndexBuffer(gpu.Index16, 6, false)
	SetIndexData(ib, 0, []uint16{0, 1, 2, 2, 1, 3}, gpu.SetDataNone)
	got := make([]uint16, 3)
	if err := GetIndexData(ib, 3, got); err != nil {
		t.Fatal(err)
	}
	if got[0] != 2 || got[1] != 1 || got[2] != 3 {
		t.Errorf("got indices %v, expected [2 1 3]", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("32 bit indices into a 16 bit buffer did not panic")
		}
	}()
	SetIndexData(ib, 0, []uint32{0}, gpu.SetDataNone)
}

func TestBufferRelease(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	vb := d.NewVertexBuffer(12, false)
	d.VertexAttribPointer(0, gpu.VertexVector3, 12, 0)
	obj := vb.obj
	rec.Reset()
	vb.Release()
	expectCalls(t, rec,
		call("BindBuffer", gl.Enum(gl.ARRAY_BUFFER), gl.Buffer{}),
		call("DeleteBuffer", obj),
	)
	if d.glstate.attribs[0].buf.Valid() {
		t.Error("attribute still points at the deleted buffer")
	}
	rec.Reset()
	vb.Release()
	expectCalls(t, rec)

	// A new buffer at the same attribute offset respecifies the pointer.
	vb2 := d.NewVertexBuffer(12, false)
	rec.Reset()
	d.VertexAttribPointer(0, gpu.VertexVector3, 12, 0)
	expectCalls(t, rec, call("VertexAttribPointer", gl.Attrib(0), 3, gl.Enum(gl.FLOAT), false, 12, 0))
	vb2.Release()
}
