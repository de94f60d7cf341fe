// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"testing"

	"gfxhal.org/gl"
	"gfxhal.org/gl/gltest"
	"gfxhal.org/gpu"
)

var posColorDecl = gpu.VertexDeclaration{
	Stride: 16,
	Elements: []gpu.VertexElement{
		{Offset: 0, Format: gpu.VertexVector3, Attrib: 0},
		{Offset: 12, Format: gpu.VertexColor, Attrib: 1},
	},
}

func instancingEnv(t *testing.T) *testEnv {
	return newTestEnv(t, DefaultConfig(), func(rec *gltest.Recorder, h *testHost) {
		h.procs["glVertexAttribDivisorARB"] = true
		rec.Strings[gl.EXTENSIONS] = "GL_ARB_draw_instanced GL_ARB_instanced_arrays"
	})
}

func TestVertexBindings(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	vb := d.NewVertexBuffer(16*8, false)
	bindings := []VertexBufferBinding{{Buffer: vb, Declaration: posColorDecl}}
	rec.Reset()
	d.ApplyVertexBufferBindings(bindings, 2)
	expectCalls(t, rec,
		call("VertexAttribPointer", gl.Attrib(0), 3, gl.Enum(gl.FLOAT), false, 16, 32),
		call("VertexAttribPointer", gl.Attrib(1), 4, gl.Enum(gl.UNSIGNED_BYTE), true, 16, 44),
		call("EnableVertexAttribArray", gl.Attrib(0)),
		call("EnableVertexAttribArray", gl.Attrib(1)),
	)

	rec.Reset()
	d.ApplyVertexBufferBindings(bindings, 2)
	expectCalls(t, rec)

	// A different base vertex moves the pointers only.
	d.ApplyVertexBufferBindings(bindings, 0)
	expectCalls(t, rec,
		call("VertexAttribPointer", gl.Attrib(0), 3, gl.Enum(gl.FLOAT), false, 16, 0),
		call("VertexAttribPointer", gl.Attrib(1), 4, gl.Enum(gl.UNSIGNED_BYTE), true, 16, 12),
	)

	// Attributes not named by the next bindings are disabled.
	rec.Reset()
	posOnly := gpu.VertexDeclaration{Stride: 16, Elements: posColorDecl.Elements[:1]}
	d.ApplyVertexBufferBindings([]VertexBufferBinding{{Buffer: vb, Declaration: posOnly}}, 0)
	expectCalls(t, rec, call("DisableVertexAttribArray", gl.Attrib(1)))
}

func TestVertexBindingsRebindBuffer(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	vb1 := d.NewVertexBuffer(64, false)
	vb2 := d.NewVertexBuffer(64, false)
	posOnly := gpu.VertexDeclaration{Stride: 16, Elements: posColorDecl.Elements[:1]}
	d.ApplyVertexBufferBindings([]VertexBufferBinding{{Buffer: vb1, Declaration: posOnly}}, 0)
	rec.Reset()
	d.ApplyVertexBufferBindings([]VertexBufferBinding{{Buffer: vb2, Declaration: posOnly}}, 0)
	expectCalls(t, rec,
		call("BindBuffer", gl.Enum(gl.ARRAY_BUFFER), vb2.obj),
		call("VertexAttribPointer", gl.Attrib(0), 3, gl.Enum(gl.FLOAT), false, 16, 0),
	)
}

func TestVertexAttributeFlush(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	d.EnableVertexAttribute(3)
	d.FlushVertexAttributes()
	expectCalls(t, rec, call("EnableVertexAttribArray", gl.Attrib(3)))
	rec.Reset()
	d.EnableVertexAttribute(3)
	d.FlushVertexAttributes()
	expectCalls(t, rec)
	d.FlushVertexAttributes()
	expectCalls(t, rec, call("DisableVertexAttribArray", gl.Attrib(3)))

	// Divisors are ignored without instancing support.
	rec.Reset()
	d.SetAttributeDivisor(0, 1)
	d.FlushVertexAttributes()
	expectCalls(t, rec)
}

func TestVertexAttributeRange(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	defer func() {
		if recover() == nil {
			t.Error("attribute beyond the driver limit did not panic")
		}
	}()
	env.dev.EnableVertexAttribute(16)
}

func TestVertexDivisors(t *testing.T) {
	env := instancingEnv(t)
	d, rec := env.dev, env.rec
	if !d.Caps().SupportsHardwareInstancing {
		t.Fatal("expected instancing support")
	}
	vb := d.NewVertexBuffer(64, false)
	inst := d.NewVertexBuffer(64, false)
	instDecl := gpu.VertexDeclaration{
		Stride:   16,
		Elements: []gpu.VertexElement{{Offset: 0, Format: gpu.VertexVector4, Attrib: 2}},
	}
	bindings := []VertexBufferBinding{
		{Buffer: vb, Declaration: posColorDecl},
		{Buffer: inst, Declaration: instDecl, InstanceFrequency: 1},
	}
	d.ApplyVertexBufferBindings(bindings, 0)
	divs := rec.Named("VertexAttribDivisor")
	if len(divs) != 1 || divs[0].Args[0] != gl.Attrib(2) || divs[0].Args[1] != 1 {
		t.Errorf("got divisors %v, expected attribute 2 at 1", divs)
	}
	rec.Reset()
	d.ApplyVertexBufferBindings(bindings[:1], 0)
	// Attribute 2 is disabled; its divisor remains until changed.
	expectCalls(t, rec,
		call("BindBuffer", gl.Enum(gl.ARRAY_BUFFER), vb.obj),
		call("DisableVertexAttribArray", gl.Attrib(2)),
	)
}

func TestDrawPrimitives(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	ib := d.NewIndexBuffer(gpu.Index32, 12, false)
	rec.Reset()
	d.DrawPrimitives(gpu.PrimitiveTriangleStrip, 4, 2)
	d.DrawIndexedPrimitives(gpu.PrimitiveTriangleList, 3, 2, ib)
	d.DrawIndexedPrimitives(gpu.PrimitiveLineList, 0, 1, ib)
	expectCalls(t, rec,
		call("DrawArrays", gl.Enum(gl.TRIANGLE_STRIP), 4, 4),
		call("DrawElements", gl.Enum(gl.TRIANGLES), 6, gl.Enum(gl.UNSIGNED_INT), 12),
		call("DrawElements", gl.Enum(gl.LINES), 2, gl.Enum(gl.UNSIGNED_INT), 0),
	)
}

func TestDrawInstancedPrimitives(t *testing.T) {
	env := instancingEnv(t)
	d, rec := env.dev, env.rec
	ib := d.NewIndexBuffer(gpu.Index16, 6, false)
	vb := d.NewVertexBuffer(64, false)
	// Binding a vertex buffer leaves the index binding alone.
	d.ApplyVertexBufferBindings([]VertexBufferBinding{{Buffer: vb, Declaration: posColorDecl}}, 0)
	rec.Reset()
	d.DrawInstancedPrimitives(gpu.PrimitiveTriangleList, 0, 2, 10, ib)
	expectCalls(t, rec,
		call("DrawElementsInstanced", gl.Enum(gl.TRIANGLES), 6, gl.Enum(gl.UNSIGNED_SHORT), 0, 10),
	)

	plain := newTestEnv(t, DefaultConfig(), nil)
	ib2 := plain.dev.NewIndexBuffer(gpu.Index16, 6, false)
	defer func() {
		if recover() == nil {
			t.Error("instanced draw without driver support did not panic")
		}
	}()
	plain.dev.DrawInstancedPrimitives(gpu.PrimitiveTriangleList, 0, 2, 10, ib2)
}
