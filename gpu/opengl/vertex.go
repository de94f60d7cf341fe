// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"fmt"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
)

// VertexBufferBinding feeds the elements of Declaration from Buffer.
type VertexBufferBinding struct {
	Buffer      *VertexBuffer
	Declaration gpu.VertexDeclaration
	// VertexOffset is the index of the first vertex.
	VertexOffset int
	// InstanceFrequency is the attribute divisor, 0 for per-vertex data.
	InstanceFrequency int
}

// VertexAttribPointer points attrib at the bound vertex buffer.
func (d *Device) VertexAttribPointer(attrib int, format gpu.VertexElementFormat, stride, offset int) {
	d.exec(func() {
		d.vertexAttribPointer(attrib, format, stride, offset)
	})
}

// EnableVertexAttribute marks attrib as used by the next draw.
func (d *Device) EnableVertexAttribute(attrib int) {
	d.exec(func() {
		d.attrib(attrib).enabled = true
	})
}

// SetAttributeDivisor sets the instance divisor of attrib, applied by
// the next flush.
func (d *Device) SetAttributeDivisor(attrib, divisor int) {
	d.exec(func() {
		d.attrib(attrib).divisor = divisor
	})
}

// FlushVertexAttributes brings the enabled attribute set and the
// divisors of the driver in line with the requested ones. Every
// attribute must be enabled again before the next flush.
func (d *Device) FlushVertexAttributes() {
	d.exec(d.flushVertexAttributes)
}

// ApplyVertexBufferBindings sets up the attributes of bindings, offset
// by baseVertex vertices, and flushes them.
func (d *Device) ApplyVertexBufferBindings(bindings []VertexBufferBinding, baseVertex int) {
	d.exec(func() {
		for _, b := range bindings {
			d.glstate.bindBuffer(d.funcs, gl.ARRAY_BUFFER, b.Buffer.obj)
			decl := b.Declaration
			base := (b.VertexOffset + baseVertex) * decl.Stride
			for _, e := range decl.Elements {
				d.vertexAttribPointer(e.Attrib, e.Format, decl.Stride, base+e.Offset)
				a := d.attrib(e.Attrib)
				a.enabled = true
				if d.caps.SupportsHardwareInstancing {
					a.divisor = b.InstanceFrequency
				}
			}
		}
		d.flushVertexAttributes()
	})
}

func (d *Device) attrib(attrib int) *vertexAttrib {
	if attrib < 0 || attrib >= len(d.glstate.attribs) {
		panic(fmt.Errorf("vertex attribute %d out of range", attrib))
	}
	return &d.glstate.attribs[attrib]
}

func (d *Device) vertexAttribPointer(attrib int, format gpu.VertexElementFormat, stride, offset int) {
	a := d.attrib(attrib)
	size, typ, normalized := vertexAttribFor(format)
	buf := d.glstate.arrayBuf
	if a.buf == buf && a.size == size && a.typ == typ && a.normalized == normalized &&
		a.stride == stride && a.offset == offset {
		return
	}
	d.funcs.VertexAttribPointer(gl.Attrib(attrib), size, typ, normalized, stride, offset)
	a.buf = buf
	a.size, a.typ, a.normalized = size, typ, normalized
	a.stride, a.offset = stride, offset
}

func (d *Device) flushVertexAttributes() {
	f := d.funcs
	instancing := d.caps.SupportsHardwareInstancing
	for i := range d.glstate.attribs {
		a := &d.glstate.attribs[i]
		if a.enabled != a.prevEnabled {
			if a.enabled {
				f.EnableVertexAttribArray(gl.Attrib(i))
			} else {
				f.DisableVertexAttribArray(gl.Attrib(i))
			}
			a.prevEnabled = a.enabled
		}
		a.enabled = false
		if instancing && a.divisor != a.prevDivisor {
			f.VertexAttribDivisor(gl.Attrib(i), a.divisor)
			a.prevDivisor = a.divisor
		}
	}
}

// DrawPrimitives draws primitiveCount primitives from the vertex at
// startVertex.
func (d *Device) DrawPrimitives(prim gpu.PrimitiveType, startVertex, primitiveCount int) {
	d.exec(func() {
		d.funcs.DrawArrays(toGLDrawMode(prim), startVertex, prim.VertexCount(primitiveCount))
	})
}

// DrawIndexedPrimitives draws primitiveCount primitives from the indices
// of ib starting at startIndex.
func (d *Device) DrawIndexedPrimitives(prim gpu.PrimitiveType, startIndex, primitiveCount int, ib *IndexBuffer) {
	d.exec(func() {
		d.glstate.bindBuffer(d.funcs, gl.ELEMENT_ARRAY_BUFFER, ib.obj)
		d.funcs.DrawElements(toGLDrawMode(prim), prim.VertexCount(primitiveCount),
			toGLIndexType(ib.elementSize), startIndex*ib.elementSize.Bytes())
	})
}

// DrawInstancedPrimitives is like DrawIndexedPrimitives for instances
// copies. It panics if the driver lacks instancing.
func (d *Device) DrawInstancedPrimitives(prim gpu.PrimitiveType, startIndex, primitiveCount, instances int, ib *IndexBuffer) {
	if !d.caps.SupportsHardwareInstancing {
		panic("hardware instancing not supported")
	}
	d.exec(func() {
		d.glstate.bindBuffer(d.funcs, gl.ELEMENT_ARRAY_BUFFER, ib.obj)
		d.funcs.DrawElementsInstanced(toGLDrawMode(prim), prim.VertexCount(primitiveCount),
			toGLIndexType(ib.elementSize), startIndex*ib.elementSize.Bytes(), instances)
	})
}
