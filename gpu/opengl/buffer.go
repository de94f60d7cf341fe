// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"fmt"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
	"gfxhal.org/internal/unsafe"
)

type buffer struct {
	dev   *Device
	obj   gl.Buffer
	typ   gl.Enum
	usage gl.Enum
	size  int
}

// VertexBuffer holds vertex data.
type VertexBuffer struct {
	buffer
}

// IndexBuffer holds 16 or 32 bit indices.
type IndexBuffer struct {
	buffer
	elementSize gpu.IndexElementSize
}

var (
	// NullVertexBuffer and NullIndexBuffer have the zero handle and stand
	// for no bound buffer.
	NullVertexBuffer = &VertexBuffer{buffer{typ: gl.ARRAY_BUFFER}}
	NullIndexBuffer  = &IndexBuffer{buffer: buffer{typ: gl.ELEMENT_ARRAY_BUFFER}}
)

func usageFor(dynamic bool) gl.Enum {
	if dynamic {
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

// NewVertexBuffer allocates size bytes of vertex storage.
func (d *Device) NewVertexBuffer(size int, dynamic bool) *VertexBuffer {
	b := &VertexBuffer{d.newBuffer(gl.ARRAY_BUFFER, size, dynamic)}
	return b
}

// NewIndexBuffer allocates storage for count indices.
func (d *Device) NewIndexBuffer(elementSize gpu.IndexElementSize, count int, dynamic bool) *IndexBuffer {
	return &IndexBuffer{
		buffer:      d.newBuffer(gl.ELEMENT_ARRAY_BUFFER, count*elementSize.Bytes(), dynamic),
		elementSize: elementSize,
	}
}

func (d *Device) newBuffer(typ gl.Enum, size int, dynamic bool) buffer {
	if size <= 0 {
		panic(fmt.Errorf("invalid buffer size %d", size))
	}
	b := buffer{dev: d, typ: typ, usage: usageFor(dynamic), size: size}
	d.exec(func() {
		b.obj = d.funcs.GenBuffer()
		d.glstate.bindBuffer(d.funcs, typ, b.obj)
		d.funcs.BufferData(typ, size, b.usage, nil)
	})
	return b
}

func (b *buffer) Size() int { return b.size }

func (b *IndexBuffer) ElementSize() gpu.IndexElementSize { return b.elementSize }

// SetData writes data at offset. SetDataDiscard respecifies the storage
// first so that the driver need not wait for draws using the old
// contents.
func (b *buffer) SetData(offset int, data []byte, opts gpu.SetDataOptions) {
	if offset < 0 || offset+len(data) > b.size {
		panic(fmt.Errorf("buffer write [%d:%d] out of range %d", offset, offset+len(data), b.size))
	}
	d := b.dev
	d.exec(func() {
		d.bufMu.Lock()
		defer d.bufMu.Unlock()
		d.glstate.bindBuffer(d.funcs, b.typ, b.obj)
		if opts == gpu.SetDataDiscard {
			d.funcs.BufferData(b.typ, b.size, b.usage, nil)
		}
		d.funcs.BufferSubData(b.typ, offset, data)
	})
}

// GetData reads len(dst) bytes from offset.
func (b *buffer) GetData(offset int, dst []byte) error {
	return b.getData(offset, dst, len(dst), len(dst))
}

// GetElements reads len(dst)/elemSize elements of elemSize bytes spaced
// stride bytes apart, starting at offset.
func (b *buffer) GetElements(offset int, dst []byte, elemSize, stride int) error {
	return b.getData(offset, dst, elemSize, stride)
}

func (b *buffer) getData(offset int, dst []byte, elemSize, stride int) (err error) {
	if elemSize <= 0 || stride < elemSize || len(dst)%elemSize != 0 {
		panic(fmt.Errorf("invalid element size %d with stride %d", elemSize, stride))
	}
	count := len(dst) / elemSize
	if count == 0 {
		return nil
	}
	if end := offset + (count-1)*stride + elemSize; offset < 0 || end > b.size {
		panic(fmt.Errorf("buffer read [%d:%d] out of range %d", offset, end, b.size))
	}
	d := b.dev
	d.exec(func() {
		d.bufMu.Lock()
		defer d.bufMu.Unlock()
		f := d.funcs
		d.glstate.bindBuffer(f, b.typ, b.obj)
		mapped := f.MapBuffer(b.typ, gl.READ_ONLY)
		if mapped == nil {
			err = fmt.Errorf("opengl: MapBuffer failed: error %#x", f.GetError())
			return
		}
		defer func() {
			if !f.UnmapBuffer(b.typ) {
				err = ErrContentLost
			}
		}()
		src := mapped[offset:]
		if elemSize == stride {
			copy(dst, src)
			return
		}
		for i := 0; i < count; i++ {
			copy(dst[i*elemSize:(i+1)*elemSize], src[i*stride:])
		}
	})
	return err
}

// Release deletes the buffer, unbinding it first.
func (b *buffer) Release() {
	if !b.obj.Valid() {
		return
	}
	d := b.dev
	d.exec(func() {
		d.bufMu.Lock()
		defer d.bufMu.Unlock()
		d.glstate.deleteBuffer(d.funcs, b.obj)
	})
	b.obj = gl.Buffer{}
}

// SetVertexData writes a slice of vertices at element index start.
func SetVertexData[T any](b *VertexBuffer, start int, data []T, opts gpu.SetDataOptions) {
	b.SetData(start*unsafe.SizeOf[T](), unsafe.BytesView(data), opts)
}

// GetVertexData reads vertices from element index start. The elements
// are spaced stride bytes apart; a zero stride means tightly packed.
func GetVertexData[T any](b *VertexBuffer, start int, dst []T, stride int) error {
	size := unsafe.SizeOf[T]()
	if stride == 0 {
		stride = size
	}
	return b.GetElements(start*stride, unsafe.BytesView(dst), size, stride)
}

// SetIndexData writes indices at index start.
func SetIndexData[T uint16 | uint32](b *IndexBuffer, start int, data []T, opts gpu.SetDataOptions) {
	b.checkIndexType(unsafe.SizeOf[T]())
	b.SetData(start*b.elementSize.Bytes(), unsafe.BytesView(data), opts)
}

// GetIndexData reads indices from index start.
func GetIndexData[T uint16 | uint32](b *IndexBuffer, start int, dst []T) error {
	b.checkIndexType(unsafe.SizeOf[T]())
	return b.GetData(start*b.elementSize.Bytes(), unsafe.BytesView(dst))
}

func (b *IndexBuffer) checkIndexType(size int) {
	if size != b.elementSize.Bytes() {
		panic(fmt.Errorf("%d byte indices for a buffer of %d byte indices", size, b.elementSize.Bytes()))
	}
}
