// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides a recording implementation of gl.Functions
// for tests of the device layer.
package gltest

import (
	"fmt"

	"gfxhal.org/gl"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Recorder implements gl.Functions by recording every call. Object
// creation hands out increasing handles and buffer uploads are kept so
// that mapping a buffer returns what was written to it.
type Recorder struct {
	// Strings answers GetString.
	Strings map[gl.Enum]string
	// Ints answers GetInteger.
	Ints map[gl.Enum]int
	// Floats answers GetFloat.
	Floats map[gl.Enum]float32
	// MapFails makes MapBuffer return nil.
	MapFails bool
	// UnmapFails makes UnmapBuffer report lost contents.
	UnmapFails bool
	// Fill is written into every byte requested by ReadPixels and
	// GetTexImage.
	Fill byte

	calls   []Call
	next    uint
	buffers map[uint][]byte
	bound   map[gl.Enum]uint
	debug   gl.DebugProc
}

var _ gl.Functions = (*Recorder)(nil)

func New() *Recorder {
	return &Recorder{
		Strings: map[gl.Enum]string{
			gl.VENDOR:   "gltest",
			gl.RENDERER: "gltest recorder",
			gl.VERSION:  "2.1 gltest",
		},
		Ints: map[gl.Enum]int{
			gl.MAX_TEXTURE_IMAGE_UNITS: 16,
			gl.MAX_VERTEX_ATTRIBS:      16,
			gl.MAX_DRAW_BUFFERS:        4,
			gl.MAX_TEXTURE_SIZE:        8192,
		},
		Floats:  map[gl.Enum]float32{},
		buffers: make(map[uint][]byte),
		bound:   make(map[gl.Enum]uint),
	}
}

// Calls returns the calls recorded since the last Reset.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Named returns the recorded calls with the given name.
func (r *Recorder) Named(name string) []Call {
	var calls []Call
	for _, c := range r.calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Count returns the number of recorded calls with the given name.
func (r *Recorder) Count(name string) int {
	return len(r.Named(name))
}

// Reset forgets the recorded calls. Object state is kept.
func (r *Recorder) Reset() {
	r.calls = nil
}

// Contents returns the data stored in b.
func (r *Recorder) Contents(b gl.Buffer) []byte {
	return r.buffers[b.V]
}

// Emit delivers a debug message to the installed debug callback.
func (r *Recorder) Emit(source, typ gl.Enum, id uint, severity gl.Enum, msg string) {
	if r.debug != nil {
		r.debug(source, typ, id, severity, msg)
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func (r *Recorder) gen() uint {
	r.next++
	return r.next
}

func (r *Recorder) fill(data []byte) {
	for i := range data {
		data[i] = r.Fill
	}
}

func (r *Recorder) GetError() gl.Enum {
	r.record("GetError")
	return gl.NO_ERROR
}

func (r *Recorder) GetString(name gl.Enum) string {
	r.record("GetString", name)
	return r.Strings[name]
}

func (r *Recorder) GetInteger(pname gl.Enum) int {
	r.record("GetInteger", pname)
	return r.Ints[pname]
}

func (r *Recorder) GetFloat(pname gl.Enum) float32 {
	r.record("GetFloat", pname)
	return r.Floats[pname]
}

func (r *Recorder) Enable(cap gl.Enum) { r.record("Enable", cap) }
func (r *Recorder) Disable(cap gl.Enum) { r.record("Disable", cap) }

func (r *Recorder) PixelStorei(pname gl.Enum, param int) {
	r.record("PixelStorei", pname, param)
}

func (r *Recorder) BlendColor(cr, cg, cb, ca float32) {
	r.record("BlendColor", cr, cg, cb, ca)
}

func (r *Recorder) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	r.record("BlendEquationSeparate", modeRGB, modeAlpha)
}

func (r *Recorder) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA gl.Enum) {
	r.record("BlendFuncSeparate", srcRGB, dstRGB, srcA, dstA)
}

func (r *Recorder) ColorMask(cr, cg, cb, ca bool) {
	r.record("ColorMask", cr, cg, cb, ca)
}

func (r *Recorder) DepthFunc(fn gl.Enum) { r.record("DepthFunc", fn) }
func (r *Recorder) DepthMask(mask bool) { r.record("DepthMask", mask) }
func (r *Recorder) DepthRange(near, far float64) { r.record("DepthRange", near, far) }
func (r *Recorder) PolygonOffset(f, units float32) { r.record("PolygonOffset", f, units) }

func (r *Recorder) StencilFunc(fn gl.Enum, ref int, mask uint32) {
	r.record("StencilFunc", fn, ref, mask)
}

func (r *Recorder) StencilFuncSeparate(face, fn gl.Enum, ref int, mask uint32) {
	r.record("StencilFuncSeparate", face, fn, ref, mask)
}

func (r *Recorder) StencilMask(mask uint32) { r.record("StencilMask", mask) }

func (r *Recorder) StencilOp(fail, zfail, zpass gl.Enum) {
	r.record("StencilOp", fail, zfail, zpass)
}

func (r *Recorder) StencilOpSeparate(face, fail, zfail, zpass gl.Enum) {
	r.record("StencilOpSeparate", face, fail, zfail, zpass)
}

func (r *Recorder) CullFace(mode gl.Enum) { r.record("CullFace", mode) }
func (r *Recorder) FrontFace(mode gl.Enum) { r.record("FrontFace", mode) }
func (r *Recorder) PolygonMode(face, mode gl.Enum) { r.record("PolygonMode", face, mode) }

func (r *Recorder) Scissor(x, y, width, height int) {
	r.record("Scissor", x, y, width, height)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) Clear(mask gl.Enum) { r.record("Clear", mask) }

func (r *Recorder) ClearColor(cr, cg, cb, ca float32) {
	r.record("ClearColor", cr, cg, cb, ca)
}

func (r *Recorder) ClearDepth(d float64) { r.record("ClearDepth", d) }
func (r *Recorder) ClearStencil(s int) { r.record("ClearStencil", s) }

func (r *Recorder) GenTexture() gl.Texture {
	t := gl.Texture{V: r.gen()}
	r.record("GenTexture", t)
	return t
}

func (r *Recorder) DeleteTexture(t gl.Texture) { r.record("DeleteTexture", t) }
func (r *Recorder) ActiveTexture(unit gl.Enum) { r.record("ActiveTexture", unit) }

func (r *Recorder) BindTexture(target gl.Enum, t gl.Texture) {
	r.record("BindTexture", target, t)
}

func (r *Recorder) TexParameteri(target, pname gl.Enum, param int) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) TexParameterf(target, pname gl.Enum, param float32) {
	r.record("TexParameterf", target, pname, param)
}

func (r *Recorder) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, typ gl.Enum, data []byte) {
	r.record("TexImage2D", target, level, internalFormat, width, height, format, typ, len(data))
}

func (r *Recorder) TexImage3D(target gl.Enum, level int, internalFormat gl.Enum, width, height, depth int, format, typ gl.Enum, data []byte) {
	r.record("TexImage3D", target, level, internalFormat, width, height, depth, format, typ, len(data))
}

func (r *Recorder) TexSubImage2D(target gl.Enum, level int, x, y, width, height int, format, typ gl.Enum, data []byte) {
	r.record("TexSubImage2D", target, level, x, y, width, height, format, typ, len(data))
}

func (r *Recorder) TexSubImage3D(target gl.Enum, level int, x, y, z, width, height, depth int, format, typ gl.Enum, data []byte) {
	r.record("TexSubImage3D", target, level, x, y, z, width, height, depth, format, typ, len(data))
}

func (r *Recorder) CompressedTexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, data []byte) {
	r.record("CompressedTexImage2D", target, level, internalFormat, width, height, len(data))
}

func (r *Recorder) CompressedTexSubImage2D(target gl.Enum, level int, x, y, width, height int, format gl.Enum, data []byte) {
	r.record("CompressedTexSubImage2D", target, level, x, y, width, height, format, len(data))
}

func (r *Recorder) GetTexImage(target gl.Enum, level int, format, typ gl.Enum, data []byte) {
	r.record("GetTexImage", target, level, format, typ, len(data))
	r.fill(data)
}

func (r *Recorder) ReadPixels(x, y, width, height int, format, typ gl.Enum, data []byte) {
	r.record("ReadPixels", x, y, width, height, format, typ, len(data))
	r.fill(data)
}

func (r *Recorder) GenBuffer() gl.Buffer {
	b := gl.Buffer{V: r.gen()}
	r.record("GenBuffer", b)
	return b
}

func (r *Recorder) DeleteBuffer(b gl.Buffer) {
	r.record("DeleteBuffer", b)
	delete(r.buffers, b.V)
	for target, v := range r.bound {
		if v == b.V {
			delete(r.bound, target)
		}
	}
}

func (r *Recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	r.record("BindBuffer", target, b)
	r.bound[target] = b.V
}

func (r *Recorder) BufferData(target gl.Enum, size int, usage gl.Enum, data []byte) {
	r.record("BufferData", target, size, usage)
	store := make([]byte, size)
	copy(store, data)
	r.buffers[r.bound[target]] = store
}

func (r *Recorder) BufferSubData(target gl.Enum, offset int, data []byte) {
	r.record("BufferSubData", target, offset, len(data))
	copy(r.buffers[r.bound[target]][offset:], data)
}

func (r *Recorder) MapBuffer(target, access gl.Enum) []byte {
	r.record("MapBuffer", target, access)
	if r.MapFails {
		return nil
	}
	store, ok := r.buffers[r.bound[target]]
	if !ok {
		return nil
	}
	return store
}

func (r *Recorder) UnmapBuffer(target gl.Enum) bool {
	r.record("UnmapBuffer", target)
	return !r.UnmapFails
}

func (r *Recorder) EnableVertexAttribArray(a gl.Attrib) {
	r.record("EnableVertexAttribArray", a)
}

func (r *Recorder) DisableVertexAttribArray(a gl.Attrib) {
	r.record("DisableVertexAttribArray", a)
}

func (r *Recorder) VertexAttribPointer(a gl.Attrib, size int, typ gl.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", a, size, typ, normalized, stride, offset)
}

func (r *Recorder) VertexAttribDivisor(a gl.Attrib, divisor int) {
	r.record("VertexAttribDivisor", a, divisor)
}

func (r *Recorder) DrawArrays(mode gl.Enum, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	r.record("DrawElements", mode, count, typ, offset)
}

func (r *Recorder) DrawElementsInstanced(mode gl.Enum, count int, typ gl.Enum, offset, instances int) {
	r.record("DrawElementsInstanced", mode, count, typ, offset, instances)
}

func (r *Recorder) GenFramebuffer() gl.Framebuffer {
	f := gl.Framebuffer{V: r.gen()}
	r.record("GenFramebuffer", f)
	return f
}

func (r *Recorder) DeleteFramebuffer(f gl.Framebuffer) { r.record("DeleteFramebuffer", f) }

func (r *Recorder) BindFramebuffer(target gl.Enum, f gl.Framebuffer) {
	r.record("BindFramebuffer", target, f)
}

func (r *Recorder) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	r.record("CheckFramebufferStatus", target)
	return gl.FRAMEBUFFER_COMPLETE
}

func (r *Recorder) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	r.record("FramebufferTexture2D", target, attachment, texTarget, t, level)
}

func (r *Recorder) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb gl.Renderbuffer) {
	r.record("FramebufferRenderbuffer", target, attachment, rbTarget, rb)
}

func (r *Recorder) GenRenderbuffer() gl.Renderbuffer {
	rb := gl.Renderbuffer{V: r.gen()}
	r.record("GenRenderbuffer", rb)
	return rb
}

func (r *Recorder) DeleteRenderbuffer(rb gl.Renderbuffer) { r.record("DeleteRenderbuffer", rb) }

func (r *Recorder) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	r.record("BindRenderbuffer", target, rb)
}

func (r *Recorder) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	r.record("RenderbufferStorage", target, internalFormat, width, height)
}

func (r *Recorder) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter gl.Enum) {
	r.record("BlitFramebuffer", sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, filter)
}

func (r *Recorder) DrawBuffers(bufs []gl.Enum) {
	r.record("DrawBuffers", append([]gl.Enum(nil), bufs...))
}

func (r *Recorder) GenFramebufferEXT() gl.Framebuffer {
	f := gl.Framebuffer{V: r.gen()}
	r.record("GenFramebufferEXT", f)
	return f
}

func (r *Recorder) DeleteFramebufferEXT(f gl.Framebuffer) { r.record("DeleteFramebufferEXT", f) }

func (r *Recorder) BindFramebufferEXT(target gl.Enum, f gl.Framebuffer) {
	r.record("BindFramebufferEXT", target, f)
}

func (r *Recorder) CheckFramebufferStatusEXT(target gl.Enum) gl.Enum {
	r.record("CheckFramebufferStatusEXT", target)
	return gl.FRAMEBUFFER_COMPLETE
}

func (r *Recorder) FramebufferTexture2DEXT(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	r.record("FramebufferTexture2DEXT", target, attachment, texTarget, t, level)
}

func (r *Recorder) FramebufferRenderbufferEXT(target, attachment, rbTarget gl.Enum, rb gl.Renderbuffer) {
	r.record("FramebufferRenderbufferEXT", target, attachment, rbTarget, rb)
}

func (r *Recorder) GenRenderbufferEXT() gl.Renderbuffer {
	rb := gl.Renderbuffer{V: r.gen()}
	r.record("GenRenderbufferEXT", rb)
	return rb
}

func (r *Recorder) DeleteRenderbufferEXT(rb gl.Renderbuffer) {
	r.record("DeleteRenderbufferEXT", rb)
}

func (r *Recorder) BindRenderbufferEXT(target gl.Enum, rb gl.Renderbuffer) {
	r.record("BindRenderbufferEXT", target, rb)
}

func (r *Recorder) RenderbufferStorageEXT(target, internalFormat gl.Enum, width, height int) {
	r.record("RenderbufferStorageEXT", target, internalFormat, width, height)
}

func (r *Recorder) BlitFramebufferEXT(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter gl.Enum) {
	r.record("BlitFramebufferEXT", sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, filter)
}

func (r *Recorder) GenQuery() gl.Query {
	q := gl.Query{V: r.gen()}
	r.record("GenQuery", q)
	return q
}

func (r *Recorder) DeleteQuery(q gl.Query) { r.record("DeleteQuery", q) }
func (r *Recorder) BeginQuery(target gl.Enum, q gl.Query) { r.record("BeginQuery", target, q) }
func (r *Recorder) EndQuery(target gl.Enum) { r.record("EndQuery", target) }

func (r *Recorder) GetQueryObjectuiv(q gl.Query, pname gl.Enum) uint {
	r.record("GetQueryObjectuiv", q, pname)
	switch pname {
	case gl.QUERY_RESULT_AVAILABLE:
		return gl.TRUE
	case gl.QUERY_RESULT:
		return uint(r.Ints[gl.SAMPLES_PASSED])
	}
	return 0
}

func (r *Recorder) DebugMessageCallback(cb gl.DebugProc) {
	r.record("DebugMessageCallback")
	r.debug = cb
}

func (r *Recorder) DebugMessageControl(source, typ, severity gl.Enum, enabled bool) {
	r.record("DebugMessageControl", source, typ, severity, enabled)
}
