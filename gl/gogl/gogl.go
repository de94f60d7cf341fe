// SPDX-License-Identifier: Unlicense OR MIT

// Package gogl implements gl.Functions on top of the go-gl bindings of
// the OpenGL 2.1 compatibility profile and its extensions.
package gogl

import (
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	halgl "gfxhal.org/gl"
	gunsafe "gfxhal.org/internal/unsafe"
)

type Functions struct {
	// debug keeps the installed callback reachable.
	debug halgl.DebugProc
}

var _ halgl.Functions = (*Functions)(nil)

// Load resolves the entry points of the current context.
func Load(getProcAddress func(name string) unsafe.Pointer) (halgl.Functions, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddress); err != nil {
		return nil, err
	}
	return new(Functions), nil
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func (f *Functions) GetError() halgl.Enum {
	return halgl.Enum(gl.GetError())
}

func (f *Functions) GetString(name halgl.Enum) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (f *Functions) GetInteger(pname halgl.Enum) int {
	var p [4]int32
	gl.GetIntegerv(uint32(pname), &p[0])
	return int(p[0])
}

func (f *Functions) GetFloat(pname halgl.Enum) float32 {
	var p [4]float32
	gl.GetFloatv(uint32(pname), &p[0])
	return p[0]
}

func (f *Functions) Enable(cap halgl.Enum) {
	gl.Enable(uint32(cap))
}

func (f *Functions) Disable(cap halgl.Enum) {
	gl.Disable(uint32(cap))
}

func (f *Functions) PixelStorei(pname halgl.Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

func (f *Functions) BlendColor(r, g, b, a float32) {
	gl.BlendColor(r, g, b, a)
}

func (f *Functions) BlendEquationSeparate(modeRGB, modeAlpha halgl.Enum) {
	gl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA halgl.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcA), uint32(dstA))
}

func (f *Functions) ColorMask(r, g, b, a bool) {
	gl.ColorMask(r, g, b, a)
}

func (f *Functions) DepthFunc(fn halgl.Enum) {
	gl.DepthFunc(uint32(fn))
}

func (f *Functions) DepthMask(mask bool) {
	gl.DepthMask(mask)
}

func (f *Functions) DepthRange(near, far float64) {
	gl.DepthRange(near, far)
}

func (f *Functions) PolygonOffset(factor, units float32) {
	gl.PolygonOffset(factor, units)
}

func (f *Functions) StencilFunc(fn halgl.Enum, ref int, mask uint32) {
	gl.StencilFunc(uint32(fn), int32(ref), mask)
}

func (f *Functions) StencilFuncSeparate(face, fn halgl.Enum, ref int, mask uint32) {
	gl.StencilFuncSeparate(uint32(face), uint32(fn), int32(ref), mask)
}

func (f *Functions) StencilMask(mask uint32) {
	gl.StencilMask(mask)
}

func (f *Functions) StencilOp(fail, zfail, zpass halgl.Enum) {
	gl.StencilOp(uint32(fail), uint32(zfail), uint32(zpass))
}

func (f *Functions) StencilOpSeparate(face, fail, zfail, zpass halgl.Enum) {
	gl.StencilOpSeparate(uint32(face), uint32(fail), uint32(zfail), uint32(zpass))
}

func (f *Functions) CullFace(mode halgl.Enum) {
	gl.CullFace(uint32(mode))
}

func (f *Functions) FrontFace(mode halgl.Enum) {
	gl.FrontFace(uint32(mode))
}

func (f *Functions) PolygonMode(face, mode halgl.Enum) {
	gl.PolygonMode(uint32(face), uint32(mode))
}

func (f *Functions) Scissor(x, y, width, height int) {
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) Clear(mask halgl.Enum) {
	gl.Clear(uint32(mask))
}

func (f *Functions) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (f *Functions) ClearDepth(d float64) {
	gl.ClearDepth(d)
}

func (f *Functions) ClearStencil(s int) {
	gl.ClearStencil(int32(s))
}

func (f *Functions) GenTexture() halgl.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return halgl.Texture{V: uint(t)}
}

func (f *Functions) DeleteTexture(v halgl.Texture) {
	t := uint32(v.V)
	gl.DeleteTextures(1, &t)
}

func (f *Functions) ActiveTexture(unit halgl.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (f *Functions) BindTexture(target halgl.Enum, t halgl.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) TexParameteri(target, pname halgl.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) TexParameterf(target, pname halgl.Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (f *Functions) TexImage2D(target halgl.Enum, level int, internalFormat halgl.Enum, width, height int, format, typ halgl.Enum, data []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) TexImage3D(target halgl.Enum, level int, internalFormat halgl.Enum, width, height, depth int, format, typ halgl.Enum, data []byte) {
	gl.TexImage3D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), int32(depth), 0, uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) TexSubImage2D(target halgl.Enum, level int, x, y, width, height int, format, typ halgl.Enum, data []byte) {
	gl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) TexSubImage3D(target halgl.Enum, level int, x, y, z, width, height, depth int, format, typ halgl.Enum, data []byte) {
	gl.TexSubImage3D(uint32(target), int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth), uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) CompressedTexImage2D(target halgl.Enum, level int, internalFormat halgl.Enum, width, height int, data []byte) {
	gl.CompressedTexImage2D(uint32(target), int32(level), uint32(internalFormat), int32(width), int32(height), 0, int32(len(data)), ptr(data))
}

func (f *Functions) CompressedTexSubImage2D(target halgl.Enum, level int, x, y, width, height int, format halgl.Enum, data []byte) {
	gl.CompressedTexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), int32(len(data)), ptr(data))
}

func (f *Functions) GetTexImage(target halgl.Enum, level int, format, typ halgl.Enum, data []byte) {
	gl.GetTexImage(uint32(target), int32(level), uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) ReadPixels(x, y, width, height int, format, typ halgl.Enum, data []byte) {
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) GenBuffer() halgl.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return halgl.Buffer{V: uint(b)}
}

func (f *Functions) DeleteBuffer(v halgl.Buffer) {
	b := uint32(v.V)
	gl.DeleteBuffers(1, &b)
}

func (f *Functions) BindBuffer(target halgl.Enum, b halgl.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BufferData(target halgl.Enum, size int, usage halgl.Enum, data []byte) {
	gl.BufferData(uint32(target), size, ptr(data), uint32(usage))
}

func (f *Functions) BufferSubData(target halgl.Enum, offset int, data []byte) {
	gl.BufferSubData(uint32(target), offset, len(data), ptr(data))
}

func (f *Functions) MapBuffer(target, access halgl.Enum) []byte {
	p := gl.MapBuffer(uint32(target), uint32(access))
	if p == nil {
		return nil
	}
	var size int32
	gl.GetBufferParameteriv(uint32(target), gl.BUFFER_SIZE, &size)
	return gunsafe.SliceOf(p, int(size))
}

func (f *Functions) UnmapBuffer(target halgl.Enum) bool {
	return gl.UnmapBuffer(uint32(target))
}

func (f *Functions) EnableVertexAttribArray(a halgl.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) DisableVertexAttribArray(a halgl.Attrib) {
	gl.DisableVertexAttribArray(uint32(a))
}

func (f *Functions) VertexAttribPointer(a halgl.Attrib, size int, typ halgl.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(a), int32(size), uint32(typ), normalized, int32(stride), unsafe.Pointer(uintptr(offset)))
}

func (f *Functions) VertexAttribDivisor(a halgl.Attrib, divisor int) {
	gl.VertexAttribDivisorARB(uint32(a), uint32(divisor))
}

func (f *Functions) DrawArrays(mode halgl.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) DrawElements(mode halgl.Enum, count int, typ halgl.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), unsafe.Pointer(uintptr(offset)))
}

func (f *Functions) DrawElementsInstanced(mode halgl.Enum, count int, typ halgl.Enum, offset, instances int) {
	gl.DrawElementsInstancedARB(uint32(mode), int32(count), uint32(typ), unsafe.Pointer(uintptr(offset)), int32(instances))
}

func (f *Functions) GenFramebuffer() halgl.Framebuffer {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return halgl.Framebuffer{V: uint(fb)}
}

func (f *Functions) DeleteFramebuffer(v halgl.Framebuffer) {
	fb := uint32(v.V)
	gl.DeleteFramebuffers(1, &fb)
}

func (f *Functions) BindFramebuffer(target halgl.Enum, fb halgl.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb.V))
}

func (f *Functions) CheckFramebufferStatus(target halgl.Enum) halgl.Enum {
	return halgl.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget halgl.Enum, t halgl.Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t.V), int32(level))
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, rbTarget halgl.Enum, rb halgl.Renderbuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), uint32(rb.V))
}

func (f *Functions) GenRenderbuffer() halgl.Renderbuffer {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	return halgl.Renderbuffer{V: uint(rb)}
}

func (f *Functions) DeleteRenderbuffer(v halgl.Renderbuffer) {
	rb := uint32(v.V)
	gl.DeleteRenderbuffers(1, &rb)
}

func (f *Functions) BindRenderbuffer(target halgl.Enum, rb halgl.Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), uint32(rb.V))
}

func (f *Functions) RenderbufferStorage(target, internalFormat halgl.Enum, width, height int) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter halgl.Enum) {
	gl.BlitFramebuffer(int32(sx0), int32(sy0), int32(sx1), int32(sy1), int32(dx0), int32(dy0), int32(dx1), int32(dy1), uint32(mask), uint32(filter))
}

func (f *Functions) DrawBuffers(bufs []halgl.Enum) {
	if len(bufs) == 0 {
		return
	}
	b := make([]uint32, len(bufs))
	for i, e := range bufs {
		b[i] = uint32(e)
	}
	gl.DrawBuffers(int32(len(b)), &b[0])
}

func (f *Functions) GenFramebufferEXT() halgl.Framebuffer {
	var fb uint32
	gl.GenFramebuffersEXT(1, &fb)
	return halgl.Framebuffer{V: uint(fb)}
}

func (f *Functions) DeleteFramebufferEXT(v halgl.Framebuffer) {
	fb := uint32(v.V)
	gl.DeleteFramebuffersEXT(1, &fb)
}

func (f *Functions) BindFramebufferEXT(target halgl.Enum, fb halgl.Framebuffer) {
	gl.BindFramebufferEXT(uint32(target), uint32(fb.V))
}

func (f *Functions) CheckFramebufferStatusEXT(target halgl.Enum) halgl.Enum {
	return halgl.Enum(gl.CheckFramebufferStatusEXT(uint32(target)))
}

func (f *Functions) FramebufferTexture2DEXT(target, attachment, texTarget halgl.Enum, t halgl.Texture, level int) {
	gl.FramebufferTexture2DEXT(uint32(target), uint32(attachment), uint32(texTarget), uint32(t.V), int32(level))
}

func (f *Functions) FramebufferRenderbufferEXT(target, attachment, rbTarget halgl.Enum, rb halgl.Renderbuffer) {
	gl.FramebufferRenderbufferEXT(uint32(target), uint32(attachment), uint32(rbTarget), uint32(rb.V))
}

func (f *Functions) GenRenderbufferEXT() halgl.Renderbuffer {
	var rb uint32
	gl.GenRenderbuffersEXT(1, &rb)
	return halgl.Renderbuffer{V: uint(rb)}
}

func (f *Functions) DeleteRenderbufferEXT(v halgl.Renderbuffer) {
	rb := uint32(v.V)
	gl.DeleteRenderbuffersEXT(1, &rb)
}

func (f *Functions) BindRenderbufferEXT(target halgl.Enum, rb halgl.Renderbuffer) {
	gl.BindRenderbufferEXT(uint32(target), uint32(rb.V))
}

func (f *Functions) RenderbufferStorageEXT(target, internalFormat halgl.Enum, width, height int) {
	gl.RenderbufferStorageEXT(uint32(target), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) BlitFramebufferEXT(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter halgl.Enum) {
	gl.BlitFramebufferEXT(int32(sx0), int32(sy0), int32(sx1), int32(sy1), int32(dx0), int32(dy0), int32(dx1), int32(dy1), uint32(mask), uint32(filter))
}

func (f *Functions) GenQuery() halgl.Query {
	var q uint32
	gl.GenQueries(1, &q)
	return halgl.Query{V: uint(q)}
}

func (f *Functions) DeleteQuery(v halgl.Query) {
	q := uint32(v.V)
	gl.DeleteQueries(1, &q)
}

func (f *Functions) BeginQuery(target halgl.Enum, q halgl.Query) {
	gl.BeginQuery(uint32(target), uint32(q.V))
}

func (f *Functions) EndQuery(target halgl.Enum) {
	gl.EndQuery(uint32(target))
}

func (f *Functions) GetQueryObjectuiv(q halgl.Query, pname halgl.Enum) uint {
	var i uint32
	gl.GetQueryObjectuiv(uint32(q.V), uint32(pname), &i)
	return uint(i)
}

func (f *Functions) DebugMessageCallback(cb halgl.DebugProc) {
	f.debug = cb
	gl.DebugMessageCallbackARB(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		f.debug(halgl.Enum(source), halgl.Enum(gltype), uint(id), halgl.Enum(severity), message)
	}, nil)
}

func (f *Functions) DebugMessageControl(source, typ, severity halgl.Enum, enabled bool) {
	gl.DebugMessageControlARB(uint32(source), uint32(typ), uint32(severity), 0, nil, enabled)
}
