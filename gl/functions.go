// SPDX-License-Identifier: Unlicense OR MIT

// Package gl defines the narrow OpenGL call surface used by the device
// layer. Implementations live in subpackages: gogl binds a real driver,
// gltest records calls for tests.
package gl

import (
	"fmt"
	"strings"
)

// DebugProc receives driver debug output.
type DebugProc func(source, typ Enum, id uint, severity Enum, message string)

// Functions is the set of driver entry points the device layer calls.
// Both the ARB and the EXT framebuffer-object families are part of the
// surface; callers pick one at initialization.
type Functions interface {
	GetError() Enum
	GetString(name Enum) string
	GetInteger(pname Enum) int
	GetFloat(pname Enum) float32

	Enable(cap Enum)
	Disable(cap Enum)
	PixelStorei(pname Enum, param int)

	BlendColor(r, g, b, a float32)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA Enum)
	ColorMask(r, g, b, a bool)

	DepthFunc(fn Enum)
	DepthMask(mask bool)
	DepthRange(near, far float64)
	PolygonOffset(factor, units float32)
	StencilFunc(fn Enum, ref int, mask uint32)
	StencilFuncSeparate(face, fn Enum, ref int, mask uint32)
	StencilMask(mask uint32)
	StencilOp(fail, zfail, zpass Enum)
	StencilOpSeparate(face, fail, zfail, zpass Enum)

	CullFace(mode Enum)
	FrontFace(mode Enum)
	PolygonMode(face, mode Enum)
	Scissor(x, y, width, height int)
	Viewport(x, y, width, height int)

	Clear(mask Enum)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float64)
	ClearStencil(s int)

	GenTexture() Texture
	DeleteTexture(t Texture)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexParameteri(target, pname Enum, param int)
	TexParameterf(target, pname Enum, param float32)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, data []byte)
	TexImage3D(target Enum, level int, internalFormat Enum, width, height, depth int, format, typ Enum, data []byte)
	TexSubImage2D(target Enum, level int, x, y, width, height int, format, typ Enum, data []byte)
	TexSubImage3D(target Enum, level int, x, y, z, width, height, depth int, format, typ Enum, data []byte)
	CompressedTexImage2D(target Enum, level int, internalFormat Enum, width, height int, data []byte)
	CompressedTexSubImage2D(target Enum, level int, x, y, width, height int, format Enum, data []byte)
	GetTexImage(target Enum, level int, format, typ Enum, data []byte)
	ReadPixels(x, y, width, height int, format, typ Enum, data []byte)

	GenBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, size int, usage Enum, data []byte)
	BufferSubData(target Enum, offset int, data []byte)
	// MapBuffer returns the mapped contents of the buffer bound to
	// target, or nil if the mapping failed.
	MapBuffer(target, access Enum) []byte
	UnmapBuffer(target Enum) bool

	EnableVertexAttribArray(a Attrib)
	DisableVertexAttribArray(a Attrib)
	VertexAttribPointer(a Attrib, size int, typ Enum, normalized bool, stride, offset int)
	VertexAttribDivisor(a Attrib, divisor int)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, typ Enum, offset int)
	DrawElementsInstanced(mode Enum, count int, typ Enum, offset, instances int)

	GenFramebuffer() Framebuffer
	DeleteFramebuffer(f Framebuffer)
	BindFramebuffer(target Enum, f Framebuffer)
	CheckFramebufferStatus(target Enum) Enum
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, r Renderbuffer)
	GenRenderbuffer() Renderbuffer
	DeleteRenderbuffer(r Renderbuffer)
	BindRenderbuffer(target Enum, r Renderbuffer)
	RenderbufferStorage(target, internalFormat Enum, width, height int)
	BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter Enum)
	DrawBuffers(bufs []Enum)

	GenFramebufferEXT() Framebuffer
	DeleteFramebufferEXT(f Framebuffer)
	BindFramebufferEXT(target Enum, f Framebuffer)
	CheckFramebufferStatusEXT(target Enum) Enum
	FramebufferTexture2DEXT(target, attachment, texTarget Enum, t Texture, level int)
	FramebufferRenderbufferEXT(target, attachment, rbTarget Enum, r Renderbuffer)
	GenRenderbufferEXT() Renderbuffer
	DeleteRenderbufferEXT(r Renderbuffer)
	BindRenderbufferEXT(target Enum, r Renderbuffer)
	RenderbufferStorageEXT(target, internalFormat Enum, width, height int)
	BlitFramebufferEXT(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter Enum)

	GenQuery() Query
	DeleteQuery(q Query)
	BeginQuery(target Enum, q Query)
	EndQuery(target Enum)
	GetQueryObjectuiv(q Query, pname Enum) uint

	DebugMessageCallback(cb DebugProc)
	DebugMessageControl(source, typ, severity Enum, enabled bool)
}

// ParseGLVersion parses a GL_VERSION string into its major and minor
// numbers.
func ParseGLVersion(glVer string) ([2]int, error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	return ver, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}

// Extensions splits a GL_EXTENSIONS string.
func Extensions(s string) []string {
	return strings.Fields(s)
}

func HasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
