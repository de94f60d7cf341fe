// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"image"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
)

// framebufferFuncs is one family of framebuffer object entry points.
type framebufferFuncs struct {
	genFramebuffer      func() gl.Framebuffer
	deleteFramebuffer   func(gl.Framebuffer)
	bindFramebuffer     func(gl.Enum, gl.Framebuffer)
	checkStatus         func(gl.Enum) gl.Enum
	texture2D           func(target, attachment, texTarget gl.Enum, t gl.Texture, level int)
	renderbuffer        func(target, attachment, rbTarget gl.Enum, r gl.Renderbuffer)
	genRenderbuffer     func() gl.Renderbuffer
	deleteRenderbuffer  func(gl.Renderbuffer)
	bindRenderbuffer    func(gl.Enum, gl.Renderbuffer)
	renderbufferStorage func(target, internalFormat gl.Enum, width, height int)
	blit                func(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter gl.Enum)
}

func arbFramebufferFuncs(f gl.Functions) framebufferFuncs {
	return framebufferFuncs{
		genFramebuffer:      f.GenFramebuffer,
		deleteFramebuffer:   f.DeleteFramebuffer,
		bindFramebuffer:     f.BindFramebuffer,
		checkStatus:         f.CheckFramebufferStatus,
		texture2D:           f.FramebufferTexture2D,
		renderbuffer:        f.FramebufferRenderbuffer,
		genRenderbuffer:     f.GenRenderbuffer,
		deleteRenderbuffer:  f.DeleteRenderbuffer,
		bindRenderbuffer:    f.BindRenderbuffer,
		renderbufferStorage: f.RenderbufferStorage,
		blit:                f.BlitFramebuffer,
	}
}

func extFramebufferFuncs(f gl.Functions) framebufferFuncs {
	return framebufferFuncs{
		genFramebuffer:      f.GenFramebufferEXT,
		deleteFramebuffer:   f.DeleteFramebufferEXT,
		bindFramebuffer:     f.BindFramebufferEXT,
		checkStatus:         f.CheckFramebufferStatusEXT,
		texture2D:           f.FramebufferTexture2DEXT,
		renderbuffer:        f.FramebufferRenderbufferEXT,
		genRenderbuffer:     f.GenRenderbufferEXT,
		deleteRenderbuffer:  f.DeleteRenderbufferEXT,
		bindRenderbuffer:    f.BindRenderbufferEXT,
		renderbufferStorage: f.RenderbufferStorageEXT,
		blit:                f.BlitFramebufferEXT,
	}
}

// fboManager hides the framebuffer object family and tracks the read
// and draw framebuffer bindings.
type fboManager struct {
	fn framebufferFuncs
	// ext is set for the EXT family, which has no combined
	// depth-stencil attachment point.
	ext bool

	readFBO   gl.Framebuffer
	drawFBO   gl.Framebuffer
	renderBuf gl.Renderbuffer
}

func newFBOManager(f gl.Functions, ext bool) *fboManager {
	m := &fboManager{ext: ext}
	if ext {
		m.fn = extFramebufferFuncs(f)
		Logger().Debug("using EXT framebuffer objects")
	} else {
		m.fn = arbFramebufferFuncs(f)
		Logger().Debug("using ARB framebuffer objects")
	}
	return m
}

func (m *fboManager) createFramebuffer() gl.Framebuffer {
	return m.fn.genFramebuffer()
}

func (m *fboManager) deleteFramebuffer(fbo gl.Framebuffer) {
	m.fn.deleteFramebuffer(fbo)
	if fbo == m.drawFBO {
		m.drawFBO = gl.Framebuffer{}
	}
	if fbo == m.readFBO {
		m.readFBO = gl.Framebuffer{}
	}
}

// bind binds fbo for both reading and drawing, with a single driver
// call when both bindings change.
func (m *fboManager) bind(fbo gl.Framebuffer) {
	switch {
	case fbo != m.readFBO && fbo != m.drawFBO:
		m.fn.bindFramebuffer(gl.FRAMEBUFFER, fbo)
		m.readFBO = fbo
		m.drawFBO = fbo
	case fbo != m.readFBO:
		m.bindRead(fbo)
	case fbo != m.drawFBO:
		m.bindDraw(fbo)
	}
}

func (m *fboManager) bindRead(fbo gl.Framebuffer) {
	if fbo == m.readFBO {
		return
	}
	m.fn.bindFramebuffer(gl.READ_FRAMEBUFFER, fbo)
	m.readFBO = fbo
}

func (m *fboManager) bindDraw(fbo gl.Framebuffer) {
	if fbo == m.drawFBO {
		return
	}
	m.fn.bindFramebuffer(gl.DRAW_FRAMEBUFFER, fbo)
	m.drawFBO = fbo
}

// restore rebinds a saved pair of bindings.
func (m *fboManager) restore(read, draw gl.Framebuffer) {
	if read == draw {
		m.bind(read)
		return
	}
	m.bindRead(read)
	m.bindDraw(draw)
}

func (m *fboManager) status() gl.Enum {
	return m.fn.checkStatus(gl.FRAMEBUFFER)
}

// attachColor attaches a 2D image, or detaches with a zero texture, at
// color attachment index of the draw framebuffer.
func (m *fboManager) attachColor(index int, tex gl.Texture, texTarget gl.Enum) {
	m.fn.texture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+gl.Enum(index), texTarget, tex, 0)
}

// attachDepthRenderbuffer attaches rb at the attachment points of format.
// A zero rb detaches.
func (m *fboManager) attachDepthRenderbuffer(rb gl.Renderbuffer, format gpu.DepthFormat) {
	for _, point := range m.depthAttachments(format) {
		m.fn.renderbuffer(gl.FRAMEBUFFER, point, gl.RENDERBUFFER, rb)
	}
}

// attachDepthTexture is like attachDepthRenderbuffer for a depth texture.
func (m *fboManager) attachDepthTexture(tex gl.Texture, format gpu.DepthFormat) {
	for _, point := range m.depthAttachments(format) {
		m.fn.texture2D(gl.FRAMEBUFFER, point, gl.TEXTURE_2D, tex, 0)
	}
}

var (
	depthPoints        = []gl.Enum{gl.DEPTH_ATTACHMENT}
	depthStencilPoints = []gl.Enum{gl.DEPTH_STENCIL_ATTACHMENT}
	// The EXT family attaches depth-stencil images twice.
	depthStencilPointsEXT = []gl.Enum{gl.DEPTH_ATTACHMENT, gl.STENCIL_ATTACHMENT}
)

func (m *fboManager) depthAttachments(format gpu.DepthFormat) []gl.Enum {
	switch {
	case format == gpu.DepthNone:
		return nil
	case !format.HasStencil():
		return depthPoints
	case m.ext:
		return depthStencilPointsEXT
	default:
		return depthStencilPoints
	}
}

func (m *fboManager) bindRenderbuffer(rb gl.Renderbuffer) {
	if rb != m.renderBuf {
		m.fn.bindRenderbuffer(gl.RENDERBUFFER, rb)
		m.renderBuf = rb
	}
}

// createRenderbuffer allocates a depth renderbuffer of the given size
// and format.
func (m *fboManager) createRenderbuffer(width, height int, format gpu.DepthFormat) gl.Renderbuffer {
	rb := m.fn.genRenderbuffer()
	m.storeRenderbuffer(rb, width, height, format)
	return rb
}

// storeRenderbuffer (re)allocates the storage of rb.
func (m *fboManager) storeRenderbuffer(rb gl.Renderbuffer, width, height int, format gpu.DepthFormat) {
	m.bindRenderbuffer(rb)
	m.fn.renderbufferStorage(gl.RENDERBUFFER, depthTripleFor(format).internalFormat, width, height)
}

func (m *fboManager) deleteRenderbuffer(rb gl.Renderbuffer) {
	m.fn.deleteRenderbuffer(rb)
	if rb == m.renderBuf {
		m.renderBuf = gl.Renderbuffer{}
	}
}

// blit copies the color of the read framebuffer to the draw framebuffer
// with linear filtering.
func (m *fboManager) blit(src, dst image.Point) {
	m.fn.blit(0, 0, src.X, src.Y, 0, 0, dst.X, dst.Y, gl.COLOR_BUFFER_BIT, gl.LINEAR)
}
