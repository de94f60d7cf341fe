// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"image"
	"log/slog"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
)

// backbuffer is the default render target.
type backbuffer interface {
	framebuffer() gl.Framebuffer
	size() image.Point
	depthFormat() gpu.DepthFormat
	reset(d *Device, width, height int, format gpu.DepthFormat)
	present(d *Device)
	release(d *Device)
}

// fauxBackbuffer is an off-screen framebuffer at the logical
// presentation size that is blitted to the window on present.
type fauxBackbuffer struct {
	fbo    gl.Framebuffer
	color  *Texture
	depth  *Texture
	width  int
	height int
	format gpu.DepthFormat
}

// windowBackbuffer renders straight to the window framebuffer.
type windowBackbuffer struct {
	width  int
	height int
	format gpu.DepthFormat
}

func newFauxBackbuffer(d *Device, width, height int, format gpu.DepthFormat) *fauxBackbuffer {
	b := &fauxBackbuffer{
		fbo:   d.fbo.createFramebuffer(),
		color: d.newTextureObject(gl.TEXTURE_2D, gpu.FormatColor, 1),
	}
	b.color.setSampler(d, gpu.SamplerLinearClamp)
	b.depth = d.newTextureObject(gl.TEXTURE_2D, gpu.FormatColor, 1)
	b.depth.setSampler(d, gpu.SamplerPointClamp)
	read, draw := d.fbo.readFBO, d.fbo.drawFBO
	d.fbo.bind(b.fbo)
	b.allocColor(d, width, height)
	d.fbo.attachColor(0, b.color.obj, gl.TEXTURE_2D)
	if format != gpu.DepthNone {
		b.allocDepth(d, width, height, format)
		d.fbo.attachDepthTexture(b.depth.obj, format)
	}
	b.width, b.height, b.format = width, height, format
	d.fbo.restore(read, draw)
	return b
}

func (b *fauxBackbuffer) framebuffer() gl.Framebuffer {
	return b.fbo
}

func (b *fauxBackbuffer) size() image.Point {
	return image.Pt(b.width, b.height)
}

func (b *fauxBackbuffer) depthFormat() gpu.DepthFormat {
	return b.format
}

func (b *fauxBackbuffer) allocColor(d *Device, width, height int) {
	d.bindTexture(b.color)
	t := b.color.triple
	d.funcs.TexImage2D(gl.TEXTURE_2D, 0, t.internalFormat, width, height, t.format, t.typ, nil)
	b.color.width, b.color.height = width, height
}

// reset reallocates the attachments in place. A change of depth format
// moves the depth attachment to the attachment points of the new format.
// The framebuffers bound before the call are bound after it.
func (b *fauxBackbuffer) reset(d *Device, width, height int, format gpu.DepthFormat) {
	resized := width != b.width || height != b.height
	if !resized && format == b.format {
		return
	}
	read, draw := d.fbo.readFBO, d.fbo.drawFBO
	d.fbo.bind(b.fbo)
	if resized {
		b.allocColor(d, width, height)
	}
	if format != gpu.DepthNone {
		b.allocDepth(d, width, height, format)
	}
	if format != b.format {
		if b.format != gpu.DepthNone {
			d.fbo.attachDepthTexture(gl.Texture{}, b.format)
		}
		if format != gpu.DepthNone {
			d.fbo.attachDepthTexture(b.depth.obj, format)
		}
	}
	b.width, b.height, b.format = width, height, format
	d.fbo.restore(read, draw)
}

// allocDepth (re)specifies the depth texture storage in format.
func (b *fauxBackbuffer) allocDepth(d *Device, width, height int, format gpu.DepthFormat) {
	d.bindTexture(b.depth)
	t := depthTripleFor(format)
	d.funcs.TexImage2D(gl.TEXTURE_2D, 0, t.internalFormat, width, height, t.format, t.typ, nil)
	b.depth.triple = t
	b.depth.width, b.depth.height = width, height
}

// present blits the backbuffer to the window, swaps and rebinds the
// backbuffer. The scissor test is suspended during the blit.
func (b *fauxBackbuffer) present(d *Device) {
	f := d.funcs
	scissor := d.glstate.scissorTest
	if scissor {
		f.Disable(gl.SCISSOR_TEST)
	}
	d.fbo.bindRead(b.fbo)
	d.fbo.bindDraw(gl.Framebuffer{})
	d.fbo.blit(b.size(), d.host.DrawableSize())
	if scissor {
		f.Enable(gl.SCISSOR_TEST)
	}
	d.host.SwapWindow()
	d.fbo.bind(b.fbo)
}

// release deletes the framebuffer before its attachments.
func (b *fauxBackbuffer) release(d *Device) {
	d.fbo.deleteFramebuffer(b.fbo)
	d.glstate.deleteTexture(d.funcs, b.color)
	d.glstate.deleteTexture(d.funcs, b.depth)
}

func newWindowBackbuffer(width, height int, format gpu.DepthFormat) *windowBackbuffer {
	return &windowBackbuffer{width: width, height: height, format: format}
}

func (b *windowBackbuffer) framebuffer() gl.Framebuffer {
	return gl.Framebuffer{}
}

func (b *windowBackbuffer) size() image.Point {
	return image.Pt(b.width, b.height)
}

func (b *windowBackbuffer) depthFormat() gpu.DepthFormat {
	return b.format
}

// reset only records the new parameters; the window surface belongs to
// the host.
func (b *windowBackbuffer) reset(d *Device, width, height int, format gpu.DepthFormat) {
	b.width, b.height, b.format = width, height, format
}

func (b *windowBackbuffer) present(d *Device) {
	d.host.SwapWindow()
}

func (b *windowBackbuffer) release(d *Device) {}

// BackbufferSize returns the logical presentation size.
func (d *Device) BackbufferSize() image.Point {
	return d.backbuffer.size()
}

// ResetBackbuffer changes the logical presentation size and depth
// format. A bound render target stays bound.
func (d *Device) ResetBackbuffer(width, height int, format gpu.DepthFormat) {
	if width <= 0 || height <= 0 {
		panic("invalid backbuffer size")
	}
	d.exec(func() {
		d.backbuffer.reset(d, width, height, format)
	})
	Logger().Info("backbuffer reset",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("depth_format", format.String()),
	)
}

// SwapBuffers presents the backbuffer and runs the driver calls queued
// by other threads.
func (d *Device) SwapBuffers() {
	d.exec(func() {
		d.backbuffer.present(d)
	})
	d.RunPending()
}
