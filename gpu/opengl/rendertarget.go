// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"errors"
	"fmt"
	"image"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
)

// RenderTarget selects a texture image to draw into. Face is used for
// cube textures only.
type RenderTarget struct {
	Texture *Texture
	Face    gpu.CubeMapFace
}

// Renderbuffer is a depth or depth-stencil buffer for render targets.
type Renderbuffer struct {
	dev    *Device
	obj    gl.Renderbuffer
	format gpu.DepthFormat
	width  int
	height int
}

type attachment struct {
	tex    gl.Texture
	target gl.Enum
}

// targetState tracks the attachments of the render target framebuffer.
type targetState struct {
	f           gl.Functions
	m           *fboManager
	fbo         gl.Framebuffer
	attachments []attachment
	// count is the number of color attachments named by the last
	// DrawBuffers call.
	count       int
	depth       gl.Renderbuffer
	depthFormat gpu.DepthFormat
	bound       bool
	drawBuffers []gl.Enum
}

func newTargetState(f gl.Functions, m *fboManager, maxDrawBuffers int) targetState {
	s := targetState{
		f:           f,
		m:           m,
		fbo:         m.createFramebuffer(),
		attachments: make([]attachment, maxDrawBuffers),
		drawBuffers: make([]gl.Enum, maxDrawBuffers),
	}
	for i := range s.drawBuffers {
		s.drawBuffers[i] = gl.COLOR_ATTACHMENT0 + gl.Enum(i)
	}
	return s
}

// NewRenderbuffer allocates a depth buffer for render targets.
func (d *Device) NewRenderbuffer(width, height int, format gpu.DepthFormat) (*Renderbuffer, error) {
	if format == gpu.DepthNone {
		return nil, errors.New("opengl: renderbuffer without depth format")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("opengl: invalid renderbuffer size %dx%d", width, height)
	}
	rb := &Renderbuffer{dev: d, format: format, width: width, height: height}
	d.exec(func() {
		rb.obj = d.fbo.createRenderbuffer(width, height, format)
	})
	return rb, nil
}

func (r *Renderbuffer) Format() gpu.DepthFormat { return r.format }

func (r *Renderbuffer) Size() image.Point { return image.Pt(r.width, r.height) }

// Release deletes the renderbuffer, detaching it first if it is the
// current depth attachment.
func (r *Renderbuffer) Release() {
	if !r.obj.Valid() {
		return
	}
	d := r.dev
	d.exec(func() {
		d.target.detachDepth(r.obj)
		d.fbo.deleteRenderbuffer(r.obj)
	})
	r.obj = gl.Renderbuffer{}
}

// SetRenderTargets directs draws to targets with an optional depth
// buffer of the given format. No targets selects the backbuffer.
func (d *Device) SetRenderTargets(targets []RenderTarget, depth *Renderbuffer, format gpu.DepthFormat) {
	if len(targets) > len(d.target.attachments) {
		panic(fmt.Errorf("%d render targets exceed the maximum %d", len(targets), len(d.target.attachments)))
	}
	if depth != nil && depth.format != format {
		panic(fmt.Errorf("renderbuffer format %v used as %v", depth.format, format))
	}
	d.exec(func() {
		if len(targets) == 0 {
			d.fbo.bind(d.backbuffer.framebuffer())
			d.target.bound = false
			return
		}
		d.target.set(targets, depth, format)
	})
}

func (s *targetState) set(targets []RenderTarget, depth *Renderbuffer, format gpu.DepthFormat) {
	s.m.bind(s.fbo)
	for i, rt := range targets {
		a := attachment{tex: rt.Texture.obj, target: gl.TEXTURE_2D}
		if rt.Texture.target == gl.TEXTURE_CUBE_MAP {
			a.target = cubeFaceTarget(rt.Face)
		}
		if a != s.attachments[i] {
			s.m.attachColor(i, a.tex, a.target)
			s.attachments[i] = a
		}
	}
	for i := len(targets); i < len(s.attachments); i++ {
		if a := s.attachments[i]; a.tex.Valid() {
			s.m.attachColor(i, gl.Texture{}, a.target)
			s.attachments[i] = attachment{}
		}
	}
	if len(targets) != s.count {
		s.f.DrawBuffers(s.drawBuffers[:len(targets)])
		s.count = len(targets)
	}

	var rb gl.Renderbuffer
	if depth != nil {
		rb = depth.obj
	} else {
		format = gpu.DepthNone
	}
	if rb != s.depth || format != s.depthFormat {
		// A format change moves the attachment points.
		if s.depth.Valid() && format != s.depthFormat {
			s.m.attachDepthRenderbuffer(gl.Renderbuffer{}, s.depthFormat)
		}
		if rb.Valid() {
			s.m.attachDepthRenderbuffer(rb, format)
		}
		s.depth, s.depthFormat = rb, format
	}
	s.bound = true
}

// detachTexture removes t from the color attachments.
func (s *targetState) detachTexture(t *Texture) {
	read, draw := s.m.readFBO, s.m.drawFBO
	bound := false
	for i, a := range s.attachments {
		if a.tex != t.obj {
			continue
		}
		if !bound {
			s.m.bindDraw(s.fbo)
			bound = true
		}
		s.m.attachColor(i, gl.Texture{}, a.target)
		s.attachments[i] = attachment{}
	}
	if bound {
		s.m.restore(read, draw)
	}
}

func (s *targetState) detachDepth(rb gl.Renderbuffer) {
	if rb != s.depth {
		return
	}
	read, draw := s.m.readFBO, s.m.drawFBO
	s.m.bindDraw(s.fbo)
	s.m.attachDepthRenderbuffer(gl.Renderbuffer{}, s.depthFormat)
	s.m.restore(read, draw)
	s.depth, s.depthFormat = gl.Renderbuffer{}, gpu.DepthNone
}

// readTargetIfApplicable reads rect of t from the render target
// framebuffer when t is its single color attachment, and reports whether
// it did.
func (d *Device) readTargetIfApplicable(t *Texture, level int, rect image.Rectangle, data []byte) bool {
	s := &d.target
	if s.count != 1 || s.attachments[0].tex != t.obj || level != 0 || t.target != gl.TEXTURE_2D {
		return false
	}
	prev := d.fbo.readFBO
	d.fbo.bindRead(s.fbo)
	d.withRowAlignment(gl.PACK_ALIGNMENT, t.format, func() {
		d.funcs.ReadPixels(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), t.triple.format, t.triple.typ, data)
	})
	d.fbo.bindRead(prev)
	return true
}

// currentDepthFormat is the depth format draws are tested against.
func (d *Device) currentDepthFormat() gpu.DepthFormat {
	if d.target.bound {
		return d.target.depthFormat
	}
	return d.backbuffer.depthFormat()
}
