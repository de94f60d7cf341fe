// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"image"
	"testing"

	"gfxhal.org/gl"
	"gfxhal.org/gl/gltest"
	"gfxhal.org/gpu"
)

func TestFBOBindCollapse(t *testing.T) {
	rec := gltest.New()
	m := newFBOManager(rec, false)
	a, b := gl.Framebuffer{V: 1}, gl.Framebuffer{V: 2}

	m.bind(a)
	expectCalls(t, rec, call("BindFramebuffer", gl.Enum(gl.FRAMEBUFFER), a))
	rec.Reset()
	m.bind(a)
	expectCalls(t, rec)

	m.bindRead(b)
	m.bind(b)
	expectCalls(t, rec,
		call("BindFramebuffer", gl.Enum(gl.READ_FRAMEBUFFER), b),
		call("BindFramebuffer", gl.Enum(gl.DRAW_FRAMEBUFFER), b),
	)
	rec.Reset()
	m.bindDraw(a)
	m.restore(b, b)
	expectCalls(t, rec,
		call("BindFramebuffer", gl.Enum(gl.DRAW_FRAMEBUFFER), a),
		call("BindFramebuffer", gl.Enum(gl.DRAW_FRAMEBUFFER), b),
	)
	rec.Reset()
	m.restore(a, gl.Framebuffer{})
	expectCalls(t, rec,
		call("BindFramebuffer", gl.Enum(gl.READ_FRAMEBUFFER), a),
		call("BindFramebuffer", gl.Enum(gl.DRAW_FRAMEBUFFER), gl.Framebuffer{}),
	)
}

func TestFBODeleteForgetsBinding(t *testing.T) {
	rec := gltest.New()
	m := newFBOManager(rec, false)
	fbo := m.createFramebuffer()
	m.bind(fbo)
	m.deleteFramebuffer(fbo)
	if m.readFBO.Valid() || m.drawFBO.Valid() {
		t.Errorf("got read %v draw %v after deleting the bound framebuffer", m.readFBO, m.drawFBO)
	}
	rec.Reset()
	// The driver reverts to the window framebuffer; binding it is
	// redundant.
	m.bind(gl.Framebuffer{})
	expectCalls(t, rec)
}

func TestFBODepthAttachments(t *testing.T) {
	tests := []struct {
		ext    bool
		format gpu.DepthFormat
		points []gl.Enum
	}{
		{false, gpu.DepthNone, nil},
		{false, gpu.Depth16, []gl.Enum{gl.DEPTH_ATTACHMENT}},
		{false, gpu.Depth24, []gl.Enum{gl.DEPTH_ATTACHMENT}},
		{false, gpu.Depth24Stencil8, []gl.Enum{gl.DEPTH_STENCIL_ATTACHMENT}},
		{true, gpu.Depth24, []gl.Enum{gl.DEPTH_ATTACHMENT}},
		{true, gpu.Depth24Stencil8, []gl.Enum{gl.DEPTH_ATTACHMENT, gl.STENCIL_ATTACHMENT}},
	}
	for _, test := range tests {
		rec := gltest.New()
		m := newFBOManager(rec, test.ext)
		name := "FramebufferRenderbuffer"
		if test.ext {
			name += "EXT"
		}
		rb := gl.Renderbuffer{V: 3}
		m.attachDepthRenderbuffer(rb, test.format)
		var want []gltest.Call
		for _, p := range test.points {
			want = append(want, call(name, gl.Enum(gl.FRAMEBUFFER), p, gl.Enum(gl.RENDERBUFFER), rb))
		}
		expectCalls(t, rec, want...)
	}
}

func TestFBORenderbuffer(t *testing.T) {
	rec := gltest.New()
	m := newFBOManager(rec, true)
	rb := m.createRenderbuffer(256, 128, gpu.Depth24Stencil8)
	expectCalls(t, rec,
		call("GenRenderbufferEXT", rb),
		call("BindRenderbufferEXT", gl.Enum(gl.RENDERBUFFER), rb),
		call("RenderbufferStorageEXT", gl.Enum(gl.RENDERBUFFER), gl.Enum(gl.DEPTH24_STENCIL8), 256, 128),
	)
	rec.Reset()
	m.storeRenderbuffer(rb, 512, 256, gpu.Depth24Stencil8)
	expectCalls(t, rec,
		call("RenderbufferStorageEXT", gl.Enum(gl.RENDERBUFFER), gl.Enum(gl.DEPTH24_STENCIL8), 512, 256),
	)
	rec.Reset()
	m.deleteRenderbuffer(rb)
	m.createRenderbuffer(4, 4, gpu.Depth16)
	if n := rec.Count("BindRenderbufferEXT"); n != 1 {
		t.Errorf("got %d renderbuffer binds, expected 1", n)
	}
}

func TestFBOBlit(t *testing.T) {
	rec := gltest.New()
	m := newFBOManager(rec, false)
	m.blit(image.Pt(320, 200), image.Pt(1280, 800))
	expectCalls(t, rec,
		call("BlitFramebuffer", 0, 0, 320, 200, 0, 0, 1280, 800, gl.Enum(gl.COLOR_BUFFER_BIT), gl.Enum(gl.LINEAR)),
	)
}
