// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"image"
	"testing"

	"gfxhal.org/gl"
	"gfxhal.org/gl/gltest"
	"gfxhal.org/gpu"
)

func depthAttach(point gl.Enum, tex gl.Texture) gltest.Call {
	return call("FramebufferTexture2D", gl.Enum(gl.FRAMEBUFFER), point, gl.Enum(gl.TEXTURE_2D), tex, 0)
}

func TestFauxBackbufferPresent(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	d.ApplyRasterizerState(gpu.RasterizerState{ScissorTestEnable: true}, false)
	rec.Reset()
	d.SwapBuffers()
	bb := d.backbuffer.framebuffer()
	expectCalls(t, rec,
		call("Disable", gl.Enum(gl.SCISSOR_TEST)),
		call("BindFramebuffer", gl.Enum(gl.DRAW_FRAMEBUFFER), gl.Framebuffer{}),
		call("BlitFramebuffer", 0, 0, 800, 480, 0, 0, 1600, 960, gl.Enum(gl.COLOR_BUFFER_BIT), gl.Enum(gl.LINEAR)),
		call("Enable", gl.Enum(gl.SCISSOR_TEST)),
		call("BindFramebuffer", gl.Enum(gl.DRAW_FRAMEBUFFER), bb),
	)
	if env.host.swaps != 1 {
		t.Errorf("got %d swaps, expected 1", env.host.swaps)
	}
	if !d.glstate.scissorTest {
		t.Error("scissor test left disabled after present")
	}
}

func TestFauxBackbufferPresentNoScissor(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	d.SwapBuffers()
	if n := rec.Count("Disable") + rec.Count("Enable"); n != 0 {
		t.Errorf("got %d scissor toggles with the scissor test off", n)
	}
	if d.fbo.readFBO != d.backbuffer.framebuffer() || d.fbo.drawFBO != d.backbuffer.framebuffer() {
		t.Error("backbuffer not rebound after present")
	}
}

func TestResetBackbufferKeepsTarget(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	tex := newTexture(t, d, 64, 64)
	d.SetRenderTargets([]RenderTarget{{Texture: tex}}, nil, gpu.DepthNone)
	rec.Reset()

	d.ResetBackbuffer(1024, 768, gpu.Depth16)
	if got, exp := d.BackbufferSize(), image.Pt(1024, 768); got != exp {
		t.Errorf("got backbuffer size %v, expected %v", got, exp)
	}
	images := rec.Named("TexImage2D")
	if len(images) != 2 {
		t.Fatalf("got %d image specifications, expected color and depth", len(images))
	}
	if got := images[1].Args[2]; got != gl.Enum(gl.DEPTH_COMPONENT16) {
		t.Errorf("got depth internal format %v, expected DEPTH_COMPONENT16", got)
	}
	for _, img := range images {
		if img.Args[3] != 1024 || img.Args[4] != 768 {
			t.Errorf("got image size %vx%v, expected 1024x768", img.Args[3], img.Args[4])
		}
	}
	if n := rec.Count("FramebufferTexture2D"); n != 0 {
		t.Errorf("got %d attachment changes for a resize", n)
	}
	if !d.RenderTargetBound() {
		t.Error("render target unbound by backbuffer reset")
	}
	if d.fbo.readFBO != d.target.fbo || d.fbo.drawFBO != d.target.fbo {
		t.Errorf("got read %v draw %v, expected the render target %v", d.fbo.readFBO, d.fbo.drawFBO, d.target.fbo)
	}
	binds := rec.Named("BindFramebuffer")
	if len(binds) == 0 || binds[len(binds)-1].Args[1] != d.target.fbo {
		t.Errorf("got framebuffer binds %v, expected the render target last", binds)
	}

	rec.Reset()
	d.ResetBackbuffer(1024, 768, gpu.Depth16)
	expectCalls(t, rec)
}

func TestResetBackbufferDepthFormat(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	depth := d.backbuffer.(*fauxBackbuffer).depth.obj

	d.ResetBackbuffer(800, 480, gpu.Depth24Stencil8)
	expectCalls(t, rec,
		call("TexImage2D", gl.Enum(gl.TEXTURE_2D), 0, gl.Enum(gl.DEPTH24_STENCIL8), 800, 480,
			gl.Enum(gl.DEPTH_STENCIL), gl.Enum(gl.UNSIGNED_INT_24_8), 0),
		depthAttach(gl.DEPTH_ATTACHMENT, gl.Texture{}),
		depthAttach(gl.DEPTH_STENCIL_ATTACHMENT, depth),
	)
	if got := d.currentDepthFormat(); got != gpu.Depth24Stencil8 {
		t.Errorf("got depth format %v, expected %v", got, gpu.Depth24Stencil8)
	}

	rec.Reset()
	d.ResetBackbuffer(800, 480, gpu.DepthNone)
	expectCalls(t, rec, depthAttach(gl.DEPTH_STENCIL_ATTACHMENT, gl.Texture{}))
}

func TestResetBackbufferInvalid(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	defer func() {
		if recover() == nil {
			t.Error("zero backbuffer height did not panic")
		}
	}()
	env.dev.ResetBackbuffer(640, 0, gpu.Depth16)
}

func TestWindowBackbufferReset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisableFauxBackbuffer = true
	env := newTestEnv(t, cfg, nil)
	d := env.dev
	d.ResetBackbuffer(320, 200, gpu.Depth24)
	expectCalls(t, env.rec)
	if got, exp := d.BackbufferSize(), image.Pt(320, 200); got != exp {
		t.Errorf("got backbuffer size %v, expected %v", got, exp)
	}
	if got := d.currentDepthFormat(); got != gpu.Depth24 {
		t.Errorf("got depth format %v, expected %v", got, gpu.Depth24)
	}
}
