// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"image"
	"testing"

	"gfxhal.org/gl"
	"gfxhal.org/gl/gltest"
	"gfxhal.org/gpu"
)

func colorAttach(index int, tex gl.Texture) gltest.Call {
	return call("FramebufferTexture2D", gl.Enum(gl.FRAMEBUFFER), gl.Enum(gl.COLOR_ATTACHMENT0+index), gl.Enum(gl.TEXTURE_2D), tex, 0)
}

func TestRenderTargetAttachments(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	t1 := newTexture(t, d, 64, 64)
	t2 := newTexture(t, d, 64, 64)
	rec.Reset()

	d.SetRenderTargets([]RenderTarget{{Texture: t1}}, nil, gpu.DepthNone)
	expectCalls(t, rec,
		call("BindFramebuffer", gl.Enum(gl.FRAMEBUFFER), d.target.fbo),
		colorAttach(0, t1.obj),
		call("DrawBuffers", []gl.Enum{gl.COLOR_ATTACHMENT0}),
	)
	if !d.RenderTargetBound() {
		t.Error("render target not bound")
	}
	rec.Reset()
	d.SetRenderTargets([]RenderTarget{{Texture: t1}}, nil, gpu.DepthNone)
	expectCalls(t, rec)

	d.SetRenderTargets([]RenderTarget{{Texture: t2}}, nil, gpu.DepthNone)
	expectCalls(t, rec, colorAttach(0, t2.obj))
	for i := 1; i < len(d.target.attachments); i++ {
		if a := d.target.attachments[i]; a.tex.Valid() {
			t.Errorf("slot %d holds %v, expected nothing", i, a.tex)
		}
	}

	rec.Reset()
	d.SetRenderTargets([]RenderTarget{{Texture: t1}, {Texture: t2}}, nil, gpu.DepthNone)
	expectCalls(t, rec,
		colorAttach(0, t1.obj),
		colorAttach(1, t2.obj),
		call("DrawBuffers", []gl.Enum{gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT0 + 1}),
	)
	rec.Reset()
	d.SetRenderTargets([]RenderTarget{{Texture: t1}}, nil, gpu.DepthNone)
	expectCalls(t, rec,
		colorAttach(1, gl.Texture{}),
		call("DrawBuffers", []gl.Enum{gl.COLOR_ATTACHMENT0}),
	)

	rec.Reset()
	d.SetRenderTargets(nil, nil, gpu.DepthNone)
	expectCalls(t, rec, call("BindFramebuffer", gl.Enum(gl.FRAMEBUFFER), d.backbuffer.framebuffer()))
	if d.RenderTargetBound() {
		t.Error("render target still bound")
	}
	// Attachments survive unbinding.
	rec.Reset()
	d.SetRenderTargets([]RenderTarget{{Texture: t1}}, nil, gpu.DepthNone)
	expectCalls(t, rec, call("BindFramebuffer", gl.Enum(gl.FRAMEBUFFER), d.target.fbo))
}

func TestRenderTargetCubeFace(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	cube, err := d.NewTextureCube(gpu.FormatColor, 16, 1)
	if err != nil {
		t.Fatal(err)
	}
	d.SetRenderTargets([]RenderTarget{{Texture: cube, Face: gpu.CubePositiveZ}}, nil, gpu.DepthNone)
	rec.Reset()
	d.SetRenderTargets([]RenderTarget{{Texture: cube, Face: gpu.CubeNegativeZ}}, nil, gpu.DepthNone)
	expectCalls(t, rec,
		call("FramebufferTexture2D", gl.Enum(gl.FRAMEBUFFER), gl.Enum(gl.COLOR_ATTACHMENT0),
			gl.Enum(gl.TEXTURE_CUBE_MAP_POSITIVE_X+5), cube.obj, 0),
	)
}

func TestRenderTargetDepthKey(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	tex := newTexture(t, d, 64, 64)
	rb16, err := d.NewRenderbuffer(64, 64, gpu.Depth16)
	if err != nil {
		t.Fatal(err)
	}
	rbStencil, err := d.NewRenderbuffer(64, 64, gpu.Depth24Stencil8)
	if err != nil {
		t.Fatal(err)
	}
	targets := []RenderTarget{{Texture: tex}}
	d.SetRenderTargets(targets, rb16, gpu.Depth16)
	if got := rec.Named("FramebufferRenderbuffer"); len(got) != 1 ||
		got[0].Args[1] != gl.Enum(gl.DEPTH_ATTACHMENT) || got[0].Args[3] != rb16.obj {
		t.Errorf("got %v, expected one depth attachment of %v", got, rb16.obj)
	}
	rec.Reset()
	d.SetRenderTargets(targets, rb16, gpu.Depth16)
	expectCalls(t, rec)

	d.SetRenderTargets(targets, rbStencil, gpu.Depth24Stencil8)
	expectCalls(t, rec,
		call("FramebufferRenderbuffer", gl.Enum(gl.FRAMEBUFFER), gl.Enum(gl.DEPTH_ATTACHMENT), gl.Enum(gl.RENDERBUFFER), gl.Renderbuffer{}),
		call("FramebufferRenderbuffer", gl.Enum(gl.FRAMEBUFFER), gl.Enum(gl.DEPTH_STENCIL_ATTACHMENT), gl.Enum(gl.RENDERBUFFER), rbStencil.obj),
	)
	rec.Reset()
	d.SetRenderTargets(targets, nil, gpu.DepthNone)
	expectCalls(t, rec,
		call("FramebufferRenderbuffer", gl.Enum(gl.FRAMEBUFFER), gl.Enum(gl.DEPTH_STENCIL_ATTACHMENT), gl.Enum(gl.RENDERBUFFER), gl.Renderbuffer{}),
	)
	if got := d.currentDepthFormat(); got != gpu.DepthNone {
		t.Errorf("got depth format %v, expected none", got)
	}
}

func TestRenderTargetDepthEXT(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), func(rec *gltest.Recorder, h *testHost) {
		h.procs = map[string]bool{"glGenFramebuffersEXT": true}
		rec.Strings[gl.EXTENSIONS] = "GL_EXT_framebuffer_object GL_EXT_framebuffer_blit"
	})
	d, rec := env.dev, env.rec
	if !d.Caps().FramebufferEXT {
		t.Fatal("expected the EXT framebuffer path")
	}
	tex := newTexture(t, d, 64, 64)
	rb, err := d.NewRenderbuffer(64, 64, gpu.Depth24Stencil8)
	if err != nil {
		t.Fatal(err)
	}
	rec.Reset()
	d.SetRenderTargets([]RenderTarget{{Texture: tex}}, rb, gpu.Depth24Stencil8)
	expectCalls(t, rec,
		call("BindFramebufferEXT", gl.Enum(gl.FRAMEBUFFER), d.target.fbo),
		call("FramebufferTexture2DEXT", gl.Enum(gl.FRAMEBUFFER), gl.Enum(gl.COLOR_ATTACHMENT0), gl.Enum(gl.TEXTURE_2D), tex.obj, 0),
		call("DrawBuffers", []gl.Enum{gl.COLOR_ATTACHMENT0}),
		call("FramebufferRenderbufferEXT", gl.Enum(gl.FRAMEBUFFER), gl.Enum(gl.DEPTH_ATTACHMENT), gl.Enum(gl.RENDERBUFFER), rb.obj),
		call("FramebufferRenderbufferEXT", gl.Enum(gl.FRAMEBUFFER), gl.Enum(gl.STENCIL_ATTACHMENT), gl.Enum(gl.RENDERBUFFER), rb.obj),
	)
	if n := rec.Count("BindFramebuffer"); n != 0 {
		t.Errorf("got %d ARB calls on the EXT path", n)
	}
}

func TestRenderbufferRelease(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	tex := newTexture(t, d, 64, 64)
	rb, err := d.NewRenderbuffer(64, 64, gpu.Depth24)
	if err != nil {
		t.Fatal(err)
	}
	d.SetRenderTargets([]RenderTarget{{Texture: tex}}, rb, gpu.Depth24)
	rec.Reset()
	obj := rb.obj
	rb.Release()
	expectCalls(t, rec,
		call("FramebufferRenderbuffer", gl.Enum(gl.FRAMEBUFFER), gl.Enum(gl.DEPTH_ATTACHMENT), gl.Enum(gl.RENDERBUFFER), gl.Renderbuffer{}),
		call("DeleteRenderbuffer", obj),
	)
	if d.target.depth.Valid() {
		t.Error("released renderbuffer still attached")
	}
}

func TestRenderTargetFormatMismatch(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d := env.dev
	tex := newTexture(t, d, 4, 4)
	rb, err := d.NewRenderbuffer(4, 4, gpu.Depth16)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("mismatched depth format did not panic")
		}
	}()
	d.SetRenderTargets([]RenderTarget{{Texture: tex}}, rb, gpu.Depth24)
}

func TestReadTargetDirect(t *testing.T) {
	env := newTestEnv(t, DefaultConfig(), nil)
	d, rec := env.dev, env.rec
	tex := newTexture(t, d, 8, 8)
	other := newTexture(t, d, 8, 8)
	d.SetRenderTargets([]RenderTarget{{Texture: tex}}, nil, gpu.DepthNone)
	rec.Reset()
	rect := image.Rect(2, 2, 6, 6)
	if err := tex.GetData(0, rect, make([]byte, 4*4*4)); err != nil {
		t.Fatal(err)
	}
	expectCalls(t, rec,
		call("ReadPixels", 2, 2, 4, 4, gl.Enum(gl.RGBA), gl.Enum(gl.UNSIGNED_BYTE), 64),
	)
	rec.Reset()
	if err := other.GetData(0, rect, make([]byte, 4*4*4)); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count("ReadPixels"); n != 0 {
		t.Errorf("got %d framebuffer reads for a texture that is not the target", n)
	}
	if n := rec.Count("GetTexImage"); n != 1 {
		t.Errorf("got %d GetTexImage calls, expected 1", n)
	}

	// Reading while the backbuffer is bound restores its read binding.
	d.SetRenderTargets(nil, nil, gpu.DepthNone)
	rec.Reset()
	if err := tex.GetData(0, rect, make([]byte, 4*4*4)); err != nil {
		t.Fatal(err)
	}
	bb := d.backbuffer.framebuffer()
	expectCalls(t, rec,
		call("BindFramebuffer", gl.Enum(gl.READ_FRAMEBUFFER), d.target.fbo),
		call("ReadPixels", 2, 2, 4, 4, gl.Enum(gl.RGBA), gl.Enum(gl.UNSIGNED_BYTE), 64),
		call("BindFramebuffer", gl.Enum(gl.READ_FRAMEBUFFER), bb),
	)
}
