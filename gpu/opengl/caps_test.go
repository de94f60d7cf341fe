// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"errors"
	"testing"
	"unsafe"

	"gfxhal.org/gl"
	"gfxhal.org/gl/gltest"
)

func resolver(names ...string) procResolver {
	procs := make(map[string]bool)
	for _, n := range names {
		procs[n] = true
	}
	return func(name string) unsafe.Pointer {
		if procs[name] {
			return unsafe.Pointer(&procMarker)
		}
		return nil
	}
}

func TestProbeCapsARB(t *testing.T) {
	rec := gltest.New()
	rec.Ints[gl.MAX_DRAW_BUFFERS] = 8
	c, err := probeCaps(rec, resolver("glGenFramebuffers", "glBlitFramebuffer"))
	if err != nil {
		t.Fatal(err)
	}
	if c.FramebufferEXT {
		t.Error("ARB entry points present but EXT path chosen")
	}
	if c.GLVersion != [2]int{2, 1} {
		t.Errorf("got version %v, expected 2.1", c.GLVersion)
	}
	if c.MaxDrawBuffers != 8 || c.MaxTextureSlots != 16 || c.MaxVertexAttribs != 16 {
		t.Errorf("got limits %d %d %d", c.MaxDrawBuffers, c.MaxTextureSlots, c.MaxVertexAttribs)
	}
	if c.SupportsS3TC || c.SupportsDXT1 || c.SupportsHardwareInstancing || c.SupportsAnisotropicFiltering || c.SupportsDebugOutput {
		t.Errorf("got optional features without extensions: %+v", c)
	}
}

func TestProbeCapsEXT(t *testing.T) {
	rec := gltest.New()
	rec.Strings[gl.EXTENSIONS] = "GL_EXT_framebuffer_object GL_EXT_framebuffer_blit"
	c, err := probeCaps(rec, resolver("glGenFramebuffersEXT"))
	if err != nil {
		t.Fatal(err)
	}
	if !c.FramebufferEXT {
		t.Error("expected the EXT framebuffer path")
	}
}

func TestProbeCapsUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		exts  string
		procs []string
	}{
		{"nothing", "", nil},
		{"arb without blit", "", []string{"glGenFramebuffers"}},
		{"ext without blit", "GL_EXT_framebuffer_object", []string{"glGenFramebuffersEXT"}},
		{"ext not exported", "GL_EXT_framebuffer_object GL_EXT_framebuffer_blit", nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := gltest.New()
			rec.Strings[gl.EXTENSIONS] = test.exts
			_, err := probeCaps(rec, resolver(test.procs...))
			if !errors.Is(err, ErrUnsupportedHardware) {
				t.Errorf("got error %v, expected %v", err, ErrUnsupportedHardware)
			}
		})
	}
}

func TestProbeCapsExtensions(t *testing.T) {
	tests := []struct {
		exts string
		s3tc bool
		dxt1 bool
	}{
		{"GL_EXT_texture_compression_s3tc", true, true},
		{"GL_OES_texture_compression_S3TC", true, true},
		{"GL_EXT_texture_compression_dxt5", true, true},
		{"GL_EXT_texture_compression_dxt1", false, true},
		{"GL_ARB_texture_float", false, false},
	}
	for _, test := range tests {
		rec := gltest.New()
		rec.Strings[gl.EXTENSIONS] = test.exts
		c, err := probeCaps(rec, resolver("glGenFramebuffers", "glBlitFramebuffer"))
		if err != nil {
			t.Fatal(err)
		}
		if c.SupportsS3TC != test.s3tc || c.SupportsDXT1 != test.dxt1 {
			t.Errorf("%s: got s3tc %v dxt1 %v, expected %v %v", test.exts, c.SupportsS3TC, c.SupportsDXT1, test.s3tc, test.dxt1)
		}
	}
}

func TestProbeCapsInstancing(t *testing.T) {
	exts := "GL_ARB_draw_instanced GL_ARB_instanced_arrays"
	rec := gltest.New()
	rec.Strings[gl.EXTENSIONS] = exts
	c, err := probeCaps(rec, resolver("glGenFramebuffers", "glBlitFramebuffer"))
	if err != nil {
		t.Fatal(err)
	}
	if c.SupportsHardwareInstancing {
		t.Error("instancing reported without the divisor entry point")
	}
	c, err = probeCaps(rec, resolver("glGenFramebuffers", "glBlitFramebuffer", "glVertexAttribDivisorARB"))
	if err != nil {
		t.Fatal(err)
	}
	if !c.SupportsHardwareInstancing {
		t.Error("instancing not reported")
	}
}

func TestProbeCapsAnisotropy(t *testing.T) {
	rec := gltest.New()
	rec.Strings[gl.EXTENSIONS] = "GL_EXT_texture_filter_anisotropic"
	rec.Floats[gl.MAX_TEXTURE_MAX_ANISOTROPY_EXT] = 16
	c, err := probeCaps(rec, resolver("glGenFramebuffers", "glBlitFramebuffer"))
	if err != nil {
		t.Fatal(err)
	}
	if !c.SupportsAnisotropicFiltering || c.MaxAnisotropy != 16 {
		t.Errorf("got anisotropy %v max %v, expected support up to 16", c.SupportsAnisotropicFiltering, c.MaxAnisotropy)
	}
}

func TestProbeCapsLimitsFloor(t *testing.T) {
	rec := gltest.New()
	rec.Ints[gl.MAX_DRAW_BUFFERS] = 0
	rec.Ints[gl.MAX_TEXTURE_IMAGE_UNITS] = 0
	c, err := probeCaps(rec, resolver("glGenFramebuffers", "glBlitFramebuffer"))
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxDrawBuffers != 1 || c.MaxTextureSlots != 1 {
		t.Errorf("got draw buffers %d texture slots %d, expected at least 1", c.MaxDrawBuffers, c.MaxTextureSlots)
	}
}
