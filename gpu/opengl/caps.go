// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"fmt"
	"log/slog"
	"unsafe"

	"gfxhal.org/gl"
)

// Caps describes the driver as seen at Device construction.
type Caps struct {
	Vendor   string
	Renderer string
	Version  string
	// GLVersion is the parsed major and minor version, or zero if the
	// version string is unrecognized.
	GLVersion  [2]int
	Extensions []string

	MaxTextureSlots  int
	MaxVertexAttribs int
	MaxDrawBuffers   int
	MaxTextureSize   int
	MaxAnisotropy    float32

	SupportsS3TC                 bool
	SupportsDXT1                 bool
	SupportsHardwareInstancing   bool
	SupportsAnisotropicFiltering bool
	SupportsDebugOutput          bool
	// FramebufferEXT reports whether render targets use the legacy EXT
	// framebuffer entry points.
	FramebufferEXT bool
}

// procResolver resolves driver entry points by name.
type procResolver func(name string) unsafe.Pointer

func (p procResolver) has(name string) bool {
	return p(name) != nil
}

// probeCaps queries the limits and extensions of the current context.
// It fails if neither framebuffer object family is available.
func probeCaps(f gl.Functions, proc procResolver) (Caps, error) {
	c := Caps{
		Vendor:   f.GetString(gl.VENDOR),
		Renderer: f.GetString(gl.RENDERER),
		Version:  f.GetString(gl.VERSION),
	}
	if ver, err := gl.ParseGLVersion(c.Version); err == nil {
		c.GLVersion = ver
	}
	c.Extensions = gl.Extensions(f.GetString(gl.EXTENSIONS))
	has := func(ext string) bool {
		return gl.HasExtension(c.Extensions, ext)
	}

	switch {
	case proc.has("glGenFramebuffers") && proc.has("glBlitFramebuffer"):
	case has("GL_EXT_framebuffer_object") && has("GL_EXT_framebuffer_blit") && proc.has("glGenFramebuffersEXT"):
		c.FramebufferEXT = true
	default:
		return Caps{}, fmt.Errorf("%w: no framebuffer object support (ARB_framebuffer_object or EXT_framebuffer_object with EXT_framebuffer_blit)", ErrUnsupportedHardware)
	}

	c.MaxTextureSlots = atLeast(f.GetInteger(gl.MAX_TEXTURE_IMAGE_UNITS), 1)
	c.MaxVertexAttribs = atLeast(f.GetInteger(gl.MAX_VERTEX_ATTRIBS), 1)
	c.MaxDrawBuffers = atLeast(f.GetInteger(gl.MAX_DRAW_BUFFERS), 1)
	c.MaxTextureSize = f.GetInteger(gl.MAX_TEXTURE_SIZE)

	c.SupportsS3TC = has("GL_EXT_texture_compression_s3tc") ||
		has("GL_OES_texture_compression_S3TC") ||
		has("GL_EXT_texture_compression_dxt3") ||
		has("GL_EXT_texture_compression_dxt5")
	c.SupportsDXT1 = c.SupportsS3TC || has("GL_EXT_texture_compression_dxt1")

	// Some drivers list the instancing extensions without exporting the
	// divisor entry point.
	c.SupportsHardwareInstancing = has("GL_ARB_draw_instanced") &&
		has("GL_ARB_instanced_arrays") &&
		proc.has("glVertexAttribDivisorARB")

	if has("GL_EXT_texture_filter_anisotropic") {
		c.SupportsAnisotropicFiltering = true
		c.MaxAnisotropy = f.GetFloat(gl.MAX_TEXTURE_MAX_ANISOTROPY_EXT)
	}
	c.SupportsDebugOutput = proc.has("glDebugMessageCallbackARB") && proc.has("glDebugMessageControlARB")
	return c, nil
}

func atLeast(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

func (c Caps) logAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("vendor", c.Vendor),
		slog.String("renderer", c.Renderer),
		slog.String("version", c.Version),
		slog.Bool("framebuffer_ext", c.FramebufferEXT),
		slog.Int("max_texture_slots", c.MaxTextureSlots),
		slog.Int("max_vertex_attribs", c.MaxVertexAttribs),
		slog.Int("max_draw_buffers", c.MaxDrawBuffers),
		slog.Bool("s3tc", c.SupportsS3TC),
		slog.Bool("dxt1", c.SupportsDXT1),
		slog.Bool("instancing", c.SupportsHardwareInstancing),
	}
}
