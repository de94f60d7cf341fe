// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"fmt"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
)

// textureTriple holds the type settings for
// a TexImage2D call.
type textureTriple struct {
	internalFormat gl.Enum
	format         gl.Enum
	typ            gl.Enum
}

func toGLBlendFactor(f gpu.Blend) gl.Enum {
	switch f {
	case gpu.BlendOne:
		return gl.ONE
	case gpu.BlendZero:
		return gl.ZERO
	case gpu.BlendSourceColor:
		return gl.SRC_COLOR
	case gpu.BlendInverseSourceColor:
		return gl.ONE_MINUS_SRC_COLOR
	case gpu.BlendSourceAlpha:
		return gl.SRC_ALPHA
	case gpu.BlendInverseSourceAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case gpu.BlendDestinationColor:
		return gl.DST_COLOR
	case gpu.BlendInverseDestinationColor:
		return gl.ONE_MINUS_DST_COLOR
	case gpu.BlendDestinationAlpha:
		return gl.DST_ALPHA
	case gpu.BlendInverseDestinationAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case gpu.BlendBlendFactor:
		return gl.CONSTANT_COLOR
	case gpu.BlendInverseBlendFactor:
		return gl.ONE_MINUS_CONSTANT_COLOR
	case gpu.BlendSourceAlphaSaturation:
		return gl.SRC_ALPHA_SATURATE
	default:
		panic("unsupported blend factor")
	}
}

func toGLBlendEquation(f gpu.BlendFunction) gl.Enum {
	switch f {
	case gpu.BlendFuncAdd:
		return gl.FUNC_ADD
	case gpu.BlendFuncSubtract:
		return gl.FUNC_SUBTRACT
	case gpu.BlendFuncReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case gpu.BlendFuncMax:
		return gl.MAX
	case gpu.BlendFuncMin:
		return gl.MIN
	default:
		panic("unsupported blend function")
	}
}

func toGLCompareFunc(f gpu.CompareFunction) gl.Enum {
	switch f {
	case gpu.CompareAlways:
		return gl.ALWAYS
	case gpu.CompareNever:
		return gl.NEVER
	case gpu.CompareLess:
		return gl.LESS
	case gpu.CompareLessEqual:
		return gl.LEQUAL
	case gpu.CompareEqual:
		return gl.EQUAL
	case gpu.CompareGreaterEqual:
		return gl.GEQUAL
	case gpu.CompareGreater:
		return gl.GREATER
	case gpu.CompareNotEqual:
		return gl.NOTEQUAL
	default:
		panic("unsupported compare function")
	}
}

func toGLStencilOp(op gpu.StencilOperation) gl.Enum {
	switch op {
	case gpu.StencilKeep:
		return gl.KEEP
	case gpu.StencilZero:
		return gl.ZERO
	case gpu.StencilReplace:
		return gl.REPLACE
	case gpu.StencilIncrement:
		return gl.INCR_WRAP
	case gpu.StencilDecrement:
		return gl.DECR_WRAP
	case gpu.StencilIncrementSaturation:
		return gl.INCR
	case gpu.StencilDecrementSaturation:
		return gl.DECR
	case gpu.StencilInvert:
		return gl.INVERT
	default:
		panic("unsupported stencil operation")
	}
}

func toGLFrontFace(m gpu.CullMode) gl.Enum {
	switch m {
	case gpu.CullClockwiseFace:
		return gl.CW
	case gpu.CullCounterClockwiseFace:
		return gl.CCW
	default:
		panic("no front face for cull mode")
	}
}

// flipCull returns the winding seen when rendering to the window, whose
// vertical orientation is opposite to that of render targets.
func flipCull(m gpu.CullMode) gpu.CullMode {
	switch m {
	case gpu.CullClockwiseFace:
		return gpu.CullCounterClockwiseFace
	case gpu.CullCounterClockwiseFace:
		return gpu.CullClockwiseFace
	default:
		return m
	}
}

func toGLPolygonMode(m gpu.FillMode) gl.Enum {
	switch m {
	case gpu.FillSolid:
		return gl.FILL
	case gpu.FillWireFrame:
		return gl.LINE
	default:
		panic("unsupported fill mode")
	}
}

func toGLWrap(m gpu.TextureAddressMode) int {
	switch m {
	case gpu.AddressWrap:
		return gl.REPEAT
	case gpu.AddressClamp:
		return gl.CLAMP_TO_EDGE
	case gpu.AddressMirror:
		return gl.MIRRORED_REPEAT
	default:
		panic("unsupported address mode")
	}
}

func toGLMagFilter(f gpu.TextureFilter) int {
	switch f {
	case gpu.FilterLinear, gpu.FilterAnisotropic, gpu.FilterLinearMipPoint,
		gpu.FilterMinPointMagLinearMipLinear, gpu.FilterMinPointMagLinearMipPoint:
		return gl.LINEAR
	case gpu.FilterPoint, gpu.FilterPointMipLinear,
		gpu.FilterMinLinearMagPointMipLinear, gpu.FilterMinLinearMagPointMipPoint:
		return gl.NEAREST
	default:
		panic("unsupported texture filter")
	}
}

// toGLMinFilter returns the minification filter for f. Textures without
// mipmaps must not use a mipmap filter.
func toGLMinFilter(f gpu.TextureFilter, mipmaps bool) int {
	if !mipmaps {
		switch f {
		case gpu.FilterLinear, gpu.FilterAnisotropic, gpu.FilterLinearMipPoint,
			gpu.FilterMinLinearMagPointMipLinear, gpu.FilterMinLinearMagPointMipPoint:
			return gl.LINEAR
		case gpu.FilterPoint, gpu.FilterPointMipLinear,
			gpu.FilterMinPointMagLinearMipLinear, gpu.FilterMinPointMagLinearMipPoint:
			return gl.NEAREST
		default:
			panic("unsupported texture filter")
		}
	}
	switch f {
	case gpu.FilterLinear, gpu.FilterAnisotropic, gpu.FilterMinLinearMagPointMipLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	case gpu.FilterPoint, gpu.FilterMinPointMagLinearMipPoint:
		return gl.NEAREST_MIPMAP_NEAREST
	case gpu.FilterLinearMipPoint, gpu.FilterMinLinearMagPointMipPoint:
		return gl.LINEAR_MIPMAP_NEAREST
	case gpu.FilterPointMipLinear, gpu.FilterMinPointMagLinearMipLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	default:
		panic("unsupported texture filter")
	}
}

func toGLDrawMode(p gpu.PrimitiveType) gl.Enum {
	switch p {
	case gpu.PrimitiveTriangleList:
		return gl.TRIANGLES
	case gpu.PrimitiveTriangleStrip:
		return gl.TRIANGLE_STRIP
	case gpu.PrimitiveLineList:
		return gl.LINES
	case gpu.PrimitiveLineStrip:
		return gl.LINE_STRIP
	case gpu.PrimitivePointList:
		return gl.POINTS
	default:
		panic("unsupported primitive type")
	}
}

func toGLIndexType(s gpu.IndexElementSize) gl.Enum {
	switch s {
	case gpu.Index16:
		return gl.UNSIGNED_SHORT
	case gpu.Index32:
		return gl.UNSIGNED_INT
	default:
		panic("unsupported index size")
	}
}

// vertexAttribFor returns the component count, type and normalization of
// a vertex element format.
func vertexAttribFor(f gpu.VertexElementFormat) (size int, typ gl.Enum, normalized bool) {
	switch f {
	case gpu.VertexSingle:
		return 1, gl.FLOAT, false
	case gpu.VertexVector2:
		return 2, gl.FLOAT, false
	case gpu.VertexVector3:
		return 3, gl.FLOAT, false
	case gpu.VertexVector4:
		return 4, gl.FLOAT, false
	case gpu.VertexColor:
		return 4, gl.UNSIGNED_BYTE, true
	case gpu.VertexByte4:
		return 4, gl.UNSIGNED_BYTE, false
	case gpu.VertexShort2:
		return 2, gl.SHORT, false
	case gpu.VertexShort4:
		return 4, gl.SHORT, false
	case gpu.VertexNormalizedShort2:
		return 2, gl.SHORT, true
	case gpu.VertexNormalizedShort4:
		return 4, gl.SHORT, true
	case gpu.VertexHalfVector2:
		return 2, gl.HALF_FLOAT, false
	case gpu.VertexHalfVector4:
		return 4, gl.HALF_FLOAT, false
	default:
		panic("unsupported vertex element format")
	}
}

// textureTripleFor returns the upload settings of a surface format.
func textureTripleFor(f gpu.SurfaceFormat) textureTriple {
	switch f {
	case gpu.FormatColor:
		return textureTriple{gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE}
	case gpu.FormatBgr565:
		return textureTriple{gl.RGB, gl.RGB, gl.UNSIGNED_SHORT_5_6_5}
	case gpu.FormatBgra5551:
		return textureTriple{gl.RGB5_A1, gl.BGRA, gl.UNSIGNED_SHORT_1_5_5_5_REV}
	case gpu.FormatBgra4444:
		return textureTriple{gl.RGBA4, gl.BGRA, gl.UNSIGNED_SHORT_4_4_4_4_REV}
	case gpu.FormatDxt1:
		return textureTriple{gl.COMPRESSED_RGBA_S3TC_DXT1_EXT, gl.COMPRESSED_RGBA_S3TC_DXT1_EXT, gl.UNSIGNED_BYTE}
	case gpu.FormatDxt3:
		return textureTriple{gl.COMPRESSED_RGBA_S3TC_DXT3_EXT, gl.COMPRESSED_RGBA_S3TC_DXT3_EXT, gl.UNSIGNED_BYTE}
	case gpu.FormatDxt5:
		return textureTriple{gl.COMPRESSED_RGBA_S3TC_DXT5_EXT, gl.COMPRESSED_RGBA_S3TC_DXT5_EXT, gl.UNSIGNED_BYTE}
	case gpu.FormatAlpha8:
		return textureTriple{gl.ALPHA, gl.ALPHA, gl.UNSIGNED_BYTE}
	case gpu.FormatSingle:
		return textureTriple{gl.R32F, gl.RED, gl.FLOAT}
	case gpu.FormatVector2:
		return textureTriple{gl.RG32F, gl.RG, gl.FLOAT}
	case gpu.FormatVector4:
		return textureTriple{gl.RGBA32F, gl.RGBA, gl.FLOAT}
	case gpu.FormatHalfSingle:
		return textureTriple{gl.R16F, gl.RED, gl.HALF_FLOAT}
	case gpu.FormatHalfVector2:
		return textureTriple{gl.RG16F, gl.RG, gl.HALF_FLOAT}
	case gpu.FormatHalfVector4:
		return textureTriple{gl.RGBA16F, gl.RGBA, gl.HALF_FLOAT}
	case gpu.FormatRgba1010102:
		return textureTriple{gl.RGB10_A2, gl.RGBA, gl.UNSIGNED_INT_2_10_10_10_REV}
	case gpu.FormatRg32:
		return textureTriple{gl.RG16, gl.RG, gl.UNSIGNED_SHORT}
	case gpu.FormatRgba64:
		return textureTriple{gl.RGBA16, gl.RGBA, gl.UNSIGNED_SHORT}
	default:
		panic(fmt.Errorf("unsupported surface format %d", f))
	}
}

// depthTripleFor returns the settings of a depth texture.
func depthTripleFor(f gpu.DepthFormat) textureTriple {
	switch f {
	case gpu.Depth16:
		return textureTriple{gl.DEPTH_COMPONENT16, gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT}
	case gpu.Depth24:
		return textureTriple{gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT}
	case gpu.Depth24Stencil8:
		return textureTriple{gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8}
	default:
		panic("no storage for depth format")
	}
}

// depthBiasScale converts a normalized depth bias into units of the
// depth buffer resolution.
func depthBiasScale(f gpu.DepthFormat) float32 {
	switch f {
	case gpu.Depth16:
		return float32(1<<16 - 1)
	case gpu.Depth24, gpu.Depth24Stencil8:
		return float32(1<<24 - 1)
	default:
		return 0
	}
}
