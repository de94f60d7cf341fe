// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "fmt"

type SurfaceFormat uint8

const (
	FormatColor SurfaceFormat = iota
	FormatBgr565
	FormatBgra5551
	FormatBgra4444
	FormatDxt1
	FormatDxt3
	FormatDxt5
	FormatAlpha8
	FormatSingle
	FormatVector2
	FormatVector4
	FormatHalfSingle
	FormatHalfVector2
	FormatHalfVector4
	FormatRgba1010102
	FormatRg32
	FormatRgba64
)

// Compressed reports whether f is a block compressed format.
func (f SurfaceFormat) Compressed() bool {
	switch f {
	case FormatDxt1, FormatDxt3, FormatDxt5:
		return true
	default:
		return false
	}
}

// Size returns the number of bytes of a width by height image in
// format f.
func (f SurfaceFormat) Size(width, height int) int {
	switch f {
	case FormatDxt1, FormatDxt3, FormatDxt5:
		blocks := ((width + 3) / 4) * ((height + 3) / 4)
		if f == FormatDxt1 {
			return blocks * 8
		}
		return blocks * 16
	}
	return width * height * f.pixelSize()
}

func (f SurfaceFormat) pixelSize() int {
	switch f {
	case FormatAlpha8:
		return 1
	case FormatBgr565, FormatBgra5551, FormatBgra4444, FormatHalfSingle:
		return 2
	case FormatColor, FormatSingle, FormatHalfVector2, FormatRgba1010102, FormatRg32:
		return 4
	case FormatVector2, FormatHalfVector4, FormatRgba64:
		return 8
	case FormatVector4:
		return 16
	default:
		panic(fmt.Errorf("unsupported surface format %d", f))
	}
}

// DepthFormat is the format of a depth or depth-stencil buffer.
type DepthFormat uint8

const (
	DepthNone DepthFormat = iota
	Depth16
	Depth24
	Depth24Stencil8
)

// HasStencil reports whether the format carries stencil bits.
func (f DepthFormat) HasStencil() bool {
	return f == Depth24Stencil8
}

type VertexElementFormat uint8

const (
	VertexSingle VertexElementFormat = iota
	VertexVector2
	VertexVector3
	VertexVector4
	VertexColor
	VertexByte4
	VertexShort2
	VertexShort4
	VertexNormalizedShort2
	VertexNormalizedShort4
	VertexHalfVector2
	VertexHalfVector4
)

// VertexElement places one attribute of a vertex.
type VertexElement struct {
	// Offset is the byte offset within the vertex.
	Offset int
	Format VertexElementFormat
	// Attrib is the shader attribute location fed by the element.
	Attrib int
}

type VertexDeclaration struct {
	Stride   int
	Elements []VertexElement
}

type IndexElementSize uint8

const (
	Index16 IndexElementSize = iota
	Index32
)

// Bytes returns the size of one index.
func (s IndexElementSize) Bytes() int {
	if s == Index32 {
		return 4
	}
	return 2
}

type SetDataOptions uint8

const (
	SetDataNone SetDataOptions = iota
	// SetDataDiscard respecifies the buffer storage before writing.
	SetDataDiscard
	SetDataNoOverwrite
)

type PrimitiveType uint8

const (
	PrimitiveTriangleList PrimitiveType = iota
	PrimitiveTriangleStrip
	PrimitiveLineList
	PrimitiveLineStrip
	PrimitivePointList
)

// VertexCount returns the number of vertices drawn for primitiveCount
// primitives.
func (p PrimitiveType) VertexCount(primitiveCount int) int {
	switch p {
	case PrimitiveTriangleList:
		return primitiveCount * 3
	case PrimitiveTriangleStrip:
		return primitiveCount + 2
	case PrimitiveLineList:
		return primitiveCount * 2
	case PrimitiveLineStrip:
		return primitiveCount + 1
	case PrimitivePointList:
		return primitiveCount
	default:
		panic(fmt.Errorf("unsupported primitive type %d", p))
	}
}

// ClearOptions selects the buffers affected by a clear.
type ClearOptions uint8

const (
	ClearTarget ClearOptions = 1 << iota
	ClearDepthBuffer
	ClearStencil
)

type CubeMapFace uint8

const (
	CubePositiveX CubeMapFace = iota
	CubeNegativeX
	CubePositiveY
	CubeNegativeY
	CubePositiveZ
	CubeNegativeZ
)
