// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gpu defines the logical render states and resource formats
consumed by a device implementation such as gpu/opengl.

The state types are plain values. A device compares them field by field
against what it last applied, so callers are free to construct new
values for every draw.
*/
package gpu

import (
	"image"
	"image/color"
)

type Blend uint8

const (
	BlendOne Blend = iota
	BlendZero
	BlendSourceColor
	BlendInverseSourceColor
	BlendSourceAlpha
	BlendInverseSourceAlpha
	BlendDestinationColor
	BlendInverseDestinationColor
	BlendDestinationAlpha
	BlendInverseDestinationAlpha
	BlendBlendFactor
	BlendInverseBlendFactor
	BlendSourceAlphaSaturation
)

type BlendFunction uint8

const (
	BlendFuncAdd BlendFunction = iota
	BlendFuncSubtract
	BlendFuncReverseSubtract
	BlendFuncMax
	BlendFuncMin
)

// ColorWriteChannels is a mask of the color channels written by draws.
type ColorWriteChannels uint8

const (
	ColorWriteRed ColorWriteChannels = 1 << iota
	ColorWriteGreen
	ColorWriteBlue
	ColorWriteAlpha

	ColorWriteNone ColorWriteChannels = 0
	ColorWriteAll                     = ColorWriteRed | ColorWriteGreen | ColorWriteBlue | ColorWriteAlpha
)

type CompareFunction uint8

const (
	CompareAlways CompareFunction = iota
	CompareNever
	CompareLess
	CompareLessEqual
	CompareEqual
	CompareGreaterEqual
	CompareGreater
	CompareNotEqual
)

type StencilOperation uint8

const (
	StencilKeep StencilOperation = iota
	StencilZero
	StencilReplace
	StencilIncrement
	StencilDecrement
	StencilIncrementSaturation
	StencilDecrementSaturation
	StencilInvert
)

type CullMode uint8

const (
	CullNone CullMode = iota
	CullClockwiseFace
	CullCounterClockwiseFace
)

type FillMode uint8

const (
	FillSolid FillMode = iota
	FillWireFrame
)

type TextureAddressMode uint8

const (
	AddressWrap TextureAddressMode = iota
	AddressClamp
	AddressMirror
)

type TextureFilter uint8

const (
	FilterLinear TextureFilter = iota
	FilterPoint
	FilterAnisotropic
	FilterLinearMipPoint
	FilterPointMipLinear
	FilterMinLinearMagPointMipLinear
	FilterMinLinearMagPointMipPoint
	FilterMinPointMagLinearMipLinear
	FilterMinPointMagLinearMipPoint
)

// BlendState describes how draws combine with the render target.
// Blending is disabled when the four factors are One, Zero, One, Zero.
type BlendState struct {
	ColorSourceBlend      Blend
	ColorDestinationBlend Blend
	AlphaSourceBlend      Blend
	AlphaDestinationBlend Blend
	ColorBlendFunction    BlendFunction
	AlphaBlendFunction    BlendFunction
	BlendFactor           color.RGBA
	ColorWriteChannels    ColorWriteChannels
}

// Enabled reports whether the state requires blending.
func (b BlendState) Enabled() bool {
	return !(b.ColorSourceBlend == BlendOne &&
		b.ColorDestinationBlend == BlendZero &&
		b.AlphaSourceBlend == BlendOne &&
		b.AlphaDestinationBlend == BlendZero)
}

type DepthStencilState struct {
	DepthBufferEnable      bool
	DepthBufferWriteEnable bool
	DepthBufferFunction    CompareFunction

	StencilEnable bool
	// StencilMask is the comparison mask.
	StencilMask      uint32
	StencilWriteMask uint32
	ReferenceStencil int
	// TwoSidedStencilMode selects separate counter-clockwise face
	// function and operations.
	TwoSidedStencilMode bool

	StencilFunction        CompareFunction
	StencilFail            StencilOperation
	StencilDepthBufferFail StencilOperation
	StencilPass            StencilOperation

	CounterClockwiseStencilFunction        CompareFunction
	CounterClockwiseStencilFail            StencilOperation
	CounterClockwiseStencilDepthBufferFail StencilOperation
	CounterClockwiseStencilPass            StencilOperation
}

type RasterizerState struct {
	CullMode            CullMode
	FillMode            FillMode
	DepthBias           float32
	SlopeScaleDepthBias float32
	ScissorTestEnable   bool
	// MultiSampleAntiAlias only has an effect on multisampled targets.
	MultiSampleAntiAlias bool
}

type SamplerState struct {
	AddressU      TextureAddressMode
	AddressV      TextureAddressMode
	AddressW      TextureAddressMode
	Filter        TextureFilter
	MaxAnisotropy int
	// MaxMipLevel is the index of the largest mip level used.
	MaxMipLevel             int
	MipMapLevelOfDetailBias float32
}

// Viewport is a rectangle of the render target in pixels, with origin at
// the top left, plus a depth range.
type Viewport struct {
	Bounds   image.Rectangle
	MinDepth float32
	MaxDepth float32
}

var opaqueWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

var (
	BlendOpaque = BlendState{
		ColorSourceBlend:      BlendOne,
		ColorDestinationBlend: BlendZero,
		AlphaSourceBlend:      BlendOne,
		AlphaDestinationBlend: BlendZero,
		BlendFactor:           opaqueWhite,
		ColorWriteChannels:    ColorWriteAll,
	}
	BlendAlpha = BlendState{
		ColorSourceBlend:      BlendOne,
		ColorDestinationBlend: BlendInverseSourceAlpha,
		AlphaSourceBlend:      BlendOne,
		AlphaDestinationBlend: BlendInverseSourceAlpha,
		BlendFactor:           opaqueWhite,
		ColorWriteChannels:    ColorWriteAll,
	}
	BlendAdditive = BlendState{
		ColorSourceBlend:      BlendSourceAlpha,
		ColorDestinationBlend: BlendOne,
		AlphaSourceBlend:      BlendSourceAlpha,
		AlphaDestinationBlend: BlendOne,
		BlendFactor:           opaqueWhite,
		ColorWriteChannels:    ColorWriteAll,
	}
	BlendNonPremultiplied = BlendState{
		ColorSourceBlend:      BlendSourceAlpha,
		ColorDestinationBlend: BlendInverseSourceAlpha,
		AlphaSourceBlend:      BlendSourceAlpha,
		AlphaDestinationBlend: BlendInverseSourceAlpha,
		BlendFactor:           opaqueWhite,
		ColorWriteChannels:    ColorWriteAll,
	}
)

var (
	DepthStencilDefault = DepthStencilState{
		DepthBufferEnable:      true,
		DepthBufferWriteEnable: true,
		DepthBufferFunction:    CompareLessEqual,
		StencilMask:            ^uint32(0),
		StencilWriteMask:       ^uint32(0),
	}
	DepthStencilRead = DepthStencilState{
		DepthBufferEnable:   true,
		DepthBufferFunction: CompareLessEqual,
		StencilMask:         ^uint32(0),
		StencilWriteMask:    ^uint32(0),
	}
	DepthStencilNone = DepthStencilState{
		DepthBufferFunction: CompareLessEqual,
		StencilMask:         ^uint32(0),
		StencilWriteMask:    ^uint32(0),
	}
)

var (
	RasterizerCullNone             = RasterizerState{CullMode: CullNone, MultiSampleAntiAlias: true}
	RasterizerCullClockwise        = RasterizerState{CullMode: CullClockwiseFace, MultiSampleAntiAlias: true}
	RasterizerCullCounterClockwise = RasterizerState{CullMode: CullCounterClockwiseFace, MultiSampleAntiAlias: true}
)

var (
	SamplerLinearWrap = SamplerState{Filter: FilterLinear, MaxAnisotropy: 4}
	SamplerLinearClamp = SamplerState{
		AddressU:      AddressClamp,
		AddressV:      AddressClamp,
		AddressW:      AddressClamp,
		Filter:        FilterLinear,
		MaxAnisotropy: 4,
	}
	SamplerPointWrap  = SamplerState{Filter: FilterPoint, MaxAnisotropy: 4}
	SamplerPointClamp = SamplerState{
		AddressU:      AddressClamp,
		AddressV:      AddressClamp,
		AddressW:      AddressClamp,
		Filter:        FilterPoint,
		MaxAnisotropy: 4,
	}
	SamplerAnisotropicWrap  = SamplerState{Filter: FilterAnisotropic, MaxAnisotropy: 4}
	SamplerAnisotropicClamp = SamplerState{
		AddressU:      AddressClamp,
		AddressV:      AddressClamp,
		AddressW:      AddressClamp,
		Filter:        FilterAnisotropic,
		MaxAnisotropy: 4,
	}
)
