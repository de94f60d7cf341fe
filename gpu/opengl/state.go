// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"image"
	"image/color"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
)

// State tracking. Every field mirrors the driver value; setters only
// call the driver when the requested value differs.
type glState struct {
	texUnits struct {
		active gl.Enum
		binds  []*Texture
	}
	arrayBuf gl.Buffer
	elemBuf  gl.Buffer
	attribs  []vertexAttrib

	blend struct {
		enable         bool
		srcRGB, dstRGB gpu.Blend
		srcA, dstA     gpu.Blend
		funcRGB, funcA gpu.BlendFunction
		factor         color.RGBA
		writeMask      gpu.ColorWriteChannels
	}
	depthTest bool
	depthMask bool
	depthFunc gpu.CompareFunction
	stencil   struct {
		enable    bool
		writeMask uint32
		group     stencilGroup
	}

	// cull is the effective cull mode, after flipping for the window.
	cull          gpu.CullMode
	cullFace      bool
	frontFace     gl.Enum
	fill          gpu.FillMode
	scissorTest   bool
	multisample   bool
	polygonOffset bool
	depthBias     float32
	slopeScale    float32

	// viewport and scissor are in driver coordinates.
	viewport   image.Rectangle
	depthRange [2]float32
	scissor    image.Rectangle

	clearColor   [4]float32
	clearDepth   float32
	clearStencil int
}

// stencilGroup holds the stencil fields updated by the paired
// StencilFunc and StencilOp calls.
type stencilGroup struct {
	twoSided bool
	ref      int
	mask     uint32

	fn, ccwFn                  gpu.CompareFunction
	fail, zfail, pass          gpu.StencilOperation
	ccwFail, ccwZFail, ccwPass gpu.StencilOperation
}

type vertexAttrib struct {
	buf        gl.Buffer
	size       int
	typ        gl.Enum
	normalized bool
	stride     int
	offset     int

	// enabled is requested for the next draw, prevEnabled is the driver
	// value.
	enabled     bool
	prevEnabled bool
	divisor     int
	prevDivisor int
}

// newGLState returns the driver defaults of a fresh context.
func newGLState(caps Caps) glState {
	var s glState
	s.texUnits.active = gl.TEXTURE0
	s.texUnits.binds = make([]*Texture, caps.MaxTextureSlots)
	for i := range s.texUnits.binds {
		s.texUnits.binds[i] = NullTexture
	}
	s.attribs = make([]vertexAttrib, caps.MaxVertexAttribs)

	s.blend.srcRGB, s.blend.dstRGB = gpu.BlendOne, gpu.BlendZero
	s.blend.srcA, s.blend.dstA = gpu.BlendOne, gpu.BlendZero
	s.blend.funcRGB, s.blend.funcA = gpu.BlendFuncAdd, gpu.BlendFuncAdd
	s.blend.writeMask = gpu.ColorWriteAll

	s.depthMask = true
	s.depthFunc = gpu.CompareLess

	s.stencil.writeMask = ^uint32(0)
	s.stencil.group = stencilGroup{
		mask:  ^uint32(0),
		fn:    gpu.CompareAlways,
		ccwFn: gpu.CompareAlways,
	}

	s.cull = gpu.CullNone
	s.frontFace = gl.CCW
	s.fill = gpu.FillSolid
	s.multisample = true

	s.depthRange = [2]float32{0, 1}
	s.clearDepth = 1
	return s
}

func (s *glState) set(f gl.Functions, target gl.Enum, enable bool) {
	var cur *bool
	switch target {
	case gl.BLEND:
		cur = &s.blend.enable
	case gl.DEPTH_TEST:
		cur = &s.depthTest
	case gl.STENCIL_TEST:
		cur = &s.stencil.enable
	case gl.SCISSOR_TEST:
		cur = &s.scissorTest
	case gl.CULL_FACE:
		cur = &s.cullFace
	case gl.POLYGON_OFFSET_FILL:
		cur = &s.polygonOffset
	case gl.MULTISAMPLE:
		cur = &s.multisample
	default:
		panic("unknown enable")
	}
	if *cur == enable {
		return
	}
	*cur = enable
	if enable {
		f.Enable(target)
	} else {
		f.Disable(target)
	}
}

func (s *glState) activeTexture(f gl.Functions, unit gl.Enum) {
	if unit != s.texUnits.active {
		f.ActiveTexture(unit)
		s.texUnits.active = unit
	}
}

// bindTexture binds t to unit, leaving unit active. Binding a texture
// of another target first clears the previous target of the unit.
func (s *glState) bindTexture(f gl.Functions, unit int, t *Texture) {
	prev := s.texUnits.binds[unit]
	if t == prev {
		return
	}
	s.activeTexture(f, gl.TEXTURE0+gl.Enum(unit))
	switch {
	case t == NullTexture:
		f.BindTexture(prev.target, gl.Texture{})
	default:
		if prev != NullTexture && prev.target != t.target {
			f.BindTexture(prev.target, gl.Texture{})
		}
		f.BindTexture(t.target, t.obj)
	}
	s.texUnits.binds[unit] = t
}

func (s *glState) deleteTexture(f gl.Functions, t *Texture) {
	f.DeleteTexture(t.obj)
	binds := s.texUnits.binds
	for i, obj := range binds {
		if obj == t {
			binds[i] = NullTexture
		}
	}
}

func (s *glState) bindBuffer(f gl.Functions, target gl.Enum, buf gl.Buffer) {
	switch target {
	case gl.ARRAY_BUFFER:
		if buf == s.arrayBuf {
			return
		}
		s.arrayBuf = buf
	case gl.ELEMENT_ARRAY_BUFFER:
		if buf == s.elemBuf {
			return
		}
		s.elemBuf = buf
	default:
		panic("unknown buffer target")
	}
	f.BindBuffer(target, buf)
}

// deleteBuffer unbinds b from the binding points that hold it before
// deleting it.
func (s *glState) deleteBuffer(f gl.Functions, b gl.Buffer) {
	if b == s.arrayBuf {
		s.bindBuffer(f, gl.ARRAY_BUFFER, gl.Buffer{})
	}
	if b == s.elemBuf {
		s.bindBuffer(f, gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{})
	}
	f.DeleteBuffer(b)
	for i := range s.attribs {
		if s.attribs[i].buf == b {
			s.attribs[i].buf = gl.Buffer{}
		}
	}
}

func (s *glState) setDepthMask(f gl.Functions, enable bool) {
	if enable != s.depthMask {
		f.DepthMask(enable)
		s.depthMask = enable
	}
}

func (s *glState) setStencilWriteMask(f gl.Functions, mask uint32) {
	if mask != s.stencil.writeMask {
		f.StencilMask(mask)
		s.stencil.writeMask = mask
	}
}

func (s *glState) setFrontFace(f gl.Functions, mode gl.Enum) {
	if mode != s.frontFace {
		f.FrontFace(mode)
		s.frontFace = mode
	}
}

func (s *glState) setViewport(f gl.Functions, r image.Rectangle) {
	if r != s.viewport {
		f.Viewport(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
		s.viewport = r
	}
}

func (s *glState) setScissor(f gl.Functions, r image.Rectangle) {
	if r != s.scissor {
		f.Scissor(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
		s.scissor = r
	}
}

func (s *glState) setDepthRange(f gl.Functions, near, far float32) {
	rng := [2]float32{near, far}
	if rng != s.depthRange {
		f.DepthRange(float64(near), float64(far))
		s.depthRange = rng
	}
}

func (s *glState) setClearColor(f gl.Functions, col [4]float32) {
	if col != s.clearColor {
		f.ClearColor(col[0], col[1], col[2], col[3])
		s.clearColor = col
	}
}

func (s *glState) setClearDepth(f gl.Functions, d float32) {
	if d != s.clearDepth {
		f.ClearDepth(float64(d))
		s.clearDepth = d
	}
}

func (s *glState) setClearStencil(f gl.Functions, v int) {
	if v != s.clearStencil {
		f.ClearStencil(v)
		s.clearStencil = v
	}
}
