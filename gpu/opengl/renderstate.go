// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"image"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
)

// SetBlendState applies b. The factors, equations and blend color are
// only compared while blending is enabled; the color write mask always
// is.
func (d *Device) SetBlendState(b gpu.BlendState) {
	d.exec(func() {
		f := d.funcs
		s := &d.glstate
		s.set(f, gl.BLEND, b.Enabled())
		if s.blend.enable {
			if b.BlendFactor != s.blend.factor {
				c := b.BlendFactor
				f.BlendColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
				s.blend.factor = c
			}
			if b.ColorSourceBlend != s.blend.srcRGB ||
				b.ColorDestinationBlend != s.blend.dstRGB ||
				b.AlphaSourceBlend != s.blend.srcA ||
				b.AlphaDestinationBlend != s.blend.dstA {
				f.BlendFuncSeparate(
					toGLBlendFactor(b.ColorSourceBlend),
					toGLBlendFactor(b.ColorDestinationBlend),
					toGLBlendFactor(b.AlphaSourceBlend),
					toGLBlendFactor(b.AlphaDestinationBlend),
				)
				s.blend.srcRGB, s.blend.dstRGB = b.ColorSourceBlend, b.ColorDestinationBlend
				s.blend.srcA, s.blend.dstA = b.AlphaSourceBlend, b.AlphaDestinationBlend
			}
			if b.ColorBlendFunction != s.blend.funcRGB || b.AlphaBlendFunction != s.blend.funcA {
				f.BlendEquationSeparate(toGLBlendEquation(b.ColorBlendFunction), toGLBlendEquation(b.AlphaBlendFunction))
				s.blend.funcRGB, s.blend.funcA = b.ColorBlendFunction, b.AlphaBlendFunction
			}
		}
		d.setColorWriteMask(b.ColorWriteChannels)
	})
}

func (d *Device) setColorWriteMask(m gpu.ColorWriteChannels) {
	if m == d.glstate.blend.writeMask {
		return
	}
	d.funcs.ColorMask(
		m&gpu.ColorWriteRed != 0,
		m&gpu.ColorWriteGreen != 0,
		m&gpu.ColorWriteBlue != 0,
		m&gpu.ColorWriteAlpha != 0,
	)
	d.glstate.blend.writeMask = m
}

// SetDepthStencilState applies ds. The depth mask and function are only
// compared while the depth test is enabled, the stencil state only while
// the stencil test is.
func (d *Device) SetDepthStencilState(ds gpu.DepthStencilState) {
	d.exec(func() {
		f := d.funcs
		s := &d.glstate
		s.set(f, gl.DEPTH_TEST, ds.DepthBufferEnable)
		if s.depthTest {
			s.setDepthMask(f, ds.DepthBufferWriteEnable)
			if ds.DepthBufferFunction != s.depthFunc {
				f.DepthFunc(toGLCompareFunc(ds.DepthBufferFunction))
				s.depthFunc = ds.DepthBufferFunction
			}
		}
		s.set(f, gl.STENCIL_TEST, ds.StencilEnable)
		if !s.stencil.enable {
			return
		}
		s.setStencilWriteMask(f, ds.StencilWriteMask)
		g := stencilGroup{
			twoSided: ds.TwoSidedStencilMode,
			ref:      ds.ReferenceStencil,
			mask:     ds.StencilMask,
			fn:       ds.StencilFunction,
			fail:     ds.StencilFail,
			zfail:    ds.StencilDepthBufferFail,
			pass:     ds.StencilPass,
		}
		if g.twoSided {
			g.ccwFn = ds.CounterClockwiseStencilFunction
			g.ccwFail = ds.CounterClockwiseStencilFail
			g.ccwZFail = ds.CounterClockwiseStencilDepthBufferFail
			g.ccwPass = ds.CounterClockwiseStencilPass
		} else {
			g.ccwFn, g.ccwFail, g.ccwZFail, g.ccwPass = g.fn, g.fail, g.zfail, g.pass
		}
		if g == s.stencil.group {
			return
		}
		if g.twoSided {
			f.StencilFuncSeparate(gl.FRONT, toGLCompareFunc(g.fn), g.ref, g.mask)
			f.StencilFuncSeparate(gl.BACK, toGLCompareFunc(g.ccwFn), g.ref, g.mask)
			f.StencilOpSeparate(gl.FRONT, toGLStencilOp(g.fail), toGLStencilOp(g.zfail), toGLStencilOp(g.pass))
			f.StencilOpSeparate(gl.BACK, toGLStencilOp(g.ccwFail), toGLStencilOp(g.ccwZFail), toGLStencilOp(g.ccwPass))
		} else {
			f.StencilFunc(toGLCompareFunc(g.fn), g.ref, g.mask)
			f.StencilOp(toGLStencilOp(g.fail), toGLStencilOp(g.zfail), toGLStencilOp(g.pass))
		}
		s.stencil.group = g
	})
}

// ApplyRasterizerState applies rs. Rendering to the backbuffer is
// vertically flipped, so without a render target the cull winding is
// flipped as well.
func (d *Device) ApplyRasterizerState(rs gpu.RasterizerState, renderTargetBound bool) {
	d.exec(func() {
		f := d.funcs
		s := &d.glstate
		cull := rs.CullMode
		if !renderTargetBound {
			cull = flipCull(cull)
		}
		if cull != s.cull {
			s.set(f, gl.CULL_FACE, cull != gpu.CullNone)
			if cull != gpu.CullNone {
				s.setFrontFace(f, toGLFrontFace(cull))
			}
			s.cull = cull
		}
		if rs.FillMode != s.fill {
			f.PolygonMode(gl.FRONT_AND_BACK, toGLPolygonMode(rs.FillMode))
			s.fill = rs.FillMode
		}
		s.set(f, gl.SCISSOR_TEST, rs.ScissorTestEnable)
		if s.depthTest {
			bias := rs.DepthBias * depthBiasScale(d.currentDepthFormat())
			if bias != s.depthBias || rs.SlopeScaleDepthBias != s.slopeScale {
				enable := bias != 0 || rs.SlopeScaleDepthBias != 0
				s.set(f, gl.POLYGON_OFFSET_FILL, enable)
				if enable {
					f.PolygonOffset(rs.SlopeScaleDepthBias, bias)
				}
				s.depthBias, s.slopeScale = bias, rs.SlopeScaleDepthBias
			}
		}
		s.set(f, gl.MULTISAMPLE, rs.MultiSampleAntiAlias)
	})
}

// SetViewport applies vp. Bounds have their origin at the top left of
// the current target.
func (d *Device) SetViewport(vp gpu.Viewport, renderTargetBound bool) {
	d.exec(func() {
		r := vp.Bounds
		if !renderTargetBound {
			r = flipY(r, d.backbuffer.size().Y)
		}
		d.glstate.setViewport(d.funcs, r)
		d.glstate.setDepthRange(d.funcs, vp.MinDepth, vp.MaxDepth)
	})
}

// SetScissorRect applies the scissor rectangle, in the coordinates of
// SetViewport.
func (d *Device) SetScissorRect(r image.Rectangle, renderTargetBound bool) {
	d.exec(func() {
		if !renderTargetBound {
			r = flipY(r, d.backbuffer.size().Y)
		}
		d.glstate.setScissor(d.funcs, r)
	})
}

// flipY converts between top-left and bottom-left origins in a surface
// of the given height.
func flipY(r image.Rectangle, height int) image.Rectangle {
	return image.Rect(r.Min.X, height-r.Max.Y, r.Max.X, height-r.Min.Y)
}

// Clear clears the selected buffers of the current target. The clear
// ignores the scissor rectangle and the write masks, and leaves both as
// they were.
func (d *Device) Clear(opts gpu.ClearOptions, col [4]float32, depth float32, stencil int) {
	d.exec(func() {
		f := d.funcs
		s := &d.glstate
		var mask gl.Enum
		if opts&gpu.ClearTarget != 0 {
			s.setClearColor(f, col)
			mask |= gl.COLOR_BUFFER_BIT
		}
		if opts&gpu.ClearDepthBuffer != 0 {
			s.setClearDepth(f, depth)
			mask |= gl.DEPTH_BUFFER_BIT
		}
		if opts&gpu.ClearStencil != 0 {
			s.setClearStencil(f, stencil)
			mask |= gl.STENCIL_BUFFER_BIT
		}
		if mask == 0 {
			return
		}
		scissor := s.scissorTest
		writeMask := s.blend.writeMask
		depthMask := s.depthMask
		stencilMask := s.stencil.writeMask
		if scissor {
			f.Disable(gl.SCISSOR_TEST)
		}
		if mask&gl.COLOR_BUFFER_BIT != 0 {
			d.setColorWriteMask(gpu.ColorWriteAll)
		}
		if mask&gl.DEPTH_BUFFER_BIT != 0 {
			s.setDepthMask(f, true)
		}
		if mask&gl.STENCIL_BUFFER_BIT != 0 {
			s.setStencilWriteMask(f, ^uint32(0))
		}
		f.Clear(mask)
		d.setColorWriteMask(writeMask)
		s.setDepthMask(f, depthMask)
		s.setStencilWriteMask(f, stencilMask)
		if scissor {
			f.Enable(gl.SCISSOR_TEST)
		}
	})
}
