// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"fmt"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
)

// VerifySampler binds tex to sampler slot index and applies the sampler
// parameters that differ from what tex last had. A nil tex binds
// NullTexture. Texture unit 0 is active when VerifySampler returns.
func (d *Device) VerifySampler(index int, tex *Texture, sampler gpu.SamplerState) {
	if index < 0 || index >= len(d.glstate.texUnits.binds) {
		panic(fmt.Errorf("sampler slot %d out of range", index))
	}
	if tex == nil {
		tex = NullTexture
	}
	d.exec(func() {
		s := &d.glstate
		if tex == NullTexture {
			if s.texUnits.binds[index] != NullTexture {
				s.bindTexture(d.funcs, index, NullTexture)
				s.activeTexture(d.funcs, gl.TEXTURE0)
			}
			return
		}
		if s.texUnits.binds[index] == tex && tex.samplerMatches(sampler) {
			return
		}
		s.bindTexture(d.funcs, index, tex)
		tex.setSampler(d, sampler)
		s.activeTexture(d.funcs, gl.TEXTURE0)
	})
}

func anisotropyFor(d *Device, s gpu.SamplerState) float32 {
	if s.Filter != gpu.FilterAnisotropic || s.MaxAnisotropy < 1 {
		return 1
	}
	a := float32(s.MaxAnisotropy)
	if lim := d.caps.MaxAnisotropy; lim > 0 && a > lim {
		a = lim
	}
	return a
}

func (t *Texture) samplerMatches(s gpu.SamplerState) bool {
	return t.wrapS == s.AddressU &&
		t.wrapT == s.AddressV &&
		t.wrapR == s.AddressW &&
		t.filter == s.Filter &&
		t.anisotropy == anisotropyFor(t.dev, s) &&
		t.maxMipLevel == s.MaxMipLevel &&
		t.lodBias == s.MipMapLevelOfDetailBias
}

// setSampler applies the parameters of s to t, which must be bound on
// the active unit.
func (t *Texture) setSampler(d *Device, s gpu.SamplerState) {
	f := d.funcs
	if s.AddressU != t.wrapS {
		t.wrapS = s.AddressU
		f.TexParameteri(t.target, gl.TEXTURE_WRAP_S, toGLWrap(s.AddressU))
	}
	if s.AddressV != t.wrapT {
		t.wrapT = s.AddressV
		f.TexParameteri(t.target, gl.TEXTURE_WRAP_T, toGLWrap(s.AddressV))
	}
	if s.AddressW != t.wrapR {
		t.wrapR = s.AddressW
		f.TexParameteri(t.target, gl.TEXTURE_WRAP_R, toGLWrap(s.AddressW))
	}
	aniso := anisotropyFor(d, s)
	if s.Filter != t.filter || aniso != t.anisotropy {
		t.filter = s.Filter
		t.anisotropy = aniso
		f.TexParameteri(t.target, gl.TEXTURE_MAG_FILTER, toGLMagFilter(s.Filter))
		f.TexParameteri(t.target, gl.TEXTURE_MIN_FILTER, toGLMinFilter(s.Filter, t.hasMipmaps))
		if d.caps.SupportsAnisotropicFiltering {
			f.TexParameterf(t.target, gl.TEXTURE_MAX_ANISOTROPY_EXT, aniso)
		}
	}
	if s.MaxMipLevel != t.maxMipLevel {
		t.maxMipLevel = s.MaxMipLevel
		f.TexParameteri(t.target, gl.TEXTURE_BASE_LEVEL, s.MaxMipLevel)
	}
	if s.MipMapLevelOfDetailBias != t.lodBias {
		t.lodBias = s.MipMapLevelOfDetailBias
		f.TexParameterf(t.target, gl.TEXTURE_LOD_BIAS, s.MipMapLevelOfDetailBias)
	}
}
