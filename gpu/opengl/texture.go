// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"fmt"
	"image"

	"gfxhal.org/gl"
	"gfxhal.org/gpu"
)

// Texture is a 2D, 3D or cube texture. It remembers the sampler
// parameters last applied to it so that samplers are only reapplied when
// they change.
type Texture struct {
	dev        *Device
	obj        gl.Texture
	target     gl.Enum
	format     gpu.SurfaceFormat
	triple     textureTriple
	width      int
	height     int
	depth      int
	levels     int
	hasMipmaps bool

	wrapS, wrapT, wrapR gpu.TextureAddressMode
	filter              gpu.TextureFilter
	anisotropy          float32
	maxMipLevel         int
	lodBias             float32
}

// NullTexture is bound to sampler slots without a texture.
var NullTexture = &Texture{target: gl.TEXTURE_2D}

func (t *Texture) Format() gpu.SurfaceFormat { return t.format }

func (t *Texture) Size() image.Point { return image.Pt(t.width, t.height) }

func (t *Texture) Levels() int { return t.levels }

// NewTexture2D allocates a texture with levels mip levels.
func (d *Device) NewTexture2D(format gpu.SurfaceFormat, width, height, levels int) (*Texture, error) {
	if err := d.checkTexture(format, width, height, levels); err != nil {
		return nil, err
	}
	var t *Texture
	d.exec(func() {
		t = d.newTextureObject(gl.TEXTURE_2D, format, levels)
		t.width, t.height = width, height
		for l := 0; l < levels; l++ {
			w, h := mipSize(width, l), mipSize(height, l)
			d.allocImage2D(t, gl.TEXTURE_2D, l, w, h)
		}
	})
	return t, nil
}

// NewTexture3D allocates a volume texture.
func (d *Device) NewTexture3D(format gpu.SurfaceFormat, width, height, depth, levels int) (*Texture, error) {
	if err := d.checkTexture(format, width, height, levels); err != nil {
		return nil, err
	}
	if format.Compressed() {
		return nil, fmt.Errorf("%w: compressed volume textures", ErrUnsupportedFormat)
	}
	var t *Texture
	d.exec(func() {
		t = d.newTextureObject(gl.TEXTURE_3D, format, levels)
		t.width, t.height, t.depth = width, height, depth
		tr := t.triple
		for l := 0; l < levels; l++ {
			d.funcs.TexImage3D(gl.TEXTURE_3D, l, tr.internalFormat,
				mipSize(width, l), mipSize(height, l), mipSize(depth, l), tr.format, tr.typ, nil)
		}
	})
	return t, nil
}

// NewTextureCube allocates a cube texture with square faces.
func (d *Device) NewTextureCube(format gpu.SurfaceFormat, size, levels int) (*Texture, error) {
	if err := d.checkTexture(format, size, size, levels); err != nil {
		return nil, err
	}
	var t *Texture
	d.exec(func() {
		t = d.newTextureObject(gl.TEXTURE_CUBE_MAP, format, levels)
		t.width, t.height = size, size
		for face := gpu.CubePositiveX; face <= gpu.CubeNegativeZ; face++ {
			for l := 0; l < levels; l++ {
				s := mipSize(size, l)
				d.allocImage2D(t, cubeFaceTarget(face), l, s, s)
			}
		}
	})
	return t, nil
}

func (d *Device) checkTexture(format gpu.SurfaceFormat, width, height, levels int) error {
	if width <= 0 || height <= 0 || levels <= 0 {
		return fmt.Errorf("opengl: invalid texture size %dx%d with %d levels", width, height, levels)
	}
	if lim := d.caps.MaxTextureSize; width > lim || height > lim {
		return fmt.Errorf("opengl: texture size %dx%d exceeds the maximum %d", width, height, lim)
	}
	switch format {
	case gpu.FormatDxt1:
		if !d.caps.SupportsDXT1 {
			return fmt.Errorf("%w: DXT1", ErrUnsupportedFormat)
		}
	case gpu.FormatDxt3, gpu.FormatDxt5:
		if !d.caps.SupportsS3TC {
			return fmt.Errorf("%w: S3TC", ErrUnsupportedFormat)
		}
	}
	return nil
}

// newTextureObject creates a texture bound to unit 0 and applies the
// default sampler parameters.
func (d *Device) newTextureObject(target gl.Enum, format gpu.SurfaceFormat, levels int) *Texture {
	t := &Texture{
		dev:        d,
		obj:        d.funcs.GenTexture(),
		target:     target,
		format:     format,
		triple:     textureTripleFor(format),
		levels:     levels,
		hasMipmaps: levels > 1,
		filter:     gpu.FilterLinear,
		anisotropy: 1,
	}
	d.bindTexture(t)
	f := d.funcs
	// Wrap modes default to REPEAT, the magnification filter to LINEAR.
	f.TexParameteri(target, gl.TEXTURE_MIN_FILTER, toGLMinFilter(t.filter, t.hasMipmaps))
	f.TexParameteri(target, gl.TEXTURE_MAX_LEVEL, levels-1)
	if d.caps.SupportsAnisotropicFiltering {
		t.anisotropy = 4
		f.TexParameterf(target, gl.TEXTURE_MAX_ANISOTROPY_EXT, t.anisotropy)
	}
	return t
}

// bindTexture binds t on unit 0 for uploads and readbacks.
func (d *Device) bindTexture(t *Texture) {
	d.glstate.activeTexture(d.funcs, gl.TEXTURE0)
	d.glstate.bindTexture(d.funcs, 0, t)
}

func (d *Device) allocImage2D(t *Texture, target gl.Enum, level, width, height int) {
	tr := t.triple
	if t.format.Compressed() {
		d.funcs.CompressedTexImage2D(target, level, tr.internalFormat, width, height,
			make([]byte, t.format.Size(width, height)))
		return
	}
	d.funcs.TexImage2D(target, level, tr.internalFormat, width, height, tr.format, tr.typ, nil)
}

// SetData uploads data into rect of a mip level of a 2D texture.
func (t *Texture) SetData(level int, rect image.Rectangle, data []byte) {
	t.setImage(gl.TEXTURE_2D, level, rect, data)
}

// SetDataCube uploads data into rect of a cube face.
func (t *Texture) SetDataCube(face gpu.CubeMapFace, level int, rect image.Rectangle, data []byte) {
	if t.target != gl.TEXTURE_CUBE_MAP {
		panic("not a cube texture")
	}
	t.setImage(cubeFaceTarget(face), level, rect, data)
}

func (t *Texture) setImage(target gl.Enum, level int, rect image.Rectangle, data []byte) {
	t.checkRect(level, rect)
	if n := t.format.Size(rect.Dx(), rect.Dy()); len(data) < n {
		panic(fmt.Errorf("texture data is %d bytes, need %d", len(data), n))
	}
	d := t.dev
	d.exec(func() {
		d.bindTexture(t)
		f := d.funcs
		if t.format.Compressed() {
			f.CompressedTexSubImage2D(target, level, rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(),
				t.triple.internalFormat, data)
			return
		}
		d.withRowAlignment(gl.UNPACK_ALIGNMENT, t.format, func() {
			f.TexSubImage2D(target, level, rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(),
				t.triple.format, t.triple.typ, data)
		})
	})
}

// SetData3D uploads data into a box of a volume texture.
func (t *Texture) SetData3D(level int, rect image.Rectangle, front, back int, data []byte) {
	if t.target != gl.TEXTURE_3D {
		panic("not a volume texture")
	}
	t.checkRect(level, rect)
	if n := t.format.Size(rect.Dx(), rect.Dy()) * (back - front); back <= front || len(data) < n {
		panic(fmt.Errorf("texture data is %d bytes, need %d", len(data), n))
	}
	d := t.dev
	d.exec(func() {
		d.bindTexture(t)
		d.withRowAlignment(gl.UNPACK_ALIGNMENT, t.format, func() {
			d.funcs.TexSubImage3D(gl.TEXTURE_3D, level, rect.Min.X, rect.Min.Y, front,
				rect.Dx(), rect.Dy(), back-front, t.triple.format, t.triple.typ, data)
		})
	})
}

// GetData reads rect of a mip level of a 2D texture into data. A texture
// that is the only bound render target is read from the framebuffer.
func (t *Texture) GetData(level int, rect image.Rectangle, data []byte) error {
	if t.format.Compressed() {
		return fmt.Errorf("%w: readback of compressed textures", ErrUnsupportedFormat)
	}
	t.checkRect(level, rect)
	if n := t.format.Size(rect.Dx(), rect.Dy()); len(data) < n {
		panic(fmt.Errorf("texture data is %d bytes, need %d", len(data), n))
	}
	d := t.dev
	d.exec(func() {
		if d.readTargetIfApplicable(t, level, rect, data) {
			return
		}
		d.bindTexture(t)
		w, h := mipSize(t.width, level), mipSize(t.height, level)
		full := image.Rect(0, 0, w, h)
		if rect == full {
			d.withRowAlignment(gl.PACK_ALIGNMENT, t.format, func() {
				d.funcs.GetTexImage(t.target, level, t.triple.format, t.triple.typ, data)
			})
			return
		}
		img := make([]byte, t.format.Size(w, h))
		d.withRowAlignment(gl.PACK_ALIGNMENT, t.format, func() {
			d.funcs.GetTexImage(t.target, level, t.triple.format, t.triple.typ, img)
		})
		bpp := t.format.Size(1, 1)
		rowLen := rect.Dx() * bpp
		for y := 0; y < rect.Dy(); y++ {
			src := ((rect.Min.Y+y)*w + rect.Min.X) * bpp
			copy(data[y*rowLen:(y+1)*rowLen], img[src:src+rowLen])
		}
	})
	return nil
}

func (t *Texture) checkRect(level int, rect image.Rectangle) {
	if level < 0 || level >= t.levels {
		panic(fmt.Errorf("mip level %d out of range", level))
	}
	bounds := image.Rect(0, 0, mipSize(t.width, level), mipSize(t.height, level))
	if rect.Empty() || !rect.In(bounds) {
		panic(fmt.Errorf("rectangle %v outside texture bounds %v", rect, bounds))
	}
}

// Release deletes the texture, detaching it from the render target
// framebuffer and the sampler slots that hold it.
func (t *Texture) Release() {
	if t == NullTexture || !t.obj.Valid() {
		return
	}
	d := t.dev
	d.exec(func() {
		d.target.detachTexture(t)
		d.glstate.deleteTexture(d.funcs, t)
	})
	t.obj = gl.Texture{}
}

func mipSize(size, level int) int {
	size >>= level
	if size < 1 {
		return 1
	}
	return size
}

func cubeFaceTarget(face gpu.CubeMapFace) gl.Enum {
	return gl.TEXTURE_CUBE_MAP_POSITIVE_X + gl.Enum(face)
}

// withRowAlignment runs fn with the pack or unpack alignment pname set
// to match the tightly packed rows of format, restoring the default of 4
// afterwards.
func (d *Device) withRowAlignment(pname gl.Enum, format gpu.SurfaceFormat, fn func()) {
	align := rowAlignment(format)
	if align != 4 {
		d.funcs.PixelStorei(pname, align)
	}
	fn()
	if align != 4 {
		d.funcs.PixelStorei(pname, 4)
	}
}

func rowAlignment(f gpu.SurfaceFormat) int {
	switch n := f.Size(1, 1); n {
	case 1, 2, 4:
		return n
	default:
		return 8
	}
}
