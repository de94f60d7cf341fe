// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Buffer       struct{ V uint }
	Framebuffer  struct{ V uint }
	Renderbuffer struct{ V uint }
	Texture      struct{ V uint }
	Query        struct{ V uint }
)

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (f Framebuffer) Valid() bool {
	return f.V != 0
}

func (r Renderbuffer) Valid() bool {
	return r.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}

func (q Query) Valid() bool {
	return q.V != 0
}
