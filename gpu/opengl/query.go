// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import "gfxhal.org/gl"

// OcclusionQuery counts the samples passing the depth and stencil tests
// between Begin and End.
type OcclusionQuery struct {
	dev *Device
	obj gl.Query
}

func (d *Device) NewOcclusionQuery() *OcclusionQuery {
	q := &OcclusionQuery{dev: d}
	d.exec(func() {
		q.obj = d.funcs.GenQuery()
	})
	return q
}

func (q *OcclusionQuery) Begin() {
	q.dev.exec(func() {
		q.dev.funcs.BeginQuery(gl.SAMPLES_PASSED, q.obj)
	})
}

func (q *OcclusionQuery) End() {
	q.dev.exec(func() {
		q.dev.funcs.EndQuery(gl.SAMPLES_PASSED)
	})
}

// Complete reports whether the result is available.
func (q *OcclusionQuery) Complete() bool {
	var done bool
	q.dev.exec(func() {
		done = q.dev.funcs.GetQueryObjectuiv(q.obj, gl.QUERY_RESULT_AVAILABLE) == gl.TRUE
	})
	return done
}

// PixelCount returns the number of samples passed. It blocks until the
// result is available.
func (q *OcclusionQuery) PixelCount() int {
	var n uint
	q.dev.exec(func() {
		n = q.dev.funcs.GetQueryObjectuiv(q.obj, gl.QUERY_RESULT)
	})
	return int(n)
}

func (q *OcclusionQuery) Release() {
	if !q.obj.Valid() {
		return
	}
	q.dev.exec(func() {
		q.dev.funcs.DeleteQuery(q.obj)
	})
	q.obj = gl.Query{}
}
