// SPDX-License-Identifier: Unlicense OR MIT

// Package sdlhost runs an opengl.Device in an SDL2 window.
package sdlhost

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"gfxhal.org/gpu/opengl"
)

// Host owns an SDL window. Methods must be called from the thread that
// created it.
type Host struct {
	win *sdl.Window
}

var _ opengl.Host = (*Host)(nil)

// New initializes the SDL video subsystem and opens an OpenGL window.
func New(width, height int, title string) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: %w", err)
	}
	return &Host{win: win}, nil
}

// Window returns the SDL window.
func (h *Host) Window() *sdl.Window {
	return h.win
}

func (h *Host) CreateContext() (opengl.Context, error) {
	ctx, err := h.win.GLCreateContext()
	if err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}
	return ctx, nil
}

// CreateSharedContext creates a context sharing objects with the current
// one. SDL leaves the new context current.
func (h *Host) CreateSharedContext() (opengl.Context, error) {
	if err := sdl.GLSetAttribute(sdl.GL_SHARE_WITH_CURRENT_CONTEXT, 1); err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}
	ctx, err := h.win.GLCreateContext()
	sdl.GLSetAttribute(sdl.GL_SHARE_WITH_CURRENT_CONTEXT, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}
	return ctx, nil
}

func (h *Host) MakeCurrent(ctx opengl.Context) error {
	c, ok := ctx.(sdl.GLContext)
	if !ok {
		return fmt.Errorf("sdlhost: foreign context %T", ctx)
	}
	return h.win.GLMakeCurrent(c)
}

func (h *Host) DeleteContext(ctx opengl.Context) {
	if c, ok := ctx.(sdl.GLContext); ok {
		sdl.GLDeleteContext(c)
	}
}

func (h *Host) GetProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

func (h *Host) SwapWindow() {
	h.win.GLSwap()
}

func (h *Host) DrawableSize() image.Point {
	w, ht := h.win.GLGetDrawableSize()
	return image.Pt(int(w), int(ht))
}

// PollEvents drains the event queue and reports whether the window is
// still open.
func (h *Host) PollEvents() bool {
	open := true
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		if _, ok := e.(*sdl.QuitEvent); ok {
			open = false
		}
	}
	return open
}

// Wake pushes an empty user event to unblock WaitEvent on the main
// thread.
func (h *Host) Wake() {
	sdl.PushEvent(&sdl.UserEvent{Type: sdl.USEREVENT})
}

// Close destroys the window and shuts SDL down.
func (h *Host) Close() {
	h.win.Destroy()
	sdl.Quit()
}
