// SPDX-License-Identifier: Unlicense OR MIT

// Package glfwhost runs an opengl.Device in a GLFW window.
package glfwhost

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gfxhal.org/gpu/opengl"
)

// Host owns a GLFW window and its contexts. GLFW has no contexts
// without windows, so the shared context lives in a hidden window. All
// methods must be called from the thread that created the Host.
type Host struct {
	win    *glfw.Window
	shared *glfw.Window
}

var _ opengl.Host = (*Host)(nil)

// New initializes GLFW and opens a window requesting an OpenGL 2.1
// context. The caller must be locked to the main OS thread.
func New(width, height int, title string) (*Host, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwhost: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwhost: %w", err)
	}
	return &Host{win: win}, nil
}

// Window returns the GLFW window for event handling.
func (h *Host) Window() *glfw.Window {
	return h.win
}

func (h *Host) CreateContext() (opengl.Context, error) {
	h.win.MakeContextCurrent()
	return h.win, nil
}

func (h *Host) CreateSharedContext() (opengl.Context, error) {
	if h.shared != nil {
		return nil, errors.New("glfwhost: shared context exists")
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	defer glfw.WindowHint(glfw.Visible, glfw.True)
	shared, err := glfw.CreateWindow(1, 1, "", nil, h.win)
	if err != nil {
		return nil, fmt.Errorf("glfwhost: %w", err)
	}
	h.shared = shared
	return shared, nil
}

func (h *Host) MakeCurrent(ctx opengl.Context) error {
	win, ok := ctx.(*glfw.Window)
	if !ok {
		return fmt.Errorf("glfwhost: foreign context %T", ctx)
	}
	win.MakeContextCurrent()
	return nil
}

// DeleteContext destroys the shared context. The window context lives
// until Close.
func (h *Host) DeleteContext(ctx opengl.Context) {
	if win, ok := ctx.(*glfw.Window); ok && win == h.shared {
		h.shared.Destroy()
		h.shared = nil
	}
}

func (h *Host) GetProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (h *Host) SwapWindow() {
	h.win.SwapBuffers()
}

func (h *Host) DrawableSize() image.Point {
	w, ht := h.win.GetFramebufferSize()
	return image.Pt(w, ht)
}

// PollEvents processes pending window events and reports whether the
// window is still open.
func (h *Host) PollEvents() bool {
	glfw.PollEvents()
	return !h.win.ShouldClose()
}

// Close destroys the window and terminates GLFW.
func (h *Host) Close() {
	if h.shared != nil {
		h.shared.Destroy()
		h.shared = nil
	}
	h.win.Destroy()
	glfw.Terminate()
}

// Wake unblocks a WaitEvents call on the main thread.
func (h *Host) Wake() {
	glfw.PostEmptyEvent()
}
