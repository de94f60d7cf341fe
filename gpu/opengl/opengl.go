// SPDX-License-Identifier: Unlicense OR MIT

// Package opengl implements a state caching device on top of an OpenGL
// driver. Every mutable piece of driver state is mirrored by the Device;
// state operations compare the request with the mirror and call the
// driver only for the fields that differ.
//
// A Device is bound to one context and must be used from the thread that
// created it, unless Config.ThreadedGL is set.
package opengl

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"unsafe"

	"gfxhal.org/gl"
	"gfxhal.org/internal/mainthread"
)

var (
	// ErrUnsupportedHardware is returned by NewDevice if the driver lacks
	// a mandatory capability.
	ErrUnsupportedHardware = errors.New("opengl: unsupported hardware")
	// ErrContentLost is returned by readbacks when the driver lost the
	// contents of a mapped buffer.
	ErrContentLost = errors.New("opengl: buffer content lost")
	// ErrUnsupportedFormat is returned when a resource format needs a
	// capability the driver lacks.
	ErrUnsupportedFormat = errors.New("opengl: unsupported format")
)

// Context is an opaque host context handle.
type Context any

// Host is the windowing layer the Device runs on.
type Host interface {
	// CreateContext creates a context for the window and makes it
	// current.
	CreateContext() (Context, error)
	// CreateSharedContext creates a context sharing objects with the
	// current one. It may leave the new context current.
	CreateSharedContext() (Context, error)
	MakeCurrent(ctx Context) error
	DeleteContext(ctx Context)
	// GetProcAddress resolves a driver entry point, or returns nil.
	GetProcAddress(name string) unsafe.Pointer
	// SwapWindow presents the window surface.
	SwapWindow()
	// DrawableSize returns the physical size of the window surface.
	DrawableSize() image.Point
}

// Waker is implemented by hosts whose event loop can be woken from any
// thread. In threaded mode the Device wakes the host after queueing a
// call so the owning thread runs RunPending.
type Waker interface {
	Wake()
}

// Loader loads the driver entry points for the current context.
type Loader func(getProcAddress func(name string) unsafe.Pointer) (gl.Functions, error)

// Device holds the shadow state of one driver context.
type Device struct {
	host  Host
	funcs gl.Functions
	cfg   Config
	caps  Caps

	ctx   Context
	bgCtx Context
	// mainq is set in threaded mode.
	mainq *mainthread.Queue

	glstate    glState
	fbo        *fboManager
	backbuffer backbuffer
	target     targetState

	// bufMu serializes buffer mapping against other buffer data
	// operations.
	bufMu sync.Mutex
}

// NewDevice creates the context, probes the driver and allocates the
// backbuffer. In threaded mode the caller must run on the thread that
// will drive the context, locked with runtime.LockOSThread.
func NewDevice(host Host, load Loader, cfg Config) (*Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx, err := host.CreateContext()
	if err != nil {
		return nil, fmt.Errorf("opengl: create context: %w", err)
	}
	d := &Device{host: host, cfg: cfg, ctx: ctx}
	ok := false
	defer func() {
		if !ok {
			d.releaseContexts()
		}
	}()
	if cfg.ThreadedGL {
		bg, err := host.CreateSharedContext()
		if err != nil {
			return nil, fmt.Errorf("opengl: create background context: %w", err)
		}
		d.bgCtx = bg
		if err := host.MakeCurrent(ctx); err != nil {
			return nil, fmt.Errorf("opengl: make current: %w", err)
		}
		d.mainq = mainthread.New()
		if w, ok := host.(Waker); ok {
			d.mainq.Wake = w.Wake
		}
	}
	funcs, err := load(host.GetProcAddress)
	if err != nil {
		return nil, fmt.Errorf("opengl: load entry points: %w", err)
	}
	caps, err := probeCaps(funcs, host.GetProcAddress)
	if err != nil {
		return nil, err
	}
	d.funcs = funcs
	d.caps = caps
	Logger().LogAttrs(context.Background(), slog.LevelInfo, "opengl device", caps.logAttrs()...)

	if cfg.DebugOutput {
		if caps.SupportsDebugOutput {
			installDebugOutput(funcs)
		} else {
			Logger().Warn("debug output requested but not supported by the driver")
		}
	}

	d.glstate = newGLState(caps)
	d.fbo = newFBOManager(funcs, caps.FramebufferEXT)
	Logger().Debug("shadow state",
		slog.Int("texture_slots", len(d.glstate.texUnits.binds)),
		slog.Int("vertex_attribs", len(d.glstate.attribs)),
		slog.Int("draw_buffers", caps.MaxDrawBuffers),
	)
	d.target = newTargetState(funcs, d.fbo, caps.MaxDrawBuffers)
	if cfg.DisableFauxBackbuffer {
		d.backbuffer = newWindowBackbuffer(cfg.BackbufferWidth, cfg.BackbufferHeight, cfg.DepthFormat)
	} else {
		d.backbuffer = newFauxBackbuffer(d, cfg.BackbufferWidth, cfg.BackbufferHeight, cfg.DepthFormat)
	}
	d.fbo.bind(d.backbuffer.framebuffer())
	// The driver defaults are the window size; start from the
	// backbuffer size instead.
	bounds := image.Rect(0, 0, cfg.BackbufferWidth, cfg.BackbufferHeight)
	d.glstate.setViewport(funcs, bounds)
	d.glstate.setScissor(funcs, bounds)
	ok = true
	return d, nil
}

// exec runs f on the main thread in threaded mode, and directly
// otherwise.
func (d *Device) exec(f func()) {
	if d.mainq == nil || d.mainq.OnMain() {
		f()
		return
	}
	d.mainq.Call(f)
}

// RunPending runs the driver calls queued by other threads. It is a
// no-op outside threaded mode and must be called from the main thread.
func (d *Device) RunPending() {
	if d.mainq != nil {
		d.mainq.Run()
	}
}

func (d *Device) Caps() Caps {
	return d.caps
}

// RenderTargetBound reports whether draws go to a render target rather
// than the backbuffer.
func (d *Device) RenderTargetBound() bool {
	return d.target.bound
}

// Release deletes the device objects in dependency order and destroys
// the contexts.
func (d *Device) Release() {
	d.exec(func() {
		d.fbo.deleteFramebuffer(d.target.fbo)
		d.backbuffer.release(d)
	})
	d.releaseContexts()
}

func (d *Device) releaseContexts() {
	if d.bgCtx != nil {
		d.host.DeleteContext(d.bgCtx)
		d.bgCtx = nil
	}
	if d.ctx != nil {
		d.host.DeleteContext(d.ctx)
		d.ctx = nil
	}
}
