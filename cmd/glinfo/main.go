// SPDX-License-Identifier: Unlicense OR MIT

// Command glinfo opens a window, creates an OpenGL device and prints the
// driver capabilities. With -frames it also presents a number of cleared
// frames through the backbuffer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"gfxhal.org/gl/gogl"
	"gfxhal.org/gpu"
	"gfxhal.org/gpu/opengl"
	"gfxhal.org/host/glfwhost"
	"gfxhal.org/host/sdlhost"
)

var (
	configPath = flag.String("config", "", "read the device configuration from a TOML file")
	hostName   = flag.String("host", "glfw", "window system (glfw, sdl)")
	frames     = flag.Int("frames", 0, "number of frames to present before exiting")
	debug      = flag.Bool("debug", false, "install the driver debug callback")
	verbose    = flag.Bool("v", false, "log at debug level")
)

type host interface {
	opengl.Host
	PollEvents() bool
	Close()
}

func init() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "glinfo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	opengl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := opengl.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = opengl.LoadConfig(*configPath)
		if err != nil {
			return err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "debug" {
			cfg.DebugOutput = *debug
		}
	})

	h, err := newHost(*hostName, cfg.BackbufferWidth, cfg.BackbufferHeight)
	if err != nil {
		return err
	}
	defer h.Close()
	d, err := opengl.NewDevice(h, gogl.Load, cfg)
	if err != nil {
		return err
	}
	defer d.Release()
	printCaps(d.Caps())

	size := d.BackbufferSize()
	for i := 0; i < *frames && h.PollEvents(); i++ {
		d.SetViewport(gpu.Viewport{Bounds: image.Rectangle{Max: size}, MaxDepth: 1}, false)
		t := float32(i) / float32(*frames)
		d.Clear(gpu.ClearTarget|gpu.ClearDepthBuffer, [4]float32{t, 0.2, 1 - t, 1}, 1, 0)
		d.SwapBuffers()
	}
	return nil
}

func newHost(name string, width, height int) (host, error) {
	const title = "glinfo"
	switch name {
	case "glfw":
		return glfwhost.New(width, height, title)
	case "sdl":
		return sdlhost.New(width, height, title)
	case "":
		return nil, errors.New("specify a -host")
	default:
		return nil, fmt.Errorf("invalid -host %s", name)
	}
}

func printCaps(c opengl.Caps) {
	path := "ARB"
	if c.FramebufferEXT {
		path = "EXT"
	}
	fmt.Printf("vendor:              %s\n", c.Vendor)
	fmt.Printf("renderer:            %s\n", c.Renderer)
	fmt.Printf("version:             %s\n", c.Version)
	fmt.Printf("framebuffer objects: %s\n", path)
	fmt.Printf("texture slots:       %d\n", c.MaxTextureSlots)
	fmt.Printf("vertex attributes:   %d\n", c.MaxVertexAttribs)
	fmt.Printf("draw buffers:        %d\n", c.MaxDrawBuffers)
	fmt.Printf("max texture size:    %d\n", c.MaxTextureSize)
	fmt.Printf("max anisotropy:      %g\n", c.MaxAnisotropy)
	fmt.Printf("s3tc:                %v (dxt1 %v)\n", c.SupportsS3TC, c.SupportsDXT1)
	fmt.Printf("instancing:          %v\n", c.SupportsHardwareInstancing)
	fmt.Printf("debug output:        %v\n", c.SupportsDebugOutput)
	fmt.Printf("extensions:          %d\n", len(c.Extensions))
	if *verbose {
		fmt.Printf("  %s\n", strings.Join(c.Extensions, "\n  "))
	}
}
