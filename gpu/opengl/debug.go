// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"context"
	"fmt"
	"log/slog"

	"gfxhal.org/gl"
)

// installDebugOutput routes driver debug messages to the logger. Low
// severity messages of type OTHER are filtered out. Output is synchronous
// so that messages arrive on the thread making the offending call.
func installDebugOutput(f gl.Functions) {
	f.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	f.DebugMessageCallback(debugMessage)
	f.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, true)
	f.DebugMessageControl(gl.DONT_CARE, gl.DEBUG_TYPE_OTHER, gl.DEBUG_SEVERITY_LOW, false)
	Logger().Debug("driver debug output enabled")
}

// debugMessage logs a driver message and panics on errors, which mean
// the shadow state no longer matches the driver.
func debugMessage(source, typ gl.Enum, id uint, severity gl.Enum, message string) {
	level := slog.LevelDebug
	switch {
	case typ == gl.DEBUG_TYPE_ERROR || severity == gl.DEBUG_SEVERITY_HIGH:
		level = slog.LevelError
	case severity == gl.DEBUG_SEVERITY_MEDIUM:
		level = slog.LevelWarn
	case severity == gl.DEBUG_SEVERITY_LOW:
		level = slog.LevelInfo
	}
	Logger().LogAttrs(context.Background(), level, message,
		slog.String("source", debugSourceName(source)),
		slog.String("type", debugTypeName(typ)),
		slog.Uint64("id", uint64(id)),
		slog.String("severity", debugSeverityName(severity)),
	)
	if typ == gl.DEBUG_TYPE_ERROR {
		panic(fmt.Errorf("opengl: driver error %d: %s", id, message))
	}
}

func debugSourceName(e gl.Enum) string {
	switch e {
	case gl.DEBUG_SOURCE_API:
		return "api"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "window_system"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "shader_compiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "third_party"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "application"
	default:
		return "other"
	}
}

func debugTypeName(e gl.Enum) string {
	switch e {
	case gl.DEBUG_TYPE_ERROR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "deprecated"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "undefined"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "portability"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "performance"
	default:
		return "other"
	}
}

func debugSeverityName(e gl.Enum) string {
	switch e {
	case gl.DEBUG_SEVERITY_HIGH:
		return "high"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return "medium"
	case gl.DEBUG_SEVERITY_LOW:
		return "low"
	default:
		return "notification"
	}
}
