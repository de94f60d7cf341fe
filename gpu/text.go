// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"strings"
)

var depthFormatNames = [...]string{
	DepthNone:       "none",
	Depth16:         "depth16",
	Depth24:         "depth24",
	Depth24Stencil8: "depth24stencil8",
}

func (f DepthFormat) String() string {
	if int(f) < len(depthFormatNames) {
		return depthFormatNames[f]
	}
	return fmt.Sprintf("DepthFormat(%d)", int(f))
}

func (f DepthFormat) MarshalText() ([]byte, error) {
	if int(f) >= len(depthFormatNames) {
		return nil, fmt.Errorf("gpu: invalid depth format %d", int(f))
	}
	return []byte(depthFormatNames[f]), nil
}

func (f *DepthFormat) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range depthFormatNames {
		if s == name {
			*f = DepthFormat(i)
			return nil
		}
	}
	return fmt.Errorf("gpu: unknown depth format %q", text)
}

var surfaceFormatNames = [...]string{
	FormatColor:       "color",
	FormatBgr565:      "bgr565",
	FormatBgra5551:    "bgra5551",
	FormatBgra4444:    "bgra4444",
	FormatDxt1:        "dxt1",
	FormatDxt3:        "dxt3",
	FormatDxt5:        "dxt5",
	FormatAlpha8:      "alpha8",
	FormatSingle:      "single",
	FormatVector2:     "vector2",
	FormatVector4:     "vector4",
	FormatHalfSingle:  "halfsingle",
	FormatHalfVector2: "halfvector2",
	FormatHalfVector4: "halfvector4",
	FormatRgba1010102: "rgba1010102",
	FormatRg32:        "rg32",
	FormatRgba64:      "rgba64",
}

func (f SurfaceFormat) String() string {
	if int(f) < len(surfaceFormatNames) {
		return surfaceFormatNames[f]
	}
	return fmt.Sprintf("SurfaceFormat(%d)", int(f))
}
