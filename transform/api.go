// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"
)

// API selects the projection depth convention of a graphics API.
type API uint8

const (
	// OpenGL uses NDC depth [-1, 1] (the NO projections).
	OpenGL API = iota
	// Vulkan uses NDC depth [0, 1] (the ZO projections).
	Vulkan
)

// Valid reports whether a is OpenGL or Vulkan.
func (a API) Valid() bool { return a == OpenGL || a == Vulkan }

// String implements fmt.Stringer.
func (a API) String() string {
	switch a {
	case OpenGL:
		return "opengl"
	case Vulkan:
		return "vulkan"
	default:
		return fmt.Sprintf("API(%d)", uint8(a))
	}
}

// ParseAPI maps "opengl"/"gl" and "vulkan"/"vk" (case-insensitive) to an API.
func ParseAPI(s string) (API, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "opengl", "gl":
		return OpenGL, nil
	case "vulkan", "vk":
		return Vulkan, nil
	default:
		return 0, fmt.Errorf("ParseAPI(%q): %w", s, ErrUnknownAPI)
	}
}
