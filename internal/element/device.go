package element

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DeviceKind enumerates the known viewport presets.
type DeviceKind string

const (
	DeviceDesktop         DeviceKind = "desktop"
	DeviceLaptop          DeviceKind = "laptop"
	DeviceTablet          DeviceKind = "tablet"
	DeviceTabletLandscape DeviceKind = "tablet-landscape"
	DeviceMobile          DeviceKind = "mobile"
	DeviceMobileLandscape DeviceKind = "mobile-landscape"
	DeviceCustom          DeviceKind = "custom"
)

// Device describes the target viewport of a scene.
type Device struct {
	Kind   DeviceKind
	Width  int
	Height int
}

var builtinDevices = map[DeviceKind]Device{
	DeviceDesktop:         {Kind: DeviceDesktop, Width: 1440, Height: 900},
	DeviceLaptop:          {Kind: DeviceLaptop, Width: 1280, Height: 800},
	DeviceTablet:          {Kind: DeviceTablet, Width: 768, Height: 1024},
	DeviceTabletLandscape: {Kind: DeviceTabletLandscape, Width: 1024, Height: 768},
	DeviceMobile:          {Kind: DeviceMobile, Width: 375, Height: 667},
	DeviceMobileLandscape: {Kind: DeviceMobileLandscape, Width: 667, Height: 375},
}

var customDeviceRe = regexp.MustCompile(`^(\d+)\s*x\s*(\d+)$`)

// DefaultDevice is the fallback for absent or unparsable @device text.
func DefaultDevice() Device { return builtinDevices[DeviceDesktop] }

// ParseDevice maps a @device directive value to a Device. Presets lets the
// caller supply extra named devices (loaded from the options file); they
// take precedence over the built-in names. Unknown text falls back to
// desktop.
func ParseDevice(raw string, presets map[string]Device) Device {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return DefaultDevice()
	}

	if presets != nil {
		if d, ok := presets[name]; ok {
			return d
		}
	}
	if d, ok := builtinDevices[DeviceKind(name)]; ok {
		return d
	}

	if m := customDeviceRe.FindStringSubmatch(name); m != nil {
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		if w > 0 && h > 0 {
			return Device{Kind: DeviceCustom, Width: w, Height: h}
		}
	}

	return DefaultDevice()
}

// String renders the device for logs and the summary output.
func (d Device) String() string {
	return fmt.Sprintf("%s %dx%d", d.Kind, d.Width, d.Height)
}
