package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   outputName,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

// defaultPlacement centres a width x height window on the monitor under the
// pointer, clipped to the EWMH work area when the window manager publishes
// one. It falls back to the root origin when nothing can be queried.
func (c *Connection) defaultPlacement(width, height int) (int, int) {
	monitors, err := c.GetMonitors()
	if err != nil || len(monitors) == 0 {
		c.logger.Debug("no monitor information, placing at origin", "error", err)
		return 0, 0
	}

	mon := monitors[0]
	if pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		if m, ok := monitorAt(monitors, int(pointer.RootX), int(pointer.RootY)); ok {
			mon = m
		}
	}

	if workArea, err := ewmh.WorkareaGet(c.XUtil); err == nil && len(workArea) > 0 {
		desktop := 0
		if current, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(current) < len(workArea) {
			desktop = int(current)
		}
		wa := workArea[desktop]
		mon = clipToArea(mon, int(wa.X), int(wa.Y), int(wa.Width), int(wa.Height))
	}

	return centerIn(mon, width, height)
}

func monitorAt(monitors []Monitor, x, y int) (Monitor, bool) {
	for _, mon := range monitors {
		if x >= mon.X && x < mon.X+mon.Width && y >= mon.Y && y < mon.Y+mon.Height {
			return mon, true
		}
	}
	return Monitor{}, false
}

// clipToArea intersects the monitor with a work area. A work area that does
// not overlap the monitor leaves it unchanged.
func clipToArea(mon Monitor, x, y, width, height int) Monitor {
	x1 := max(mon.X, x)
	y1 := max(mon.Y, y)
	x2 := min(mon.X+mon.Width, x+width)
	y2 := min(mon.Y+mon.Height, y+height)
	if x2 <= x1 || y2 <= y1 {
		return mon
	}
	mon.X, mon.Y = x1, y1
	mon.Width, mon.Height = x2-x1, y2-y1
	return mon
}

// centerIn returns the origin that centres a window on the monitor, pinned to
// the monitor's top-left corner when the window is larger than it.
func centerIn(mon Monitor, width, height int) (int, int) {
	x := mon.X + (mon.Width-width)/2
	y := mon.Y + (mon.Height-height)/2
	return max(x, mon.X), max(y, mon.Y)
}
