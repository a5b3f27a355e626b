package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Target selects the root element a command operates on.
type Target struct {
	App        string // Application name, case-insensitive
	Bundle     string // Bundle identifier, e.g. com.apple.finder
	PID        int    // Process ID (0 = unset)
	SystemWide bool   // The system-wide element
}

// String describes the target for log and error messages.
func (t Target) String() string {
	switch {
	case t.SystemWide:
		return "system-wide"
	case t.PID != 0:
		return fmt.Sprintf("pid %d", t.PID)
	case t.Bundle != "":
		return "bundle " + t.Bundle
	case t.App != "":
		return fmt.Sprintf("app %q", t.App)
	default:
		return "frontmost app"
	}
}

// ParseBBox parses a "x,y,w,h" string into [x, y, width, height].
func ParseBBox(s string) (*[4]int, error) {
	vals, err := parseInts(s, 4)
	if err != nil {
		return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
	}
	return &[4]int{vals[0], vals[1], vals[2], vals[3]}, nil
}

// ParsePoint parses an "x,y" string.
func ParsePoint(s string) (x, y int, err error) {
	vals, err := parseInts(s, 2)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return vals[0], vals[1], nil
}

func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated integers", n)
	}
	vals := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
