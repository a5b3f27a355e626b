package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/accessibility/internal/ax"
)

// FormatValue renders an attribute value as a single line of text.
func FormatValue(v ax.Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case ax.Point:
		return fmt.Sprintf("(%g, %g)", x.X, x.Y)
	case ax.Size:
		return fmt.Sprintf("%gx%g", x.Width, x.Height)
	case ax.Rect:
		return fmt.Sprintf("(%g, %g) %gx%g", x.Origin.X, x.Origin.Y, x.Size.Width, x.Size.Height)
	case ax.Range:
		return fmt.Sprintf("[%d+%d]", x.Location, x.Length)
	case ax.URL:
		return string(x)
	case ax.Opaque:
		return fmt.Sprintf("<%s>", x.TypeName)
	case *ax.Element:
		return describeRef(x)
	case []*ax.Element:
		parts := make([]string, len(x))
		for i, el := range x {
			parts[i] = describeRef(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []ax.Value:
		parts := make([]string, len(x))
		for i, it := range x {
			parts[i] = FormatValue(it)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

// describeRef names an element by role and title without walking it.
func describeRef(el *ax.Element) string {
	role, err := el.Role()
	if err != nil {
		return el.String()
	}
	if title, err := el.Title(); err == nil && title != "" {
		return fmt.Sprintf("%s %q", role, title)
	}
	return role
}

// PlainValue converts an attribute value into plain data for YAML/JSON
// output. Element references become their descriptions.
func PlainValue(v ax.Value) any {
	switch x := v.(type) {
	case *ax.Element, []*ax.Element:
		return FormatValue(x)
	case []ax.Value:
		out := make([]any, len(x))
		for i, it := range x {
			out[i] = PlainValue(it)
		}
		return out
	case ax.URL:
		return string(x)
	default:
		return v
	}
}

// ParseValue interprets command-line text as a value of the given kind.
func ParseValue(kind ax.ValueKind, text string) (ax.Value, error) {
	switch kind {
	case ax.KindBool:
		return strconv.ParseBool(text)
	case ax.KindNumber:
		return strconv.ParseFloat(text, 64)
	case ax.KindString:
		return text, nil
	case ax.KindURL:
		return ax.URL(text), nil
	case ax.KindPoint:
		f, err := parseFloats(text, 2)
		if err != nil {
			return nil, err
		}
		return ax.Point{X: f[0], Y: f[1]}, nil
	case ax.KindSize:
		f, err := parseFloats(text, 2)
		if err != nil {
			return nil, err
		}
		return ax.Size{Width: f[0], Height: f[1]}, nil
	case ax.KindRect:
		f, err := parseFloats(text, 4)
		if err != nil {
			return nil, err
		}
		return ax.Rect{Origin: ax.Point{X: f[0], Y: f[1]}, Size: ax.Size{Width: f[2], Height: f[3]}}, nil
	case ax.KindRange:
		f, err := parseFloats(text, 2)
		if err != nil {
			return nil, err
		}
		return ax.Range{Location: int64(f[0]), Length: int64(f[1])}, nil
	case ax.KindAny:
		switch text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f, nil
		}
		return text, nil
	default:
		return nil, fmt.Errorf("cannot set a %s value from text", kind)
	}
}

func parseFloats(text string, n int) ([]float64, error) {
	parts := strings.Split(text, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("invalid value %q: expected %d comma-separated numbers", text, n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", text, err)
		}
		out[i] = f
	}
	return out, nil
}
