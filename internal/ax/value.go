package ax

import "fmt"

// ValueKind tags the semantic type of an attribute value.
type ValueKind int

const (
	KindAny ValueKind = iota
	KindBool
	KindString
	KindNumber
	KindElement
	KindElementArray
	KindArray
	KindPoint
	KindSize
	KindRect
	KindRange
	KindURL
	KindOpaque
)

func (k ValueKind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindElement:
		return "element"
	case KindElementArray:
		return "element array"
	case KindArray:
		return "array"
	case KindPoint:
		return "point"
	case KindSize:
		return "size"
	case KindRect:
		return "rect"
	case KindRange:
		return "range"
	case KindURL:
		return "url"
	case KindOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k ValueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Value is an attribute value as seen by callers: bool, string, float64,
// *Element, []*Element, []Value, map[string]Value, Point, Size, Rect, Range,
// URL or Opaque.
type Value = any

// Point is a screen coordinate in points, origin at the top-left of the main display.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size is a width and height in points.
type Size struct {
	Width  float64 `json:"w" yaml:"w"`
	Height float64 `json:"h" yaml:"h"`
}

// Rect is an origin plus a size.
type Rect struct {
	Origin Point `json:"origin" yaml:"origin"`
	Size   Size  `json:"size"   yaml:"size"`
}

// Range is a character range within text.
type Range struct {
	Location int64 `json:"location" yaml:"location"`
	Length   int64 `json:"length"   yaml:"length"`
}

// URL is a URL value, kept as its absolute string form.
type URL string

// Opaque is a value of a foreign type this package does not decode.
type Opaque struct {
	TypeName    string `json:"type"        yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// KindOf reports the kind of a value, either raw from the foreign layer or
// already decoded.
func KindOf(v any) ValueKind {
	switch x := v.(type) {
	case bool:
		return KindBool
	case string:
		return KindString
	case float64, float32, int, int32, int64, uint32, uint64:
		return KindNumber
	case Ref, *Element:
		return KindElement
	case []*Element:
		return KindElementArray
	case []any:
		if len(x) > 0 && allElements(x) {
			return KindElementArray
		}
		return KindArray
	case Point:
		return KindPoint
	case Size:
		return KindSize
	case Rect:
		return KindRect
	case Range:
		return KindRange
	case URL:
		return KindURL
	default:
		return KindOpaque
	}
}

func allElements(items []any) bool {
	for _, it := range items {
		if _, ok := it.(Ref); !ok {
			return false
		}
	}
	return true
}

// accepts reports whether a raw foreign value satisfies the declared kind.
func accepts(declared ValueKind, raw any) bool {
	if declared == KindAny {
		return true
	}
	got := KindOf(raw)
	switch declared {
	case KindElementArray:
		items, ok := raw.([]any)
		return ok && allElements(items)
	case KindArray:
		return got == KindArray || got == KindElementArray
	default:
		return got == declared
	}
}

// decode converts a raw foreign value into its caller-facing form. Element
// references inside raw are adopted by the returned Elements.
func decode(raw any, declared ValueKind) Value {
	switch x := raw.(type) {
	case Ref:
		return Wrap(x)
	case []any:
		if declared == KindElementArray {
			out := make([]*Element, len(x))
			for i, it := range x {
				out[i] = Wrap(it.(Ref))
			}
			return out
		}
		out := make([]Value, len(x))
		for i, it := range x {
			out[i] = decode(it, KindAny)
		}
		return out
	case map[string]any:
		out := make(map[string]Value, len(x))
		for k, it := range x {
			out[k] = decode(it, KindAny)
		}
		return out
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	default:
		return raw
	}
}

// encode converts a caller value into the form the foreign layer expects.
// Elements are passed as their borrowed Ref; nil or closed elements are
// rejected with ErrorIllegalArgument.
func encode(v Value) (any, error) {
	switch x := v.(type) {
	case *Element:
		return encodeElement(x)
	case []*Element:
		out := make([]any, len(x))
		for i, el := range x {
			ref, err := encodeElement(el)
			if err != nil {
				return nil, err
			}
			out[i] = ref
		}
		return out, nil
	case []Value:
		out := make([]any, len(x))
		for i, it := range x {
			enc, err := encode(it)
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	default:
		return v, nil
	}
}

func encodeElement(el *Element) (Ref, error) {
	if _, err := el.live(); err != nil {
		return nil, ErrorIllegalArgument
	}
	return el.ref, nil
}

// releaseRaw releases every element reference contained in a raw value that
// will not be handed to the caller.
func releaseRaw(raw any) {
	switch x := raw.(type) {
	case Ref:
		x.Release()
	case []any:
		for _, it := range x {
			releaseRaw(it)
		}
	case map[string]any:
		for _, it := range x {
			releaseRaw(it)
		}
	}
}

// CloseValue releases any Elements held by a decoded value.
func CloseValue(v Value) {
	switch x := v.(type) {
	case *Element:
		x.Close()
	case []*Element:
		CloseAll(x)
	case []Value:
		for _, it := range x {
			CloseValue(it)
		}
	case map[string]Value:
		for _, it := range x {
			CloseValue(it)
		}
	}
}
