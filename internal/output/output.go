package output

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/accessibility/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value. The empty string selects YAML.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// TreeResult is the output of `aq tree`.
type TreeResult struct {
	Target   string          `yaml:"target"           json:"target"`
	PID      int             `yaml:"pid,omitempty"    json:"pid,omitempty"`
	TS       int64           `yaml:"ts"               json:"ts"`
	Count    int             `yaml:"count"            json:"count"`
	Elements []model.Element `yaml:"elements"         json:"elements"`
}

// FlatResult is the output of `aq tree --flat`.
type FlatResult struct {
	Target   string              `yaml:"target"        json:"target"`
	PID      int                 `yaml:"pid,omitempty" json:"pid,omitempty"`
	TS       int64               `yaml:"ts"            json:"ts"`
	Elements []model.FlatElement `yaml:"elements"      json:"elements"`
}

// FindResult is the output of `aq find`.
type FindResult struct {
	Match   model.Element `yaml:"match"   json:"match"`
	Passes  int           `yaml:"passes"  json:"passes"`
	Elapsed string        `yaml:"elapsed" json:"elapsed"`
}

// ActionResult is the output of `aq action` and `aq set`.
type ActionResult struct {
	OK      bool          `yaml:"ok"                json:"ok"`
	Action  string        `yaml:"action,omitempty"  json:"action,omitempty"`
	Element model.Element `yaml:"element"           json:"element"`
	Value   any           `yaml:"value,omitempty"   json:"value,omitempty"`
}

// Event is one line of `aq watch` output.
type Event struct {
	TS           int64             `yaml:"ts"                json:"ts"`
	Notification string            `yaml:"notification"      json:"notification"`
	PID          int               `yaml:"pid"               json:"pid"`
	Element      *model.Element    `yaml:"element,omitempty" json:"element,omitempty"`
	Changes      *model.TreeDiff   `yaml:"changes,omitempty" json:"changes,omitempty"`
	Info         map[string]string `yaml:"info,omitempty"  json:"info,omitempty"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(os.Stdout, OutputFormat, v)
}

// Fprint serializes v to w in format f.
func Fprint(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, v, PrettyOutput)
	case FormatYAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}

// Marshal returns v serialized in format f.
func Marshal(f Format, v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := Fprint(&buf, f, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
