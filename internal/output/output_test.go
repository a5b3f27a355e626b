package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/accessibility/internal/ax"
	"github.com/mj1618/accessibility/internal/model"
)

func sampleTree() TreeResult {
	return TreeResult{
		Target: `app "Safari"`,
		PID:    1234,
		TS:     1707500000,
		Count:  1,
		Elements: []model.Element{
			{ID: 1, Role: "btn", Title: "OK", Bounds: [4]int{10, 20, 100, 30}},
		},
	}
}

func TestPrintYAML(t *testing.T) {
	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := PrintYAML(sampleTree())
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", output)
	}

	var decoded TreeResult
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Target != `app "Safari"` {
		t.Errorf("target: got %q", decoded.Target)
	}
	if len(decoded.Elements) != 1 || decoded.Elements[0].Title != "OK" {
		t.Errorf("elements: got %+v", decoded.Elements)
	}
}

func TestTreeResult_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(TreeResult{TS: 123, Elements: []model.Element{}})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["pid"]; ok {
		t.Error("zero pid should be omitted")
	}
	if _, ok := m["elements"]; !ok {
		t.Error("elements should always be present")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"agent", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarshal_AttributeKinds(t *testing.T) {
	res := model.Inspection{
		Element: model.Element{ID: 1, Role: "win"},
		Attributes: []model.AttributeInfo{
			{Name: "AXPosition", Kind: ax.KindPoint, Settable: true, Value: ax.Point{X: 1, Y: 2}},
			{Name: "AXTitle", Kind: ax.KindString, Error: "no value"},
		},
	}
	data, err := Marshal(FormatJSON, res)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, `"kind":"point"`) {
		t.Errorf("kind should render by name, got %s", out)
	}
	if !strings.Contains(out, `"value":{"x":1,"y":2}`) {
		t.Errorf("point value not rendered, got %s", out)
	}

	data, err = Marshal(FormatYAML, res)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "kind: string") {
		t.Errorf("yaml kind should render by name, got:\n%s", data)
	}
}

func TestFprint_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, Format("xml"), 1); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestEvent_OmitsEmptyChanges(t *testing.T) {
	data, err := json.Marshal(Event{TS: 1, Notification: "AXTitleChanged", PID: 7})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "changes") || strings.Contains(string(data), "element") {
		t.Errorf("empty fields should be omitted, got %s", data)
	}
}
