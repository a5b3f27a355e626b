package platform

import "testing"

func TestParseBBox_Valid(t *testing.T) {
	b, err := ParseBBox("10,20,300,400")
	if err != nil {
		t.Fatal(err)
	}
	if *b != [4]int{10, 20, 300, 400} {
		t.Errorf("got %v, want [10 20 300 400]", *b)
	}
}

func TestParseBBox_WithSpaces(t *testing.T) {
	b, err := ParseBBox("10, 20, 300, 400")
	if err != nil {
		t.Fatal(err)
	}
	if *b != [4]int{10, 20, 300, 400} {
		t.Errorf("got %v, want [10 20 300 400]", *b)
	}
}

func TestParseBBox_Invalid(t *testing.T) {
	tests := []string{
		"",
		"10,20,300",
		"10,20,300,400,500",
		"a,b,c,d",
		"10,20,abc,400",
	}
	for _, s := range tests {
		_, err := ParseBBox(s)
		if err == nil {
			t.Errorf("ParseBBox(%q) should fail", s)
		}
	}
}

func TestParsePoint(t *testing.T) {
	x, y, err := ParsePoint("640, 480")
	if err != nil {
		t.Fatal(err)
	}
	if x != 640 || y != 480 {
		t.Errorf("got (%d, %d), want (640, 480)", x, y)
	}
	if _, _, err := ParsePoint("640"); err == nil {
		t.Error("ParsePoint(\"640\") should fail")
	}
}

func TestTargetString(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{Target{}, "frontmost app"},
		{Target{App: "Finder"}, `app "Finder"`},
		{Target{Bundle: "com.apple.finder", App: "Finder"}, "bundle com.apple.finder"},
		{Target{PID: 42, Bundle: "x"}, "pid 42"},
		{Target{SystemWide: true, PID: 42}, "system-wide"},
	}
	for _, tt := range tests {
		if got := tt.target.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.target, got, tt.want)
		}
	}
}
