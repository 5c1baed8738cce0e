package format

import (
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		raw  string
		want Class
	}{
		{"https://example.com/page", ClassURL},
		{"http://example.com", ClassURL},
		{"www.example.com", ClassURL},
		{"report.pdf", ClassFile},
		{"C:\\Users\\me\\photo.jpg", ClassFile},
		{`{"a": 1, "b": [2, 3]}`, ClassJSON},
		{`["x", "y"]`, ClassJSON},
		{"2024-03-15", ClassDate},
		{"2024-03-15 14:30:00", ClassDate},
		{"103.5, 241.2", ClassCoordinate},
		{"(10, 20)", ClassCoordinate},
		{"just a plain answer", ClassPlain},
		{"42", ClassPlain},
		{"", ClassPlain},
	}
	for _, tt := range tests {
		if got := Detect(tt.raw).Class; got != tt.want {
			t.Errorf("Detect(%q).Class = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDetectPlainBeatsAmbiguous(t *testing.T) {
	// Text with a comma but no coordinate shape stays plain.
	tests := []string{
		"Yes, definitely",
		"around 2024-ish",
		"not.a.file.extension.unknownext",
	}
	for _, raw := range tests {
		if got := Detect(raw).Class; got != ClassPlain {
			t.Errorf("Detect(%q).Class = %q, want plain", raw, got)
		}
	}
}

func TestCellURL(t *testing.T) {
	got := Cell("https://example.com/x?a=1&b=2")
	if !strings.Contains(got, `<a href="https://example.com/x?a=1&amp;b=2"`) {
		t.Errorf("Cell() = %q", got)
	}
	if !strings.Contains(got, `class="url-link"`) {
		t.Errorf("Cell() missing url-link class: %q", got)
	}
}

func TestCellURLAddsScheme(t *testing.T) {
	got := Cell("www.example.com")
	if !strings.Contains(got, `href="https://www.example.com"`) {
		t.Errorf("Cell() = %q", got)
	}
}

func TestCellJSON(t *testing.T) {
	got := Cell(`{"key":"value"}`)
	if !strings.Contains(got, `<pre class="json-data">`) {
		t.Errorf("Cell() = %q", got)
	}
	// Pretty-printed with indentation.
	if !strings.Contains(got, "  &#34;key&#34;") {
		t.Errorf("Cell() not indented: %q", got)
	}
}

func TestCellCoordinate(t *testing.T) {
	got := Cell("103.5, 241.2")
	if !strings.Contains(got, "X: 103.5, Y: 241.2") {
		t.Errorf("Cell() = %q", got)
	}
}

func TestCellEscapesHTML(t *testing.T) {
	got := Cell(`<script>alert("x")</script>`)
	if strings.Contains(got, "<script>") {
		t.Errorf("Cell() leaked raw HTML: %q", got)
	}
}

func TestCellMultiline(t *testing.T) {
	got := Cell("line one\nline two")
	if !strings.Contains(got, "line one<br>line two") {
		t.Errorf("Cell() = %q", got)
	}
}

func TestCellLongText(t *testing.T) {
	long := strings.Repeat("word ", 60)
	got := Cell(long)
	if !strings.Contains(got, `<div class="long-text">`) {
		t.Errorf("Cell() long text not wrapped: %q", got[:80])
	}
}

func TestEmpty(t *testing.T) {
	if got := Empty(); !strings.Contains(got, "No response") {
		t.Errorf("Empty() = %q", got)
	}
}
