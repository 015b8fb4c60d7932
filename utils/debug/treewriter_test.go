package debug

import (
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{name: "no depth", depth: 0, format: "VStack", want: "VStack\n"},
		{name: "depth 2", depth: 2, format: "Padding", want: "    Padding\n"},
		{name: "with formatting", depth: 1, format: "Page #%d", args: []any{3}, want: "  Page #3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{name: "empty value", depth: 0, label: "text", value: "", want: "text: \n"},
		{name: "quoted value", depth: 1, label: "text", value: "hello world", want: "  text: \"hello world\"\n"},
		{name: "newline", depth: 0, label: "text", value: "line1\nline2", want: "text: \"line1\\nline2\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Props(t *testing.T) {
	tw := NewTreeWriter()
	tw.Props(1, "Box", map[string]string{"y": "10", "x": "2", "size": "5x5", "x10": "a", "x9": "b"})

	want := "  Box size=5x5 x=2 x9=b x10=a y=10\n"
	if got := tw.String(); got != want {
		t.Errorf("Props() = %q, want %q", got, want)
	}
}

func TestTreeWriter_Tree(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "Page #0")
	tw.Props(1, "VStack", map[string]string{"size": "100x20"})
	tw.TextBlock(2, "text", "Basics")

	want := "Page #0\n  VStack size=100x20\n    text: \"Basics\"\n"
	if got := tw.String(); got != want {
		t.Errorf("tree:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
