package godu

import (
	"bytes"
	"testing"
)

func TestHuman(t *testing.T) {
	tests := []struct {
		name string
		kb   int64
		want string
	}{
		{"zero", 0, "0"},
		{"one kilobyte", 1, "1.0K"},
		{"single digit kilobytes", 9, "9.0K"},
		{"ten kilobytes", 10, "10K"},
		{"just above a whole number", 11, "11K"},
		{"largest kilobyte value", 1023, "1023K"},
		{"megabyte boundary", 1024, "1.0M"},
		{"fraction rounds up to tenth", 1025, "1.1M"},
		{"ten megabytes exact", 10240, "10M"},
		{"fraction rounds up to whole", 10250, "11M"},
		{"gigabyte boundary", 1 << 20, "1.0G"},
		{"partial gigabytes", 3*(1<<20) + 1, "3.1G"},
		{"terabyte boundary", 1 << 30, "1.0T"},
		{"large terabytes", 15 * (1 << 30), "15T"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := human(tt.kb); got != tt.want {
				t.Errorf("human(%d) = %q, want %q", tt.kb, got, tt.want)
			}
		})
	}
}

func TestPrintRaw(t *testing.T) {
	tests := []struct {
		name  string
		size  int64
		label string
		want  string
	}{
		{"zero padded to field width", 0, "x", "0       x\n"},
		{"small size", 42, "dir/sub", "42      dir/sub\n"},
		{"size wider than the field", 123456789, "y", "123456789y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			w := &walker{stdout: &out}

			if got := w.print(tt.size, tt.label); got != tt.size {
				t.Errorf("print() returned %d, want %d", got, tt.size)
			}

			if out.String() != tt.want {
				t.Errorf("print(%d, %q) wrote %q, want %q", tt.size, tt.label, out.String(), tt.want)
			}
		})
	}
}

func TestPrintHumanReadable(t *testing.T) {
	var out bytes.Buffer

	w := &walker{opts: Options{HumanReadable: true}, stdout: &out}

	w.print(1024, "m")

	if got, want := out.String(), "1.0M    m\n"; got != want {
		t.Errorf("print(1024, \"m\") wrote %q, want %q", got, want)
	}

	out.Reset()
	w.print(0, "empty")

	if got, want := out.String(), "0       empty\n"; got != want {
		t.Errorf("print(0, \"empty\") wrote %q, want %q", got, want)
	}
}
