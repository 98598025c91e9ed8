package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintModes(t *testing.T) {
	var out bytes.Buffer
	printModes(&out)

	got := out.String()
	for _, want := range []string{"memory_custom", "Memory (Custom Grid)", "6x6", "18"} {
		if !strings.Contains(got, want) {
			t.Errorf("list output missing %q:\n%s", want, got)
		}
	}
}
