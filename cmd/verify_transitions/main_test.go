package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/decker502/buttontransitions/pkg/transition"
)

func TestPrintTable(t *testing.T) {
	swap, err := transition.NewImageSwap("A", "B", "C", "D")
	if err != nil {
		t.Fatalf("NewImageSwap() error: %v", err)
	}

	var buf bytes.Buffer
	printTable(&buf, "swap", swap)
	out := buf.String()

	if !strings.Contains(out, "=== swap (ImageSwap) ===") {
		t.Errorf("missing header in output:\n%s", out)
	}
	if got := strings.Count(out, "image(D)"); got != 3 {
		t.Errorf("disabled rows = %d, want 3\n%s", got, out)
	}
	if !strings.Contains(out, "image(C)") {
		t.Errorf("pressed row missing:\n%s", out)
	}
}

func TestPrintSequence(t *testing.T) {
	swap, _ := transition.NewImageSwap("A", "B", "C", "D")

	var buf bytes.Buffer
	printSequence(&buf, swap)
	out := buf.String()

	if !strings.Contains(out, "image(A) → image(B) → image(C) → image(B) → image(A)") {
		t.Errorf("unexpected sequence output:\n%s", out)
	}
	if !strings.Contains(out, "image(A) → image(B) → image(D) → image(D) → image(D)") {
		t.Errorf("unexpected disabled sequence output:\n%s", out)
	}
}

func TestStyleKind(t *testing.T) {
	if got := styleKind(transition.DefaultColorTint()); got != "ColorTint" {
		t.Errorf("styleKind(tint) = %q", got)
	}
	if got := styleKind(transition.ImageSwap{}); got != "ImageSwap" {
		t.Errorf("styleKind(swap) = %q", got)
	}
}
