package movement

import (
	"errors"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in       string
		expected RangeSpec
	}{
		{in: "full", expected: FullScreen()},
		{in: "FULL", expected: FullScreen()},
		{in: "100,200", expected: FixedPoint(100, 200)},
		{in: " 5 , 7 ", expected: FixedPoint(5, 7)},
		{in: "-10,0", expected: FixedPoint(-10, 0)},
		{in: "display:1", expected: OnDisplay(1)},
		{in: "Display: 0", expected: OnDisplay(0)},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.in)
		if err != nil {
			t.Fatalf("ParseRange(%q) returned error: %v", tt.in, err)
		}
		if got != tt.expected {
			t.Fatalf("ParseRange(%q) = %+v, expected %+v", tt.in, got, tt.expected)
		}
	}
}

func TestParseRangeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "  ", "half", "10", "a,b", "1,2,3", "display:", "display:-1", "display:x"} {
		if _, err := ParseRange(in); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("ParseRange(%q): expected ErrInvalidRange, got %v", in, err)
		}
	}
}

func TestRangeString(t *testing.T) {
	if s := FixedPoint(3, 4).String(); s != "3,4" {
		t.Fatalf("unexpected %q", s)
	}
	if s := OnDisplay(2).String(); s != "display:2" {
		t.Fatalf("unexpected %q", s)
	}
	if s := FullScreen().String(); s != "full" {
		t.Fatalf("unexpected %q", s)
	}
}

func TestParseMotion(t *testing.T) {
	for _, in := range []string{"human", "linear", "jittery", " Human "} {
		if _, err := ParseMotion(in); err != nil {
			t.Fatalf("ParseMotion(%q) returned error: %v", in, err)
		}
	}
	if _, err := ParseMotion("wobbly"); !errors.Is(err, ErrInvalidMotion) {
		t.Fatalf("expected ErrInvalidMotion, got %v", err)
	}
}

func TestOnlyHumanInterpolates(t *testing.T) {
	if !MotionHuman.Interpolates() {
		t.Fatal("human should interpolate")
	}
	if MotionLinear.Interpolates() || MotionJittery.Interpolates() {
		t.Fatal("linear and jittery should jump")
	}
}
