package movement

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMotion = errors.New("invalid motion type")

type MotionType string

const (
	MotionHuman   MotionType = "human"
	MotionLinear  MotionType = "linear"
	MotionJittery MotionType = "jittery"
)

// MotionTypes lists the accepted values in the order the CLI documents them.
var MotionTypes = []MotionType{MotionHuman, MotionLinear, MotionJittery}

func ParseMotion(s string) (MotionType, error) {
	m := MotionType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range MotionTypes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q (choose from human, linear, jittery)", ErrInvalidMotion, s)
}

// Interpolates reports whether moves of this type glide over the session speed.
// Only human does; linear and jittery both jump.
func (m MotionType) Interpolates() bool {
	return m == MotionHuman
}
