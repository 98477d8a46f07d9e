package genhw

import "fmt"

// Gen identifies a GEN hardware generation as a fixed-point major.minor
// value: Gen7.5 is 75. Ordering comparisons between Gen values follow
// hardware chronology.
type Gen int

// Modeled hardware generations.
const (
	Gen6  Gen = 60 // Sandy Bridge class
	Gen7  Gen = 70 // Ivy Bridge class
	Gen75 Gen = 75 // Haswell class
)

// String implements fmt.Stringer.
func (g Gen) String() string {
	switch g {
	case Gen6:
		return "Gen6"
	case Gen7:
		return "Gen7"
	case Gen75:
		return "Gen7.5"
	default:
		return fmt.Sprintf("Gen(%d)", int(g))
	}
}

// GPUInfo describes the hardware a pipeline is compiled for. It is
// supplied by device initialization, never modified afterwards, and safe
// for unlimited concurrent reads.
type GPUInfo struct {
	// Gen is the hardware generation.
	Gen Gen

	// GT is the graphics tier (1, 2 or 3); it selects the URB capacity
	// tables.
	GT int
}

// supported reports whether the generation is one of the two modeled ones.
func (g GPUInfo) supported() bool {
	switch g.Gen {
	case Gen6, Gen7, Gen75:
		return true
	default:
		return false
	}
}
