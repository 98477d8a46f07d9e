package genhw

import (
	"fmt"
	"strings"
)

// ShaderStage enumerates pipeline shader stages.
type ShaderStage uint32

const (
	StageVertex ShaderStage = iota
	StageTessControl
	StageTessEval
	StageGeometry
	StageFragment
	StageCompute
)

// String implements fmt.Stringer.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "Vertex"
	case StageTessControl:
		return "TessControl"
	case StageTessEval:
		return "TessEval"
	case StageGeometry:
		return "Geometry"
	case StageFragment:
		return "Fragment"
	case StageCompute:
		return "Compute"
	default:
		return fmt.Sprintf("ShaderStage(%d)", uint32(s))
	}
}

// StageFlags is a bit-set of active shader stages.
type StageFlags uint32

const (
	StageFlagVertex StageFlags = 1 << iota
	StageFlagTessControl
	StageFlagTessEval
	StageFlagGeometry
	StageFlagFragment
	StageFlagCompute
)

// stageFlagGraphics covers every graphics stage; the compute stage is
// mutually exclusive with all of them.
const stageFlagGraphics = StageFlagVertex | StageFlagTessControl |
	StageFlagTessEval | StageFlagGeometry | StageFlagFragment

// Has reports whether every flag in q is set.
func (f StageFlags) Has(q StageFlags) bool { return f&q == q }

// String implements fmt.Stringer.
func (f StageFlags) String() string {
	if f == 0 {
		return "None"
	}
	var parts []string
	for _, e := range []struct {
		flag StageFlags
		name string
	}{
		{StageFlagVertex, "Vertex"},
		{StageFlagTessControl, "TessControl"},
		{StageFlagTessEval, "TessEval"},
		{StageFlagGeometry, "Geometry"},
		{StageFlagFragment, "Fragment"},
		{StageFlagCompute, "Compute"},
	} {
		if f.Has(e.flag) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}
