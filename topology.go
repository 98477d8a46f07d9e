package genhw

import (
	"fmt"

	"github.com/gogpu/genhw/internal/hwenc"
)

// Topology is a primitive topology.
type Topology uint32

const (
	TopologyPointList Topology = iota
	TopologyLineList
	TopologyLineStrip
	TopologyTriangleList
	TopologyTriangleStrip
	// TopologyRectList is a special topology for post-processing and copy
	// operations: rectangles cannot be clipped, must be axis aligned and
	// cannot have a depth gradient.
	TopologyRectList
	TopologyQuadList
	TopologyQuadStrip
	TopologyLineListAdj
	TopologyLineStripAdj
	TopologyTriangleListAdj
	TopologyTriangleStripAdj
	// TopologyPatchList is valid only for tessellation pipelines; the
	// control point count comes from TessState.
	TopologyPatchList
)

// String implements fmt.Stringer.
func (t Topology) String() string {
	switch t {
	case TopologyPointList:
		return "PointList"
	case TopologyLineList:
		return "LineList"
	case TopologyLineStrip:
		return "LineStrip"
	case TopologyTriangleList:
		return "TriangleList"
	case TopologyTriangleStrip:
		return "TriangleStrip"
	case TopologyRectList:
		return "RectList"
	case TopologyQuadList:
		return "QuadList"
	case TopologyQuadStrip:
		return "QuadStrip"
	case TopologyLineListAdj:
		return "LineListAdj"
	case TopologyLineStripAdj:
		return "LineStripAdj"
	case TopologyTriangleListAdj:
		return "TriangleListAdj"
	case TopologyTriangleStripAdj:
		return "TriangleStripAdj"
	case TopologyPatchList:
		return "PatchList"
	default:
		return fmt.Sprintf("Topology(%d)", uint32(t))
	}
}

var primCodes = map[Topology]uint32{
	TopologyPointList:        hwenc.Prim3DPointList,
	TopologyLineList:         hwenc.Prim3DLineList,
	TopologyLineStrip:        hwenc.Prim3DLineStrip,
	TopologyTriangleList:     hwenc.Prim3DTriList,
	TopologyTriangleStrip:    hwenc.Prim3DTriStrip,
	TopologyRectList:         hwenc.Prim3DRectList,
	TopologyQuadList:         hwenc.Prim3DQuadList,
	TopologyQuadStrip:        hwenc.Prim3DQuadStrip,
	TopologyLineListAdj:      hwenc.Prim3DLineListAdj,
	TopologyLineStripAdj:     hwenc.Prim3DLineStripAdj,
	TopologyTriangleListAdj:  hwenc.Prim3DTriListAdj,
	TopologyTriangleStripAdj: hwenc.Prim3DTriStripAdj,
}

// primCode resolves the 3DPRIMITIVE topology code. Patch lists carry their
// control point count; the legal range is [1, 32].
func primCode(t Topology, patchControlPoints uint32) (uint32, error) {
	if t == TopologyPatchList {
		if patchControlPoints == 0 || patchControlPoints > hwenc.MaxPatchControlPoints {
			return 0, fmt.Errorf("%w: patch control point count %d outside [1, %d]",
				ErrBadPipelineData, patchControlPoints, hwenc.MaxPatchControlPoints)
		}
		return hwenc.Prim3DPatchList1 + patchControlPoints - 1, nil
	}
	code, ok := primCodes[t]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognized topology %v", ErrBadPipelineData, t)
	}
	return code, nil
}
