package genhw

import "fmt"

// pipelineInfo is the normalized pipeline descriptor: one slot per known
// fragment type, populated by one walk over the caller's fragments and
// discarded when the build completes.
type pipelineInfo struct {
	graphics GraphicsPipelineState
	compute  ComputePipelineState
	ia       IAState
	rs       RasterState
	db       DepthBufferState
	cb       ColorBlendState
	tess     TessState
	vi       VertexInputState

	// Per-stage shader slots; nil means the stage was not supplied.
	vs  *ShaderStageState
	tcs *ShaderStageState
	tes *ShaderStageState
	gs  *ShaderStageState
	fs  *ShaderStageState
}

// assembleCreateInfo normalizes the fragments into a zero-initialized
// descriptor. Fragment dispatch is a total match over the closed CreateInfo
// set; the shader-stage fragment dispatches a second time on its stage
// enumerator. Anything unrecognized fails the whole assembly and no
// partial descriptor is used.
func assembleCreateInfo(fragments []CreateInfo) (pipelineInfo, error) {
	var info pipelineInfo

	for _, frag := range fragments {
		switch f := frag.(type) {
		case GraphicsPipelineState:
			info.graphics = f
		case ComputePipelineState:
			info.compute = f
		case IAState:
			info.ia = f
		case RasterState:
			info.rs = f
		case DepthBufferState:
			info.db = f
		case ColorBlendState:
			info.cb = f
		case TessState:
			info.tess = f
		case VertexInputState:
			info.vi = f
		case ShaderStageState:
			switch f.Stage {
			case StageVertex:
				info.vs = &f
			case StageTessControl:
				info.tcs = &f
			case StageTessEval:
				info.tes = &f
			case StageGeometry:
				info.gs = &f
			case StageFragment:
				info.fs = &f
			default:
				return pipelineInfo{}, fmt.Errorf("%w: unrecognized shader stage %v", ErrBadPipelineData, f.Stage)
			}
		default:
			return pipelineInfo{}, fmt.Errorf("%w: unrecognized fragment type %T", ErrBadPipelineData, frag)
		}
	}

	return info, nil
}

// stageSlots returns the shader slots in pipeline stage order alongside
// their stage flags.
func (info *pipelineInfo) stageSlots() []struct {
	slot *ShaderStageState
	flag StageFlags
} {
	return []struct {
		slot *ShaderStageState
		flag StageFlags
	}{
		{info.vs, StageFlagVertex},
		{info.tcs, StageFlagTessControl},
		{info.tes, StageFlagTessEval},
		{info.gs, StageFlagGeometry},
		{info.fs, StageFlagFragment},
	}
}
