package genhw

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/genhw/internal/cmdbuf"
	"github.com/gogpu/genhw/internal/hwenc"
	"github.com/gogpu/genhw/shader"
)

// WorkaroundFlags are hardware workaround stalls the command submission
// layer must apply around this pipeline's state commands.
type WorkaroundFlags uint32

const (
	WaGen6PreDepthStallWrite WorkaroundFlags = 1 << iota
	WaGen6PreCommandScoreboardStall
	WaGen7PreVSDepthStallWrite
	WaGen7PostCommandCSStall
	WaGen7PostCommandDepthStall
)

// Pipeline is a compiled pipeline state object: the pre-encoded state
// commands plus the fixed-function state retained for draw-time
// programming. A Pipeline is immutable once built and safe for concurrent
// reads.
type Pipeline struct {
	gpu GPUInfo

	topology           Topology
	primType           uint32
	primitiveRestart   bool
	primitiveRestartIx uint32
	disableVertexReuse bool

	// Provoking vertex selection per primitive class.
	provokingVertexTri    uint32
	provokingVertexTriFan uint32
	provokingVertexLine   uint32

	depthClipEnable   bool
	rasterizerDiscard bool
	pointSize         float32

	depthFormat gputypes.TextureFormat
	blend       ColorBlendState
	tess        TessState

	vb []VertexBinding

	activeStages StageFlags
	stageInfos   [StageFragment + 1]shader.StageInfo
	waFlags      WorkaroundFlags

	cmds cmdbuf.Buffer
}

// NewPipeline compiles a graphics pipeline for the given hardware from a
// sequence of configuration fragments.
//
// The build is strictly sequential: fragment assembly, shader stage
// resolution, vertex input validation, command encoding, fixed-function
// state capture, and finally stage/topology validation. The first failing
// step aborts the build; no partially built pipeline is ever returned.
// Builds on independent goroutines are safe, each owning its own
// descriptor and command buffer.
func NewPipeline(gpu GPUInfo, fragments ...CreateInfo) (*Pipeline, error) {
	if !gpu.supported() {
		return nil, fmt.Errorf("%w: unsupported hardware generation %v", ErrUnavailable, gpu.Gen)
	}

	info, err := assembleCreateInfo(fragments)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{gpu: gpu}
	if err := p.resolveShaders(&info); err != nil {
		return nil, err
	}
	if err := p.validateVertexInput(&info); err != nil {
		return nil, err
	}
	if err := p.encode(&info); err != nil {
		return nil, err
	}
	if err := p.captureFixedState(&info); err != nil {
		return nil, err
	}
	if err := validateStages(p.activeStages, p.topology); err != nil {
		return nil, err
	}

	Logger().Debug("built graphics pipeline",
		"gen", gpu.Gen, "gt", gpu.GT,
		"stages", p.activeStages, "cmdWords", p.cmds.Len())
	return p, nil
}

// NewComputePipeline compiles a compute pipeline. Not implemented on the
// modeled generations.
func NewComputePipeline(gpu GPUInfo, fragments ...CreateInfo) (*Pipeline, error) {
	return nil, ErrUnavailable
}

// resolveShaders collects each supplied stage's resolved interface and
// accumulates the active stage set.
func (p *Pipeline) resolveShaders(info *pipelineInfo) error {
	for i, s := range info.stageSlots() {
		if s.slot == nil {
			continue
		}
		if s.slot.Shader == nil {
			return fmt.Errorf("%w: %v stage has no shader module", ErrBadPipelineData, ShaderStage(i))
		}
		p.stageInfos[i] = s.slot.Shader.Info()
		p.activeStages |= s.flag
	}
	return nil
}

// validateVertexInput bounds-checks the vertex layout and retains the
// binding table. Attributes share the binding table's size limit.
func (p *Pipeline) validateVertexInput(info *pipelineInfo) error {
	if len(info.vi.Bindings) > MaxVertexBindings || len(info.vi.Attributes) > MaxVertexBindings {
		return fmt.Errorf("%w: vertex input declares %d bindings and %d attributes, limit %d",
			ErrBadPipelineData, len(info.vi.Bindings), len(info.vi.Attributes), MaxVertexBindings)
	}
	if len(info.vi.Bindings) > 0 {
		p.vb = make([]VertexBinding, len(info.vi.Bindings))
		copy(p.vb, info.vi.Bindings)
	}
	return nil
}

// encode runs the generation-specific encoders into the command buffer and
// records the matching workaround flags.
func (p *Pipeline) encode(info *pipelineInfo) error {
	attrs := make([]hwenc.VertexAttr, len(info.vi.Attributes))
	for i, a := range info.vi.Attributes {
		attrs[i] = hwenc.VertexAttr{Binding: a.Binding, Format: a.Format, Offset: a.OffsetBytes}
	}
	if err := hwenc.VertexElements(&p.cmds, attrs, p.stageInfos[StageVertex].Uses); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPipelineData, err)
	}

	vs := hwenc.StageIO{In: p.stageInfos[StageVertex].Inputs, Out: p.stageInfos[StageVertex].Outputs}
	gsOut := p.stageInfos[StageGeometry].Outputs
	gsActive := p.activeStages.Has(StageFlagGeometry)

	if p.gpu.Gen >= Gen7 {
		hwenc.URBGen7(&p.cmds, p.gpu.Gen >= Gen75, p.gpu.GT, vs, gsOut, gsActive)
		hwenc.PushConstantsGen7(&p.cmds)
		// 3DSTATE_GS depends on draw-time state and is emitted by the
		// command submission layer.
		hwenc.HullStageGen7(&p.cmds)
		hwenc.TessEngineGen7(&p.cmds)
		hwenc.DomainStageGen7(&p.cmds)

		p.waFlags = WaGen6PreDepthStallWrite |
			WaGen6PreCommandScoreboardStall |
			WaGen7PreVSDepthStallWrite |
			WaGen7PostCommandCSStall |
			WaGen7PostCommandDepthStall
	} else {
		hwenc.URBGen6(&p.cmds, p.gpu.GT, vs, gsOut, gsActive)

		p.waFlags = WaGen6PreDepthStallWrite |
			WaGen6PreCommandScoreboardStall
	}

	Logger().Debug("encoded pipeline state",
		"gen", p.gpu.Gen, "vsIn", vs.In, "vsOut", vs.Out,
		"gsActive", gsActive, "cmdWords", p.cmds.Len())
	return nil
}

// captureFixedState copies input assembly, rasterizer, depth, blend and
// tessellation state from the descriptor into the pipeline.
func (p *Pipeline) captureFixedState(info *pipelineInfo) error {
	code, err := primCode(info.ia.Topology, info.tess.PatchControlPoints)
	if err != nil {
		return err
	}
	p.topology = info.ia.Topology
	p.primType = code
	p.disableVertexReuse = info.ia.DisableVertexReuse

	if info.ia.ProvokingVertex == ProvokingVertexFirst {
		p.provokingVertexTri = 0
		p.provokingVertexTriFan = 1
		p.provokingVertexLine = 0
	} else {
		p.provokingVertexTri = 2
		p.provokingVertexTriFan = 2
		p.provokingVertexLine = 1
	}

	p.primitiveRestart = info.ia.PrimitiveRestartEnable
	if info.ia.PrimitiveRestartEnable {
		p.primitiveRestartIx = info.ia.PrimitiveRestartIndex
	}

	p.depthClipEnable = info.rs.DepthClipEnable
	p.rasterizerDiscard = info.rs.RasterizerDiscardEnable
	p.pointSize = info.rs.PointSize

	p.depthFormat = info.db.Format
	p.blend = info.cb
	p.tess = info.tess
	return nil
}

// Commands returns the pre-encoded state command words. The slice aliases
// the pipeline's storage and must not be modified.
func (p *Pipeline) Commands() []uint32 { return p.cmds.Words() }

// ActiveStages returns the active shader stage set.
func (p *Pipeline) ActiveStages() StageFlags { return p.activeStages }

// Topology returns the pipeline's primitive topology.
func (p *Pipeline) Topology() Topology { return p.topology }

// PrimitiveCode returns the 3DPRIMITIVE topology code, including the
// control point count for patch lists.
func (p *Pipeline) PrimitiveCode() uint32 { return p.primType }

// WorkaroundFlags returns the hardware workarounds the submission layer
// must honor.
func (p *Pipeline) WorkaroundFlags() WorkaroundFlags { return p.waFlags }

// DepthFormat returns the declared depth attachment format.
func (p *Pipeline) DepthFormat() gputypes.TextureFormat { return p.depthFormat }

// Blend returns the retained color blend state.
func (p *Pipeline) Blend() ColorBlendState { return p.blend }

// Tess returns the retained tessellation state.
func (p *Pipeline) Tess() TessState { return p.tess }

// Raster returns the retained rasterizer state.
func (p *Pipeline) Raster() RasterState {
	return RasterState{
		DepthClipEnable:         p.depthClipEnable,
		RasterizerDiscardEnable: p.rasterizerDiscard,
		PointSize:               p.pointSize,
	}
}

// PrimitiveRestart returns whether primitive restart is enabled and the
// restart index.
func (p *Pipeline) PrimitiveRestart() (bool, uint32) {
	return p.primitiveRestart, p.primitiveRestartIx
}

// DisableVertexReuse reports whether the post-transform vertex cache is
// disabled.
func (p *Pipeline) DisableVertexReuse() bool { return p.disableVertexReuse }

// ProvokingVertex returns the provoking vertex selection for triangles,
// triangle fans and lines.
func (p *Pipeline) ProvokingVertex() (tri, triFan, line uint32) {
	return p.provokingVertexTri, p.provokingVertexTriFan, p.provokingVertexLine
}

// VertexBindings returns the retained vertex buffer bindings.
func (p *Pipeline) VertexBindings() []VertexBinding { return p.vb }

// StageInfo returns the resolved interface of an active graphics stage.
func (p *Pipeline) StageInfo(stage ShaderStage) shader.StageInfo {
	if stage > StageFragment {
		return shader.StageInfo{}
	}
	return p.stageInfos[stage]
}
