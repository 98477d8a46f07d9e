package genhw

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/genhw/shader"
)

// MaxVertexBindings bounds both the vertex binding and vertex attribute
// counts; the pipeline retains bindings in a table of this size.
const MaxVertexBindings = 32

// MaxColorAttachments bounds the color blend attachment table.
const MaxColorAttachments = 8

// CreateInfo is a typed pipeline configuration fragment. A pipeline build
// consumes a sequence of fragments and normalizes them into one
// descriptor; when the same fragment type appears twice the later one
// wins.
//
// The fragment set is closed: IAState, RasterState, DepthBufferState,
// ColorBlendState, TessState, VertexInputState, ShaderStageState,
// GraphicsPipelineState and ComputePipelineState.
type CreateInfo interface {
	isCreateInfo()
}

// ProvokingVertex selects which vertex of a primitive carries flat-shaded
// attribute values.
type ProvokingVertex uint32

const (
	ProvokingVertexFirst ProvokingVertex = iota
	ProvokingVertexLast
)

// IAState configures input assembly.
type IAState struct {
	Topology Topology

	// DisableVertexReuse turns off the post-transform vertex cache.
	DisableVertexReuse bool

	ProvokingVertex ProvokingVertex

	PrimitiveRestartEnable bool
	PrimitiveRestartIndex  uint32
}

// RasterState configures the rasterizer.
type RasterState struct {
	DepthClipEnable         bool
	RasterizerDiscardEnable bool
	PointSize               float32
}

// DepthBufferState declares the depth attachment format the pipeline will
// render to.
type DepthBufferState struct {
	Format gputypes.TextureFormat
}

// ColorAttachmentBlend is the blend configuration of one color attachment.
type ColorAttachmentBlend struct {
	Format      gputypes.TextureFormat
	BlendEnable bool
	SrcColor    gputypes.BlendFactor
	DstColor    gputypes.BlendFactor
	ColorOp     gputypes.BlendOperation
	SrcAlpha    gputypes.BlendFactor
	DstAlpha    gputypes.BlendFactor
	AlphaOp     gputypes.BlendOperation
	WriteMask   gputypes.ColorWriteMask
}

// ColorBlendState configures color blending for every attachment.
type ColorBlendState struct {
	AlphaToCoverageEnable bool
	Attachments           [MaxColorAttachments]ColorAttachmentBlend
}

// TessState configures tessellation.
type TessState struct {
	// PatchControlPoints is the control point count of patch-list
	// primitives; the legal range is [1, 32].
	PatchControlPoints uint32

	OptimalTessFactor float32
}

// VertexBinding describes one vertex buffer binding.
type VertexBinding struct {
	StrideBytes uint32
	StepMode    gputypes.VertexStepMode
}

// VertexAttribute describes one vertex attribute.
type VertexAttribute struct {
	// Binding is the vertex buffer binding index the attribute is fetched
	// from.
	Binding uint32

	Format gputypes.VertexFormat

	// OffsetBytes is the attribute's byte offset within one vertex; the
	// hardware limit is 2047.
	OffsetBytes uint32
}

// VertexInputState declares the vertex buffer layout.
type VertexInputState struct {
	Bindings   []VertexBinding
	Attributes []VertexAttribute
}

// ShaderStageState attaches one resolved shader module to a stage.
type ShaderStageState struct {
	Stage  ShaderStage
	Shader *shader.Module
}

// GraphicsPipelineState is the graphics pipeline header fragment.
type GraphicsPipelineState struct {
	Flags uint32
}

// ComputePipelineState is the compute pipeline header fragment.
type ComputePipelineState struct {
	Flags  uint32
	Shader *shader.Module
}

func (IAState) isCreateInfo()               {}
func (RasterState) isCreateInfo()           {}
func (DepthBufferState) isCreateInfo()      {}
func (ColorBlendState) isCreateInfo()       {}
func (TessState) isCreateInfo()             {}
func (VertexInputState) isCreateInfo()      {}
func (ShaderStageState) isCreateInfo()      {}
func (GraphicsPipelineState) isCreateInfo() {}
func (ComputePipelineState) isCreateInfo()  {}
