// Package genhw compiles abstract graphics pipeline descriptions into
// pre-encoded command words for Intel GEN graphics hardware.
//
// # Overview
//
// genhw is the pipeline-state compiler layer of a GEN graphics driver.
// Given a set of typed configuration fragments (input assembly, rasterizer,
// blend, tessellation, vertex input, shader stages), it produces a Pipeline
// holding a bounded sequence of 32-bit state commands that the GPU command
// streamer consumes verbatim, plus the fixed-function state retained for
// draw-time programming.
//
// # Quick Start
//
//	gpu := genhw.GPUInfo{Gen: genhw.Gen7, GT: 2}
//
//	vs, _ := shader.CompileWGSL(vertexWGSL)
//	fs, _ := shader.CompileWGSL(fragmentWGSL)
//
//	p, err := genhw.NewPipeline(gpu,
//		genhw.GraphicsPipelineState{},
//		genhw.IAState{Topology: genhw.TopologyTriangleList},
//		genhw.ShaderStageState{Stage: genhw.StageVertex, Shader: vs},
//		genhw.ShaderStageState{Stage: genhw.StageFragment, Shader: fs},
//		genhw.VertexInputState{},
//	)
//	if err != nil {
//		// handle error
//	}
//	words := p.Commands()
//
// # Architecture
//
// The library is organized into:
//   - Public API: CreateInfo fragments, Pipeline, Fence, GPUInfo
//   - format: abstract vertex format to hardware surface format translation
//   - shader: SPIR-V reflection and WGSL compilation (via gogpu/naga)
//   - Internal: cmdbuf (bounded command word sink), hwenc (generation
//     specific encoders: URB, push constants, vertex elements)
//
// # Hardware Generations
//
// Two generations are modeled: Gen6 (single 3DSTATE_URB command, 1024-bit
// URB rows) and Gen7/Gen7.5 (per-stage URB and push-constant partitioning,
// 512-bit rows). Capacity and clamp tables are per generation and GT tier;
// violating them causes silent GPU misbehavior, so the encoders treat any
// table violation as a fatal internal defect rather than a recoverable
// error.
//
// # Errors
//
// Malformed caller input is reported as an error wrapping
// [ErrBadPipelineData]. Internal invariant violations (command buffer
// overflow, URB entry count below the hardware minimum) panic: they mean
// the encoders and capacity tables are out of sync, and must never be
// silently clamped into a working-looking but hardware-invalid pipeline.
package genhw
