// Package format translates abstract vertex attribute formats into GEN
// hardware surface format codes and describes their channel layout.
package format

import "github.com/gogpu/gputypes"

// Info describes how the vertex fetch hardware sees an attribute format.
type Info struct {
	// Surface is the SURFACE_FORMAT code programmed into
	// VERTEX_ELEMENT_STATE.
	Surface uint32

	// Channels is the number of source components, 1 to 4. Components past
	// this count are filled with format-appropriate defaults.
	Channels int

	// Integer reports whether the format is an integer numeric format,
	// which selects the integer rather than floating-point encoding for
	// the constant-one default component.
	Integer bool
}

// GEN SURFACE_FORMAT codes for the formats usable as vertex attributes.
const (
	sfR32G32B32A32Float = 0x000
	sfR32G32B32A32Sint  = 0x001
	sfR32G32B32A32Uint  = 0x002
	sfR32G32B32Float    = 0x040
	sfR32G32B32Sint     = 0x041
	sfR32G32B32Uint     = 0x042
	sfR16G16B16A16Unorm = 0x080
	sfR16G16B16A16Snorm = 0x081
	sfR16G16B16A16Sint  = 0x082
	sfR16G16B16A16Uint  = 0x083
	sfR16G16B16A16Float = 0x084
	sfR32G32Float       = 0x085
	sfR32G32Sint        = 0x086
	sfR32G32Uint        = 0x087
	sfR8G8B8A8Unorm     = 0x0c7
	sfR8G8B8A8Snorm     = 0x0c9
	sfR8G8B8A8Sint      = 0x0ca
	sfR8G8B8A8Uint      = 0x0cb
	sfR16G16Unorm       = 0x0cc
	sfR16G16Snorm       = 0x0cd
	sfR16G16Sint        = 0x0ce
	sfR16G16Uint        = 0x0cf
	sfR16G16Float       = 0x0d0
	sfR32Sint           = 0x0d6
	sfR32Uint           = 0x0d7
	sfR32Float          = 0x0d8
	sfR8G8Unorm         = 0x106
	sfR8G8Snorm         = 0x107
	sfR8G8Sint          = 0x108
	sfR8G8Uint          = 0x109
)

var vertexFormats = map[gputypes.VertexFormat]Info{
	gputypes.VertexFormatUint8x2:  {Surface: sfR8G8Uint, Channels: 2, Integer: true},
	gputypes.VertexFormatUint8x4:  {Surface: sfR8G8B8A8Uint, Channels: 4, Integer: true},
	gputypes.VertexFormatSint8x2:  {Surface: sfR8G8Sint, Channels: 2, Integer: true},
	gputypes.VertexFormatSint8x4:  {Surface: sfR8G8B8A8Sint, Channels: 4, Integer: true},
	gputypes.VertexFormatUnorm8x2: {Surface: sfR8G8Unorm, Channels: 2},
	gputypes.VertexFormatUnorm8x4: {Surface: sfR8G8B8A8Unorm, Channels: 4},
	gputypes.VertexFormatSnorm8x2: {Surface: sfR8G8Snorm, Channels: 2},
	gputypes.VertexFormatSnorm8x4: {Surface: sfR8G8B8A8Snorm, Channels: 4},

	gputypes.VertexFormatUint16x2:  {Surface: sfR16G16Uint, Channels: 2, Integer: true},
	gputypes.VertexFormatUint16x4:  {Surface: sfR16G16B16A16Uint, Channels: 4, Integer: true},
	gputypes.VertexFormatSint16x2:  {Surface: sfR16G16Sint, Channels: 2, Integer: true},
	gputypes.VertexFormatSint16x4:  {Surface: sfR16G16B16A16Sint, Channels: 4, Integer: true},
	gputypes.VertexFormatUnorm16x2: {Surface: sfR16G16Unorm, Channels: 2},
	gputypes.VertexFormatUnorm16x4: {Surface: sfR16G16B16A16Unorm, Channels: 4},
	gputypes.VertexFormatSnorm16x2: {Surface: sfR16G16Snorm, Channels: 2},
	gputypes.VertexFormatSnorm16x4: {Surface: sfR16G16B16A16Snorm, Channels: 4},
	gputypes.VertexFormatFloat16x2: {Surface: sfR16G16Float, Channels: 2},
	gputypes.VertexFormatFloat16x4: {Surface: sfR16G16B16A16Float, Channels: 4},

	gputypes.VertexFormatFloat32:   {Surface: sfR32Float, Channels: 1},
	gputypes.VertexFormatFloat32x2: {Surface: sfR32G32Float, Channels: 2},
	gputypes.VertexFormatFloat32x3: {Surface: sfR32G32B32Float, Channels: 3},
	gputypes.VertexFormatFloat32x4: {Surface: sfR32G32B32A32Float, Channels: 4},
	gputypes.VertexFormatUint32:    {Surface: sfR32Uint, Channels: 1, Integer: true},
	gputypes.VertexFormatUint32x2:  {Surface: sfR32G32Uint, Channels: 2, Integer: true},
	gputypes.VertexFormatUint32x3:  {Surface: sfR32G32B32Uint, Channels: 3, Integer: true},
	gputypes.VertexFormatUint32x4:  {Surface: sfR32G32B32A32Uint, Channels: 4, Integer: true},
	gputypes.VertexFormatSint32:    {Surface: sfR32Sint, Channels: 1, Integer: true},
	gputypes.VertexFormatSint32x2:  {Surface: sfR32G32Sint, Channels: 2, Integer: true},
	gputypes.VertexFormatSint32x3:  {Surface: sfR32G32B32Sint, Channels: 3, Integer: true},
	gputypes.VertexFormatSint32x4:  {Surface: sfR32G32B32A32Sint, Channels: 4, Integer: true},
}

// Translate resolves an abstract vertex format to its hardware description.
// The second return value reports whether the format is usable as a vertex
// attribute on the modeled generations.
func Translate(f gputypes.VertexFormat) (Info, bool) {
	info, ok := vertexFormats[f]
	return info, ok
}
