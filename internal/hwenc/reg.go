// Package hwenc encodes GEN fixed-function pipeline state into hardware
// command words: URB partitioning, push-constant partitioning, vertex
// element records, and the tessellation stage stubs.
//
// All capacity and clamp tables in this package are exact hardware
// contracts. Values that fall outside a table's legal range after clamping
// indicate a defect in the caller's pre-validation and panic rather than
// producing a command stream the GPU would silently mis-execute.
package hwenc

// GFXPIPE 3D command headers. Bits [31:29] = 3 (GFXPIPE), [28:27] = 3 (3D),
// [26:24] = opcode, [23:16] = sub-opcode; bits [7:0] carry length-2.
const (
	cmd3DStateURB            = 0x78050000 // Gen6
	cmd3DStateVertexElements = 0x78090000

	cmd3DStateURBVS = 0x78300000 // Gen7
	cmd3DStateURBHS = 0x78310000
	cmd3DStateURBDS = 0x78320000
	cmd3DStateURBGS = 0x78330000

	cmd3DStateHS = 0x781b0000
	cmd3DStateTE = 0x781c0000
	cmd3DStateDS = 0x781d0000

	cmd3DStatePushConstantAllocVS = 0x79120000
	cmd3DStatePushConstantAllocHS = 0x79130000
	cmd3DStatePushConstantAllocDS = 0x79140000
	cmd3DStatePushConstantAllocGS = 0x79150000
	cmd3DStatePushConstantAllocPS = 0x79160000
)

// Gen6 3DSTATE_URB field positions.
const (
	urbGen6VSEntrySizeShift  = 16
	urbGen6VSEntryCountShift = 0
	urbGen6GSEntryCountShift = 8
	urbGen6GSEntrySizeShift  = 0
)

// Gen7 3DSTATE_URB_* field positions, shared by all four stage commands.
const (
	urbGen7OffsetShift    = 25 // in 8 KiB units
	urbGen7EntrySizeShift = 16
)

// Gen7 3DSTATE_PUSH_CONSTANT_ALLOC_* field positions.
const (
	pcbAllocOffsetShift = 16 // in KiB
	pcbAllocSizeShift   = 0  // in KiB
)

// VERTEX_ELEMENT_STATE field positions.
const (
	veDW0VBIndexShift = 26
	veDW0Valid        = 1 << 25
	veDW0FormatShift  = 16
	veDW0OffsetMax    = 2047

	veDW1Comp0Shift = 28
	veDW1Comp1Shift = 24
	veDW1Comp2Shift = 20
	veDW1Comp3Shift = 16
)

// Vertex fetch component store controls.
const (
	vfCompNoStore   = 0
	vfCompStoreSrc  = 1
	vfCompStore0    = 2
	vfCompStore1FP  = 3
	vfCompStore1Int = 4
	vfCompStoreVID  = 5
	vfCompStoreIID  = 6
)

// 3DPRIM topology codes programmed into 3DPRIMITIVE.
const (
	Prim3DPointList     = 0x01
	Prim3DLineList      = 0x02
	Prim3DLineStrip     = 0x03
	Prim3DTriList       = 0x04
	Prim3DTriStrip      = 0x05
	Prim3DTriFan        = 0x06
	Prim3DQuadList      = 0x07
	Prim3DQuadStrip     = 0x08
	Prim3DLineListAdj   = 0x09
	Prim3DLineStripAdj  = 0x0a
	Prim3DTriListAdj    = 0x0b
	Prim3DTriStripAdj   = 0x0c
	Prim3DRectList      = 0x0f
	Prim3DPatchList1    = 0x20 // PATCHLIST_n = PATCHLIST_1 + n - 1
	MaxPatchControlPoints = 32
)
