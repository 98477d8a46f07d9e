package hwenc

import (
	"fmt"

	"github.com/gogpu/genhw/internal/cmdbuf"
)

// StageIO carries a shader stage's resolved input and output slot counts.
// Each slot is one 4-component float vector, 16 bytes of URB space.
type StageIO struct {
	In  int
	Out int
}

// entrySize returns the stage's URB entry size in bytes: the larger of the
// input and output slot counts times 16 (4 components of 4 bytes).
func (s StageIO) entrySize() int {
	return max(s.In, s.Out) * 16
}

// URBGen6 partitions the URB between the vertex and geometry stages and
// emits one 3DSTATE_URB command.
//
// The URB holds 64 KiB on GT2, 32 KiB otherwise. With a geometry stage
// active each stage receives half, otherwise the vertex stage receives
// everything. Entry allocation sizes are in 1024-bit rows with a legal
// range of [1, 5]; entry counts are masked to multiples of 4 and capped at
// 256. A vertex entry count below 24 means the inputs were not
// pre-validated and panics.
func URBGen6(b *cmdbuf.Buffer, gt int, vs StageIO, gsOut int, gsActive bool) {
	urbSize := 32 * 1024
	if gt == 2 {
		urbSize = 64 * 1024
	}

	vsEntrySize := vs.entrySize()
	gsEntrySize := gsOut * 16

	var vsSize, gsSize int
	if gsActive {
		vsSize = urbSize / 2
		gsSize = vsSize
	} else {
		vsSize = urbSize
		gsSize = 0
	}

	// In 1024-bit rows; valid range is [1, 5].
	vsAlloc := ceilDiv(vsEntrySize, 128)
	gsAlloc := ceilDiv(gsEntrySize, 128)
	if vsAlloc == 0 {
		vsAlloc = 1
	}
	if gsAlloc == 0 {
		gsAlloc = 1
	}
	if vsAlloc > 5 || gsAlloc > 5 {
		panic(fmt.Sprintf("hwenc: internal error: gen6 urb entry allocation out of range (vs %d, gs %d rows)", vsAlloc, gsAlloc))
	}

	// Valid range is [24, 256] for vs, [0, 256] for gs, multiples of 4.
	vsEntries := clampMax(alignDown(vsSize/128/vsAlloc, 4), 256)
	gsEntries := clampMax(alignDown(gsSize/128/gsAlloc, 4), 256)
	if vsEntries < 24 {
		panic(fmt.Sprintf("hwenc: internal error: gen6 vs urb entry count %d below hardware minimum 24", vsEntries))
	}

	const cmdLen = 3
	dw := b.Reserve(cmdLen)
	dw[0] = cmd3DStateURB | (cmdLen - 2)
	dw[1] = uint32(vsAlloc-1)<<urbGen6VSEntrySizeShift |
		uint32(vsEntries)<<urbGen6VSEntryCountShift
	dw[2] = uint32(gsEntries)<<urbGen6GSEntryCountShift |
		uint32(gsAlloc-1)<<urbGen6GSEntrySizeShift
}
