package hwenc

import (
	"fmt"

	"github.com/gogpu/genhw/internal/cmdbuf"
)

// urbGen7Caps are the per-revision, per-tier URB entry count ceilings.
type urbGen7Caps struct {
	maxVSEntries int
	maxGSEntries int
}

func gen7Caps(gen75 bool, gt int) urbGen7Caps {
	if gen75 {
		if gt >= 2 {
			return urbGen7Caps{maxVSEntries: 1664, maxGSEntries: 640}
		}
		return urbGen7Caps{maxVSEntries: 640, maxGSEntries: 256}
	}
	if gt == 2 {
		return urbGen7Caps{maxVSEntries: 704, maxGSEntries: 320}
	}
	return urbGen7Caps{maxVSEntries: 512, maxGSEntries: 192}
}

// URBGen7 partitions the URB between the vertex and geometry stages and
// emits the four per-stage 3DSTATE_URB_* commands (VS, GS, HS, DS).
//
// The URB holds 512 KiB on GT3, 256 KiB on GT2, 128 KiB otherwise; the low
// 32 KiB (GT3) or 16 KiB is reserved for push constant buffers and
// subtracted before partitioning. Entry allocation sizes are in 512-bit
// rows; an allocation of exactly 5 rows is remapped to 6 to avoid a
// banking performance cliff. Entry counts are masked to multiples of 8 and
// capped by per-revision tables. A vertex entry count below 32 means the
// inputs were not pre-validated and panics.
func URBGen7(b *cmdbuf.Buffer, gen75 bool, gt int, vs StageIO, gsOut int, gsActive bool) {
	var urbSize int
	switch {
	case gt == 3:
		urbSize = 512 * 1024
	case gt == 2:
		urbSize = 256 * 1024
	default:
		urbSize = 128 * 1024
	}

	// Space reserved for push constant buffers.
	urbOffset := 16 * 1024
	if gt == 3 {
		urbOffset = 32 * 1024
	}

	vsEntrySize := vs.entrySize()
	gsEntrySize := gsOut * 16

	var vsSize, gsSize int
	if gsActive {
		vsSize = (urbSize - urbOffset) / 2
		gsSize = vsSize
	} else {
		vsSize = urbSize - urbOffset
		gsSize = 0
	}

	// In 512-bit rows.
	vsAlloc := ceilDiv(vsEntrySize, 64)
	gsAlloc := ceilDiv(gsEntrySize, 64)
	if vsAlloc == 0 {
		vsAlloc = 1
	}
	if gsAlloc == 0 {
		gsAlloc = 1
	}

	// Avoid performance decrease due to banking.
	if vsAlloc == 5 {
		vsAlloc = 6
	}

	// In multiples of 8.
	vsEntries := alignDown(vsSize/64/vsAlloc, 8)
	gsEntries := alignDown(gsSize/64/gsAlloc, 8)
	if vsEntries < 32 {
		panic(fmt.Sprintf("hwenc: internal error: gen7 vs urb entry count %d below hardware minimum 32", vsEntries))
	}

	caps := gen7Caps(gen75, gt)
	vsEntries = clampMax(vsEntries, caps.maxVSEntries)
	gsEntries = clampMax(gsEntries, caps.maxGSEntries)

	const cmdLen = 2
	dw := b.Reserve(cmdLen * 4)
	dw[0] = cmd3DStateURBVS | (cmdLen - 2)
	dw[1] = uint32(urbOffset/8192)<<urbGen7OffsetShift |
		uint32(vsAlloc-1)<<urbGen7EntrySizeShift |
		uint32(vsEntries)

	// The GS, HS and DS partitions all start past the VS partition.
	if gsSize != 0 {
		urbOffset += vsSize
	}
	dw[2] = cmd3DStateURBGS | (cmdLen - 2)
	dw[3] = uint32(urbOffset/8192)<<urbGen7OffsetShift |
		uint32(gsAlloc-1)<<urbGen7EntrySizeShift |
		uint32(gsEntries)

	dw[4] = cmd3DStateURBHS | (cmdLen - 2)
	dw[5] = uint32(urbOffset/8192) << urbGen7OffsetShift

	dw[6] = cmd3DStateURBDS | (cmdLen - 2)
	dw[7] = uint32(urbOffset/8192) << urbGen7OffsetShift
}
