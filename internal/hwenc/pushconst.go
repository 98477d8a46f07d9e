package hwenc

import (
	"fmt"

	"github.com/gogpu/genhw/internal/cmdbuf"
)

// PushConstantsGen7 partitions the 16 KiB push constant buffer space and
// emits the five 3DSTATE_PUSH_CONSTANT_ALLOC_* commands (VS, PS, HS, DS,
// GS).
//
// The vertex stage receives a fixed 8 KiB region at offset 0; the pixel
// stage receives the remainder of the window; the hull, domain and
// geometry stages receive nothing. All inputs are compile-time constants,
// so the range clamps below can only fire if the constants themselves are
// changed out of sync with the hardware contract; they panic rather than
// emit an invalid partitioning.
//
// From the Ivy Bridge PRM, volume 2 part 1, page 115:
//
//	"The sum of the Constant Buffer Offset and the Constant Buffer Size
//	 may not exceed the maximum value of the Constant Buffer Size."
//
// The valid range of the buffer end is therefore [0, 16] KiB, and of the
// offset and size [0, 15] KiB.
func PushConstantsGen7(b *cmdbuf.Buffer) {
	var (
		offset uint32 = 0
		size   uint32 = 8192
	)

	end := (offset + size) / 1024
	if end > 16 {
		panic(fmt.Sprintf("hwenc: internal error: push constant buffer end %d KiB exceeds 16 KiB", end))
	}

	offset = (offset + 1023) / 1024
	if offset > 15 {
		panic(fmt.Sprintf("hwenc: internal error: push constant buffer offset %d KiB exceeds 15 KiB", offset))
	}
	if offset > end {
		if size != 0 {
			panic("hwenc: internal error: push constant buffer offset past end with nonzero size")
		}
		offset = end
	}

	size = end - offset
	if size > 15 {
		panic(fmt.Sprintf("hwenc: internal error: push constant buffer size %d KiB exceeds 15 KiB", size))
	}

	const cmdLen = 2
	dw := b.Reserve(cmdLen * 5)
	dw[0] = cmd3DStatePushConstantAllocVS | (cmdLen - 2)
	dw[1] = offset<<pcbAllocOffsetShift | size<<pcbAllocSizeShift

	// The PS allocation reuses size as both its offset and its size. The
	// offset happens to equal the VS region's end only because the VS
	// region starts at zero; the arithmetic is kept literal because the
	// programmed values are a long-standing hardware contract.
	dw[2] = cmd3DStatePushConstantAllocPS | (cmdLen - 2)
	dw[3] = size<<pcbAllocOffsetShift | size<<pcbAllocSizeShift

	dw[4] = cmd3DStatePushConstantAllocHS | (cmdLen - 2)
	dw[5] = 0<<pcbAllocOffsetShift | 0<<pcbAllocSizeShift

	dw[6] = cmd3DStatePushConstantAllocDS | (cmdLen - 2)
	dw[7] = 0<<pcbAllocOffsetShift | 0<<pcbAllocSizeShift

	dw[8] = cmd3DStatePushConstantAllocGS | (cmdLen - 2)
	dw[9] = 0<<pcbAllocOffsetShift | 0<<pcbAllocSizeShift
}
