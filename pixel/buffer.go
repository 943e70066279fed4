package pixel

// Buffer is the flat channel store behind a strip. A strip and every range
// derived from it address the same Buffer, so a write through one view is
// visible through all of them. All methods take pixel units; the byte
// arithmetic is internal.
type Buffer struct {
	data   []byte
	stride int
}

// NewBuffer allocates a zeroed buffer for capacity pixels.
func NewBuffer(capacity, stride int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		data:   make([]byte, capacity*stride),
		stride: stride,
	}
}

// Stride returns the bytes per pixel.
func (b *Buffer) Stride() int {
	return b.stride
}

// Capacity returns the number of pixels the buffer holds.
func (b *Buffer) Capacity() int {
	return len(b.data) / b.stride
}

// Bytes returns the raw channel bytes. The slice is the live store, not a
// copy.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Offset returns the byte offset of a pixel.
func (b *Buffer) Offset(pixel int) int {
	return pixel * b.stride
}

// FillPixels sets every channel byte of count pixels starting at start.
func (b *Buffer) FillPixels(v byte, start, count int) {
	if count <= 0 {
		return
	}
	end := (start + count) * b.stride
	for i := start * b.stride; i < end; i++ {
		b.data[i] = v
	}
}

// ShiftPixels moves pixel data within [start, start+count) by offset pixels.
// Positive offsets move data toward higher indices. The shift is not
// circular: data pushed past either edge is lost and the vacated bytes are
// zeroed.
func (b *Buffer) ShiftPixels(offset, start, count int) {
	if offset == 0 || count <= 0 {
		return
	}
	if abs(offset) >= count {
		b.FillPixels(0, start, count)
		return
	}
	region := b.data[start*b.stride : (start+count)*b.stride]
	ob := offset * b.stride
	if ob > 0 {
		copy(region[ob:], region[:len(region)-ob])
		for i := 0; i < ob; i++ {
			region[i] = 0
		}
	} else {
		ob = -ob
		copy(region[:len(region)-ob], region[ob:])
		for i := len(region) - ob; i < len(region); i++ {
			region[i] = 0
		}
	}
}

// RotatePixels is ShiftPixels with wrap-around: pixels pushed past one edge
// re-enter at the other, nothing is lost.
func (b *Buffer) RotatePixels(offset, start, count int) {
	if count <= 0 {
		return
	}
	o := offset % count
	if o < 0 {
		o += count
	}
	if o == 0 {
		return
	}
	region := b.data[start*b.stride : (start+count)*b.stride]
	ob := o * b.stride
	tmp := make([]byte, ob)
	copy(tmp, region[len(region)-ob:])
	copy(region[ob:], region[:len(region)-ob])
	copy(region, tmp)
}
