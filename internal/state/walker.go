// Package state implements the save-state / rewind engine: a uniform
// visitor that walks every emulator subsystem in a fixed order and, for
// each primitive field, accumulates size or copies bytes, plus the
// fixed-capacity rewind ring that rides on top of it.
package state

// Mode selects what a Walker pass does with each field it visits: measuring
// a state's size, saving it to a buffer, or loading it back. One
// mode-discriminated Walker replaces three near-identical routines per
// subsystem while guaranteeing all three see fields in the same order.
type Mode uint8

const (
	Measure Mode = iota
	Save
	Load
)

// Walker accumulates size (Measure) or copies bytes to/from buf (Save/Load)
// as subsystems hand it their fields one at a time, in a fixed order.
type Walker struct {
	mode Mode
	buf  []byte
	n    int
}

// NewWalker starts a walk in the given mode. buf is ignored in Measure mode.
func NewWalker(mode Mode, buf []byte) *Walker {
	return &Walker{mode: mode, buf: buf}
}

// Mode reports which pass this walk is performing.
func (w *Walker) Mode() Mode { return w.mode }

// Len reports the number of bytes visited so far; after a full walk this is
// the state's measured or consumed size.
func (w *Walker) Len() int { return w.n }

// Uint8 visits a single byte field.
func (w *Walker) Uint8(v *uint8) {
	switch w.mode {
	case Measure:
	case Save:
		w.buf[w.n] = *v
	case Load:
		*v = w.buf[w.n]
	}
	w.n++
}

// Bool visits a boolean field, stored as a single byte.
func (w *Walker) Bool(v *bool) {
	var b uint8
	if w.mode != Load && *v {
		b = 1
	}
	w.Uint8(&b)
	if w.mode == Load {
		*v = b != 0
	}
}

// Uint16 visits a 16-bit field, little-endian.
func (w *Walker) Uint16(v *uint16) {
	lo := uint8(*v)
	hi := uint8(*v >> 8)
	w.Uint8(&lo)
	w.Uint8(&hi)
	if w.mode == Load {
		*v = uint16(lo) | uint16(hi)<<8
	}
}

// Uint32 visits a 32-bit field, little-endian.
func (w *Walker) Uint32(v *uint32) {
	var b [4]uint8
	if w.mode != Load {
		b[0], b[1], b[2], b[3] = uint8(*v), uint8(*v>>8), uint8(*v>>16), uint8(*v>>24)
	}
	for i := range b {
		w.Uint8(&b[i])
	}
	if w.mode == Load {
		*v = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
}

// Uint64 visits a 64-bit field, little-endian.
func (w *Walker) Uint64(v *uint64) {
	var b [8]uint8
	if w.mode != Load {
		for i := 0; i < 8; i++ {
			b[i] = uint8(*v >> (8 * uint(i)))
		}
	}
	for i := range b {
		w.Uint8(&b[i])
	}
	if w.mode == Load {
		var out uint64
		for i := 0; i < 8; i++ {
			out |= uint64(b[i]) << (8 * uint(i))
		}
		*v = out
	}
}

// Bytes visits a fixed-length byte slice in place (RAM, VRAM, OAM, ...).
func (w *Walker) Bytes(v []uint8) {
	for i := range v {
		w.Uint8(&v[i])
	}
}
