package state

import "testing"

type sample struct {
	a uint8
	b uint16
	c uint32
	d uint64
	e bool
	f [3]uint8
}

func (s *sample) TransferState(w *Walker) {
	w.Uint8(&s.a)
	w.Uint16(&s.b)
	w.Uint32(&s.c)
	w.Uint64(&s.d)
	w.Bool(&s.e)
	w.Bytes(s.f[:])
}

func TestWalkerMeasureMatchesSaveSize(t *testing.T) {
	s := &sample{a: 1, b: 2, c: 3, d: 4, e: true, f: [3]uint8{5, 6, 7}}

	mw := NewWalker(Measure, nil)
	s.TransferState(mw)

	want := 1 + 2 + 4 + 8 + 1 + 3
	if mw.Len() != want {
		t.Fatalf("measured %d bytes, want %d", mw.Len(), want)
	}

	buf := make([]byte, mw.Len())
	sw := NewWalker(Save, buf)
	s.TransferState(sw)
	if sw.Len() != want {
		t.Fatalf("save consumed %d bytes, want %d", sw.Len(), want)
	}
}

func TestWalkerSaveLoadRoundTrip(t *testing.T) {
	orig := &sample{a: 0xAB, b: 0xBEEF, c: 0xDEADBEEF, d: 0x0102030405060708, e: true, f: [3]uint8{9, 8, 7}}

	mw := NewWalker(Measure, nil)
	orig.TransferState(mw)
	buf := make([]byte, mw.Len())

	sw := NewWalker(Save, buf)
	orig.TransferState(sw)

	restored := &sample{}
	lw := NewWalker(Load, buf)
	restored.TransferState(lw)

	if *restored != *orig {
		t.Fatalf("round trip mismatch: got %+v, want %+v", restored, orig)
	}
}

func TestWalkerUint16LittleEndian(t *testing.T) {
	v := uint16(0xABCD)
	buf := make([]byte, 2)
	w := NewWalker(Save, buf)
	w.Uint16(&v)
	if buf[0] != 0xCD || buf[1] != 0xAB {
		t.Fatalf("expected little-endian bytes [CD AB], got %02X %02X", buf[0], buf[1])
	}
}
