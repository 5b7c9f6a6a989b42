package cartridge

import "testing"

func TestMapper2UxROMSwitchesLowFixesHigh(t *testing.T) {
	c := newTestCartridge(4, 1, 1, false)
	m := &Mapper2{}
	m.Init(c)

	before := c.readPRGWindows(0xC000, 0)
	m.CPUWrite(c, 0x8000, 2)
	// A 16K bank covers two 8K blocks; bank N's first block is 2N.
	if got := c.readPRGWindows(0x8000, 0); got != 2*2 {
		t.Fatalf("got %d, want %d", got, 2*2)
	}
	if got := c.readPRGWindows(0xC000, 0); got != before {
		t.Fatalf("fixed last bank changed: got %02X, want %02X", got, before)
	}
}

func TestMapper3CNROMSwitchesCHR(t *testing.T) {
	c := newTestCartridge(2, 1, 4, false)
	m := &Mapper3{}
	m.Init(c)
	m.CPUWrite(c, 0x8000, 0x07) // masked to 2 bits -> bank 3
	// An 8K CHR bank covers eight 1K blocks; bank N's first block is 8N.
	if got := c.readCHRWindow(0x0000); got != 8*3 {
		t.Fatalf("got %d, want %d", got, 8*3)
	}
}

func TestMapper7AxROMBankAndMirroring(t *testing.T) {
	c := newTestCartridge(8, 1, 1, false)
	m := &Mapper7{}
	m.Init(c)
	m.CPUWrite(c, 0x8000, 0x13) // bank 3, bit4 set
	// A 32K bank covers four 8K blocks; bank N's first block is 4N.
	if got := c.readPRGWindows(0x8000, 0); got != 4*3 {
		t.Fatalf("got %d, want %d", got, 4*3)
	}
	if c.GetMirrorMode() != MirrorSingleScreen1 {
		t.Fatalf("got %v, want single-screen page 1", c.GetMirrorMode())
	}
	m.CPUWrite(c, 0x8000, 0x00)
	if c.GetMirrorMode() != MirrorSingleScreen0 {
		t.Fatalf("got %v, want single-screen page 0", c.GetMirrorMode())
	}
}

func TestMapper11ColorDreamsSplitsByte(t *testing.T) {
	c := newTestCartridge(8, 1, 8, false)
	m := &Mapper11{}
	m.Init(c)
	m.CPUWrite(c, 0x8000, 0x23) // PRG bank 3, CHR bank 2
	if got := c.readPRGWindows(0x8000, 0); got != 4*3 {
		t.Fatalf("PRG: got %d, want %d", got, 4*3)
	}
	if got := c.readCHRWindow(0x0000); got != 8*2 {
		t.Fatalf("CHR: got %d, want %d", got, 8*2)
	}
}

func TestMapper71IgnoresLowWritesExceptMirroring(t *testing.T) {
	c := newTestCartridge(4, 1, 1, false)
	m := &Mapper71{}
	m.Init(c)
	before := c.readPRGWindows(0x8000, 0)
	m.CPUWrite(c, 0x8123, 2) // below 0xC000: only mirroring, not a bank select
	if got := c.readPRGWindows(0x8000, 0); got != before {
		t.Fatalf("low write changed PRG bank: got %02X, want %02X", got, before)
	}
	if c.GetMirrorMode() != MirrorSingleScreen0 {
		t.Fatalf("got %v, want single-screen page 0", c.GetMirrorMode())
	}

	m.CPUWrite(c, 0xC000, 2)
	if got := c.readPRGWindows(0x8000, 0); got != 2*2 {
		t.Fatalf("got %d, want %d", got, 2*2)
	}
}

func TestMapper232OuterInnerBankSelect(t *testing.T) {
	c := newTestCartridge(16, 1, 1, false) // 16 16K banks
	m := &Mapper232{}
	m.Init(c)

	m.CPUWrite(c, 0x8000, 0x02<<3) // outer block 2
	m.CPUWrite(c, 0xC000, 0x01)    // inner bank 1 within the block
	// 16K bank (2*4+1)=9 starts at 8K block 2*9=18.
	if got := c.readPRGWindows(0x8000, 0); got != 2*9 {
		t.Fatalf("got %d, want %d", got, 2*9)
	}
	// 0xC000 always tracks the block's last (inner=3) bank: (2*4+3)=11.
	if got := c.readPRGWindows(0xC000, 0); got != 2*11 {
		t.Fatalf("0xC000 should track the block's last bank: got %d, want %d", got, 2*11)
	}
}
