package cartridge

import "testing"

func newTestCartridge(prg16kBanks, prgRAM8kBanks, chr8kBanks int, hasCHRRAM bool) *Cartridge {
	c := &Cartridge{
		prgROM:        make([]uint8, prg16kBanks*0x4000),
		prgRAM:        make([]uint8, prgRAM8kBanks*0x2000),
		chr:           make([]uint8, chr8kBanks*0x2000),
		prg16kBanks:   prg16kBanks,
		prgRAM8kBanks: prgRAM8kBanks,
		chr8kBanks:    chr8kBanks,
		hasCHRRAM:     hasCHRRAM,
	}
	// Every byte in a bank records its own 8 KiB (PRG) or 1 KiB (CHR) block
	// index, the smallest unit any mapper ever switches, so a test can tell
	// banks apart by content instead of relying on raw byte offsets (which
	// all start on a 256-byte boundary and would otherwise read 0).
	for i := range c.prgROM {
		c.prgROM[i] = uint8((i / 0x2000) % 256)
	}
	for i := range c.chr {
		c.chr[i] = uint8((i / 0x400) % 256)
	}
	return c
}

func TestSetPRG32KBankMirrorsSingleBank(t *testing.T) {
	c := newTestCartridge(1, 1, 1, false)
	c.SetPRG32KBank(0)
	if got := c.readPRGWindows(0x8000, 0); got != 0x00 {
		t.Fatalf("got %02X, want 00", got)
	}
	if got := c.readPRGWindows(0xC000, 0); got != 0x00 {
		t.Fatalf("mirrored window at 0xC000: got %02X, want 00 (mirrors 0x8000)", got)
	}
}

func TestSetPRG32KBankSelectsBank(t *testing.T) {
	c := newTestCartridge(4, 1, 1, false) // 2 32K banks, 8 8K blocks
	c.SetPRG32KBank(1)
	if got := c.readPRGWindows(0x8000, 0); got != 4 {
		t.Fatalf("got %d, want 4 (bank 1's first 8K block)", got)
	}
	if got := c.readPRGWindows(0xA000, 0); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestSetPRG16KBankNegativeIndexesLastBank(t *testing.T) {
	c := newTestCartridge(4, 1, 1, false)
	c.SetPRG16KBank(1, -1, true)
	// Last 16 KiB bank (16K bank 3) starts at 8K block 6.
	if got := c.readPRGWindows(0xC000, 0); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestSetPRG16KBankPRGRAMSelection(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	c.prgRAM[0] = 0xAA
	c.SetPRG16KBank(0, 0, false)
	if got := c.readPRGWindows(0x8000, 0); got != 0xAA {
		t.Fatalf("got %02X, want AA (PRG RAM byte)", got)
	}
	c.writePRGWindows(0x8000, 0x55)
	if c.prgRAM[0] != 0x55 {
		t.Fatal("write to RAM-backed window did not reach PRG RAM")
	}
}

func TestSetPRG8KBankIndependentWindows(t *testing.T) {
	c := newTestCartridge(4, 1, 1, false) // 8 8K banks
	c.SetPRG8KBank(0, 0, true)
	c.SetPRG8KBank(3, -1, true)
	if got := c.readPRGWindows(0x8000, 0); got != 0x00 {
		t.Fatalf("window 0: got %02X, want 00", got)
	}
	if got := c.readPRGWindows(0xE000, 0); got != 7 {
		t.Fatalf("window 3: got %d, want 7", got)
	}
}

func TestPRGRAM6000AlwaysRAM(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	c.SetPRG6000Bank(0)
	c.writePRGWindows(0x6000, 0x42)
	if got := c.readPRGWindows(0x6000, 0); got != 0x42 {
		t.Fatalf("got %02X, want 42", got)
	}
}

func TestReadPRGWindowsBelow6000IsOpenBus(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	if got := c.readPRGWindows(0x4020, 0xAB); got != 0xAB {
		t.Fatalf("got %02X, want AB (open bus) for address below cartridge space", got)
	}
}

func TestWritePRGWindowsIgnoredWhenROM(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	c.SetPRG16KBank(0, 0, true)
	before := c.readPRGWindows(0x8000, 0)
	c.writePRGWindows(0x8000, before+1)
	if got := c.readPRGWindows(0x8000, 0); got != before {
		t.Fatalf("write to ROM-backed window mutated ROM: got %02X, want %02X", got, before)
	}
}

func TestSetCHR8KBank(t *testing.T) {
	c := newTestCartridge(2, 1, 2, false)
	c.SetCHR8KBank(1)
	// Bank 1 of an 8 KiB CHR bank starts at 1K block 8.
	if got := c.readCHRWindow(0x0000); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}

func TestSetCHR1KBankGranularity(t *testing.T) {
	c := newTestCartridge(2, 1, 2, false)
	c.SetCHR1KBank(0, 3)
	if got := c.readCHRWindow(0x0000); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestCHRRAMWriteBlockedWhenROM(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	c.SetCHR8KBank(0)
	before := c.readCHRWindow(0x0000)
	c.writeCHRWindow(0x0000, before+1)
	if got := c.readCHRWindow(0x0000); got != before {
		t.Fatal("CHR ROM write was not blocked")
	}
}

func TestCHRRAMWriteAllowedWhenRAM(t *testing.T) {
	c := newTestCartridge(2, 1, 1, true)
	c.SetCHR8KBank(0)
	c.writeCHRWindow(0x0000, 0x99)
	if got := c.readCHRWindow(0x0000); got != 0x99 {
		t.Fatalf("got %02X, want 99", got)
	}
}

func TestNegIndexClampsBelowZero(t *testing.T) {
	if got := negIndex(2, -5); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if got := negIndex(4, -1); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}
