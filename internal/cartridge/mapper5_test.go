package cartridge

import "testing"

func TestMapper5PRGMode3IndependentBanks(t *testing.T) {
	c := newTestCartridge(16, 1, 8, false) // 32 8K PRG banks
	m := &Mapper5{}
	m.Init(c)

	m.CPUWrite(c, 0x5100, 3) // PRG mode 3: four independent 8K windows
	m.CPUWrite(c, 0x5113, 0x01)
	m.CPUWrite(c, 0x5114, 0x82) // high bit set: ROM; low bits mask to bank 2
	if got := c.readPRGWindows(0x8000, 0); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestMapper5CHRMode3EightWindows(t *testing.T) {
	c := newTestCartridge(2, 1, 8, false)
	m := &Mapper5{}
	m.Init(c)

	m.CPUWrite(c, 0x5101, 3) // CHR mode 3: eight 1K windows
	m.CPUWrite(c, 0x5120, 9)
	if got := c.readCHRWindow(0x0000); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestMapper5MultiplierComputesProduct(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	m := &Mapper5{}
	m.Init(c)
	m.CPUWrite(c, 0x5205, 6)
	m.CPUWrite(c, 0x5206, 7)
	if got := m.CPURead(c, 0x5205, 0); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if got := m.CPURead(c, 0x5206, 0); got != 0 {
		t.Fatalf("got %d, want 0 (high byte of 42)", got)
	}
}

func TestMapper5IRQStatusReadClearsPending(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	m := &Mapper5{}
	m.Init(c)
	m.irqPending = true
	m.inFrame = true

	status := m.CPURead(c, 0x5204, 0)
	if status&0x80 == 0 || status&0x40 == 0 {
		t.Fatalf("got status %02X, want both pending and in-frame bits set", status)
	}
	if m.irqPending {
		t.Fatal("reading $5204 must clear the pending flag")
	}
}

func TestMapper5NametableSourceSelection(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	m := &Mapper5{}
	m.Init(c)

	// Quadrant 0 -> on-board page 0, quadrant 1 -> expansion RAM, quadrant 2
	// -> fill mode, quadrant 3 -> on-board page 1.
	m.CPUWrite(c, 0x5105, 0|(2<<2)|(3<<4)|(1<<6))
	m.CPUWrite(c, 0x5106, 0xAB) // fill tile

	m.ciram[0][0] = 0x11
	m.NTWrite(c, 0x2400, 0x22) // quadrant 1: expansion RAM
	if got := m.NTRead(c, 0x0000); got != 0x11 {
		t.Fatalf("quadrant 0: got %02X, want 11", got)
	}
	if got := m.NTRead(c, 0x2400); got != 0x22 {
		t.Fatalf("quadrant 1 (ExRAM): got %02X, want 22", got)
	}
	if got := m.NTRead(c, 0x2800); got != 0xAB {
		t.Fatalf("quadrant 2 (fill mode): got %02X, want AB", got)
	}
}

func TestMapper5PRGRAMBankSelect(t *testing.T) {
	c := newTestCartridge(2, 4, 1, false) // 4 8K PRG-RAM banks
	m := &Mapper5{}
	m.Init(c)

	m.CPUWrite(c, 0x5113, 0)    // power-on $5113 is 0xFF; select bank 0
	m.CPUWrite(c, 0x6000, 0x11) // bank 0
	m.CPUWrite(c, 0x5113, 2)    // switch $6000 window to PRG-RAM bank 2
	m.CPUWrite(c, 0x6000, 0x22)
	m.CPUWrite(c, 0x5113, 0) // switch back to bank 0
	if got := c.readPRGWindows(0x6000, 0); got != 0x11 {
		t.Fatalf("bank 0: got %02X, want 11", got)
	}
	m.CPUWrite(c, 0x5113, 2)
	if got := c.readPRGWindows(0x6000, 0); got != 0x22 {
		t.Fatalf("bank 2: got %02X, want 22", got)
	}
}

func TestMapper5HasNametableHooks(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	m := &Mapper5{}
	m.Init(c)
	c.mapper = m
	if !c.HasNametableHooks() {
		t.Fatal("MMC5 must report nametable hooks")
	}
}
