package cartridge

import "testing"

func TestMapper4BankSelectAndRotation(t *testing.T) {
	c := newTestCartridge(8, 1, 8, false) // 16 8K PRG banks, 64 1K CHR banks
	m := &Mapper4{}
	m.Init(c)

	// Select index 6 (R6, the switchable 8 KiB PRG bank at 0x8000).
	m.CPUWrite(c, 0x8000, 6)
	m.CPUWrite(c, 0x8001, 5)
	if got := c.readPRGWindows(0x8000, 0); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}

	// Flipping bit 6 of $8000 swaps which 8 KiB half is fixed vs switchable.
	m.CPUWrite(c, 0x8000, 6|0x40)
	m.CPUWrite(c, 0x8001, 5)
	if got := c.readPRGWindows(0xC000, 0); got != 5 {
		t.Fatalf("after PRG inversion, got %d at 0xC000, want 5", got)
	}
}

func TestMapper4CHR2KAnd1KSplit(t *testing.T) {
	c := newTestCartridge(8, 1, 8, false)
	m := &Mapper4{}
	m.Init(c)

	m.CPUWrite(c, 0x8000, 2) // select R2, a 1 KiB CHR register
	m.CPUWrite(c, 0x8001, 9)
	if got := c.readCHRWindow(0x1000); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestMapper4MirroringSelect(t *testing.T) {
	c := newTestCartridge(8, 1, 8, false)
	m := &Mapper4{}
	m.Init(c)
	m.CPUWrite(c, 0xA000, 0)
	if c.GetMirrorMode() != MirrorVertical {
		t.Fatalf("got %v, want vertical", c.GetMirrorMode())
	}
	m.CPUWrite(c, 0xA000, 1)
	if c.GetMirrorMode() != MirrorHorizontal {
		t.Fatalf("got %v, want horizontal", c.GetMirrorMode())
	}
}

// fireA12 raises and lowers bit 12 of the PPU address bus, simulating one
// sprite-fetch rise that would clock the MMC3 scanline counter.
func fireA12(m *Mapper4, c *Cartridge, cycle uint64) {
	m.PPUTick(c, 0x0000, cycle) // low, A12 clear
	m.PPUTick(c, 0x1000, cycle+1)
}

func TestMapper4IRQFiresAtZero(t *testing.T) {
	c := newTestCartridge(8, 1, 8, false)
	m := &Mapper4{}
	m.Init(c)

	asserted := false
	c.SetIRQCallback(func(v bool) { asserted = v })

	m.CPUWrite(c, 0xC000, 2) // reload value 2
	m.CPUWrite(c, 0xC001, 0) // force reload on next clock
	m.CPUWrite(c, 0xE001, 0) // enable IRQ

	// ppu_cycle starts far from zero so the first rise clears the minimum
	// spacing check the same way it would well into real gameplay.
	fireA12(m, c, 10000)
	if m.irqCounter != 2 {
		t.Fatalf("first clock should reload to 2, got %d", m.irqCounter)
	}
	fireA12(m, c, 10020)
	if m.irqCounter != 1 {
		t.Fatalf("got counter %d, want 1", m.irqCounter)
	}
	fireA12(m, c, 10040)
	if m.irqCounter != 0 || !asserted {
		t.Fatalf("expected counter 0 and IRQ asserted, got counter=%d asserted=%v", m.irqCounter, asserted)
	}
}

func TestMapper4IRQDebouncedByMinA12Diff(t *testing.T) {
	c := newTestCartridge(8, 1, 8, false)
	m := &Mapper4{}
	m.Init(c)
	m.CPUWrite(c, 0xC000, 1)
	m.CPUWrite(c, 0xC001, 0)
	m.CPUWrite(c, 0xE001, 0)

	fireA12(m, c, 10000) // far enough from the zero-valued initial stamp to clock: reload to 1
	if m.irqCounter != 1 {
		t.Fatalf("expected reload to 1 on the first real rise, got %d", m.irqCounter)
	}
	fireA12(m, c, 10005) // too soon after the previous rise, should not clock
	if m.irqCounter != 1 {
		t.Fatalf("a too-soon A12 rise clocked the counter: got %d, want 1", m.irqCounter)
	}
}

func TestMapper4IRQAckClearsLine(t *testing.T) {
	c := newTestCartridge(8, 1, 8, false)
	m := &Mapper4{}
	m.Init(c)
	asserted := true
	c.SetIRQCallback(func(v bool) { asserted = v })
	m.CPUWrite(c, 0xE000, 0) // disable + acknowledge
	if asserted {
		t.Fatal("writing $E000 should clear the IRQ line")
	}
}
