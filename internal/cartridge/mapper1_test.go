package cartridge

import (
	"testing"

	"gones/internal/state"
)

// mmc1Write feeds one 5-bit shift-register write, simulating a single CPU
// instruction by bumping the cartridge's stamped cycle count each time.
func mmc1Write(c *Cartridge, m *Mapper1, addr uint16, value uint8) {
	c.cpuCycle += 10
	m.CPUWrite(c, addr, value)
}

// mmc1WriteRegister performs the five consecutive single-bit writes needed
// to latch a full register value, in order from bit 0 to bit 4.
func mmc1WriteRegister(c *Cartridge, m *Mapper1, addr uint16, value uint8) {
	for i := 0; i < 5; i++ {
		mmc1Write(c, m, addr, (value>>uint(i))&1)
	}
}

func TestMapper1ResetsOnBit7(t *testing.T) {
	c := newTestCartridge(4, 1, 2, false)
	m := &Mapper1{}
	m.Init(c)

	mmc1Write(c, m, 0x8000, 1)
	c.cpuCycle += 10
	m.CPUWrite(c, 0x8000, 0x80) // reset write
	if m.shift != 0x10 {
		t.Fatalf("shift register not reset: got %02X", m.shift)
	}
	if m.control&0x0C != 0x0C {
		t.Fatalf("control PRG mode not forced to 3 after reset: got %02X", m.control)
	}
}

func TestMapper1LatchesControlRegister(t *testing.T) {
	c := newTestCartridge(4, 1, 2, false)
	m := &Mapper1{}
	m.Init(c)

	mmc1WriteRegister(c, m, 0x8000, 0x0F) // horizontal mirroring, PRG mode 3 (last bank fixed at 0xC000)
	if m.control != 0x0F {
		t.Fatalf("got control %02X, want 0F", m.control)
	}
	if c.GetMirrorMode() != MirrorHorizontal {
		t.Fatalf("got mirroring %v, want horizontal", c.GetMirrorMode())
	}
}

func TestMapper1PRGBankSwitch16K(t *testing.T) {
	c := newTestCartridge(4, 1, 2, false) // 4 16K banks
	m := &Mapper1{}
	m.Init(c)

	// Control: PRG mode 2 (fix first bank at 0x8000, switch 0xC000).
	mmc1WriteRegister(c, m, 0x8000, 0x08)
	mmc1WriteRegister(c, m, 0xE000, 0x02) // prg register selects bank 2

	// 16K bank 2 starts at 8K block 4.
	if got := c.readPRGWindows(0xC000, 0); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
	if got := c.readPRGWindows(0x8000, 0); got != 0x00 {
		t.Fatalf("fixed first bank moved: got %02X, want 00", got)
	}
}

func TestMapper1IgnoresAdjacentWrite(t *testing.T) {
	c := newTestCartridge(4, 1, 2, false)
	m := &Mapper1{}
	m.Init(c)

	c.cpuCycle = 100
	m.CPUWrite(c, 0x8000, 0) // first bit of a register write
	afterFirst := m.shift

	c.cpuCycle = 101 // same instruction's second half, 1 cycle later
	m.CPUWrite(c, 0x8000, 1)
	if m.shift != afterFirst {
		t.Fatalf("adjacent write was not rejected: shift moved from %02X to %02X", afterFirst, m.shift)
	}

	c.cpuCycle = 110 // a later, unrelated instruction
	m.CPUWrite(c, 0x8000, 1)
	if m.shift == afterFirst {
		t.Fatal("write from a later instruction should have been accepted")
	}
}

func TestMapper1TransferStateRoundTrip(t *testing.T) {
	c := newTestCartridge(4, 1, 2, false)
	m := &Mapper1{}
	m.Init(c)
	mmc1WriteRegister(c, m, 0x8000, 0x0D)
	mmc1WriteRegister(c, m, 0xA000, 0x03)

	mw := state.NewWalker(state.Measure, nil)
	m.TransferState(c, mw)
	buf := make([]byte, mw.Len())
	sw := state.NewWalker(state.Save, buf)
	m.TransferState(c, sw)

	restored := &Mapper1{}
	lw := state.NewWalker(state.Load, buf)
	restored.TransferState(c, lw)

	if restored.shift != m.shift || restored.control != m.control ||
		restored.chr0 != m.chr0 || restored.chr1 != m.chr1 || restored.prg != m.prg {
		t.Fatalf("round trip mismatch: got %+v, want %+v", restored, m)
	}
}
