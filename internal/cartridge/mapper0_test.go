package cartridge

import "testing"

func TestMapper0FixedMapping(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	m := &Mapper0{}
	m.Init(c)

	c.prgROM[0] = 0x11
	c.prgROM[0x4000-1] = 0x22
	before := c.readPRGWindows(0x8000, 0)
	if before != 0x11 {
		t.Fatalf("got %02X, want 11", before)
	}

	// NROM never reacts to writes; bank layout must be unaffected.
	c.mapper = m
	c.WritePRG(0xC000, 0xFF)
	if got := c.readPRGWindows(0x8000, 0); got != before {
		t.Fatalf("NROM bank layout changed after a write: got %02X, want %02X", got, before)
	}
}

func TestMapper0ReadWritePRGRAM(t *testing.T) {
	c := newTestCartridge(2, 1, 1, false)
	c.SetPRG6000Bank(0)
	m := &Mapper0{}
	m.Init(c)
	c.mapper = m

	c.WritePRG(0x6000, 0x77)
	if got := c.ReadPRG(0x6000); got != 0x77 {
		t.Fatalf("got %02X, want 77", got)
	}
	if c.prgRAM[0] != 0x77 {
		t.Fatal("0x6000 write did not reach the PRG RAM arena")
	}
}
