package cartridge

import "testing"

func TestMapper9LatchDefaultsToFDBanks(t *testing.T) {
	c := newTestCartridge(4, 1, 8, false) // 64 1K CHR banks
	m := &Mapper9{}
	m.Init(c)

	m.CPUWrite(c, 0xB000, 3) // chrBank0FDx
	m.CPUWrite(c, 0xC000, 7) // chrBank0FEx
	// A 4 KiB CHR bank covers four 1K blocks, so bank N's first block is 4N.
	if got := c.readCHRWindow(0x0000); got != 3*4 {
		t.Fatalf("got %d, want %d (latch defaults to $FD bank)", got, 3*4)
	}
}

func TestMapper9LatchFlipsOnLeavingMagicAddress(t *testing.T) {
	c := newTestCartridge(4, 1, 8, false)
	m := &Mapper9{}
	m.Init(c)
	m.CPUWrite(c, 0xB000, 3) // low bank, $FD value
	m.CPUWrite(c, 0xC000, 7) // low bank, $FE value

	m.PPUTick(c, 0x0FE8, 0) // enter the $0FE0 magic range
	if got := c.readCHRWindow(0x0000); got != 3*4 {
		t.Fatalf("latch must not flip while still inside the magic range: got %d, want %d", got, 3*4)
	}

	m.PPUTick(c, 0x0123, 1) // leave it
	if got := c.readCHRWindow(0x0000); got != 7*4 {
		t.Fatalf("latch did not flip to $FE bank after leaving the magic range: got %d, want %d", got, 7*4)
	}
}

func TestMapper9HighBankLatchIndependent(t *testing.T) {
	c := newTestCartridge(4, 1, 8, false)
	m := &Mapper9{}
	m.Init(c)
	m.CPUWrite(c, 0xD000, 1) // high bank $FD value
	m.CPUWrite(c, 0xE000, 5) // high bank $FE value

	m.PPUTick(c, 0x1FE8, 0)
	m.PPUTick(c, 0x0000, 1) // leave via the high-bank magic range
	if got := c.readCHRWindow(0x1000); got != 5*4 {
		t.Fatalf("got %d, want %d", got, 5*4)
	}
	// The low bank latch must be unaffected by the high-bank transition.
	if m.lowBankUses0FDx != true {
		t.Fatal("low bank latch flipped unexpectedly")
	}
}

func TestMapper9PRGBankSelect(t *testing.T) {
	c := newTestCartridge(8, 1, 8, false)
	m := &Mapper9{}
	m.Init(c)
	m.CPUWrite(c, 0xA000, 2)
	if got := c.readPRGWindows(0x8000, 0); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}
