package cartridge

// Mapper3 is CNROM: any CPU write to 0x8000+ selects the 8 KiB CHR bank,
// masked to 2 bits (4 banks); PRG is fixed (16 KiB mirrored or 32 KiB).
type Mapper3 struct {
	baseMapper
}

func (m *Mapper3) Init(c *Cartridge) {
	c.SetPRG32KBank(0)
	c.SetCHR8KBank(0)
}

func (m *Mapper3) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	if addr&0x8000 == 0 {
		return
	}
	c.SetCHR8KBank(int(value & 0x03))
}
