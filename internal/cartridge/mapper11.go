package cartridge

// Mapper11 is Color Dreams: any CPU write to 0x8000+ splits the byte into a
// high-nibble CHR bank and a low-nibble PRG bank, each mapped in one shot.
type Mapper11 struct {
	baseMapper
}

func (m *Mapper11) Init(c *Cartridge) {
	c.SetPRG32KBank(0)
	c.SetCHR8KBank(0)
}

func (m *Mapper11) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	if addr&0x8000 == 0 {
		return
	}
	c.SetPRG32KBank(int(value & 0x0F))
	c.SetCHR8KBank(int(value >> 4))
}
