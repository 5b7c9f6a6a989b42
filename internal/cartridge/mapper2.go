package cartridge

// Mapper2 is UxROM: any CPU write to 0x8000+ selects the low 16 KiB PRG
// bank; the high 16 KiB window is fixed to the last bank. CHR is always RAM,
// fixed at bank 0.
type Mapper2 struct {
	baseMapper
}

func (m *Mapper2) Init(c *Cartridge) {
	c.SetPRG16KBank(0, 0, true)
	c.SetPRG16KBank(1, -1, true)
	c.SetCHR8KBank(0)
}

func (m *Mapper2) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	if addr&0x8000 == 0 {
		return
	}
	c.SetPRG16KBank(0, int(value), true)
}
