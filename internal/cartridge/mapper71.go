package cartridge

// Mapper71 is Camerica/Codemasters' board: like UxROM (mapper 2), but writes
// below 0xC000 set one-screen mirroring from bit 4 instead of being ignored,
// and the bank-select write only takes effect at 0xC000+.
type Mapper71 struct {
	baseMapper
}

func (m *Mapper71) Init(c *Cartridge) {
	c.SetPRG16KBank(0, 0, true)
	c.SetPRG16KBank(1, -1, true)
	c.SetCHR8KBank(0)
}

func (m *Mapper71) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	if addr&0x8000 == 0 {
		return
	}
	switch {
	case addr < 0xC000:
		if value&0x10 != 0 {
			c.SetMirroring(MirrorSingleScreen1)
		} else {
			c.SetMirroring(MirrorSingleScreen0)
		}
	default:
		c.SetPRG16KBank(0, int(value), true)
	}
}
