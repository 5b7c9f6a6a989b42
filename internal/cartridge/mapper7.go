package cartridge

// Mapper7 is AxROM: any CPU write to 0x8000+ selects a 32 KiB PRG bank from
// the low bits and a one-screen mirroring page from bit 4. CHR is always
// RAM, fixed at bank 0.
type Mapper7 struct {
	baseMapper
}

func (m *Mapper7) Init(c *Cartridge) {
	c.SetPRG32KBank(0)
	c.SetCHR8KBank(0)
}

func (m *Mapper7) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	if addr&0x8000 == 0 {
		return
	}
	c.SetPRG32KBank(int(value & 0x07))
	if value&0x10 != 0 {
		c.SetMirroring(MirrorSingleScreen1)
	} else {
		c.SetMirroring(MirrorSingleScreen0)
	}
}
