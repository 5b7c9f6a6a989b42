package cartridge

import "gones/internal/state"

// Mapper1 is the Nintendo MMC1: a 5-bit serial shift register fed one bit
// per CPU write to 0x8000-0xFFFF. Every fifth non-reset write latches the
// accumulated value into one of four registers, chosen by the write
// address's bits 14-13: control, CHR bank 0, CHR bank 1, PRG bank.
type Mapper1 struct {
	baseMapper

	shift uint8 // sentinel-bit shift register; 0x10 means "empty"

	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8

	hasLastWrite   bool
	lastWriteCycle uint64
}

func (m *Mapper1) Init(c *Cartridge) {
	m.shift = 0x10
	m.control = 0x0C // power-on: PRG mode 3 (fix last bank at 0xC000)
	m.chr0 = 0
	m.chr1 = 0
	m.prg = 0
	m.hasLastWrite = false
	m.apply(c)
}

func (m *Mapper1) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	if addr&0x8000 == 0 {
		return
	}

	if m.hasLastWrite && c.cpuCycle-m.lastWriteCycle < 2 {
		return
	}
	m.hasLastWrite = true
	m.lastWriteCycle = c.cpuCycle

	if value&0x80 != 0 {
		m.shift = 0x10
		m.control |= 0x0C
		m.apply(c)
		return
	}

	complete := m.shift&1 != 0
	m.shift = (m.shift >> 1) | ((value & 1) << 4)
	if !complete {
		return
	}

	result := m.shift
	m.shift = 0x10
	switch (addr >> 13) & 3 {
	case 0:
		m.control = result
	case 1:
		m.chr0 = result
	case 2:
		m.chr1 = result
	case 3:
		m.prg = result
	}
	m.apply(c)
}

func (m *Mapper1) apply(c *Cartridge) {
	switch m.control & 0x03 {
	case 0:
		c.SetMirroring(MirrorSingleScreen0)
	case 1:
		c.SetMirroring(MirrorSingleScreen1)
	case 2:
		c.SetMirroring(MirrorVertical)
	case 3:
		c.SetMirroring(MirrorHorizontal)
	}

	switch (m.control >> 2) & 0x03 {
	case 0, 1:
		c.SetPRG32KBank(int(m.prg >> 1))
	case 2:
		c.SetPRG16KBank(0, 0, true)
		c.SetPRG16KBank(1, int(m.prg&0x0F), true)
	case 3:
		c.SetPRG16KBank(0, int(m.prg&0x0F), true)
		c.SetPRG16KBank(1, -1, true)
	}

	if m.control&0x10 == 0 {
		c.SetCHR8KBank(int(m.chr0 >> 1))
	} else {
		c.SetCHR4KBank(0, int(m.chr0))
		c.SetCHR4KBank(1, int(m.chr1))
	}
}

func (m *Mapper1) TransferState(c *Cartridge, w *state.Walker) {
	w.Uint8(&m.shift)
	w.Uint8(&m.control)
	w.Uint8(&m.chr0)
	w.Uint8(&m.chr1)
	w.Uint8(&m.prg)
}
