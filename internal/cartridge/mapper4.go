package cartridge

import "gones/internal/state"

// Mapper4 is the Nintendo MMC3 (and its common clones): eight index
// registers selected by a mode register, a scanline IRQ counter clocked
// from PPU address bus bit A12, and CHR/PRG inversion bits that flip which
// half of each bank pair is fixed.
type Mapper4 struct {
	baseMapper

	reg8000 uint8
	regs    [8]uint8

	horizontalMirroring bool

	irqPeriod    uint8
	irqCounter   uint8
	irqEnabled   bool

	lastA12HighCycle uint64
}

const mmc3MinA12RiseDiff = 16

func (m *Mapper4) Init(c *Cartridge) {
	m.reg8000 = 0
	for i := range m.regs {
		m.regs[i] = 0
	}
	m.horizontalMirroring = true
	c.SetPRG8KBank(3, -1, true)
	m.irqPeriod, m.irqCounter = 0, 0
	m.irqEnabled = false
	m.apply(c)
}

func (m *Mapper4) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	if addr&0x8000 == 0 {
		return
	}

	switch (addr>>12)&6 | (addr & 1) {
	case 0: // 0x8000
		m.reg8000 = value
	case 1: // 0x8001
		m.regs[m.reg8000&7] = value
	case 2: // 0xA000
		m.horizontalMirroring = value&1 != 0
	case 3: // 0xA001
		// PRG-RAM write-protect/enable bits: not modeled.
	case 4: // 0xC000
		m.irqPeriod = value
	case 5: // 0xC001
		m.irqCounter = 0
	case 6: // 0xE000
		m.irqEnabled = false
		c.SetCartIRQ(false)
	case 7: // 0xE001
		m.irqEnabled = true
	}

	m.apply(c)
}

func (m *Mapper4) apply(c *Cartridge) {
	c.SetPRG8KBank(1, int(m.regs[7]), true)
	if m.reg8000&0x40 == 0 {
		c.SetPRG8KBank(0, int(m.regs[6]), true)
		c.SetPRG8KBank(2, -2, true)
	} else {
		c.SetPRG8KBank(0, -2, true)
		c.SetPRG8KBank(2, int(m.regs[6]), true)
	}

	if m.reg8000&0x80 == 0 {
		c.SetCHR2KBank(0, int(m.regs[0]>>1))
		c.SetCHR2KBank(1, int(m.regs[1]>>1))
		for i := 0; i < 4; i++ {
			c.SetCHR1KBank(4+i, int(m.regs[2+i]))
		}
	} else {
		for i := 0; i < 4; i++ {
			c.SetCHR1KBank(i, int(m.regs[2+i]))
		}
		c.SetCHR2KBank(2, int(m.regs[0]>>1))
		c.SetCHR2KBank(3, int(m.regs[1]>>1))
	}

	if m.horizontalMirroring {
		c.SetMirroring(MirrorHorizontal)
	} else {
		c.SetMirroring(MirrorVertical)
	}
}

// clockScanlineCounter runs the Revision-B IRQ rule: reload when already at
// zero, otherwise decrement; assert the IRQ line whenever it lands on zero
// while IRQs are enabled.
func (m *Mapper4) clockScanlineCounter(c *Cartridge) {
	if m.irqCounter == 0 {
		m.irqCounter = m.irqPeriod
	} else {
		m.irqCounter--
	}
	if m.irqCounter == 0 && m.irqEnabled {
		c.SetCartIRQ(true)
	}
}

func (m *Mapper4) PPUTick(c *Cartridge, ppuAddrBus uint16, ppuCycle uint64) {
	if ppuAddrBus&0x1000 != 0 {
		if ppuCycle-m.lastA12HighCycle >= mmc3MinA12RiseDiff {
			m.clockScanlineCounter(c)
		}
		m.lastA12HighCycle = ppuCycle
	}
}

func (m *Mapper4) TransferState(c *Cartridge, w *state.Walker) {
	w.Uint8(&m.reg8000)
	w.Bytes(m.regs[:])
	w.Bool(&m.horizontalMirroring)
	w.Uint8(&m.irqPeriod)
	w.Uint8(&m.irqCounter)
	w.Bool(&m.irqEnabled)
	w.Uint64(&m.lastA12HighCycle)
}
