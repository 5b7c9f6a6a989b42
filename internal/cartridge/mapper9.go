package cartridge

import "gones/internal/state"

// Mapper9 is the Nintendo MMC2, used only by Punch-Out!!: two 4 KiB CHR
// windows, each with two candidate banks selected by a latch driven by the
// PPU address bus. The latch flips when the bus leaves one of four "magic"
// addresses, not when it arrives at one.
type Mapper9 struct {
	baseMapper

	chrBank0FDx, chrBank0FEx uint8
	chrBank1FDx, chrBank1FEx uint8

	lowBankUses0FDx, highBankUses1FDx bool

	previousMagicBits uint16

	horizontalMirroring bool
}

func (m *Mapper9) Init(c *Cartridge) {
	c.SetPRG8KBank(1, -3, true)
	c.SetPRG8KBank(2, -2, true)
	c.SetPRG8KBank(3, -1, true)
	c.SetPRG8KBank(0, 0, true)

	c.SetCHR8KBank(0)
	m.chrBank0FDx, m.chrBank0FEx = 0, 0
	m.chrBank1FDx, m.chrBank1FEx = 0, 0
	m.lowBankUses0FDx, m.highBankUses1FDx = true, true

	m.previousMagicBits = 0
}

func (m *Mapper9) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	if addr&0x8000 == 0 {
		return
	}

	switch (addr >> 12) & 7 {
	case 2: // 0xA000
		c.SetPRG8KBank(0, int(value&0x0F), true)
	case 3: // 0xB000
		m.chrBank0FDx = value & 0x1F
	case 4: // 0xC000
		m.chrBank0FEx = value & 0x1F
	case 5: // 0xD000
		m.chrBank1FDx = value & 0x1F
	case 6: // 0xE000
		m.chrBank1FEx = value & 0x1F
	case 7: // 0xF000
		m.horizontalMirroring = value&1 != 0
	}

	m.apply(c)
}

func (m *Mapper9) apply(c *Cartridge) {
	if m.lowBankUses0FDx {
		c.SetCHR4KBank(0, int(m.chrBank0FDx))
	} else {
		c.SetCHR4KBank(0, int(m.chrBank0FEx))
	}
	if m.highBankUses1FDx {
		c.SetCHR4KBank(1, int(m.chrBank1FDx))
	} else {
		c.SetCHR4KBank(1, int(m.chrBank1FEx))
	}

	if m.horizontalMirroring {
		c.SetMirroring(MirrorHorizontal)
	} else {
		c.SetMirroring(MirrorVertical)
	}
}

func (m *Mapper9) PPUTick(c *Cartridge, ppuAddrBus uint16, ppuCycle uint64) {
	magicBits := ppuAddrBus & 0xFFF0

	if magicBits != 0x0FD0 && magicBits != 0x0FE0 && magicBits != 0x1FD0 && magicBits != 0x1FE0 {
		switch m.previousMagicBits {
		case 0x0FD0:
			m.lowBankUses0FDx = true
			m.apply(c)
		case 0x0FE0:
			m.lowBankUses0FDx = false
			m.apply(c)
		case 0x1FD0:
			m.highBankUses1FDx = true
			m.apply(c)
		case 0x1FE0:
			m.highBankUses1FDx = false
			m.apply(c)
		}
	}

	m.previousMagicBits = magicBits
}

func (m *Mapper9) TransferState(c *Cartridge, w *state.Walker) {
	w.Uint8(&m.chrBank0FDx)
	w.Uint8(&m.chrBank0FEx)
	w.Uint8(&m.chrBank1FDx)
	w.Uint8(&m.chrBank1FEx)
	w.Bool(&m.lowBankUses0FDx)
	w.Bool(&m.highBankUses1FDx)
	w.Uint16(&m.previousMagicBits)
	w.Bool(&m.horizontalMirroring)
}
