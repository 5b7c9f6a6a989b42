package cartridge

import "gones/internal/state"

// Mapper232 is the Camerica/Capcom board used by the Quattro * multicarts:
// writes to 0x8000-0xBFFF select a 4-bank "block" from bits 4-3 (their low
// bits are ignored); writes to 0xC000-0xFFFF select the inner bank within
// the current block from bits 1-0.
// The 0xC000 window always holds the block's last bank.
type Mapper232 struct {
	baseMapper
	outer uint8
	inner uint8
}

func (m *Mapper232) Init(c *Cartridge) {
	c.SetPRG16KBank(0, 0, true)
	c.SetPRG16KBank(1, 3, true)
	c.SetCHR8KBank(0)
}

func (m *Mapper232) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	if addr&0x8000 == 0 {
		return
	}
	if addr < 0xC000 {
		m.outer = (value >> 3) & 0x03
	} else {
		m.inner = value & 0x03
	}
	c.SetPRG16KBank(0, int(m.outer)*4+int(m.inner), true)
	c.SetPRG16KBank(1, int(m.outer)*4+3, true)
}

func (m *Mapper232) TransferState(c *Cartridge, w *state.Walker) {
	w.Uint8(&m.outer)
	w.Uint8(&m.inner)
}
