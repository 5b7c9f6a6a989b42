package cartridge

import "gones/internal/state"

// Mapper5 is the Nintendo MMC5/ExROM, the most elaborate board this core
// supports: independently switchable PRG and CHR granularity modes, a
// four-way per-nametable source selector (on-board RAM page 0, page 1,
// expansion RAM, or a fill-mode constant tile), a multiplier, expansion
// RAM, and a scanline IRQ detector driven by the nametable fetch pattern
// rather than address line A12.
type Mapper5 struct {
	baseMapper

	prgMode uint8 // $5100 & 3
	chrMode uint8 // $5101 & 3

	exramMode uint8    // $5104 & 3
	ntSource  [4]uint8 // $5105, 2 bits per nametable quadrant
	fillTile  uint8    // $5106
	fillColor uint8    // $5107 & 3

	prgBank [5]uint8 // raw values written to $5113-$5117
	chrBank [8]uint8 // raw values written to $5120-$5127

	ciram [2][1024]uint8 // stand-in for the console's own nametable RAM
	exram [1024]uint8

	irqScanline uint8 // $5203
	irqEnable   bool  // $5204 write, bit 7
	irqPending  bool  // $5204 read, bit 7
	inFrame     bool  // $5204 read, bit 6

	lastNTFetchAddr  uint16
	sameFetchStreak  int
	currentScanline  int

	multLo, multHi uint8
	mulResult      uint16
}

func (m *Mapper5) Init(c *Cartridge) {
	m.prgMode = 3
	m.chrMode = 3
	for i := range m.prgBank {
		m.prgBank[i] = 0xFF // power-on: last bank, ROM
	}
	m.prgBank[4] = 0xFF
	m.apply(c)
}

func (m *Mapper5) CPURead(c *Cartridge, addr uint16, cpuDataBus uint8) uint8 {
	switch {
	case addr == 0x5204:
		var status uint8
		if m.irqPending {
			status |= 0x80
		}
		if m.inFrame {
			status |= 0x40
		}
		m.irqPending = false
		c.SetCartIRQ(false)
		return status
	case addr == 0x5205:
		return uint8(m.mulResult)
	case addr == 0x5206:
		return uint8(m.mulResult >> 8)
	case addr >= 0x5C00 && addr <= 0x5FFF:
		return m.exram[addr-0x5C00]
	default:
		return c.readPRGWindows(addr, cpuDataBus)
	}
}

func (m *Mapper5) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	switch {
	case addr == 0x5100:
		m.prgMode = value & 0x03
	case addr == 0x5101:
		m.chrMode = value & 0x03
	case addr == 0x5104:
		m.exramMode = value & 0x03
	case addr == 0x5105:
		m.ntSource[0] = value & 0x03
		m.ntSource[1] = (value >> 2) & 0x03
		m.ntSource[2] = (value >> 4) & 0x03
		m.ntSource[3] = (value >> 6) & 0x03
	case addr == 0x5106:
		m.fillTile = value
	case addr == 0x5107:
		m.fillColor = value & 0x03
	case addr >= 0x5113 && addr <= 0x5117:
		m.prgBank[addr-0x5113] = value
	case addr >= 0x5120 && addr <= 0x5127:
		m.chrBank[addr-0x5120] = value
	case addr == 0x5203:
		m.irqScanline = value
	case addr == 0x5204:
		m.irqEnable = value&0x80 != 0
	case addr == 0x5205:
		m.multLo = value
		m.mulResult = uint16(m.multLo) * uint16(m.multHi)
	case addr == 0x5206:
		m.multHi = value
		m.mulResult = uint16(m.multLo) * uint16(m.multHi)
	case addr >= 0x5C00 && addr <= 0x5FFF:
		m.exram[addr-0x5C00] = value
	default:
		c.writePRGWindows(addr, value)
	}

	m.apply(c)
}

func (m *Mapper5) apply(c *Cartridge) {
	c.SetPRG6000Bank(int(m.prgBank[0]))

	switch m.prgMode {
	case 0:
		c.SetPRG32KBank(int(m.prgBank[4] >> 2))
	case 1:
		c.SetPRG16KBank(0, int(m.prgBank[2]>>1), m.prgBank[2]&0x80 != 0)
		c.SetPRG16KBank(1, int(m.prgBank[4]>>1), true)
	case 2:
		c.SetPRG16KBank(0, int(m.prgBank[2]>>1), m.prgBank[2]&0x80 != 0)
		c.SetPRG8KBank(2, int(m.prgBank[3]), m.prgBank[3]&0x80 != 0)
		c.SetPRG8KBank(3, int(m.prgBank[4]), true)
	default: // 3: four independent 8 KiB windows
		c.SetPRG8KBank(0, int(m.prgBank[1]), m.prgBank[1]&0x80 != 0)
		c.SetPRG8KBank(1, int(m.prgBank[2]), m.prgBank[2]&0x80 != 0)
		c.SetPRG8KBank(2, int(m.prgBank[3]), m.prgBank[3]&0x80 != 0)
		c.SetPRG8KBank(3, int(m.prgBank[4]), true)
	}

	switch m.chrMode {
	case 0:
		c.SetCHR8KBank(int(m.chrBank[7]))
	case 1:
		c.SetCHR4KBank(0, int(m.chrBank[3]))
		c.SetCHR4KBank(1, int(m.chrBank[7]))
	case 2:
		c.SetCHR2KBank(0, int(m.chrBank[1]))
		c.SetCHR2KBank(1, int(m.chrBank[3]))
		c.SetCHR2KBank(2, int(m.chrBank[5]))
		c.SetCHR2KBank(3, int(m.chrBank[7]))
	default: // 3: eight independent 1 KiB windows
		for i := 0; i < 8; i++ {
			c.SetCHR1KBank(i, int(m.chrBank[i]))
		}
	}
}

// hasNametableHooks marks this mapper as intercepting name-table space
// rather than using the PPU's own VRAM.
func (m *Mapper5) hasNametableHooks() {}

func (m *Mapper5) NTRead(c *Cartridge, addr uint16) uint8 {
	page := (addr >> 10) & 3
	off := addr & 0x3FF
	switch m.ntSource[page] {
	case 0:
		return m.ciram[0][off]
	case 1:
		return m.ciram[1][off]
	case 2:
		return m.exram[off]
	default:
		return m.fillTile
	}
}

func (m *Mapper5) NTWrite(c *Cartridge, addr uint16, value uint8) {
	page := (addr >> 10) & 3
	off := addr & 0x3FF
	switch m.ntSource[page] {
	case 0:
		m.ciram[0][off] = value
	case 1:
		m.ciram[1][off] = value
	case 2:
		m.exram[off] = value
	default:
		// Fill mode has no backing store to write to.
	}
}

// PPUTick approximates MMC5's scanline detector: real hardware recognizes a
// new scanline by seeing the same nametable tile address fetched twice in a
// row (the idle cycle before each scanline's first real fetch repeats the
// previous cycle's address).
func (m *Mapper5) PPUTick(c *Cartridge, ppuAddrBus uint16, ppuCycle uint64) {
	if ppuAddrBus < 0x2000 {
		return // pattern-table fetch, not a nametable fetch
	}

	if ppuAddrBus == m.lastNTFetchAddr {
		m.sameFetchStreak++
	} else {
		m.sameFetchStreak = 1
	}
	m.lastNTFetchAddr = ppuAddrBus

	if m.sameFetchStreak == 2 {
		m.inFrame = true
		m.currentScanline++
		if m.currentScanline > 240 {
			m.currentScanline = 0
			m.inFrame = false
		}
		if m.currentScanline == int(m.irqScanline) {
			m.irqPending = true
			if m.irqEnable {
				c.SetCartIRQ(true)
			}
		}
	}
}

func (m *Mapper5) TransferState(c *Cartridge, w *state.Walker) {
	w.Uint8(&m.prgMode)
	w.Uint8(&m.chrMode)
	w.Uint8(&m.exramMode)
	w.Bytes(m.ntSource[:])
	w.Uint8(&m.fillTile)
	w.Uint8(&m.fillColor)
	w.Bytes(m.prgBank[:])
	w.Bytes(m.chrBank[:])
	w.Bytes(m.ciram[0][:])
	w.Bytes(m.ciram[1][:])
	w.Bytes(m.exram[:])
	w.Uint8(&m.irqScanline)
	w.Bool(&m.irqEnable)
	w.Bool(&m.irqPending)
	w.Bool(&m.inFrame)
	w.Uint16(&m.lastNTFetchAddr)
	w.Uint8(&m.multLo)
	w.Uint8(&m.multHi)
	w.Uint16(&m.mulResult)
}
