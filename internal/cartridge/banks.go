package cartridge

// region identifies which arena a bank window points into. Representing a
// window as (region, offset) rather than a raw pointer keeps the bank table
// memory-safe while preserving the "pointer into a larger arena" shape (see
// DESIGN.md).
type region uint8

const (
	regionPRGROM region = iota
	regionPRGRAM
	regionCHR
)

type window struct {
	region region
	offset int
}

// bankWindows is the bank-window table: the fixed mapping from CPU/PPU
// address space into cartridge ROM/RAM, rewritten by mappers and read on
// every memory access.
type bankWindows struct {
	prgPages      [4]window // 8 KiB windows at 0x8000 + 0x2000*i
	prgPageIsRAM  [4]bool
	prgRAM6000    window // 8 KiB window at 0x6000-0x7FFF, always PRG-RAM
	chrPages      [8]window // 1 KiB windows at 0x0000 + 0x400*i
	mirroring     Mirroring
}

func negIndex(total, bank int) int {
	if bank < 0 {
		bank = total + bank
		if bank < 0 {
			bank = 0
		}
	}
	return bank
}

// set_prg_32k_bank: maps a 32 KiB aligned window at 0x8000-0xFFFF. If only
// one 16 KiB PRG bank exists, forces mirroring of that single bank.
func (c *Cartridge) SetPRG32KBank(bank int) {
	if c.prg16kBanks == 1 {
		c.banks.prgPages[0] = window{regionPRGROM, 0}
		c.banks.prgPages[1] = window{regionPRGROM, 0x2000}
		c.banks.prgPages[2] = window{regionPRGROM, 0}
		c.banks.prgPages[3] = window{regionPRGROM, 0x2000}
		for i := range c.banks.prgPageIsRAM {
			c.banks.prgPageIsRAM[i] = false
		}
		return
	}

	mask := c.prg16kBanks/2 - 1
	base := (bank & mask) * 0x8000
	for i := 0; i < 4; i++ {
		c.banks.prgPages[i] = window{regionPRGROM, base + 0x2000*i}
		c.banks.prgPageIsRAM[i] = false
	}
}

// set_prg_16k_bank: maps 16 KiB at 0x8000 (n=0) or 0xC000 (n=1).
// isROM=false selects PRG-RAM if present, masked to its own bank count;
// otherwise it falls through to ROM.
func (c *Cartridge) SetPRG16KBank(n int, bank int, isROM bool) {
	bank = negIndex(c.prg16kBanks, bank)

	var reg region
	var base, mask int
	if !isROM && len(c.prgRAM) > 0 {
		reg = regionPRGRAM
		mask = 2*c.prgRAM8kBanks - 1
	} else {
		reg = regionPRGROM
		mask = c.prg16kBanks - 1
		isROM = true
	}
	base = (bank & mask) * 0x4000

	for i := 0; i < 2; i++ {
		c.banks.prgPages[2*n+i] = window{reg, base + 0x2000*i}
		c.banks.prgPageIsRAM[2*n+i] = !isROM
	}
}

// set_prg_8k_bank: maps 8 KiB at 0x8000+0x2000*n, n in [0,3].
func (c *Cartridge) SetPRG8KBank(n int, bank int, isROM bool) {
	bank = negIndex(2*c.prg16kBanks, bank)

	var reg region
	var mask int
	if !isROM && len(c.prgRAM) > 0 {
		reg = regionPRGRAM
		mask = c.prgRAM8kBanks - 1
	} else {
		reg = regionPRGROM
		mask = 2*c.prg16kBanks - 1
		isROM = true
	}

	c.banks.prgPages[n] = window{reg, (bank & mask) * 0x2000}
	c.banks.prgPageIsRAM[n] = !isROM
}

// set_prg_6000_bank: maps the 0x6000-0x7FFF window, always PRG-RAM.
func (c *Cartridge) SetPRG6000Bank(bank int) {
	mask := c.prgRAM8kBanks - 1
	c.banks.prgRAM6000 = window{regionPRGRAM, (bank & mask) * 0x2000}
}

// set_chr_8k_bank: maps all eight 1 KiB CHR windows to one 8 KiB bank.
func (c *Cartridge) SetCHR8KBank(bank int) {
	mask := c.chr8kBanks - 1
	base := (bank & mask) * 0x2000
	for i := 0; i < 8; i++ {
		c.banks.chrPages[i] = window{regionCHR, base + 0x400*i}
	}
}

// set_chr_4k_bank: n in [0,1].
func (c *Cartridge) SetCHR4KBank(n int, bank int) {
	mask := 2*c.chr8kBanks - 1
	base := (bank & mask) * 0x1000
	for i := 0; i < 4; i++ {
		c.banks.chrPages[4*n+i] = window{regionCHR, base + 0x400*i}
	}
}

// set_chr_2k_bank: n in [0,3].
func (c *Cartridge) SetCHR2KBank(n int, bank int) {
	mask := 4*c.chr8kBanks - 1
	base := (bank & mask) * 0x800
	for i := 0; i < 2; i++ {
		c.banks.chrPages[2*n+i] = window{regionCHR, base + 0x400*i}
	}
}

// set_chr_1k_bank: n in [0,7].
func (c *Cartridge) SetCHR1KBank(n int, bank int) {
	mask := 8*c.chr8kBanks - 1
	c.banks.chrPages[n] = window{regionCHR, (bank & mask) * 0x400}
}

func (c *Cartridge) arena(r region) []uint8 {
	switch r {
	case regionPRGROM:
		return c.prgROM
	case regionPRGRAM:
		return c.prgRAM
	default:
		return c.chr
	}
}

func (c *Cartridge) readWindow(w window, offsetInWindow int, openBus uint8) uint8 {
	arena := c.arena(w.region)
	idx := w.offset + offsetInWindow
	if idx < 0 || idx >= len(arena) {
		return openBus
	}
	return arena[idx]
}

func (c *Cartridge) writeWindow(w window, offsetInWindow int, value uint8) {
	arena := c.arena(w.region)
	idx := w.offset + offsetInWindow
	if idx >= 0 && idx < len(arena) {
		arena[idx] = value
	}
}

// readPRGWindows resolves a CPU address in 0x6000-0xFFFF against the
// bank-window table. Addresses below 0x6000 are not cartridge space, and any
// window miss (unbacked offset) falls back to the CPU's open-bus latch
// rather than a hardwired zero.
func (c *Cartridge) readPRGWindows(address uint16, openBus uint8) uint8 {
	switch {
	case address >= 0x8000:
		slot := (address - 0x8000) / 0x2000
		return c.readWindow(c.banks.prgPages[slot], int(address)&0x1FFF, openBus)
	case address >= 0x6000:
		return c.readWindow(c.banks.prgRAM6000, int(address)&0x1FFF, openBus)
	default:
		return openBus
	}
}

func (c *Cartridge) writePRGWindows(address uint16, value uint8) {
	switch {
	case address >= 0x8000:
		slot := (address - 0x8000) / 0x2000
		if c.banks.prgPageIsRAM[slot] {
			c.writeWindow(c.banks.prgPages[slot], int(address)&0x1FFF, value)
		}
	case address >= 0x6000:
		c.writeWindow(c.banks.prgRAM6000, int(address)&0x1FFF, value)
	}
}

func (c *Cartridge) readCHRWindow(address uint16) uint8 {
	if address >= 0x2000 {
		return 0
	}
	slot := address / 0x400
	return c.readWindow(c.banks.chrPages[slot], int(address)&0x3FF, 0)
}

func (c *Cartridge) writeCHRWindow(address uint16, value uint8) {
	if address >= 0x2000 || !c.hasCHRRAM {
		return
	}
	slot := address / 0x400
	c.writeWindow(c.banks.chrPages[slot], int(address)&0x3FF, value)
}
