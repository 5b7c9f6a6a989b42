package cartridge

// MockCartridge is a minimal CartridgeInterface stand-in used by the memory,
// PPU and bus test suites that want a cartridge without the overhead of
// assembling and loading an iNES image. It has no mapper behavior: PRG is a
// flat 32 KiB window (a 16 KiB load is not mirrored into 0xC000-0xFFFF), CHR
// is a flat 8 KiB window, and every access is logged for assertions.
type MockCartridge struct {
	prgROM    [0x8000]uint8
	chrROM    [0x2000]uint8
	prgRAM    [0x2000]uint8
	chrRAM    [0x2000]uint8
	mirroring MirrorMode

	prgReads  []uint16
	prgWrites []uint16
	chrReads  []uint16
	chrWrites []uint16
}

// NewMockCartridge creates a new mock cartridge for testing.
func NewMockCartridge() *MockCartridge {
	return &MockCartridge{
		mirroring: MirrorHorizontal,
		prgReads:  make([]uint16, 0),
		prgWrites: make([]uint16, 0),
		chrReads:  make([]uint16, 0),
		chrWrites: make([]uint16, 0),
	}
}

// ReadPRG implements memory.CartridgeInterface.
func (c *MockCartridge) ReadPRG(address uint16) uint8 {
	c.prgReads = append(c.prgReads, address)
	if address >= 0x6000 && address < 0x8000 {
		return c.prgRAM[address-0x6000]
	}
	if address < 0x8000 {
		return 0
	}
	index := address - 0x8000
	if index >= 0x4000 && len(c.prgROM) == 0x4000 {
		index %= 0x4000
	}
	return c.prgROM[index]
}

// WritePRG implements memory.CartridgeInterface.
func (c *MockCartridge) WritePRG(address uint16, value uint8) {
	c.prgWrites = append(c.prgWrites, address)
	if address >= 0x6000 && address < 0x8000 {
		c.prgRAM[address-0x6000] = value
	}
	// Writes to the ROM area would decode mapper registers on a real
	// cartridge; the mock has no mapper to register them with.
}

// ReadCHR implements memory.CartridgeInterface.
func (c *MockCartridge) ReadCHR(address uint16) uint8 {
	c.chrReads = append(c.chrReads, address)
	if address < 0x2000 {
		return c.chrROM[address]
	}
	return 0
}

// WriteCHR implements memory.CartridgeInterface.
func (c *MockCartridge) WriteCHR(address uint16, value uint8) {
	c.chrWrites = append(c.chrWrites, address)
	if address < 0x2000 {
		c.chrROM[address] = value
	}
}

// TickPPU implements the PPU-facing half of CartridgeInterface; the mock has
// no mapper to drive an IRQ line or a pattern-fetch latch from.
func (c *MockCartridge) TickPPU(ppuAddrBus uint16, ppuCycle uint64) {}

// HasNametableHooks implements CartridgeInterface; the mock never remaps
// name-table space.
func (c *MockCartridge) HasNametableHooks() bool { return false }

func (c *MockCartridge) ReadNametable(address uint16) uint8         { return 0 }
func (c *MockCartridge) WriteNametable(address uint16, value uint8) {}

// LoadPRG loads data into PRG ROM.
func (c *MockCartridge) LoadPRG(data []uint8) {
	copy(c.prgROM[:], data)
}

// LoadCHR loads data into CHR ROM.
func (c *MockCartridge) LoadCHR(data []uint8) {
	copy(c.chrROM[:], data)
}

// SetMirroring sets the nametable mirroring mode.
func (c *MockCartridge) SetMirroring(mode MirrorMode) {
	c.mirroring = mode
}

// GetMirroring returns the current mirroring mode.
func (c *MockCartridge) GetMirroring() MirrorMode {
	return c.mirroring
}

// ClearLogs clears all access logs.
func (c *MockCartridge) ClearLogs() {
	c.prgReads = c.prgReads[:0]
	c.prgWrites = c.prgWrites[:0]
	c.chrReads = c.chrReads[:0]
	c.chrWrites = c.chrWrites[:0]
}
