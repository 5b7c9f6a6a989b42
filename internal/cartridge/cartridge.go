// Package cartridge implements NES cartridge ROM loading and the mapper
// subsystem: the bank-window table, the mirroring register, and the
// per-mapper-number dispatch that the CPU and PPU buses call into on every
// access to cartridge space.
package cartridge

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"gones/internal/state"
)

// Mirroring is the current name-table arrangement, consumed by the PPU.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorSingleScreen0
	MirrorSingleScreen1
	MirrorFourScreen
)

// MirrorMode is an alias retained for source compatibility with callers
// that predate the Mirroring rename.
type MirrorMode = Mirroring

// Cartridge owns the PRG/CHR arenas, the bank-window table and mirroring
// register, and the selected mapper's private state. It is the single
// aggregate the CPU and PPU buses hold an exclusive reference to whenever
// they touch cartridge space (see DESIGN.md).
type Cartridge struct {
	prgROM []uint8 // prg_base
	prgRAM []uint8 // prg_ram_base, always allocated (at least one 8K bank)
	chr    []uint8 // chr_base (ROM or RAM)

	prg16kBanks   int
	prgRAM8kBanks int
	chr8kBanks    int

	mapperID   uint8
	mapper     Mapper
	hasBattery bool
	hasCHRRAM  bool

	hardwiredFourScreen bool

	banks bankWindows

	// cpuDataBus is the open-bus value last set through SetCPUDataBus;
	// reads that miss every bank window return it.
	cpuDataBus uint8

	// cpuCycle is the CPU's cycle count as of the start of the instruction
	// currently executing. Mapper 1 uses it to reject a second register
	// write issued by the same read-modify-write instruction.
	cpuCycle uint64

	// setCartIRQ raises or clears the cartridge IRQ line on the CPU. Mappers
	// with scanline IRQs (MMC3, MMC5) call SetCartIRQ; everything else
	// leaves it nil.
	setCartIRQ func(bool)
}

// SetCPUDataBus records the value returned by reads that miss every bank
// window. The bus does not call it, so that value stays zero unless a
// caller sets it.
func (c *Cartridge) SetCPUDataBus(v uint8) { c.cpuDataBus = v }

// SetCPUCycle records the CPU cycle count at the start of the current
// instruction. The bus calls this once per Step, before executing it.
func (c *Cartridge) SetCPUCycle(v uint64) { c.cpuCycle = v }

// SetIRQCallback wires the cartridge's IRQ line to the CPU; called once at
// emulator startup with the CPU's own level-sensitive IRQ setter.
func (c *Cartridge) SetIRQCallback(fn func(bool)) { c.setCartIRQ = fn }

// SetCartIRQ raises (true) or clears (false) the cartridge IRQ line. A
// mapper with no IRQ logic never calls this.
func (c *Cartridge) SetCartIRQ(asserted bool) {
	if c.setCartIRQ != nil {
		c.setCartIRQ(asserted)
	}
}

// iNES header structure
type iNESHeader struct {
	Magic      [4]uint8
	PRGROMSize uint8 // in 16KB units
	CHRROMSize uint8 // in 8KB units
	Flags6     uint8
	Flags7     uint8
	PRGRAMSize uint8
	TVSystem1  uint8
	TVSystem2  uint8
	Padding    [5]uint8
}

// LoadFromFile loads a cartridge from an iNES file on disk.
func LoadFromFile(filename string) (*Cartridge, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader loads a cartridge from an io.Reader containing an iNES image.
func LoadFromReader(r io.Reader) (*Cartridge, error) {
	var header iNESHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}

	if string(header.Magic[:]) != "NES\x1A" {
		return nil, errors.New("invalid iNES file")
	}
	if header.PRGROMSize == 0 {
		return nil, errors.New("invalid ROM: PRG ROM size cannot be zero")
	}

	cart := &Cartridge{
		mapperID:      (header.Flags6 >> 4) | (header.Flags7 & 0xF0),
		hasBattery:    (header.Flags6 & 0x02) != 0,
		prg16kBanks:   int(header.PRGROMSize),
		prgRAM8kBanks: int(header.PRGRAMSize),
	}
	if cart.prgRAM8kBanks == 0 {
		cart.prgRAM8kBanks = 1 // iNES convention: 0 means one 8K bank
	}

	cart.hardwiredFourScreen = (header.Flags6 & 0x08) != 0
	switch {
	case cart.hardwiredFourScreen:
		cart.banks.mirroring = MirrorFourScreen
	case (header.Flags6 & 0x01) != 0:
		cart.banks.mirroring = MirrorVertical
	default:
		cart.banks.mirroring = MirrorHorizontal
	}

	if (header.Flags6 & 0x04) != 0 {
		trainer := make([]uint8, 512)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, err
		}
	}

	prgSize := int(header.PRGROMSize) * 16384
	cart.prgROM = make([]uint8, prgSize)
	if _, err := io.ReadFull(r, cart.prgROM); err != nil {
		return nil, err
	}

	chrSize := int(header.CHRROMSize) * 8192
	if chrSize > 0 {
		cart.chr = make([]uint8, chrSize)
		if _, err := io.ReadFull(r, cart.chr); err != nil {
			return nil, err
		}
		cart.chr8kBanks = int(header.CHRROMSize)
	} else {
		// No CHR ROM: the same region is allocated as CHR RAM (8 KiB).
		cart.chr = make([]uint8, 8192)
		cart.hasCHRRAM = true
		cart.chr8kBanks = 1
	}

	cart.prgRAM = make([]uint8, cart.prgRAM8kBanks*0x2000)
	cart.SetPRG6000Bank(0)

	if err := cart.attachMapper(); err != nil {
		return nil, err
	}

	return cart, nil
}

// LoadFromBytes builds a cartridge directly from an in-memory iNES image;
// used by tests and tooling that assemble synthetic ROMs.
func LoadFromBytes(data []byte) (*Cartridge, error) {
	return LoadFromReader(bytes.NewReader(data))
}

// attachMapper selects the dispatch row for the cartridge's mapper number
// and runs its init routine. An unsupported mapper number is a
// configuration error: it is reported synchronously to the loader and
// prevents emulation from starting.
func (c *Cartridge) attachMapper() error {
	entry, ok := dispatch[c.mapperID]
	if !ok {
		return fmt.Errorf("cartridge: unsupported mapper %d", c.mapperID)
	}
	c.mapper = entry.New()
	c.mapper.Init(c)
	return nil
}

// ReadPRG reads a byte from CPU address space 0x5000-0xFFFF (0x5000-0x5FFF
// only matters to mappers with expansion registers there, namely MMC5).
func (c *Cartridge) ReadPRG(address uint16) uint8 {
	return c.mapper.CPURead(c, address, c.cpuDataBus)
}

// WritePRG writes a byte to CPU address space 0x5000-0xFFFF.
func (c *Cartridge) WritePRG(address uint16, value uint8) {
	c.mapper.CPUWrite(c, address, value)
}

// ReadCHR reads a byte from PPU address space 0x0000-0x1FFF.
func (c *Cartridge) ReadCHR(address uint16) uint8 {
	return c.readCHRWindow(address)
}

// WriteCHR writes a byte to PPU address space 0x0000-0x1FFF (CHR-RAM only).
func (c *Cartridge) WriteCHR(address uint16, value uint8) {
	c.writeCHRWindow(address, value)
}

// TickPPU is called by the PPU memory on every pattern-table access, and on
// name-table reads when the mapper has name-table hooks, so mappers with IRQ
// or latch logic (MMC3, MMC2, MMC5) can observe the address bus.
func (c *Cartridge) TickPPU(ppuAddrBus uint16, ppuCycle uint64) {
	c.mapper.PPUTick(c, ppuAddrBus, ppuCycle)
}

// HasNametableHooks tells the PPU whether this cartridge's mapper remaps
// name-table space itself (only MMC5 does) instead of using PPU VRAM.
func (c *Cartridge) HasNametableHooks() bool {
	_, ok := c.mapper.(nametableMapper)
	return ok
}

// ReadNametable and WriteNametable are only called when HasNametableHooks
// is true; on a mapper with no nametable function this is a core logic
// error and the dispatch default terminates the process with a diagnostic.
func (c *Cartridge) ReadNametable(address uint16) uint8 {
	return c.mapper.NTRead(c, address)
}

func (c *Cartridge) WriteNametable(address uint16, value uint8) {
	c.mapper.NTWrite(c, address, value)
}

// GetMirrorMode returns the cartridge's current mirroring mode.
func (c *Cartridge) GetMirrorMode() Mirroring {
	return c.banks.mirroring
}

// SetMirroring changes the mirroring mode. It is a no-op once the cartridge
// is hard-wired for four-screen mirroring at load time.
func (c *Cartridge) SetMirroring(m Mirroring) {
	if c.banks.mirroring != MirrorFourScreen {
		c.banks.mirroring = m
	}
}

// MapperID reports the iNES mapper number the cartridge was loaded with.
func (c *Cartridge) MapperID() uint8 { return c.mapperID }

// HasBattery reports whether the cartridge declares battery-backed PRG-RAM.
// Persisting it to disk is out of scope here.
func (c *Cartridge) HasBattery() bool { return c.hasBattery }

// TransferMapperState plugs the selected mapper into the state-transfer
// protocol (internal/state). Stateless mappers consume zero bytes.
func (c *Cartridge) TransferMapperState(w *state.Walker) {
	c.mapper.TransferState(c, w)
}

// nametableMapper is implemented only by mappers that intercept
// name-table reads/writes (MMC5 / mapper 5).
type nametableMapper interface {
	hasNametableHooks()
}
