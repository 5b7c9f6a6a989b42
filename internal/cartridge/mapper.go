package cartridge

import (
	"fmt"

	"gones/internal/state"
)

// Mapper is the per-cartridge-chip state machine: bank-switch logic, optional
// IRQ generation, optional name-table remapping, and the state-transfer hook
// the save/rewind engine drives. It stands in for a per-mapper-number table
// of function pointers (see DESIGN.md).
type Mapper interface {
	Init(c *Cartridge)
	CPURead(c *Cartridge, addr uint16, cpuDataBus uint8) uint8
	CPUWrite(c *Cartridge, addr uint16, value uint8)
	PPUTick(c *Cartridge, ppuAddrBus uint16, ppuCycle uint64)
	NTRead(c *Cartridge, addr uint16) uint8
	NTWrite(c *Cartridge, addr uint16, value uint8)
	TransferState(c *Cartridge, w *state.Walker)
}

// baseMapper supplies the dispatch table's documented defaults so each
// concrete mapper only implements what it actually uses:
//
//	cpu_read(addr)  -> ordinary bank-window read (no custom registers)
//	cpu_write(_, _) -> ordinary bank-window write (PRG-RAM only; ROM windows
//	                   ignore writes unless a concrete mapper claims them
//	                   for bank-switch registers)
//	ppu_tick        -> nothing
//	nt_read/nt_write -> fatal; only name-table-remapping mappers override these
//	state_size/save/load -> 0 bytes for stateless mappers
//
// A mapper overrides CPURead only when it exposes a real register to read
// back (MMC5's IRQ status and multiplier results); every other mapper reads
// pure memory and never needs to. CPUWrite is overridden by almost every
// mapper, since that's how bank-switch registers get decoded.
type baseMapper struct{}

func (baseMapper) Init(c *Cartridge) {}

func (baseMapper) CPURead(c *Cartridge, addr uint16, cpuDataBus uint8) uint8 {
	return c.readPRGWindows(addr, cpuDataBus)
}

func (baseMapper) CPUWrite(c *Cartridge, addr uint16, value uint8) {
	c.writePRGWindows(addr, value)
}

func (baseMapper) PPUTick(c *Cartridge, ppuAddrBus uint16, ppuCycle uint64) {}

func (baseMapper) NTRead(c *Cartridge, addr uint16) uint8 {
	panic(fmt.Sprintf("cartridge: internal error: reading nametable address %04X on mapper %d with no read function defined", addr, c.mapperID))
}

func (baseMapper) NTWrite(c *Cartridge, addr uint16, value uint8) {
	panic(fmt.Sprintf("cartridge: internal error: writing %02X to nametable address %04X on mapper %d with no write function defined", value, addr, c.mapperID))
}

func (baseMapper) TransferState(c *Cartridge, w *state.Walker) {}

// dispatchEntry is one row of the mapper dispatch table: a factory for a
// fresh instance of the mapper's private state, selected by mapper number
// at ROM load time.
type dispatchEntry struct {
	New func() Mapper
}

// dispatch is the mapper dispatch table, populated once at package init and
// selected by the iNES mapper number at ROM load. Supported mapper numbers:
// 0, 1, 2, 3, 4, 5, 7, 9, 11, 71, 232.
var dispatch = map[uint8]dispatchEntry{
	0:   {New: func() Mapper { return &Mapper0{} }},
	1:   {New: func() Mapper { return &Mapper1{} }},
	2:   {New: func() Mapper { return &Mapper2{} }},
	3:   {New: func() Mapper { return &Mapper3{} }},
	4:   {New: func() Mapper { return &Mapper4{} }},
	5:   {New: func() Mapper { return &Mapper5{} }},
	7:   {New: func() Mapper { return &Mapper7{} }},
	9:   {New: func() Mapper { return &Mapper9{} }},
	11:  {New: func() Mapper { return &Mapper11{} }},
	71:  {New: func() Mapper { return &Mapper71{} }},
	232: {New: func() Mapper { return &Mapper232{} }},
}

// SupportedMappers reports the iNES mapper numbers this core can load,
// sorted ascending. The ROM loader does not call it: attachMapper looks the
// mapper number up in the dispatch table directly.
func SupportedMappers() []uint8 {
	ids := make([]uint8, 0, len(dispatch))
	for id := range dispatch {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
