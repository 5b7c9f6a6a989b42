package cartridge

// buildINES assembles a minimal iNES image in memory: a 16 byte header
// followed by prgBanks*16KiB of PRG ROM and chrBanks*8KiB of CHR ROM (omitted
// entirely when chrBanks is 0, signalling CHR RAM to the loader).
func buildINES(mapperID uint8, prgBanks, chrBanks uint8, vertical, battery bool) []byte {
	var flags6 uint8
	if vertical {
		flags6 |= 0x01
	}
	if battery {
		flags6 |= 0x02
	}
	flags6 |= (mapperID & 0x0F) << 4
	flags7 := mapperID & 0xF0

	header := []byte{
		'N', 'E', 'S', 0x1A,
		prgBanks,
		chrBanks,
		flags6,
		flags7,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	data := make([]byte, 0, 16+int(prgBanks)*16384+int(chrBanks)*8192)
	data = append(data, header...)

	prg := make([]byte, int(prgBanks)*16384)
	for i := range prg {
		prg[i] = uint8((i / 0x2000) % 256)
	}
	data = append(data, prg...)

	if chrBanks > 0 {
		chr := make([]byte, int(chrBanks)*8192)
		for i := range chr {
			chr[i] = uint8((i / 0x400) % 256)
		}
		data = append(data, chr...)
	}

	return data
}
