package x86

// Arch selects the target architecture for validation.
type Arch uint8

const (
	ArchNone Arch = iota
	ArchX86
	ArchX64
)

// archData holds the per-architecture validation tables: which physical
// register ids encode, and which register family/width pairs may serve as a
// memory base or index. Width sets are bit-sets of log2(width-in-bytes).
type archData struct {
	regMasks [regFamilyCount]uint32
	memBase  [regFamilyCount]uint8
	memIndex [regFamilyCount]uint8
}

func widthBit(w uint8) uint8 {
	n := uint8(0)
	for w > 1 {
		w >>= 1
		n++
	}
	return 1 << n
}

var archDataX86 = archData{
	regMasks: [regFamilyCount]uint32{
		REG_LEGACY:   0x000000FF,
		REG_RIP:      0x00000001,
		REG_HIGHBYTE: 0x000000F0,
		REG_FP:       0x000000FF,
		REG_MMX:      0x000000FF,
		REG_XMM:      0x000000FF,
		REG_YMM:      0x000000FF,
		REG_ZMM:      0x000000FF,
		REG_K:        0x000000FF,
		REG_BND:      0x0000000F,
		REG_SEGMENT:  0x0000003F,
		REG_CONTROL:  0x000000FF,
		REG_DEBUG:    0x000000FF,
	},
	memBase: [regFamilyCount]uint8{
		REG_LEGACY: 1 << 1 /* 16-bit */ | 1 << 2, /* 32-bit */
		REG_RIP:    1 << 2,
	},
	memIndex: [regFamilyCount]uint8{
		REG_LEGACY: 1 << 1 | 1 << 2,
		REG_XMM:    1 << 4,
		REG_YMM:    1 << 5,
		REG_ZMM:    1 << 6,
	},
}

var archDataX64 = archData{
	regMasks: [regFamilyCount]uint32{
		REG_LEGACY:   0x0000FFFF,
		REG_RIP:      0x00000001,
		REG_HIGHBYTE: 0x000000F0,
		REG_FP:       0x000000FF,
		REG_MMX:      0x000000FF,
		REG_XMM:      0xFFFFFFFF,
		REG_YMM:      0xFFFFFFFF,
		REG_ZMM:      0xFFFFFFFF,
		REG_K:        0x000000FF,
		REG_BND:      0x0000000F,
		REG_SEGMENT:  0x0000003F,
		REG_CONTROL:  0x0000FFFF,
		REG_DEBUG:    0x0000FFFF,
	},
	memBase: [regFamilyCount]uint8{
		REG_LEGACY: 1 << 2 | 1 << 3, /* 32- or 64-bit */
		REG_RIP:    1 << 3,
	},
	memIndex: [regFamilyCount]uint8{
		REG_LEGACY: 1 << 2 | 1 << 3,
		REG_XMM:    1 << 4,
		REG_YMM:    1 << 5,
		REG_ZMM:    1 << 6,
	},
}

func (d *archData) baseOK(r Reg) bool {
	return d.memBase[r.Family()]&widthBit(r.width()) != 0
}

func (d *archData) indexOK(r Reg) bool {
	return d.memIndex[r.Family()]&widthBit(r.width()) != 0
}
