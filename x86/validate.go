package x86

import (
	flags "github.com/astocko/asmjit/internal/flags"
)

// Options is the bitset of emission options presented to validation.
type Options uint32

const (
	OptRex       Options = 1 << iota // force a REX prefix (x64 only)
	OptVex3                          // force the 3-byte VEX form
	OptEvex                          // force the EVEX form
	OptOpCodeB                       // caller-supplied REX.B
	OptOpCodeX                       // caller-supplied REX.X
	OptOpCodeR                       // caller-supplied REX.R
	OptOpCodeW                       // caller-supplied REX.W
	OptMaskK                         // a writemask is attached as the extra operand
	OptMaskZ                         // the writemask zeroes instead of merging
	OptSAE                           // suppress-all-exceptions
	OptER                            // embedded rounding (implies SAE)
	OptBroadcast                     // broadcast the memory operand
)

const anyRegId = 0xFF

// translatedOp is the scratch row produced for each caller operand.
type translatedOp struct {
	flags    uint32
	memFlags uint16
	regId    uint8
}

// Validate checks that inst with the given options and operand vector is
// encodable on arch. The extra operand carries the AVX-512 writemask when
// OptMaskK is set and is nil otherwise. Validate is a pure function over the
// instruction database; it performs no allocation and has no side effects.
func Validate(arch Arch, inst Inst, opts Options, extra Arg, args ...Arg) error {
	if arch != ArchX86 && arch != ArchX64 {
		return ErrInvalidArch
	}
	if int(inst) >= len(instRecords) {
		return ErrInvalidArgument
	}
	vd := &archDataX86
	archBit := archMaskX86
	if arch == ArchX64 {
		vd = &archDataX64
		archBit = archMaskX64
	}
	rec := inst.record()

	var rows [maxOperands]translatedOp
	count := 0
	combFlags := uint32(0)
	var regMasks [regFamilyCount]uint32
	memIndex := -1
	memWidth := uint8(0)

	// translate operands; the vector ends at the first absent operand
	seenNone := false
	for _, arg := range args {
		if arg == nil {
			seenNone = true
			continue
		}
		if seenNone {
			return ErrInvalidState
		}
		if count == maxOperands {
			return ErrInvalidInstruction
		}
		row := &rows[count]
		row.regId = anyRegId

		switch a := arg.(type) {
		case Reg:
			f := regSigFlags(a)
			if f == 0 {
				return ErrInvalidRegType
			}
			row.flags = f
			id := a.Num()
			if id < VirtIdMin {
				if vd.regMasks[a.Family()]&(1<<id) == 0 {
					return ErrInvalidPhysId
				}
				regMasks[a.Family()] |= 1 << id
				row.regId = id
			}
		case Mem:
			row.flags = oMem
			if a.Index != 0 {
				fam := a.Index.Family()
				if int(fam) >= regFamilyCount || !vd.indexOK(a.Index) {
					return ErrInvalidAddress
				}
				switch fam {
				case REG_XMM:
					row.flags |= oVm
					row.memFlags |= mVm32x | mVm64x
				case REG_YMM:
					row.flags |= oVm
					row.memFlags |= mVm32y | mVm64y
				case REG_ZMM:
					row.flags |= oVm
					row.memFlags |= mVm32z | mVm64z
				}
				id := a.Index.Num()
				if id < VirtIdMin {
					if vd.regMasks[fam]&(1<<id) == 0 {
						return ErrInvalidPhysId
					}
					regMasks[fam] |= 1 << id
				}
			}
			if a.Base != 0 {
				fam := a.Base.Family()
				if int(fam) >= regFamilyCount || !vd.baseOK(a.Base) {
					return ErrInvalidAddress
				}
				id := a.Base.Num()
				if id < VirtIdMin {
					if vd.regMasks[fam]&(1<<id) == 0 {
						return ErrInvalidPhysId
					}
					regMasks[fam] |= 1 << id
				}
			}
			if row.memFlags == 0 {
				// no vector index; the element size selects the kind mask.
				// A broadcast memory operand is deliberately permissive here:
				// the element check in the AVX-512 phase owns that error.
				if a.Width == 0 || opts&OptBroadcast != 0 {
					row.memFlags = mAll
				} else {
					row.memFlags = memSizeFlag(a.Width)
				}
			}
			memIndex = count
			memWidth = a.Width
		case ImmArg:
			// conservative: width narrowing is the encoder's concern
			row.flags = oImm
		case RelArg:
			row.flags = oRel
		default:
			return ErrInvalidState
		}

		combFlags |= row.flags
		count++
	}

	// architecture-invariant checks
	if arch == ArchX86 && combFlags&oGpq != 0 {
		return ErrInvalidUseOfGpq
	}
	if arch == ArchX64 && combFlags&oGpbHi != 0 {
		// GPB-HI and the REX prefix are mutually exclusive
		for _, m := range regMasks {
			if m&0xFFFFFF00 != 0 {
				return ErrInvalidUseOfGpbHi
			}
		}
	}

	// signature scan: exact-count first, then skip-implicit; first match wins
	matched := false
SEARCH:
	for _, s := range rec.Signatures() {
		if s.archMask&archBit == 0 {
			continue
		}
		switch {
		case int(s.count) == count:
			for i := 0; i < count; i++ {
				if !sigMatch(&opSigs[s.ops[i]], &rows[i]) {
					continue SEARCH
				}
			}
		case int(s.count)-int(s.implicit) == count:
			ai := 0
			for pi := 0; pi < int(s.count); pi++ {
				ref := &opSigs[s.ops[pi]]
				if ref.flags&oImplicit != 0 {
					continue // the caller may omit implicit operands
				}
				if ai >= count || !sigMatch(ref, &rows[ai]) {
					continue SEARCH
				}
				ai++
			}
		default:
			continue SEARCH
		}
		matched = true
		break
	}
	if !matched {
		return ErrInvalidInstruction
	}

	// AVX-512 options
	if opts&(OptMaskK|OptMaskZ|OptSAE|OptER|OptBroadcast) != 0 {
		if opts&OptMaskZ != 0 && opts&OptMaskK == 0 {
			return ErrInvalidKZeroUse
		}
		if opts&OptMaskK != 0 {
			k, ok := extra.(Reg)
			if !ok || k.Family() != REG_K {
				return ErrInvalidKMaskReg
			}
			if !rec.HasFlag(flags.EVEX_K) {
				return ErrInvalidKMaskUse
			}
			if opts&OptMaskZ != 0 && !rec.HasFlag(flags.EVEX_KZ) {
				return ErrInvalidKZeroUse
			}
		}
		if opts&OptBroadcast != 0 {
			if memIndex < 0 {
				return ErrInvalidBroadcast
			}
			var elem uint8
			switch {
			case rec.HasFlag(flags.EVEX_B4):
				elem = 4
			case rec.HasFlag(flags.EVEX_B8):
				elem = 8
			default:
				return ErrInvalidBroadcast
			}
			if memWidth != 0 && memWidth != elem {
				return ErrInvalidBroadcast
			}
		}
		if opts&(OptSAE|OptER) != 0 {
			if memIndex >= 0 {
				return ErrInvalidSAEOrER
			}
			if opts&OptER != 0 {
				if !rec.HasFlag(flags.EVEX_ER) {
					return ErrInvalidSAEOrER
				}
				// rounding on vector forms is only defined at L=zmm
				if rec.HasFlag(flags.EVEX_B4 | flags.EVEX_B8) {
					zmm := (count > 0 && rows[0].flags&oZmm != 0) ||
						(count > 1 && rows[1].flags&oZmm != 0)
					if !zmm {
						return ErrInvalidSAEOrER
					}
				}
			} else if !rec.HasFlag(flags.EVEX_SAE) {
				return ErrInvalidSAEOrER
			}
		}
	}

	return nil
}

func sigMatch(ref *opSig, row *translatedOp) bool {
	if ref.flags&row.flags == 0 {
		return false
	}
	if row.memFlags != 0 && ref.memFlags&row.memFlags == 0 {
		return false
	}
	if ref.regMask != 0 && row.regId != anyRegId {
		if row.regId >= 8 || ref.regMask&(1<<row.regId) == 0 {
			return false
		}
	}
	return true
}

func regSigFlags(r Reg) uint32 {
	switch r.Family() {
	case REG_LEGACY:
		switch r.width() {
		case 1:
			return oGpbLo
		case 2:
			return oGpw
		case 4:
			return oGpd
		case 8:
			return oGpq
		}
	case REG_HIGHBYTE:
		return oGpbHi
	case REG_FP:
		return oFp
	case REG_MMX:
		return oMm
	case REG_XMM:
		return oXmm
	case REG_YMM:
		return oYmm
	case REG_ZMM:
		return oZmm
	case REG_K:
		return oK
	case REG_BND:
		return oBnd
	case REG_SEGMENT:
		return oSeg
	case REG_CONTROL:
		return oCr
	case REG_DEBUG:
		return oDr
	}
	return 0
}

func memSizeFlag(w uint8) uint16 {
	switch w {
	case 1:
		return mM8
	case 2:
		return mM16
	case 4:
		return mM32
	case 6:
		return mM48
	case 8:
		return mM64
	case 10:
		return mM80
	case 16:
		return mM128
	case 32:
		return mM256
	case 64:
		return mM512
	}
	return 0
}
