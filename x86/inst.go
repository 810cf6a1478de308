package x86

import (
	"github.com/astocko/asmjit/x86/feats"
)

func hasFlag(flags, flag uint32) bool { return flags&flag != 0 }

// Inst identifies an instruction mnemonic. Ids are dense; InstNone is the
// zero id.
type Inst uint16

const InstNone Inst = 0

// Name returns the instruction mnemonic, or "" when the id is out of range.
func (inst Inst) Name() string {
	if int(inst) >= len(instRecords) {
		return ""
	}
	return nameFromBlob(instRecords[inst].nameOff)
}

// Record returns the instruction record. Record fails with
// ErrInvalidInstructionId when the id is out of range.
func Record(inst Inst) (*InstRecord, error) {
	if int(inst) >= len(instRecords) {
		return nil, ErrInvalidInstructionId
	}
	return &instRecords[inst], nil
}

func (inst Inst) record() *InstRecord { return &instRecords[inst] }

// InstCount returns the number of instruction ids, including InstNone.
func InstCount() int { return len(instRecords) }

// Instruction families for behavioral queries unrelated to encoding.
const (
	FamilyNone uint8 = iota
	FamilyFpu
	FamilySse
	FamilyAvx512
)

// InstRecord is the per-mnemonic database row. Records are immutable after
// package init.
type InstRecord struct {
	name        string
	encoding    Encoding
	opcode      Opcode
	altOpcode   Opcode // consumed by the encoder only; validation ignores it
	flags       uint32
	feats       feats.Feature
	eflags      EFlagsEffect
	writeIndex  uint8
	writeSize   uint8
	family      uint8
	familyIndex uint8
	sigGroup    uint8
	nameOff     uint16
	sigIndex    uint16
	sigCount    uint8
}

// Encoding returns the encoding-kind tag the encoder dispatches on.
func (r *InstRecord) Encoding() Encoding { return r.encoding }

// Opcode returns the primary opcode word.
func (r *InstRecord) Opcode() Opcode { return r.opcode }

// AltOpcode returns the alternate opcode word (reg-form vs. mem-form, or the
// CL form of shifts). Zero when the instruction has a single form.
func (r *InstRecord) AltOpcode() Opcode { return r.altOpcode }

// HasFlag checks an instruction flag (see internal/flags).
func (r *InstRecord) HasFlag(f uint32) bool { return hasFlag(r.flags, f) }

// Flags returns the full instruction flag set.
func (r *InstRecord) Flags() uint32 { return r.flags }

// Features returns the CPU features required by the instruction.
func (r *InstRecord) Features() feats.Feature { return r.feats }

// EFlags returns the packed EFLAGS effect of the instruction.
func (r *InstRecord) EFlags() EFlagsEffect { return r.eflags }

// WriteInfo returns the byte offset and size of the value written by a
// leading write-only operand. Consumed by register allocators; zero when not
// applicable.
func (r *InstRecord) WriteInfo() (index, size uint8) { return r.writeIndex, r.writeSize }

// Family returns the micro-architectural family kind and index.
func (r *InstRecord) Family() (kind, index uint8) { return r.family, r.familyIndex }

// Signatures returns the instruction's signature group as a slice of the
// shared signature table.
func (r *InstRecord) Signatures() []instSig {
	return instSigs[r.sigIndex : r.sigIndex+uint16(r.sigCount)]
}

// EFlagsEffect packs the per-flag effect of an instruction, four bits per
// flag in the order O, S, Z, A, P, C, D, X (X aggregates the lesser-known
// flags).
type EFlagsEffect uint32

// Per-flag effects
const (
	EFlagNone uint8 = iota
	EFlagR          // read
	EFlagW          // written
	EFlagRW         // read and written
	EFlagU          // undefined after execution
	EFlagT          // tested (conditional behavior)
)

// Flag indices for EFlagsEffect.Effect.
const (
	EfO uint8 = iota
	EfS
	EfZ
	EfA
	EfP
	EfC
	EfD
	EfX
)

// Effect returns the effect tag for one flag index (EfO..EfX).
func (e EFlagsEffect) Effect(flag uint8) uint8 { return uint8(e>>(4*flag)) & 0xF }

func ef(o, s, z, a, p, c, d, x uint8) EFlagsEffect {
	return EFlagsEffect(uint32(o) | uint32(s)<<4 | uint32(z)<<8 | uint32(a)<<12 |
		uint32(p)<<16 | uint32(c)<<20 | uint32(d)<<24 | uint32(x)<<28)
}

// Encoding selects how the encoder lays out ModR/M, immediates and implicit
// operands for an instruction. The tag is consumed by the external encoder
// and by compile-time index tables; validation carries it verbatim.
type Encoding uint8

const (
	EncNone Encoding = iota

	// Legacy
	EncX86Op
	EncX86Op_xAX
	EncX86Op_xDX_xAX
	EncX86Op_ZAX
	EncX86I_xAX
	EncX86Imm
	EncX86Rm
	EncX86Rm_NoSize
	EncX86M
	EncX86M_NoSize
	EncX86M_GPB
	EncX86M_Only
	EncX86Mr
	EncX86Arith
	EncX86Bswap
	EncX86Bt
	EncX86Call
	EncX86Cmpxchg
	EncX86Crc
	EncX86Enter
	EncX86Imul
	EncX86In
	EncX86IncDec
	EncX86Int
	EncX86Jcc
	EncX86JecxzLoop
	EncX86Jmp
	EncX86Lea
	EncX86Mov
	EncX86Movsxd
	EncX86MovsxMovzx
	EncX86Out
	EncX86Push
	EncX86Pop
	EncX86Ret
	EncX86Rot
	EncX86Set
	EncX86ShldShrd
	EncX86StrRm
	EncX86StrMr
	EncX86Test
	EncX86Xadd
	EncX86Xchg
	EncX86Fence

	// FPU
	EncFpuOp
	EncFpuArith
	EncFpuCom
	EncFpuFldFst
	EncFpuM
	EncFpuR
	EncFpuRDef
	EncFpuStsw

	// MMX/SSE
	EncExtRm
	EncExtRm_P
	EncExtRm_XMM0
	EncExtRm_Wx
	EncExtRmRi
	EncExtRmRi_P
	EncExtRmi
	EncExtRmi_P
	EncExtPextrw
	EncExtExtract
	EncExtMov
	EncExtMovd
	EncExtMovq
	EncExtMovbe
	Enc3dNow

	// VEX/XOP
	EncVexOp
	EncVexKmov
	EncVexM
	EncVexM_VM
	EncVexMr_Lx
	EncVexMr_VM
	EncVexMri
	EncVexMri_Lx
	EncVexRm
	EncVexRm_Wx
	EncVexRm_Lx
	EncVexRm_VM
	EncVexRmi
	EncVexRmi_Wx
	EncVexRmi_Lx
	EncVexRvm
	EncVexRvm_Wx
	EncVexRvm_Lx
	EncVexRmv
	EncVexRmv_Wx
	EncVexRmvRm_VM
	EncVexRmvi
	EncVexRvmi_Lx
	EncVexRvmr_Lx
	EncVexRvmRmi_Lx
	EncVexRvmMr
	EncVexRvmMvr_Lx
	EncVexRvrmRvmr_Lx
	EncVexVm
	EncVexVm_Wx
	EncVexVmi_Lx
	EncVexMovdMovq
	EncVexMovssMovsd

	// EVEX
	EncEvexRm
	EncEvexRvm
	EncEvexMr
	EncEvexRmi
	EncEvexRvmi

	encodingCount
)
