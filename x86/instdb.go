package x86

import (
	. "github.com/astocko/asmjit/internal/flags"
	"github.com/astocko/asmjit/x86/feats"
)

// Instruction ids. Ids are dense and ordered the way the name index needs
// them: bucketed by first letter, alphabetical within a bucket, except the
// 'j' bucket where the conditional-jump family precedes jecxz/jmp.
const (
	_ Inst = iota // InstNone

	ADC
	ADD
	ADDPD
	ADDPS
	ADDSD
	ADDSS
	AND
	ANDNPD
	ANDNPS
	ANDPD
	ANDPS

	BSF
	BSR
	BSWAP
	BT
	BTC
	BTR
	BTS

	CALL
	CBW
	CDQ
	CDQE
	CLC
	CLD
	CMC
	CMOVA
	CMOVAE
	CMOVB
	CMOVBE
	CMOVE
	CMOVG
	CMOVGE
	CMOVL
	CMOVLE
	CMOVNE
	CMOVNO
	CMOVNP
	CMOVNS
	CMOVO
	CMOVP
	CMOVS
	CMP
	CMPPD
	CMPPS
	CMPXCHG
	CPUID
	CQO
	CWD
	CWDE

	DEC
	DIV
	DIVPD
	DIVPS
	DIVSD
	DIVSS

	EMMS
	ENTER

	FADD
	FADDP
	FCHS
	FCOM
	FCOMP
	FDIV
	FDIVP
	FILD
	FIST
	FISTP
	FLD
	FLD1
	FLDZ
	FMUL
	FMULP
	FNOP
	FSQRT
	FST
	FSTP
	FSUB
	FSUBP
	FUCOM
	FUCOMP
	FXCH

	HLT

	IDIV
	IMUL
	IN
	INC
	INT
	INT3

	JA
	JAE
	JB
	JBE
	JE
	JG
	JGE
	JL
	JLE
	JNE
	JNO
	JNP
	JNS
	JNZ
	JO
	JP
	JS
	JZ
	JECXZ
	JMP

	KANDW
	KMOVB
	KMOVD
	KMOVQ
	KMOVW
	KNOTW
	KORW
	KUNPCKBW
	KXNORW
	KXORW

	LAHF
	LEA
	LEAVE
	LFENCE
	LZCNT

	MAXPD
	MAXPS
	MAXSD
	MAXSS
	MFENCE
	MINPD
	MINPS
	MINSD
	MINSS
	MOV
	MOVAPD
	MOVAPS
	MOVD
	MOVDQA
	MOVDQU
	MOVQ
	MOVSS
	MOVSX
	MOVSXD
	MOVZX
	MUL
	MULPD
	MULPS
	MULSD
	MULSS

	NEG
	NOP
	NOT

	OR
	ORPD
	ORPS
	OUT

	PACKSSDW
	PACKSSWB
	PADDB
	PADDD
	PADDQ
	PADDW
	PAND
	PANDN
	PAUSE
	PCMPEQB
	PCMPEQD
	PCMPEQW
	PCMPGTB
	PCMPGTD
	PCMPGTW
	PEXTRW
	PINSRW
	PMADDWD
	PMULHW
	PMULLW
	POP
	POPCNT
	POR
	PSHUFD
	PSLLD
	PSLLQ
	PSLLW
	PSRAD
	PSRAW
	PSRLD
	PSRLQ
	PSRLW
	PSUBB
	PSUBD
	PSUBQ
	PSUBW
	PUNPCKHBW
	PUNPCKHDQ
	PUNPCKHWD
	PUNPCKLBW
	PUNPCKLDQ
	PUNPCKLWD
	PUSH
	PXOR

	RCL
	RCR
	RDTSC
	RET
	ROL
	ROR

	SAHF
	SAR
	SBB
	SETA
	SETAE
	SETB
	SETBE
	SETE
	SETG
	SETGE
	SETL
	SETLE
	SETNE
	SETNO
	SETNP
	SETNS
	SETO
	SETP
	SETS
	SFENCE
	SHL
	SHLD
	SHR
	SHRD
	SQRTPD
	SQRTPS
	SQRTSD
	SQRTSS
	STC
	STD
	SUB
	SUBPD
	SUBPS
	SUBSD
	SUBSS

	TEST
	TZCNT

	UCOMISD
	UCOMISS
	UNPCKHPD
	UNPCKHPS
	UNPCKLPD
	UNPCKLPS

	VADDPD
	VADDPS
	VADDSD
	VADDSS
	VANDPD
	VANDPS
	VDIVPD
	VDIVPS
	VGATHERDPD
	VGATHERDPS
	VGATHERQPD
	VGATHERQPS
	VMAXPD
	VMAXPS
	VMINPD
	VMINPS
	VMOVAPD
	VMOVAPS
	VMOVDQA
	VMOVDQA32
	VMOVDQA64
	VMOVDQU
	VMULPD
	VMULPS
	VORPD
	VORPS
	VPADDB
	VPADDD
	VPADDQ
	VPADDW
	VPAND
	VPANDD
	VPANDQ
	VPOR
	VPSLLD
	VPSLLQ
	VPSLLW
	VPSRAD
	VPSRAW
	VPSRLD
	VPSRLQ
	VPSRLW
	VPSUBB
	VPSUBD
	VPSUBQ
	VPSUBW
	VPXOR
	VSQRTPD
	VSQRTPS
	VSUBPD
	VSUBPS
	VXORPD
	VXORPS
	VZEROALL
	VZEROUPPER

	WBINVD

	XADD
	XCHG
	XOR
	XORPD
	XORPS
)

func inst(name string, enc Encoding, group uint8, opc Opcode, fl uint32, ft feats.Feature, efl EFlagsEffect) InstRecord {
	return InstRecord{name: name, encoding: enc, sigGroup: group, opcode: opc, flags: fl, feats: ft, eflags: efl}
}

func (r InstRecord) alt(o Opcode) InstRecord { r.altOpcode = o; return r }
func (r InstRecord) w(i, s uint8) InstRecord { r.writeIndex, r.writeSize = i, s; return r }
func (r InstRecord) fam(k uint8) InstRecord  { r.family = k; return r }

// EFLAGS effect shorthands.
var (
	efNone    = EFlagsEffect(0)
	efArith   = ef(EFlagW, EFlagW, EFlagW, EFlagW, EFlagW, EFlagW, EFlagNone, EFlagNone)
	efArithC  = ef(EFlagW, EFlagW, EFlagW, EFlagW, EFlagW, EFlagRW, EFlagNone, EFlagNone)
	efLogic   = ef(EFlagW, EFlagW, EFlagW, EFlagU, EFlagW, EFlagW, EFlagNone, EFlagNone)
	efIncDec  = ef(EFlagW, EFlagW, EFlagW, EFlagW, EFlagW, EFlagNone, EFlagNone, EFlagNone)
	efShift   = ef(EFlagU, EFlagW, EFlagW, EFlagU, EFlagW, EFlagW, EFlagNone, EFlagNone)
	efBt      = ef(EFlagU, EFlagU, EFlagNone, EFlagU, EFlagU, EFlagW, EFlagNone, EFlagNone)
	efMul     = ef(EFlagW, EFlagU, EFlagU, EFlagU, EFlagU, EFlagW, EFlagNone, EFlagNone)
	efDiv     = ef(EFlagU, EFlagU, EFlagU, EFlagU, EFlagU, EFlagU, EFlagNone, EFlagNone)
	efCond    = ef(EFlagT, EFlagT, EFlagT, EFlagNone, EFlagT, EFlagT, EFlagNone, EFlagNone)
	efBitScan = ef(EFlagU, EFlagU, EFlagW, EFlagU, EFlagU, EFlagU, EFlagNone, EFlagNone)
	efCnt     = ef(EFlagU, EFlagU, EFlagW, EFlagU, EFlagU, EFlagW, EFlagNone, EFlagNone)
	efSahf    = ef(EFlagNone, EFlagW, EFlagW, EFlagW, EFlagW, EFlagW, EFlagNone, EFlagNone)
	efLahf    = ef(EFlagNone, EFlagR, EFlagR, EFlagR, EFlagR, EFlagR, EFlagNone, EFlagNone)
	efCarry   = ef(EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagW, EFlagNone, EFlagNone)
	efCmc     = ef(EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagRW, EFlagNone, EFlagNone)
	efDir     = ef(EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagW, EFlagNone)
	efFpu     = ef(EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagNone, EFlagW)
)

const lockRW = LOCK | XACQUIRE | XRELEASE | RW

var instRecords = [...]InstRecord{
	InstNone: {},

	ADC:    inst("adc", EncX86Arith, gArith, op(0x10), lockRW, feats.BASE, efArithC).alt(op(0x80).WithModO(2)),
	ADD:    inst("add", EncX86Arith, gArith, op(0x00), lockRW, feats.BASE, efArith).alt(op(0x80).WithModO(0)),
	ADDPD:  inst("addpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x58), RW, feats.SSE2, efNone).fam(FamilySse),
	ADDPS:  inst("addps", EncExtRm, gSseRm, op0F(0x58), RW, feats.SSE, efNone).fam(FamilySse),
	ADDSD:  inst("addsd", EncExtRm, gSseRmSd, opPM(PrefixF2, Map0F, 0x58), RW, feats.SSE2, efNone).fam(FamilySse),
	ADDSS:  inst("addss", EncExtRm, gSseRmSs, opPM(PrefixF3, Map0F, 0x58), RW, feats.SSE, efNone).fam(FamilySse),
	AND:    inst("and", EncX86Arith, gArith, op(0x20), lockRW, feats.BASE, efLogic).alt(op(0x80).WithModO(4)),
	ANDNPD: inst("andnpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x55), RW, feats.SSE2, efNone).fam(FamilySse),
	ANDNPS: inst("andnps", EncExtRm, gSseRm, op0F(0x55), RW, feats.SSE, efNone).fam(FamilySse),
	ANDPD:  inst("andpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x54), RW, feats.SSE2, efNone).fam(FamilySse),
	ANDPS:  inst("andps", EncExtRm, gSseRm, op0F(0x54), RW, feats.SSE, efNone).fam(FamilySse),

	BSF:   inst("bsf", EncX86Rm, gBitScan, op0F(0xBC), WO, feats.BASE, efBitScan),
	BSR:   inst("bsr", EncX86Rm, gBitScan, op0F(0xBD), WO, feats.BASE, efBitScan),
	BSWAP: inst("bswap", EncX86Bswap, gBswap, op0F(0xC8), RW, feats.BASE, efNone),
	BT:    inst("bt", EncX86Bt, gBt, op0F(0xA3), RO, feats.BASE, efBt).alt(op0F(0xBA).WithModO(4)),
	BTC:   inst("btc", EncX86Bt, gBt, op0F(0xBB), lockRW, feats.BASE, efBt).alt(op0F(0xBA).WithModO(7)),
	BTR:   inst("btr", EncX86Bt, gBt, op0F(0xB3), lockRW, feats.BASE, efBt).alt(op0F(0xBA).WithModO(6)),
	BTS:   inst("bts", EncX86Bt, gBt, op0F(0xAB), lockRW, feats.BASE, efBt).alt(op0F(0xBA).WithModO(5)),

	CALL:    inst("call", EncX86Call, gJmpCall, op(0xE8), FLOW | VOLATILE, feats.BASE, efNone).alt(op(0xFF).WithModO(2)),
	CBW:     inst("cbw", EncX86Op_xAX, gNullary, opPM(Prefix66, MapNone, 0x98), SPECIAL, feats.BASE, efNone),
	CDQ:     inst("cdq", EncX86Op_xDX_xAX, gNullary, op(0x99), SPECIAL, feats.BASE, efNone),
	CDQE:    inst("cdqe", EncX86Op_xAX, gNullary, op(0x98).WithW(), SPECIAL, feats.BASE, efNone),
	CLC:     inst("clc", EncX86Op, gNullary, op(0xF8), DEFAULT, feats.BASE, efCarry),
	CLD:     inst("cld", EncX86Op, gNullary, op(0xFC), DEFAULT, feats.BASE, efDir),
	CMC:     inst("cmc", EncX86Op, gNullary, op(0xF5), DEFAULT, feats.BASE, efCmc),
	CMOVA:   inst("cmova", EncX86Rm, gCmov, op0F(0x47), RW, feats.BASE, efCond),
	CMOVAE:  inst("cmovae", EncX86Rm, gCmov, op0F(0x43), RW, feats.BASE, efCond),
	CMOVB:   inst("cmovb", EncX86Rm, gCmov, op0F(0x42), RW, feats.BASE, efCond),
	CMOVBE:  inst("cmovbe", EncX86Rm, gCmov, op0F(0x46), RW, feats.BASE, efCond),
	CMOVE:   inst("cmove", EncX86Rm, gCmov, op0F(0x44), RW, feats.BASE, efCond),
	CMOVG:   inst("cmovg", EncX86Rm, gCmov, op0F(0x4F), RW, feats.BASE, efCond),
	CMOVGE:  inst("cmovge", EncX86Rm, gCmov, op0F(0x4D), RW, feats.BASE, efCond),
	CMOVL:   inst("cmovl", EncX86Rm, gCmov, op0F(0x4C), RW, feats.BASE, efCond),
	CMOVLE:  inst("cmovle", EncX86Rm, gCmov, op0F(0x4E), RW, feats.BASE, efCond),
	CMOVNE:  inst("cmovne", EncX86Rm, gCmov, op0F(0x45), RW, feats.BASE, efCond),
	CMOVNO:  inst("cmovno", EncX86Rm, gCmov, op0F(0x41), RW, feats.BASE, efCond),
	CMOVNP:  inst("cmovnp", EncX86Rm, gCmov, op0F(0x4B), RW, feats.BASE, efCond),
	CMOVNS:  inst("cmovns", EncX86Rm, gCmov, op0F(0x49), RW, feats.BASE, efCond),
	CMOVO:   inst("cmovo", EncX86Rm, gCmov, op0F(0x40), RW, feats.BASE, efCond),
	CMOVP:   inst("cmovp", EncX86Rm, gCmov, op0F(0x4A), RW, feats.BASE, efCond),
	CMOVS:   inst("cmovs", EncX86Rm, gCmov, op0F(0x48), RW, feats.BASE, efCond),
	CMP:     inst("cmp", EncX86Arith, gArith, op(0x38), RO, feats.BASE, efArith).alt(op(0x80).WithModO(7)),
	CMPPD:   inst("cmppd", EncExtRmi, gSseRmi, opPM(Prefix66, Map0F, 0xC2), RW, feats.SSE2, efNone).fam(FamilySse),
	CMPPS:   inst("cmpps", EncExtRmi, gSseRmi, op0F(0xC2), RW, feats.SSE, efNone).fam(FamilySse),
	CMPXCHG: inst("cmpxchg", EncX86Cmpxchg, gCmpxchg, op0F(0xB0), lockRW | SPECIAL, feats.BASE, efArith).alt(op0F(0xB1)),
	CPUID:   inst("cpuid", EncX86Op, gNullary, op0F(0xA2), SPECIAL | VOLATILE, feats.BASE, efNone),
	CQO:     inst("cqo", EncX86Op_xDX_xAX, gNullary, op(0x99).WithW(), SPECIAL, feats.BASE, efNone),
	CWD:     inst("cwd", EncX86Op_xDX_xAX, gNullary, opPM(Prefix66, MapNone, 0x99), SPECIAL, feats.BASE, efNone),
	CWDE:    inst("cwde", EncX86Op_xAX, gNullary, op(0x98), SPECIAL, feats.BASE, efNone),

	DEC:   inst("dec", EncX86IncDec, gIncDec, op(0xFF).WithModO(1), lockRW, feats.BASE, efIncDec).alt(op(0xFE).WithModO(1)),
	DIV:   inst("div", EncX86Rm, gMulDiv, op(0xF7).WithModO(6), SPECIAL | RW, feats.BASE, efDiv).alt(op(0xF6).WithModO(6)),
	DIVPD: inst("divpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x5E), RW, feats.SSE2, efNone).fam(FamilySse),
	DIVPS: inst("divps", EncExtRm, gSseRm, op0F(0x5E), RW, feats.SSE, efNone).fam(FamilySse),
	DIVSD: inst("divsd", EncExtRm, gSseRmSd, opPM(PrefixF2, Map0F, 0x5E), RW, feats.SSE2, efNone).fam(FamilySse),
	DIVSS: inst("divss", EncExtRm, gSseRmSs, opPM(PrefixF3, Map0F, 0x5E), RW, feats.SSE, efNone).fam(FamilySse),

	EMMS:  inst("emms", EncX86Op, gNullary, op0F(0x77), VOLATILE, feats.MMX, efNone).fam(FamilyFpu),
	ENTER: inst("enter", EncX86Enter, gEnter, op(0xC8), SPECIAL | VOLATILE, feats.BASE, efNone),

	FADD:   inst("fadd", EncFpuArith, gFpuArith, op(0xD8).WithModO(0), DEFAULT, feats.FPU, efFpu).alt(op(0xDC).WithModO(0)).fam(FamilyFpu),
	FADDP:  inst("faddp", EncFpuRDef, gFpuArithP, op(0xDE).WithModO(0), DEFAULT, feats.FPU, efFpu).fam(FamilyFpu),
	FCHS:   inst("fchs", EncFpuOp, gNullary, op(0xD9).WithModO(4), DEFAULT, feats.FPU, efFpu).fam(FamilyFpu),
	FCOM:   inst("fcom", EncFpuCom, gFpuCom, op(0xD8).WithModO(2), DEFAULT, feats.FPU, efFpu).alt(op(0xDC).WithModO(2)).fam(FamilyFpu),
	FCOMP:  inst("fcomp", EncFpuCom, gFpuCom, op(0xD8).WithModO(3), DEFAULT, feats.FPU, efFpu).alt(op(0xDC).WithModO(3)).fam(FamilyFpu),
	FDIV:   inst("fdiv", EncFpuArith, gFpuArith, op(0xD8).WithModO(6), DEFAULT, feats.FPU, efFpu).alt(op(0xDC).WithModO(6)).fam(FamilyFpu),
	FDIVP:  inst("fdivp", EncFpuRDef, gFpuArithP, op(0xDE).WithModO(7), DEFAULT, feats.FPU, efFpu).fam(FamilyFpu),
	FILD:   inst("fild", EncFpuM, gFild, op(0xDF).WithModO(0), DEFAULT, feats.FPU, efFpu).alt(op(0xDB).WithModO(0)).fam(FamilyFpu),
	FIST:   inst("fist", EncFpuM, gFist, op(0xDF).WithModO(2), DEFAULT, feats.FPU, efFpu).alt(op(0xDB).WithModO(2)).fam(FamilyFpu),
	FISTP:  inst("fistp", EncFpuM, gFistp, op(0xDF).WithModO(3), DEFAULT, feats.FPU, efFpu).alt(op(0xDB).WithModO(3)).fam(FamilyFpu),
	FLD:    inst("fld", EncFpuFldFst, gFld, op(0xD9).WithModO(0), SPECIAL, feats.FPU, efFpu).alt(op(0xDD).WithModO(0)).fam(FamilyFpu),
	FLD1:   inst("fld1", EncFpuOp, gNullary, op(0xD9).WithModO(5), SPECIAL, feats.FPU, efFpu).fam(FamilyFpu),
	FLDZ:   inst("fldz", EncFpuOp, gNullary, op(0xD9).WithModO(5), SPECIAL, feats.FPU, efFpu).fam(FamilyFpu),
	FMUL:   inst("fmul", EncFpuArith, gFpuArith, op(0xD8).WithModO(1), DEFAULT, feats.FPU, efFpu).alt(op(0xDC).WithModO(1)).fam(FamilyFpu),
	FMULP:  inst("fmulp", EncFpuRDef, gFpuArithP, op(0xDE).WithModO(1), DEFAULT, feats.FPU, efFpu).fam(FamilyFpu),
	FNOP:   inst("fnop", EncFpuOp, gNullary, op(0xD9).WithModO(2), DEFAULT, feats.FPU, efNone).fam(FamilyFpu),
	FSQRT:  inst("fsqrt", EncFpuOp, gNullary, op(0xD9).WithModO(7), DEFAULT, feats.FPU, efFpu).fam(FamilyFpu),
	FST:    inst("fst", EncFpuFldFst, gFst, op(0xD9).WithModO(2), DEFAULT, feats.FPU, efFpu).alt(op(0xDD).WithModO(2)).fam(FamilyFpu),
	FSTP:   inst("fstp", EncFpuFldFst, gFstp, op(0xD9).WithModO(3), SPECIAL, feats.FPU, efFpu).alt(op(0xDD).WithModO(3)).fam(FamilyFpu),
	FSUB:   inst("fsub", EncFpuArith, gFpuArith, op(0xD8).WithModO(4), DEFAULT, feats.FPU, efFpu).alt(op(0xDC).WithModO(4)).fam(FamilyFpu),
	FSUBP:  inst("fsubp", EncFpuRDef, gFpuArithP, op(0xDE).WithModO(5), DEFAULT, feats.FPU, efFpu).fam(FamilyFpu),
	FUCOM:  inst("fucom", EncFpuR, gFpuR, op(0xDD).WithModO(4), DEFAULT, feats.FPU, efFpu).fam(FamilyFpu),
	FUCOMP: inst("fucomp", EncFpuR, gFpuR, op(0xDD).WithModO(5), DEFAULT, feats.FPU, efFpu).fam(FamilyFpu),
	FXCH:   inst("fxch", EncFpuR, gFpuR, op(0xD9).WithModO(1), DEFAULT, feats.FPU, efFpu).fam(FamilyFpu),

	HLT: inst("hlt", EncX86Op, gNullary, op(0xF4), VOLATILE, feats.BASE, efNone),

	IDIV: inst("idiv", EncX86Rm, gMulDiv, op(0xF7).WithModO(7), SPECIAL | RW, feats.BASE, efDiv).alt(op(0xF6).WithModO(7)),
	IMUL: inst("imul", EncX86Imul, gImul, op(0xF7).WithModO(5), SPECIAL | RW, feats.BASE, efMul).alt(op0F(0xAF)),
	IN:   inst("in", EncX86In, gIn, op(0xE4), WO | SPECIAL | VOLATILE, feats.BASE, efNone).alt(op(0xEC)),
	INC:  inst("inc", EncX86IncDec, gIncDec, op(0xFF).WithModO(0), lockRW, feats.BASE, efIncDec).alt(op(0xFE).WithModO(0)),
	INT:  inst("int", EncX86Int, gInt, op(0xCD), FLOW | VOLATILE, feats.BASE, efNone),
	INT3: inst("int3", EncX86Op, gNullary, op(0xCC), FLOW | VOLATILE, feats.BASE, efNone),

	JA:    inst("ja", EncX86Jcc, gJcc, op(0x77), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x87)),
	JAE:   inst("jae", EncX86Jcc, gJcc, op(0x73), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x83)),
	JB:    inst("jb", EncX86Jcc, gJcc, op(0x72), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x82)),
	JBE:   inst("jbe", EncX86Jcc, gJcc, op(0x76), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x86)),
	JE:    inst("je", EncX86Jcc, gJcc, op(0x74), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x84)),
	JG:    inst("jg", EncX86Jcc, gJcc, op(0x7F), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x8F)),
	JGE:   inst("jge", EncX86Jcc, gJcc, op(0x7D), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x8D)),
	JL:    inst("jl", EncX86Jcc, gJcc, op(0x7C), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x8C)),
	JLE:   inst("jle", EncX86Jcc, gJcc, op(0x7E), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x8E)),
	JNE:   inst("jne", EncX86Jcc, gJcc, op(0x75), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x85)),
	JNO:   inst("jno", EncX86Jcc, gJcc, op(0x71), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x81)),
	JNP:   inst("jnp", EncX86Jcc, gJcc, op(0x7B), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x8B)),
	JNS:   inst("jns", EncX86Jcc, gJcc, op(0x79), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x89)),
	JNZ:   inst("jnz", EncX86Jcc, gJcc, op(0x75), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x85)),
	JO:    inst("jo", EncX86Jcc, gJcc, op(0x70), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x80)),
	JP:    inst("jp", EncX86Jcc, gJcc, op(0x7A), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x8A)),
	JS:    inst("js", EncX86Jcc, gJcc, op(0x78), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x88)),
	JZ:    inst("jz", EncX86Jcc, gJcc, op(0x74), FLOW | VOLATILE, feats.BASE, efCond).alt(op0F(0x84)),
	JECXZ: inst("jecxz", EncX86JecxzLoop, gJecxz, op(0xE3), FLOW | VOLATILE | SPECIAL, feats.BASE, efNone),
	JMP:   inst("jmp", EncX86Jmp, gJmpCall, op(0xE9), FLOW | VOLATILE, feats.BASE, efNone).alt(op(0xFF).WithModO(4)),

	KANDW:    inst("kandw", EncVexRvm, gKOp, op0F(0x41), WO | VEX_OP, feats.AVX512F, efNone).fam(FamilyAvx512),
	KMOVB:    inst("kmovb", EncVexKmov, gKmovB, opPM(Prefix66, Map0F, 0x90), WO | VEX_OP, feats.AVX512DQ, efNone).fam(FamilyAvx512),
	KMOVD:    inst("kmovd", EncVexKmov, gKmovD, opPM(Prefix66, Map0F, 0x90).WithW(), WO | VEX_OP, feats.AVX512BW, efNone).fam(FamilyAvx512),
	KMOVQ:    inst("kmovq", EncVexKmov, gKmovQ, opPM(PrefixF2, Map0F, 0x90).WithW(), WO | VEX_OP, feats.AVX512BW, efNone).fam(FamilyAvx512),
	KMOVW:    inst("kmovw", EncVexKmov, gKmovW, op0F(0x90), WO | VEX_OP, feats.AVX512F, efNone).fam(FamilyAvx512),
	KNOTW:    inst("knotw", EncVexRm, gKNot, op0F(0x44), WO | VEX_OP, feats.AVX512F, efNone).fam(FamilyAvx512),
	KORW:     inst("korw", EncVexRvm, gKOp, op0F(0x45), WO | VEX_OP, feats.AVX512F, efNone).fam(FamilyAvx512),
	KUNPCKBW: inst("kunpckbw", EncVexRvm, gKOp, opPM(Prefix66, Map0F, 0x4B), WO | VEX_OP, feats.AVX512F, efNone).fam(FamilyAvx512),
	KXNORW:   inst("kxnorw", EncVexRvm, gKOp, op0F(0x46), WO | VEX_OP, feats.AVX512F, efNone).fam(FamilyAvx512),
	KXORW:    inst("kxorw", EncVexRvm, gKOp, op0F(0x47), WO | VEX_OP, feats.AVX512F, efNone).fam(FamilyAvx512),

	LAHF:   inst("lahf", EncX86Op_xAX, gNullary, op(0x9F), SPECIAL, feats.BASE, efLahf),
	LEA:    inst("lea", EncX86Lea, gLea, op(0x8D), WO, feats.BASE, efNone),
	LEAVE:  inst("leave", EncX86Op, gNullary, op(0xC9), SPECIAL | VOLATILE, feats.BASE, efNone),
	LFENCE: inst("lfence", EncX86Fence, gNullary, op0F(0xAE).WithModO(5), VOLATILE, feats.SSE2, efNone),
	LZCNT:  inst("lzcnt", EncX86Rm, gBitScan, opPM(PrefixF3, Map0F, 0xBD), WO, feats.LZCNT, efCnt),

	MAXPD:  inst("maxpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x5F), RW, feats.SSE2, efNone).fam(FamilySse),
	MAXPS:  inst("maxps", EncExtRm, gSseRm, op0F(0x5F), RW, feats.SSE, efNone).fam(FamilySse),
	MAXSD:  inst("maxsd", EncExtRm, gSseRmSd, opPM(PrefixF2, Map0F, 0x5F), RW, feats.SSE2, efNone).fam(FamilySse),
	MAXSS:  inst("maxss", EncExtRm, gSseRmSs, opPM(PrefixF3, Map0F, 0x5F), RW, feats.SSE, efNone).fam(FamilySse),
	MFENCE: inst("mfence", EncX86Fence, gNullary, op0F(0xAE).WithModO(6), VOLATILE, feats.SSE2, efNone),
	MINPD:  inst("minpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x5D), RW, feats.SSE2, efNone).fam(FamilySse),
	MINPS:  inst("minps", EncExtRm, gSseRm, op0F(0x5D), RW, feats.SSE, efNone).fam(FamilySse),
	MINSD:  inst("minsd", EncExtRm, gSseRmSd, opPM(PrefixF2, Map0F, 0x5D), RW, feats.SSE2, efNone).fam(FamilySse),
	MINSS:  inst("minss", EncExtRm, gSseRmSs, opPM(PrefixF3, Map0F, 0x5D), RW, feats.SSE, efNone).fam(FamilySse),
	MOV:    inst("mov", EncX86Mov, gMov, op(0x88), WO, feats.BASE, efNone).alt(op(0xC6).WithModO(0)),
	MOVAPD: inst("movapd", EncExtMov, gSseMov, opPM(Prefix66, Map0F, 0x28), WO, feats.SSE2, efNone).alt(opPM(Prefix66, Map0F, 0x29)).w(0, 16).fam(FamilySse),
	MOVAPS: inst("movaps", EncExtMov, gSseMov, op0F(0x28), WO, feats.SSE, efNone).alt(op0F(0x29)).w(0, 16).fam(FamilySse),
	MOVD:   inst("movd", EncExtMovd, gMovd, opPM(Prefix66, Map0F, 0x6E), WO | ZERO_MEM, feats.MMX | feats.SSE2, efNone).alt(opPM(Prefix66, Map0F, 0x7E)).w(0, 16).fam(FamilySse),
	MOVDQA: inst("movdqa", EncExtMov, gSseMov, opPM(Prefix66, Map0F, 0x6F), WO, feats.SSE2, efNone).alt(opPM(Prefix66, Map0F, 0x7F)).w(0, 16).fam(FamilySse),
	MOVDQU: inst("movdqu", EncExtMov, gSseMov, opPM(PrefixF3, Map0F, 0x6F), WO, feats.SSE2, efNone).alt(opPM(PrefixF3, Map0F, 0x7F)).w(0, 16).fam(FamilySse),
	MOVQ:   inst("movq", EncExtMovq, gMovq, op0F(0x6F), WO | ZERO_MEM, feats.MMX | feats.SSE2, efNone).alt(op0F(0x7F)).w(0, 16).fam(FamilySse),
	MOVSS:  inst("movss", EncExtMov, gSseMovss, opPM(PrefixF3, Map0F, 0x10), WO, feats.SSE, efNone).alt(opPM(PrefixF3, Map0F, 0x11)).fam(FamilySse),
	MOVSX:  inst("movsx", EncX86MovsxMovzx, gMovsxMovzx, op0F(0xBE), WO, feats.BASE, efNone).alt(op0F(0xBF)),
	MOVSXD: inst("movsxd", EncX86Movsxd, gMovsxd, op(0x63), WO, feats.BASE, efNone),
	MOVZX:  inst("movzx", EncX86MovsxMovzx, gMovsxMovzx, op0F(0xB6), WO, feats.BASE, efNone).alt(op0F(0xB7)),
	MUL:    inst("mul", EncX86Rm, gMulDiv, op(0xF7).WithModO(4), SPECIAL | RW, feats.BASE, efMul).alt(op(0xF6).WithModO(4)),
	MULPD:  inst("mulpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x59), RW, feats.SSE2, efNone).fam(FamilySse),
	MULPS:  inst("mulps", EncExtRm, gSseRm, op0F(0x59), RW, feats.SSE, efNone).fam(FamilySse),
	MULSD:  inst("mulsd", EncExtRm, gSseRmSd, opPM(PrefixF2, Map0F, 0x59), RW, feats.SSE2, efNone).fam(FamilySse),
	MULSS:  inst("mulss", EncExtRm, gSseRmSs, opPM(PrefixF3, Map0F, 0x59), RW, feats.SSE, efNone).fam(FamilySse),

	NEG: inst("neg", EncX86M_GPB, gIncDec, op(0xF7).WithModO(3), lockRW, feats.BASE, efArith).alt(op(0xF6).WithModO(3)),
	NOP: inst("nop", EncX86Op, gNullary, op(0x90), DEFAULT, feats.BASE, efNone),
	NOT: inst("not", EncX86M_GPB, gIncDec, op(0xF7).WithModO(2), lockRW, feats.BASE, efNone).alt(op(0xF6).WithModO(2)),

	OR:   inst("or", EncX86Arith, gArith, op(0x08), lockRW, feats.BASE, efLogic).alt(op(0x80).WithModO(1)),
	ORPD: inst("orpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x56), RW, feats.SSE2, efNone).fam(FamilySse),
	ORPS: inst("orps", EncExtRm, gSseRm, op0F(0x56), RW, feats.SSE, efNone).fam(FamilySse),
	OUT:  inst("out", EncX86Out, gOut, op(0xE6), RO | SPECIAL | VOLATILE, feats.BASE, efNone).alt(op(0xEE)),

	PACKSSDW:  inst("packssdw", EncExtRm_P, gExtPi, op0F(0x6B), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PACKSSWB:  inst("packsswb", EncExtRm_P, gExtPi, op0F(0x63), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PADDB:     inst("paddb", EncExtRm_P, gExtPi, op0F(0xFC), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PADDD:     inst("paddd", EncExtRm_P, gExtPi, op0F(0xFE), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PADDQ:     inst("paddq", EncExtRm_P, gExtPi, op0F(0xD4), RW, feats.SSE2, efNone).fam(FamilySse),
	PADDW:     inst("paddw", EncExtRm_P, gExtPi, op0F(0xFD), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PAND:      inst("pand", EncExtRm_P, gExtPi, op0F(0xDB), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PANDN:     inst("pandn", EncExtRm_P, gExtPi, op0F(0xDF), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PAUSE:     inst("pause", EncX86Op, gNullary, opPM(PrefixF3, MapNone, 0x90), VOLATILE, feats.BASE, efNone),
	PCMPEQB:   inst("pcmpeqb", EncExtRm_P, gExtPi, op0F(0x74), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PCMPEQD:   inst("pcmpeqd", EncExtRm_P, gExtPi, op0F(0x76), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PCMPEQW:   inst("pcmpeqw", EncExtRm_P, gExtPi, op0F(0x75), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PCMPGTB:   inst("pcmpgtb", EncExtRm_P, gExtPi, op0F(0x64), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PCMPGTD:   inst("pcmpgtd", EncExtRm_P, gExtPi, op0F(0x66), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PCMPGTW:   inst("pcmpgtw", EncExtRm_P, gExtPi, op0F(0x65), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PEXTRW:    inst("pextrw", EncExtPextrw, gPextrw, op0F(0xC5), WO, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PINSRW:    inst("pinsrw", EncExtRmi_P, gPinsrw, op0F(0xC4), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PMADDWD:   inst("pmaddwd", EncExtRm_P, gExtPi, op0F(0xF5), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PMULHW:    inst("pmulhw", EncExtRm_P, gExtPi, op0F(0xE5), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PMULLW:    inst("pmullw", EncExtRm_P, gExtPi, op0F(0xD5), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	POP:       inst("pop", EncX86Pop, gPop, op(0x58), WO | SPECIAL | VOLATILE, feats.BASE, efNone).alt(op(0x8F).WithModO(0)),
	POPCNT:    inst("popcnt", EncX86Rm, gBitScan, opPM(PrefixF3, Map0F, 0xB8), WO, feats.POPCNT, efArith),
	POR:       inst("por", EncExtRm_P, gExtPi, op0F(0xEB), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PSHUFD:    inst("pshufd", EncExtRmi, gSseRmi, opPM(Prefix66, Map0F, 0x70), WO, feats.SSE2, efNone).w(0, 16).fam(FamilySse),
	PSLLD:     inst("pslld", EncExtRmRi_P, gExtPiShift, op0F(0xF2), RW, feats.MMX | feats.SSE2, efNone).alt(op0F(0x72).WithModO(6)).fam(FamilySse),
	PSLLQ:     inst("psllq", EncExtRmRi_P, gExtPiShift, op0F(0xF3), RW, feats.MMX | feats.SSE2, efNone).alt(op0F(0x73).WithModO(6)).fam(FamilySse),
	PSLLW:     inst("psllw", EncExtRmRi_P, gExtPiShift, op0F(0xF1), RW, feats.MMX | feats.SSE2, efNone).alt(op0F(0x71).WithModO(6)).fam(FamilySse),
	PSRAD:     inst("psrad", EncExtRmRi_P, gExtPiShift, op0F(0xE2), RW, feats.MMX | feats.SSE2, efNone).alt(op0F(0x72).WithModO(4)).fam(FamilySse),
	PSRAW:     inst("psraw", EncExtRmRi_P, gExtPiShift, op0F(0xE1), RW, feats.MMX | feats.SSE2, efNone).alt(op0F(0x71).WithModO(4)).fam(FamilySse),
	PSRLD:     inst("psrld", EncExtRmRi_P, gExtPiShift, op0F(0xD2), RW, feats.MMX | feats.SSE2, efNone).alt(op0F(0x72).WithModO(2)).fam(FamilySse),
	PSRLQ:     inst("psrlq", EncExtRmRi_P, gExtPiShift, op0F(0xD3), RW, feats.MMX | feats.SSE2, efNone).alt(op0F(0x73).WithModO(2)).fam(FamilySse),
	PSRLW:     inst("psrlw", EncExtRmRi_P, gExtPiShift, op0F(0xD1), RW, feats.MMX | feats.SSE2, efNone).alt(op0F(0x71).WithModO(2)).fam(FamilySse),
	PSUBB:     inst("psubb", EncExtRm_P, gExtPi, op0F(0xF8), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PSUBD:     inst("psubd", EncExtRm_P, gExtPi, op0F(0xFA), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PSUBQ:     inst("psubq", EncExtRm_P, gExtPi, op0F(0xFB), RW, feats.SSE2, efNone).fam(FamilySse),
	PSUBW:     inst("psubw", EncExtRm_P, gExtPi, op0F(0xF9), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PUNPCKHBW: inst("punpckhbw", EncExtRm_P, gExtPi, op0F(0x68), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PUNPCKHDQ: inst("punpckhdq", EncExtRm_P, gExtPi, op0F(0x6A), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PUNPCKHWD: inst("punpckhwd", EncExtRm_P, gExtPi, op0F(0x69), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PUNPCKLBW: inst("punpcklbw", EncExtRm_P, gExtPi, op0F(0x60), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PUNPCKLDQ: inst("punpckldq", EncExtRm_P, gExtPi, op0F(0x62), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PUNPCKLWD: inst("punpcklwd", EncExtRm_P, gExtPi, op0F(0x61), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),
	PUSH:      inst("push", EncX86Push, gPush, op(0x50), RO | SPECIAL | VOLATILE, feats.BASE, efNone).alt(op(0xFF).WithModO(6)),
	PXOR:      inst("pxor", EncExtRm_P, gExtPi, op0F(0xEF), RW, feats.MMX | feats.SSE2, efNone).fam(FamilySse),

	RCL:   inst("rcl", EncX86Rot, gRot, op(0xC0).WithModO(2), RW, feats.BASE, efCmc).alt(op(0xD2).WithModO(2)),
	RCR:   inst("rcr", EncX86Rot, gRot, op(0xC0).WithModO(3), RW, feats.BASE, efCmc).alt(op(0xD2).WithModO(3)),
	RDTSC: inst("rdtsc", EncX86Op_xDX_xAX, gNullary, op0F(0x31), SPECIAL | VOLATILE, feats.BASE, efNone),
	RET:   inst("ret", EncX86Ret, gRet, op(0xC3), FLOW | VOLATILE, feats.BASE, efNone).alt(op(0xC2)),
	ROL:   inst("rol", EncX86Rot, gRot, op(0xC0).WithModO(0), RW, feats.BASE, efShift).alt(op(0xD2).WithModO(0)),
	ROR:   inst("ror", EncX86Rot, gRot, op(0xC0).WithModO(1), RW, feats.BASE, efShift).alt(op(0xD2).WithModO(1)),

	SAHF:   inst("sahf", EncX86Op_xAX, gNullary, op(0x9E), SPECIAL, feats.BASE, efSahf),
	SAR:    inst("sar", EncX86Rot, gRot, op(0xC0).WithModO(7), RW, feats.BASE, efShift).alt(op(0xD2).WithModO(7)),
	SBB:    inst("sbb", EncX86Arith, gArith, op(0x18), lockRW, feats.BASE, efArithC).alt(op(0x80).WithModO(3)),
	SETA:   inst("seta", EncX86Set, gSet, op0F(0x97).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETAE:  inst("setae", EncX86Set, gSet, op0F(0x93).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETB:   inst("setb", EncX86Set, gSet, op0F(0x92).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETBE:  inst("setbe", EncX86Set, gSet, op0F(0x96).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETE:   inst("sete", EncX86Set, gSet, op0F(0x94).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETG:   inst("setg", EncX86Set, gSet, op0F(0x9F).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETGE:  inst("setge", EncX86Set, gSet, op0F(0x9D).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETL:   inst("setl", EncX86Set, gSet, op0F(0x9C).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETLE:  inst("setle", EncX86Set, gSet, op0F(0x9E).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETNE:  inst("setne", EncX86Set, gSet, op0F(0x95).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETNO:  inst("setno", EncX86Set, gSet, op0F(0x91).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETNP:  inst("setnp", EncX86Set, gSet, op0F(0x9B).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETNS:  inst("setns", EncX86Set, gSet, op0F(0x99).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETO:   inst("seto", EncX86Set, gSet, op0F(0x90).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETP:   inst("setp", EncX86Set, gSet, op0F(0x9A).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SETS:   inst("sets", EncX86Set, gSet, op0F(0x98).WithModO(0), WO, feats.BASE, efCond).w(0, 1),
	SFENCE: inst("sfence", EncX86Fence, gNullary, op0F(0xAE).WithModO(7), VOLATILE, feats.SSE, efNone),
	SHL:    inst("shl", EncX86Rot, gRot, op(0xC0).WithModO(4), RW, feats.BASE, efShift).alt(op(0xD2).WithModO(4)),
	SHLD:   inst("shld", EncX86ShldShrd, gShldShrd, op0F(0xA4), RW, feats.BASE, efShift).alt(op0F(0xA5)),
	SHR:    inst("shr", EncX86Rot, gRot, op(0xC0).WithModO(5), RW, feats.BASE, efShift).alt(op(0xD2).WithModO(5)),
	SHRD:   inst("shrd", EncX86ShldShrd, gShldShrd, op0F(0xAC), RW, feats.BASE, efShift).alt(op0F(0xAD)),
	SQRTPD: inst("sqrtpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x51), WO, feats.SSE2, efNone).fam(FamilySse),
	SQRTPS: inst("sqrtps", EncExtRm, gSseRm, op0F(0x51), WO, feats.SSE, efNone).fam(FamilySse),
	SQRTSD: inst("sqrtsd", EncExtRm, gSseRmSd, opPM(PrefixF2, Map0F, 0x51), WO, feats.SSE2, efNone).fam(FamilySse),
	SQRTSS: inst("sqrtss", EncExtRm, gSseRmSs, opPM(PrefixF3, Map0F, 0x51), WO, feats.SSE, efNone).fam(FamilySse),
	STC:    inst("stc", EncX86Op, gNullary, op(0xF9), DEFAULT, feats.BASE, efCarry),
	STD:    inst("std", EncX86Op, gNullary, op(0xFD), DEFAULT, feats.BASE, efDir),
	SUB:    inst("sub", EncX86Arith, gArith, op(0x28), lockRW, feats.BASE, efArith).alt(op(0x80).WithModO(5)),
	SUBPD:  inst("subpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x5C), RW, feats.SSE2, efNone).fam(FamilySse),
	SUBPS:  inst("subps", EncExtRm, gSseRm, op0F(0x5C), RW, feats.SSE, efNone).fam(FamilySse),
	SUBSD:  inst("subsd", EncExtRm, gSseRmSd, opPM(PrefixF2, Map0F, 0x5C), RW, feats.SSE2, efNone).fam(FamilySse),
	SUBSS:  inst("subss", EncExtRm, gSseRmSs, opPM(PrefixF3, Map0F, 0x5C), RW, feats.SSE, efNone).fam(FamilySse),

	TEST:  inst("test", EncX86Test, gTest, op(0x84), RO, feats.BASE, efLogic).alt(op(0xF6).WithModO(0)),
	TZCNT: inst("tzcnt", EncX86Rm, gBitScan, opPM(PrefixF3, Map0F, 0xBC), WO, feats.BMI1, efCnt),

	UCOMISD:  inst("ucomisd", EncExtRm, gSseRmSd, opPM(Prefix66, Map0F, 0x2E), RO, feats.SSE2, efArith).fam(FamilySse),
	UCOMISS:  inst("ucomiss", EncExtRm, gSseRmSs, op0F(0x2E), RO, feats.SSE, efArith).fam(FamilySse),
	UNPCKHPD: inst("unpckhpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x15), RW, feats.SSE2, efNone).fam(FamilySse),
	UNPCKHPS: inst("unpckhps", EncExtRm, gSseRm, op0F(0x15), RW, feats.SSE, efNone).fam(FamilySse),
	UNPCKLPD: inst("unpcklpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x14), RW, feats.SSE2, efNone).fam(FamilySse),
	UNPCKLPS: inst("unpcklps", EncExtRm, gSseRm, op0F(0x14), RW, feats.SSE, efNone).fam(FamilySse),

	VADDPD: inst("vaddpd", EncVexRvm_Lx, gAvxFpRvm, opPM(Prefix66, Map0F, 0x58).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER|EVEX_B8, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VADDPS: inst("vaddps", EncVexRvm_Lx, gAvxFpRvm, op0F(0x58).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER|EVEX_B4, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VADDSD: inst("vaddsd", EncVexRvm, gAvxFpRvmSd, opPM(PrefixF2, Map0F, 0x58).WithEvexW().WithTuple(TupleT1S, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER, feats.AVX|feats.AVX512F, efNone).fam(FamilyAvx512),
	VADDSS: inst("vaddss", EncVexRvm, gAvxFpRvmSs, opPM(PrefixF3, Map0F, 0x58).WithTuple(TupleT1S, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER, feats.AVX|feats.AVX512F, efNone).fam(FamilyAvx512),
	VANDPD: inst("vandpd", EncVexRvm_Lx, gAvxFpRvm, opPM(Prefix66, Map0F, 0x54).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B8, feats.AVX|feats.AVX512DQ|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VANDPS: inst("vandps", EncVexRvm_Lx, gAvxFpRvm, op0F(0x54).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B4, feats.AVX|feats.AVX512DQ|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VDIVPD: inst("vdivpd", EncVexRvm_Lx, gAvxFpRvm, opPM(Prefix66, Map0F, 0x5E).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER|EVEX_B8, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VDIVPS: inst("vdivps", EncVexRvm_Lx, gAvxFpRvm, op0F(0x5E).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER|EVEX_B4, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VGATHERDPD: inst("vgatherdpd", EncVexRmvRm_VM, gGatherDpd, opPM(Prefix66, Map0F38, 0x92).WithW(),
		RW|VEX_OP|SPECIAL, feats.AVX2, efNone).fam(FamilySse),
	VGATHERDPS: inst("vgatherdps", EncVexRmvRm_VM, gGatherDps, opPM(Prefix66, Map0F38, 0x92),
		RW|VEX_OP|SPECIAL, feats.AVX2, efNone).fam(FamilySse),
	VGATHERQPD: inst("vgatherqpd", EncVexRmvRm_VM, gGatherQpd, opPM(Prefix66, Map0F38, 0x93).WithW(),
		RW|VEX_OP|SPECIAL, feats.AVX2, efNone).fam(FamilySse),
	VGATHERQPS: inst("vgatherqps", EncVexRmvRm_VM, gGatherQps, opPM(Prefix66, Map0F38, 0x93),
		RW|VEX_OP|SPECIAL, feats.AVX2, efNone).fam(FamilySse),
	VMAXPD: inst("vmaxpd", EncVexRvm_Lx, gAvxFpRvm, opPM(Prefix66, Map0F, 0x5F).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_B8, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VMAXPS: inst("vmaxps", EncVexRvm_Lx, gAvxFpRvm, op0F(0x5F).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_B4, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VMINPD: inst("vminpd", EncVexRvm_Lx, gAvxFpRvm, opPM(Prefix66, Map0F, 0x5D).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_B8, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VMINPS: inst("vminps", EncVexRvm_Lx, gAvxFpRvm, op0F(0x5D).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_B4, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VMOVAPD: inst("vmovapd", EncVexRm_Lx, gAvxMov, opPM(Prefix66, Map0F, 0x28).WithEvexW().WithTuple(TupleFVM, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x29)).fam(FamilyAvx512),
	VMOVAPS: inst("vmovaps", EncVexRm_Lx, gAvxMov, op0F(0x28).WithTuple(TupleFVM, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).alt(op0F(0x29)).fam(FamilyAvx512),
	VMOVDQA: inst("vmovdqa", EncVexRm_Lx, gAvxMov, opPM(Prefix66, Map0F, 0x6F),
		WO|VEX_OP, feats.AVX, efNone).alt(opPM(Prefix66, Map0F, 0x7F)).fam(FamilySse),
	VMOVDQA32: inst("vmovdqa32", EncEvexRm, gAvxMovZ, opPM(Prefix66, Map0F, 0x6F).WithTuple(TupleFVM, 4),
		WO|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX512F|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x7F)).fam(FamilyAvx512),
	VMOVDQA64: inst("vmovdqa64", EncEvexRm, gAvxMovZ, opPM(Prefix66, Map0F, 0x6F).WithEvexW().WithTuple(TupleFVM, 4),
		WO|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX512F|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x7F)).fam(FamilyAvx512),
	VMOVDQU: inst("vmovdqu", EncVexRm_Lx, gAvxMov, opPM(PrefixF3, Map0F, 0x6F),
		WO|VEX_OP, feats.AVX, efNone).alt(opPM(PrefixF3, Map0F, 0x7F)).fam(FamilySse),
	VMULPD: inst("vmulpd", EncVexRvm_Lx, gAvxFpRvm, opPM(Prefix66, Map0F, 0x59).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER|EVEX_B8, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VMULPS: inst("vmulps", EncVexRvm_Lx, gAvxFpRvm, op0F(0x59).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER|EVEX_B4, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VORPD: inst("vorpd", EncVexRvm_Lx, gAvxFpRvm, opPM(Prefix66, Map0F, 0x56).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B8, feats.AVX|feats.AVX512DQ|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VORPS: inst("vorps", EncVexRvm_Lx, gAvxFpRvm, op0F(0x56).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B4, feats.AVX|feats.AVX512DQ|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPADDB: inst("vpaddb", EncVexRvm_Lx, gAvxIntRvm, opPM(Prefix66, Map0F, 0xFC).WithTuple(TupleFVM, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX|feats.AVX2|feats.AVX512BW|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPADDD: inst("vpaddd", EncVexRvm_Lx, gAvxIntRvm, opPM(Prefix66, Map0F, 0xFE).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B4, feats.AVX|feats.AVX2|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPADDQ: inst("vpaddq", EncVexRvm_Lx, gAvxIntRvm, opPM(Prefix66, Map0F, 0xD4).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B8, feats.AVX|feats.AVX2|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPADDW: inst("vpaddw", EncVexRvm_Lx, gAvxIntRvm, opPM(Prefix66, Map0F, 0xFD).WithTuple(TupleFVM, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX|feats.AVX2|feats.AVX512BW|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPAND: inst("vpand", EncVexRvm_Lx, gAvxRvmVexOnly, opPM(Prefix66, Map0F, 0xDB),
		WO|VEX_OP, feats.AVX|feats.AVX2, efNone).fam(FamilySse),
	VPANDD: inst("vpandd", EncEvexRvm, gAvxIntRvm, opPM(Prefix66, Map0F, 0xDB).WithTuple(TupleFV, 2),
		WO|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B4, feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPANDQ: inst("vpandq", EncEvexRvm, gAvxIntRvm, opPM(Prefix66, Map0F, 0xDB).WithEvexW().WithTuple(TupleFV, 3),
		WO|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B8, feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPOR: inst("vpor", EncVexRvm_Lx, gAvxRvmVexOnly, opPM(Prefix66, Map0F, 0xEB),
		WO|VEX_OP, feats.AVX|feats.AVX2, efNone).fam(FamilySse),
	VPSLLD: inst("vpslld", EncVexVmi_Lx, gAvxIntShift, opPM(Prefix66, Map0F, 0xF2).WithTuple(Tuple128, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B4, feats.AVX|feats.AVX2|feats.AVX512F|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x72).WithModO(6)).fam(FamilyAvx512),
	VPSLLQ: inst("vpsllq", EncVexVmi_Lx, gAvxIntShift, opPM(Prefix66, Map0F, 0xF3).WithEvexW().WithTuple(Tuple128, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B8, feats.AVX|feats.AVX2|feats.AVX512F|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x73).WithModO(6)).fam(FamilyAvx512),
	VPSLLW: inst("vpsllw", EncVexVmi_Lx, gAvxIntShift, opPM(Prefix66, Map0F, 0xF1).WithTuple(Tuple128, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX|feats.AVX2|feats.AVX512BW|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x71).WithModO(6)).fam(FamilyAvx512),
	VPSRAD: inst("vpsrad", EncVexVmi_Lx, gAvxIntShift, opPM(Prefix66, Map0F, 0xE2).WithTuple(Tuple128, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B4, feats.AVX|feats.AVX2|feats.AVX512F|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x72).WithModO(4)).fam(FamilyAvx512),
	VPSRAW: inst("vpsraw", EncVexVmi_Lx, gAvxIntShift, opPM(Prefix66, Map0F, 0xE1).WithTuple(Tuple128, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX|feats.AVX2|feats.AVX512BW|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x71).WithModO(4)).fam(FamilyAvx512),
	VPSRLD: inst("vpsrld", EncVexVmi_Lx, gAvxIntShift, opPM(Prefix66, Map0F, 0xD2).WithTuple(Tuple128, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B4, feats.AVX|feats.AVX2|feats.AVX512F|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x72).WithModO(2)).fam(FamilyAvx512),
	VPSRLQ: inst("vpsrlq", EncVexVmi_Lx, gAvxIntShift, opPM(Prefix66, Map0F, 0xD3).WithEvexW().WithTuple(Tuple128, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B8, feats.AVX|feats.AVX2|feats.AVX512F|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x73).WithModO(2)).fam(FamilyAvx512),
	VPSRLW: inst("vpsrlw", EncVexVmi_Lx, gAvxIntShift, opPM(Prefix66, Map0F, 0xD1).WithTuple(Tuple128, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX|feats.AVX2|feats.AVX512BW|feats.AVX512VL, efNone).alt(opPM(Prefix66, Map0F, 0x71).WithModO(2)).fam(FamilyAvx512),
	VPSUBB: inst("vpsubb", EncVexRvm_Lx, gAvxIntRvm, opPM(Prefix66, Map0F, 0xF8).WithTuple(TupleFVM, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX|feats.AVX2|feats.AVX512BW|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPSUBD: inst("vpsubd", EncVexRvm_Lx, gAvxIntRvm, opPM(Prefix66, Map0F, 0xFA).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B4, feats.AVX|feats.AVX2|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPSUBQ: inst("vpsubq", EncVexRvm_Lx, gAvxIntRvm, opPM(Prefix66, Map0F, 0xFB).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B8, feats.AVX|feats.AVX2|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPSUBW: inst("vpsubw", EncVexRvm_Lx, gAvxIntRvm, opPM(Prefix66, Map0F, 0xF9).WithTuple(TupleFVM, 4),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ, feats.AVX|feats.AVX2|feats.AVX512BW|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VPXOR: inst("vpxor", EncVexRvm_Lx, gAvxRvmVexOnly, opPM(Prefix66, Map0F, 0xEF),
		WO|VEX_OP, feats.AVX|feats.AVX2, efNone).fam(FamilySse),
	VSQRTPD: inst("vsqrtpd", EncVexRm_Lx, gAvxRm, opPM(Prefix66, Map0F, 0x51).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER|EVEX_B8, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VSQRTPS: inst("vsqrtps", EncVexRm_Lx, gAvxRm, op0F(0x51).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER|EVEX_B4, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VSUBPD: inst("vsubpd", EncVexRvm_Lx, gAvxFpRvm, opPM(Prefix66, Map0F, 0x5C).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER|EVEX_B8, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VSUBPS: inst("vsubps", EncVexRvm_Lx, gAvxFpRvm, op0F(0x5C).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_SAE|EVEX_ER|EVEX_B4, feats.AVX|feats.AVX512F|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VXORPD: inst("vxorpd", EncVexRvm_Lx, gAvxFpRvm, opPM(Prefix66, Map0F, 0x57).WithEvexW().WithTuple(TupleFV, 3),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B8, feats.AVX|feats.AVX512DQ|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VXORPS: inst("vxorps", EncVexRvm_Lx, gAvxFpRvm, op0F(0x57).WithTuple(TupleFV, 2),
		WO|VEX_OP|EVEX_OP|EVEX_K|EVEX_KZ|EVEX_B4, feats.AVX|feats.AVX512DQ|feats.AVX512VL, efNone).fam(FamilyAvx512),
	VZEROALL:   inst("vzeroall", EncVexOp, gNullary, op0F(0x77).WithVecLen(L256), VOLATILE | VEX_OP, feats.AVX, efNone).fam(FamilySse),
	VZEROUPPER: inst("vzeroupper", EncVexOp, gNullary, op0F(0x77).WithVecLen(L128), VOLATILE | VEX_OP, feats.AVX, efNone).fam(FamilySse),

	WBINVD: inst("wbinvd", EncX86Op, gNullary, op0F(0x09), VOLATILE, feats.BASE, efNone),

	XADD:  inst("xadd", EncX86Xadd, gXadd, op0F(0xC0), lockRW | XCHG_OPS, feats.BASE, efArith).alt(op0F(0xC1)),
	XCHG:  inst("xchg", EncX86Xchg, gXchg, op(0x86), lockRW | XCHG_OPS, feats.BASE, efNone).alt(op(0x87)),
	XOR:   inst("xor", EncX86Arith, gArith, op(0x30), lockRW, feats.BASE, efLogic).alt(op(0x80).WithModO(6)),
	XORPD: inst("xorpd", EncExtRm, gSseRm, opPM(Prefix66, Map0F, 0x57), RW, feats.SSE2, efNone).fam(FamilySse),
	XORPS: inst("xorps", EncExtRm, gSseRm, op0F(0x57), RW, feats.SSE, efNone).fam(FamilySse),
}

// init flattens the signature groups into the shared table, resolves each
// record's signature-group range, and builds the name blob and first-letter
// index. Everything is immutable afterwards.
func init() {
	offs := make([]uint16, len(sigGroups))
	counts := make([]uint8, len(sigGroups))
	total := 0
	for _, rows := range sigGroups {
		total += len(rows)
	}
	flat := make([]instSig, 0, total)
	for g, rows := range sigGroups {
		offs[g] = uint16(len(flat))
		counts[g] = uint8(len(rows))
		flat = append(flat, rows...)
	}
	instSigs = flat

	for i := 1; i < len(instRecords); i++ {
		r := &instRecords[i]
		r.sigIndex = offs[r.sigGroup]
		r.sigCount = counts[r.sigGroup]
	}

	buildNameIndex()
}
