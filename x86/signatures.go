package x86

// Operand-signature flags. A row describes every shape one positional
// operand may take; rows are deduplicated and shared across instructions.
const (
	oGpbLo uint32 = 1 << iota
	oGpbHi
	oGpw
	oGpd
	oGpq
	oSeg
	oFp
	oMm
	oK
	oXmm
	oYmm
	oZmm
	oBnd
	oCr
	oDr
	oMem
	oVm
	oI4
	oI8
	oI16
	oI32
	oI64
	oRel8
	oRel32
	oImplicit uint32 = 1 << 31
)

const (
	oImm = oI4 | oI8 | oI16 | oI32 | oI64
	oRel = oRel8 | oRel32
)

// Memory-kind flags: permitted element sizes and vector-index shapes.
const (
	mM8 uint16 = 1 << iota
	mM16
	mM32
	mM48
	mM64
	mM80
	mM128
	mM256
	mM512
	mAny
	mVm32x
	mVm32y
	mVm32z
	mVm64x
	mVm64y
	mVm64z
)

const mAll = mM8 | mM16 | mM32 | mM48 | mM64 | mM80 | mM128 | mM256 | mM512 | mAny

// opSig is one deduplicated operand-signature row. regMask is a bit-set of
// permitted physical register ids (0 means any); a fixed-register operand is
// a single bit.
type opSig struct {
	flags    uint32
	memFlags uint16
	regMask  uint8
}

// Operand-signature row indices. Row 0 is reserved for the absent operand.
const (
	osNone uint8 = iota

	osGpb
	osGpw
	osGpd
	osGpq
	osGpbM8
	osGpwM16
	osGpdM32
	osGpqM64
	osGpdM16
	osGpwdqM16

	osAl
	osAx
	osEax
	osCl
	osDx

	osImplAl
	osImplAx
	osImplEax
	osImplRax
	osImplDx
	osImplEdx
	osImplRdx

	osSeg
	osSegNoCs

	osFp
	osSt0

	osMm
	osMmM64
	osXmm
	osYmm
	osZmm
	osXmmM32
	osXmmM64
	osXmmM128
	osYmmM256
	osZmmM512

	osK
	osKM8
	osKM16
	osKM32
	osKM64

	osCr
	osDr

	osM8
	osM16
	osM32
	osM64
	osM80
	osMemAny

	osVm32x
	osVm32y
	osVm64x
	osVm64y

	osImm8
	osImm16
	osImm32
	osImm64

	osRel
	osRel8
)

var opSigs = [...]opSig{
	osNone: {},

	osGpb:      {flags: oGpbLo | oGpbHi},
	osGpw:      {flags: oGpw},
	osGpd:      {flags: oGpd},
	osGpq:      {flags: oGpq},
	osGpbM8:    {flags: oGpbLo | oGpbHi | oMem, memFlags: mM8},
	osGpwM16:   {flags: oGpw | oMem, memFlags: mM16},
	osGpdM32:   {flags: oGpd | oMem, memFlags: mM32},
	osGpqM64:   {flags: oGpq | oMem, memFlags: mM64},
	osGpdM16:   {flags: oGpd | oMem, memFlags: mM16},
	osGpwdqM16: {flags: oGpw | oGpd | oGpq | oMem, memFlags: mM16},

	osAl:  {flags: oGpbLo, regMask: 1 << 0},
	osAx:  {flags: oGpw, regMask: 1 << 0},
	osEax: {flags: oGpd, regMask: 1 << 0},
	osCl:  {flags: oGpbLo, regMask: 1 << 1},
	osDx:  {flags: oGpw, regMask: 1 << 2},

	osImplAl:  {flags: oGpbLo | oImplicit, regMask: 1 << 0},
	osImplAx:  {flags: oGpw | oImplicit, regMask: 1 << 0},
	osImplEax: {flags: oGpd | oImplicit, regMask: 1 << 0},
	osImplRax: {flags: oGpq | oImplicit, regMask: 1 << 0},
	osImplDx:  {flags: oGpw | oImplicit, regMask: 1 << 2},
	osImplEdx: {flags: oGpd | oImplicit, regMask: 1 << 2},
	osImplRdx: {flags: oGpq | oImplicit, regMask: 1 << 2},

	osSeg:     {flags: oSeg},
	osSegNoCs: {flags: oSeg, regMask: 0x3D}, // ES|SS|DS|FS|GS; loading or storing CS is rejected

	osFp:  {flags: oFp},
	osSt0: {flags: oFp, regMask: 1 << 0},

	osMm:      {flags: oMm},
	osMmM64:   {flags: oMm | oMem, memFlags: mM64},
	osXmm:     {flags: oXmm},
	osYmm:     {flags: oYmm},
	osZmm:     {flags: oZmm},
	osXmmM32:  {flags: oXmm | oMem, memFlags: mM32},
	osXmmM64:  {flags: oXmm | oMem, memFlags: mM64},
	osXmmM128: {flags: oXmm | oMem, memFlags: mM128},
	osYmmM256: {flags: oYmm | oMem, memFlags: mM256},
	osZmmM512: {flags: oZmm | oMem, memFlags: mM512},

	osK:    {flags: oK},
	osKM8:  {flags: oK | oMem, memFlags: mM8},
	osKM16: {flags: oK | oMem, memFlags: mM16},
	osKM32: {flags: oK | oMem, memFlags: mM32},
	osKM64: {flags: oK | oMem, memFlags: mM64},

	osCr: {flags: oCr},
	osDr: {flags: oDr},

	osM8:     {flags: oMem, memFlags: mM8},
	osM16:    {flags: oMem, memFlags: mM16},
	osM32:    {flags: oMem, memFlags: mM32},
	osM64:    {flags: oMem, memFlags: mM64},
	osM80:    {flags: oMem, memFlags: mM80},
	osMemAny: {flags: oMem, memFlags: mAll},

	osVm32x: {flags: oVm, memFlags: mVm32x},
	osVm32y: {flags: oVm, memFlags: mVm32y},
	osVm64x: {flags: oVm, memFlags: mVm64x},
	osVm64y: {flags: oVm, memFlags: mVm64y},

	osImm8:  {flags: oI4 | oI8},
	osImm16: {flags: oI4 | oI8 | oI16},
	osImm32: {flags: oI4 | oI8 | oI16 | oI32},
	osImm64: {flags: oImm},

	osRel:  {flags: oRel},
	osRel8: {flags: oRel8},
}

// Architecture masks for instruction signatures.
const (
	archMaskX86 uint8 = 1 << iota
	archMaskX64
	archMaskAny = archMaskX86 | archMaskX64
)

const maxOperands = 6

// instSig is one legal operand tuple. ops holds operand-signature row
// indices for each position; implicit counts trailing-or-interleaved rows
// flagged oImplicit that a caller may omit.
type instSig struct {
	count    uint8
	implicit uint8
	archMask uint8
	ops      [maxOperands]uint8
}

func sig(arch, implicit uint8, ops ...uint8) instSig {
	s := instSig{count: uint8(len(ops)), implicit: implicit, archMask: arch}
	copy(s.ops[:], ops)
	return s
}

// Signature-group ids. Records reference a group; init flattens the groups
// into the shared instSigs array and fills each record's index/count range.
const (
	gEmpty uint8 = iota
	gNullary
	gArith
	gIncDec
	gMulDiv
	gImul
	gRot
	gShldShrd
	gTest
	gMov
	gMovsxMovzx
	gMovsxd
	gLea
	gPush
	gPop
	gJcc
	gJecxz
	gJmpCall
	gRet
	gSet
	gCmov
	gBt
	gBitScan
	gBswap
	gXadd
	gXchg
	gCmpxchg
	gInt
	gEnter
	gIn
	gOut
	gFpuArith
	gFpuArithP
	gFpuCom
	gFpuR
	gFld
	gFst
	gFstp
	gFild
	gFist
	gFistp
	gExtPi
	gExtPiShift
	gSseRm
	gSseRmSs
	gSseRmSd
	gSseRmi
	gSseMov
	gSseMovss
	gMovd
	gMovq
	gPextrw
	gPinsrw
	gAvxFpRvm
	gAvxFpRvmSs
	gAvxFpRvmSd
	gAvxIntRvm
	gAvxRvmVexOnly
	gAvxIntShift
	gAvxRm
	gAvxMov
	gAvxMovZ
	gGatherDps
	gGatherDpd
	gGatherQps
	gGatherQpd
	gKmovB
	gKmovW
	gKmovD
	gKmovQ
	gKOp
	gKNot
	sigGroupCount
)

var sigGroups = [sigGroupCount][]instSig{
	gEmpty:   nil,
	gNullary: {sig(archMaskAny, 0)},

	gArith: {
		sig(archMaskAny, 0, osGpbM8, osGpb),
		sig(archMaskAny, 0, osGpb, osGpbM8),
		sig(archMaskAny, 0, osGpbM8, osImm8),
		sig(archMaskAny, 0, osGpwM16, osGpw),
		sig(archMaskAny, 0, osGpw, osGpwM16),
		sig(archMaskAny, 0, osGpwM16, osImm16),
		sig(archMaskAny, 0, osGpdM32, osGpd),
		sig(archMaskAny, 0, osGpd, osGpdM32),
		sig(archMaskAny, 0, osGpdM32, osImm32),
		sig(archMaskX64, 0, osGpqM64, osGpq),
		sig(archMaskX64, 0, osGpq, osGpqM64),
		sig(archMaskX64, 0, osGpqM64, osImm32),
	},
	gIncDec: {
		sig(archMaskAny, 0, osGpbM8),
		sig(archMaskAny, 0, osGpwM16),
		sig(archMaskAny, 0, osGpdM32),
		sig(archMaskX64, 0, osGpqM64),
	},
	gMulDiv: {
		sig(archMaskAny, 1, osImplAx, osGpbM8),
		sig(archMaskAny, 2, osImplDx, osImplAx, osGpwM16),
		sig(archMaskAny, 2, osImplEdx, osImplEax, osGpdM32),
		sig(archMaskX64, 2, osImplRdx, osImplRax, osGpqM64),
	},
	gImul: {
		sig(archMaskAny, 1, osImplAx, osGpbM8),
		sig(archMaskAny, 2, osImplDx, osImplAx, osGpwM16),
		sig(archMaskAny, 2, osImplEdx, osImplEax, osGpdM32),
		sig(archMaskX64, 2, osImplRdx, osImplRax, osGpqM64),
		sig(archMaskAny, 0, osGpw, osGpwM16),
		sig(archMaskAny, 0, osGpd, osGpdM32),
		sig(archMaskX64, 0, osGpq, osGpqM64),
		sig(archMaskAny, 0, osGpw, osGpwM16, osImm16),
		sig(archMaskAny, 0, osGpd, osGpdM32, osImm32),
		sig(archMaskX64, 0, osGpq, osGpqM64, osImm32),
	},
	gRot: {
		sig(archMaskAny, 0, osGpbM8, osImm8),
		sig(archMaskAny, 0, osGpbM8, osCl),
		sig(archMaskAny, 0, osGpwM16, osImm8),
		sig(archMaskAny, 0, osGpwM16, osCl),
		sig(archMaskAny, 0, osGpdM32, osImm8),
		sig(archMaskAny, 0, osGpdM32, osCl),
		sig(archMaskX64, 0, osGpqM64, osImm8),
		sig(archMaskX64, 0, osGpqM64, osCl),
	},
	gShldShrd: {
		sig(archMaskAny, 0, osGpwM16, osGpw, osImm8),
		sig(archMaskAny, 0, osGpwM16, osGpw, osCl),
		sig(archMaskAny, 0, osGpdM32, osGpd, osImm8),
		sig(archMaskAny, 0, osGpdM32, osGpd, osCl),
		sig(archMaskX64, 0, osGpqM64, osGpq, osImm8),
		sig(archMaskX64, 0, osGpqM64, osGpq, osCl),
	},
	gTest: {
		sig(archMaskAny, 0, osGpbM8, osGpb),
		sig(archMaskAny, 0, osGpbM8, osImm8),
		sig(archMaskAny, 0, osGpwM16, osGpw),
		sig(archMaskAny, 0, osGpwM16, osImm16),
		sig(archMaskAny, 0, osGpdM32, osGpd),
		sig(archMaskAny, 0, osGpdM32, osImm32),
		sig(archMaskX64, 0, osGpqM64, osGpq),
		sig(archMaskX64, 0, osGpqM64, osImm32),
	},
	gMov: {
		sig(archMaskAny, 0, osGpbM8, osGpb),
		sig(archMaskAny, 0, osGpb, osGpbM8),
		sig(archMaskAny, 0, osGpbM8, osImm8),
		sig(archMaskAny, 0, osGpwM16, osGpw),
		sig(archMaskAny, 0, osGpw, osGpwM16),
		sig(archMaskAny, 0, osGpwM16, osImm16),
		sig(archMaskAny, 0, osGpdM32, osGpd),
		sig(archMaskAny, 0, osGpd, osGpdM32),
		sig(archMaskAny, 0, osGpdM32, osImm32),
		sig(archMaskX64, 0, osGpqM64, osGpq),
		sig(archMaskX64, 0, osGpq, osGpqM64),
		sig(archMaskX64, 0, osGpqM64, osImm32),
		sig(archMaskX64, 0, osGpq, osImm64),
		sig(archMaskAny, 0, osGpwdqM16, osSegNoCs),
		sig(archMaskAny, 0, osSegNoCs, osGpwdqM16),
		sig(archMaskX86, 0, osGpd, osCr),
		sig(archMaskX64, 0, osGpq, osCr),
		sig(archMaskX86, 0, osCr, osGpd),
		sig(archMaskX64, 0, osCr, osGpq),
		sig(archMaskX86, 0, osGpd, osDr),
		sig(archMaskX64, 0, osGpq, osDr),
		sig(archMaskX86, 0, osDr, osGpd),
		sig(archMaskX64, 0, osDr, osGpq),
	},
	gMovsxMovzx: {
		sig(archMaskAny, 0, osGpw, osGpbM8),
		sig(archMaskAny, 0, osGpd, osGpbM8),
		sig(archMaskX64, 0, osGpq, osGpbM8),
		sig(archMaskAny, 0, osGpd, osGpwM16),
		sig(archMaskX64, 0, osGpq, osGpwM16),
	},
	gMovsxd: {
		sig(archMaskX64, 0, osGpq, osGpdM32),
	},
	gLea: {
		sig(archMaskAny, 0, osGpw, osMemAny),
		sig(archMaskAny, 0, osGpd, osMemAny),
		sig(archMaskX64, 0, osGpq, osMemAny),
	},
	gPush: {
		sig(archMaskAny, 0, osGpw),
		sig(archMaskX86, 0, osGpd),
		sig(archMaskX64, 0, osGpq),
		sig(archMaskAny, 0, osMemAny),
		sig(archMaskAny, 0, osImm8),
		sig(archMaskAny, 0, osImm32),
		sig(archMaskAny, 0, osSeg),
	},
	gPop: {
		sig(archMaskAny, 0, osGpw),
		sig(archMaskX86, 0, osGpd),
		sig(archMaskX64, 0, osGpq),
		sig(archMaskAny, 0, osMemAny),
		sig(archMaskAny, 0, osSegNoCs),
	},
	gJcc:   {sig(archMaskAny, 0, osRel)},
	gJecxz: {sig(archMaskAny, 0, osRel8)},
	gJmpCall: {
		sig(archMaskAny, 0, osRel),
		sig(archMaskX86, 0, osGpdM32),
		sig(archMaskX64, 0, osGpqM64),
	},
	gRet: {
		sig(archMaskAny, 0),
		sig(archMaskAny, 0, osImm16),
	},
	gSet: {sig(archMaskAny, 0, osGpbM8)},
	gCmov: {
		sig(archMaskAny, 0, osGpw, osGpwM16),
		sig(archMaskAny, 0, osGpd, osGpdM32),
		sig(archMaskX64, 0, osGpq, osGpqM64),
	},
	gBt: {
		sig(archMaskAny, 0, osGpwM16, osGpw),
		sig(archMaskAny, 0, osGpdM32, osGpd),
		sig(archMaskX64, 0, osGpqM64, osGpq),
		sig(archMaskAny, 0, osGpwM16, osImm8),
		sig(archMaskAny, 0, osGpdM32, osImm8),
		sig(archMaskX64, 0, osGpqM64, osImm8),
	},
	gBitScan: {
		sig(archMaskAny, 0, osGpw, osGpwM16),
		sig(archMaskAny, 0, osGpd, osGpdM32),
		sig(archMaskX64, 0, osGpq, osGpqM64),
	},
	gBswap: {
		sig(archMaskAny, 0, osGpd),
		sig(archMaskX64, 0, osGpq),
	},
	gXadd: {
		sig(archMaskAny, 0, osGpbM8, osGpb),
		sig(archMaskAny, 0, osGpwM16, osGpw),
		sig(archMaskAny, 0, osGpdM32, osGpd),
		sig(archMaskX64, 0, osGpqM64, osGpq),
	},
	gXchg: {
		sig(archMaskAny, 0, osGpbM8, osGpb),
		sig(archMaskAny, 0, osGpb, osGpbM8),
		sig(archMaskAny, 0, osGpwM16, osGpw),
		sig(archMaskAny, 0, osGpw, osGpwM16),
		sig(archMaskAny, 0, osGpdM32, osGpd),
		sig(archMaskAny, 0, osGpd, osGpdM32),
		sig(archMaskX64, 0, osGpqM64, osGpq),
		sig(archMaskX64, 0, osGpq, osGpqM64),
	},
	gCmpxchg: {
		sig(archMaskAny, 1, osGpbM8, osGpb, osImplAl),
		sig(archMaskAny, 1, osGpwM16, osGpw, osImplAx),
		sig(archMaskAny, 1, osGpdM32, osGpd, osImplEax),
		sig(archMaskX64, 1, osGpqM64, osGpq, osImplRax),
	},
	gInt:   {sig(archMaskAny, 0, osImm8)},
	gEnter: {sig(archMaskAny, 0, osImm16, osImm8)},
	gIn: {
		sig(archMaskAny, 0, osAl, osImm8),
		sig(archMaskAny, 0, osAx, osImm8),
		sig(archMaskAny, 0, osEax, osImm8),
		sig(archMaskAny, 0, osAl, osDx),
		sig(archMaskAny, 0, osAx, osDx),
		sig(archMaskAny, 0, osEax, osDx),
	},
	gOut: {
		sig(archMaskAny, 0, osImm8, osAl),
		sig(archMaskAny, 0, osImm8, osAx),
		sig(archMaskAny, 0, osImm8, osEax),
		sig(archMaskAny, 0, osDx, osAl),
		sig(archMaskAny, 0, osDx, osAx),
		sig(archMaskAny, 0, osDx, osEax),
	},
	gFpuArith: {
		sig(archMaskAny, 0, osSt0, osFp),
		sig(archMaskAny, 0, osFp, osSt0),
		sig(archMaskAny, 0, osM32),
		sig(archMaskAny, 0, osM64),
	},
	gFpuArithP: {
		sig(archMaskAny, 0, osFp, osSt0),
		sig(archMaskAny, 0),
	},
	gFpuCom: {
		sig(archMaskAny, 0),
		sig(archMaskAny, 0, osFp),
		sig(archMaskAny, 0, osM32),
		sig(archMaskAny, 0, osM64),
	},
	gFpuR: {
		sig(archMaskAny, 0),
		sig(archMaskAny, 0, osFp),
	},
	gFld: {
		sig(archMaskAny, 0, osFp),
		sig(archMaskAny, 0, osM32),
		sig(archMaskAny, 0, osM64),
		sig(archMaskAny, 0, osM80),
	},
	gFst: {
		sig(archMaskAny, 0, osFp),
		sig(archMaskAny, 0, osM32),
		sig(archMaskAny, 0, osM64),
	},
	gFstp: {
		sig(archMaskAny, 0, osFp),
		sig(archMaskAny, 0, osM32),
		sig(archMaskAny, 0, osM64),
		sig(archMaskAny, 0, osM80),
	},
	gFild: {
		sig(archMaskAny, 0, osM16),
		sig(archMaskAny, 0, osM32),
		sig(archMaskAny, 0, osM64),
	},
	gFist: {
		sig(archMaskAny, 0, osM16),
		sig(archMaskAny, 0, osM32),
	},
	gFistp: {
		sig(archMaskAny, 0, osM16),
		sig(archMaskAny, 0, osM32),
		sig(archMaskAny, 0, osM64),
	},
	gExtPi: {
		sig(archMaskAny, 0, osMm, osMmM64),
		sig(archMaskAny, 0, osXmm, osXmmM128),
	},
	gExtPiShift: {
		sig(archMaskAny, 0, osMm, osMmM64),
		sig(archMaskAny, 0, osMm, osImm8),
		sig(archMaskAny, 0, osXmm, osXmmM128),
		sig(archMaskAny, 0, osXmm, osImm8),
	},
	gSseRm:   {sig(archMaskAny, 0, osXmm, osXmmM128)},
	gSseRmSs: {sig(archMaskAny, 0, osXmm, osXmmM32)},
	gSseRmSd: {sig(archMaskAny, 0, osXmm, osXmmM64)},
	gSseRmi:  {sig(archMaskAny, 0, osXmm, osXmmM128, osImm8)},
	gSseMov: {
		sig(archMaskAny, 0, osXmm, osXmmM128),
		sig(archMaskAny, 0, osXmmM128, osXmm),
	},
	gSseMovss: {
		sig(archMaskAny, 0, osXmm, osXmmM32),
		sig(archMaskAny, 0, osXmmM32, osXmm),
	},
	gMovd: {
		sig(archMaskAny, 0, osMm, osGpdM32),
		sig(archMaskAny, 0, osGpdM32, osMm),
		sig(archMaskAny, 0, osXmm, osGpdM32),
		sig(archMaskAny, 0, osGpdM32, osXmm),
	},
	gMovq: {
		sig(archMaskAny, 0, osMm, osMmM64),
		sig(archMaskAny, 0, osMmM64, osMm),
		sig(archMaskAny, 0, osXmm, osXmmM64),
		sig(archMaskAny, 0, osXmmM64, osXmm),
		sig(archMaskX64, 0, osMm, osGpq),
		sig(archMaskX64, 0, osGpq, osMm),
		sig(archMaskX64, 0, osXmm, osGpq),
		sig(archMaskX64, 0, osGpq, osXmm),
	},
	gPextrw: {
		sig(archMaskAny, 0, osGpd, osMm, osImm8),
		sig(archMaskAny, 0, osGpd, osXmm, osImm8),
	},
	gPinsrw: {
		sig(archMaskAny, 0, osMm, osGpdM16, osImm8),
		sig(archMaskAny, 0, osXmm, osGpdM16, osImm8),
	},
	gAvxFpRvm: {
		sig(archMaskAny, 0, osXmm, osXmm, osXmmM128),
		sig(archMaskAny, 0, osYmm, osYmm, osYmmM256),
		sig(archMaskAny, 0, osZmm, osZmm, osZmmM512),
	},
	gAvxFpRvmSs: {sig(archMaskAny, 0, osXmm, osXmm, osXmmM32)},
	gAvxFpRvmSd: {sig(archMaskAny, 0, osXmm, osXmm, osXmmM64)},
	gAvxIntRvm: {
		sig(archMaskAny, 0, osXmm, osXmm, osXmmM128),
		sig(archMaskAny, 0, osYmm, osYmm, osYmmM256),
		sig(archMaskAny, 0, osZmm, osZmm, osZmmM512),
	},
	gAvxRvmVexOnly: {
		sig(archMaskAny, 0, osXmm, osXmm, osXmmM128),
		sig(archMaskAny, 0, osYmm, osYmm, osYmmM256),
	},
	// the shift count is always an xmm/m128 in the register form; the
	// immediate form shifts a full-width register or memory source into the
	// destination
	gAvxIntShift: {
		sig(archMaskAny, 0, osXmm, osXmm, osXmmM128),
		sig(archMaskAny, 0, osXmm, osXmmM128, osImm8),
		sig(archMaskAny, 0, osYmm, osYmm, osXmmM128),
		sig(archMaskAny, 0, osYmm, osYmmM256, osImm8),
		sig(archMaskAny, 0, osZmm, osZmm, osXmmM128),
		sig(archMaskAny, 0, osZmm, osZmmM512, osImm8),
	},
	gAvxRm: {
		sig(archMaskAny, 0, osXmm, osXmmM128),
		sig(archMaskAny, 0, osYmm, osYmmM256),
		sig(archMaskAny, 0, osZmm, osZmmM512),
	},
	gAvxMov: {
		sig(archMaskAny, 0, osXmm, osXmmM128),
		sig(archMaskAny, 0, osXmmM128, osXmm),
		sig(archMaskAny, 0, osYmm, osYmmM256),
		sig(archMaskAny, 0, osYmmM256, osYmm),
	},
	gAvxMovZ: {
		sig(archMaskAny, 0, osXmm, osXmmM128),
		sig(archMaskAny, 0, osXmmM128, osXmm),
		sig(archMaskAny, 0, osYmm, osYmmM256),
		sig(archMaskAny, 0, osYmmM256, osYmm),
		sig(archMaskAny, 0, osZmm, osZmmM512),
		sig(archMaskAny, 0, osZmmM512, osZmm),
	},
	gGatherDps: {
		sig(archMaskAny, 0, osXmm, osVm32x, osXmm),
		sig(archMaskAny, 0, osYmm, osVm32y, osYmm),
	},
	gGatherDpd: {
		sig(archMaskAny, 0, osXmm, osVm32x, osXmm),
		sig(archMaskAny, 0, osYmm, osVm32x, osYmm),
	},
	gGatherQps: {
		sig(archMaskAny, 0, osXmm, osVm64x, osXmm),
		sig(archMaskAny, 0, osXmm, osVm64y, osXmm),
	},
	gGatherQpd: {
		sig(archMaskAny, 0, osXmm, osVm64x, osXmm),
		sig(archMaskAny, 0, osYmm, osVm64y, osYmm),
	},
	gKmovB: {
		sig(archMaskAny, 0, osK, osKM8),
		sig(archMaskAny, 0, osM8, osK),
		sig(archMaskAny, 0, osK, osGpd),
		sig(archMaskAny, 0, osGpd, osK),
	},
	gKmovW: {
		sig(archMaskAny, 0, osK, osKM16),
		sig(archMaskAny, 0, osM16, osK),
		sig(archMaskAny, 0, osK, osGpd),
		sig(archMaskAny, 0, osGpd, osK),
	},
	gKmovD: {
		sig(archMaskAny, 0, osK, osKM32),
		sig(archMaskAny, 0, osM32, osK),
		sig(archMaskAny, 0, osK, osGpd),
		sig(archMaskAny, 0, osGpd, osK),
	},
	gKmovQ: {
		sig(archMaskAny, 0, osK, osKM64),
		sig(archMaskAny, 0, osM64, osK),
		sig(archMaskX64, 0, osK, osGpq),
		sig(archMaskX64, 0, osGpq, osK),
	},
	gKOp:  {sig(archMaskAny, 0, osK, osK, osK)},
	gKNot: {sig(archMaskAny, 0, osK, osK)},
}

// instSigs is the flattened signature table; filled from sigGroups at init.
var instSigs []instSig

// SigCount returns the number of instruction-signature rows.
func SigCount() int { return len(instSigs) }
