package x86

// CondCode selects an EFLAGS predicate. Codes 0-15 are the architectural
// conditions; the remainder cover the FPU compare aggregates (which ride the
// parity flag after FCOMI or FNSTSW+SAHF) plus always/none.
type CondCode uint8

const (
	CondO  CondCode = iota // overflow
	CondNO                 // not overflow
	CondB                  // below (also NAE, C)
	CondAE                 // above or equal (also NB, NC)
	CondE                  // equal (also Z)
	CondNE                 // not equal (also NZ)
	CondBE                 // below or equal (also NA)
	CondA                  // above (also NBE)
	CondS                  // sign
	CondNS                 // not sign
	CondPE                 // parity even (also P)
	CondPO                 // parity odd (also NP)
	CondL                  // less (also NGE)
	CondGE                 // greater or equal (also NL)
	CondLE                 // less or equal (also NG)
	CondG                  // greater (also NLE)

	CondFpuUn    // FPU compare: unordered
	CondFpuNotUn // FPU compare: not unordered
	CondAlways   // unconditional
	CondNone

	condCount
)

var reverseCondTable = [condCount]CondCode{
	CondNO,       // CondO
	CondO,        // CondNO
	CondAE,       // CondB
	CondB,        // CondAE
	CondNE,       // CondE
	CondE,        // CondNE
	CondA,        // CondBE
	CondBE,       // CondA
	CondNS,       // CondS
	CondS,        // CondNS
	CondPO,       // CondPE
	CondPE,       // CondPO
	CondGE,       // CondL
	CondL,        // CondGE
	CondG,        // CondLE
	CondLE,       // CondG
	CondFpuNotUn, // CondFpuUn
	CondFpuUn,    // CondFpuNotUn
	CondNone,     // CondAlways
	CondAlways,   // CondNone
}

var jccTable = [condCount]Inst{
	JO,       // CondO
	JNO,      // CondNO
	JB,       // CondB
	JAE,      // CondAE
	JE,       // CondE
	JNE,      // CondNE
	JBE,      // CondBE
	JA,       // CondA
	JS,       // CondS
	JNS,      // CondNS
	JP,       // CondPE
	JNP,      // CondPO
	JL,       // CondL
	JGE,      // CondGE
	JLE,      // CondLE
	JG,       // CondG
	JP,       // CondFpuUn
	JNP,      // CondFpuNotUn
	JMP,      // CondAlways
	InstNone, // CondNone
}

var setccTable = [condCount]Inst{
	SETO,     // CondO
	SETNO,    // CondNO
	SETB,     // CondB
	SETAE,    // CondAE
	SETE,     // CondE
	SETNE,    // CondNE
	SETBE,    // CondBE
	SETA,     // CondA
	SETS,     // CondS
	SETNS,    // CondNS
	SETP,     // CondPE
	SETNP,    // CondPO
	SETL,     // CondL
	SETGE,    // CondGE
	SETLE,    // CondLE
	SETG,     // CondG
	SETP,     // CondFpuUn
	SETNP,    // CondFpuNotUn
	InstNone, // CondAlways
	InstNone, // CondNone
}

var cmovccTable = [condCount]Inst{
	CMOVO,    // CondO
	CMOVNO,   // CondNO
	CMOVB,    // CondB
	CMOVAE,   // CondAE
	CMOVE,    // CondE
	CMOVNE,   // CondNE
	CMOVBE,   // CondBE
	CMOVA,    // CondA
	CMOVS,    // CondS
	CMOVNS,   // CondNS
	CMOVP,    // CondPE
	CMOVNP,   // CondPO
	CMOVL,    // CondL
	CMOVGE,   // CondGE
	CMOVLE,   // CondLE
	CMOVG,    // CondG
	CMOVP,    // CondFpuUn
	CMOVNP,   // CondFpuNotUn
	InstNone, // CondAlways
	InstNone, // CondNone
}

// Jcc returns the conditional-jump instruction for a condition code
// (JMP for CondAlways, InstNone for CondNone).
func Jcc(cc CondCode) Inst { return jccTable[cc] }

// Setcc returns the conditional-set instruction for a condition code.
func Setcc(cc CondCode) Inst { return setccTable[cc] }

// Cmovcc returns the conditional-move instruction for a condition code.
func Cmovcc(cc CondCode) Inst { return cmovccTable[cc] }

// ReverseCond negates a condition code. ReverseCond is an involution over
// the whole code space.
func ReverseCond(cc CondCode) CondCode { return reverseCondTable[cc] }
