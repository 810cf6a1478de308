package x86flags

// Instruction flags
const (
	DEFAULT uint32 = 0         // no special behavior
	RO      uint32 = 1 << iota // the first operand is read-only
	WO                         // the first operand is write-only
	RW                         // the first operand is read-write
	LOCK                       // user lock prefix is valid with this instruction
	XACQUIRE                   // xacquire prefix is valid with this instruction
	XRELEASE                   // xrelease prefix is valid with this instruction
	REP                        // user rep prefix is valid with this instruction
	REPNE                      // user repne prefix is valid with this instruction
	FLOW                       // control-flow instruction (jump, call, return)
	VOLATILE                   // must not be reordered or elided
	SPECIAL                    // reads or writes registers not listed as operands
	XCHG_OPS                   // the first two operands commute
	ZERO_MEM                   // a memory source zero-extends through the destination register
	VEX_OP                     // encodable with a VEX prefix
	EVEX_OP                    // encodable with an EVEX prefix
	EVEX_K                     // accepts a {k} writemask
	EVEX_KZ                    // accepts {z} zeroing with the writemask
	EVEX_SAE                   // accepts {sae}
	EVEX_ER                    // accepts {er} embedded rounding (implies {sae})
	EVEX_B4                    // memory operand may broadcast a 4-byte element
	EVEX_B8                    // memory operand may broadcast an 8-byte element
)

func FlagName(f uint32) string { return flagNames[f] }

var flagNames = map[uint32]string{
	DEFAULT:  "DEFAULT",
	RO:       "RO",
	WO:       "WO",
	RW:       "RW",
	LOCK:     "LOCK",
	XACQUIRE: "XACQUIRE",
	XRELEASE: "XRELEASE",
	REP:      "REP",
	REPNE:    "REPNE",
	FLOW:     "FLOW",
	VOLATILE: "VOLATILE",
	SPECIAL:  "SPECIAL",
	XCHG_OPS: "XCHG_OPS",
	ZERO_MEM: "ZERO_MEM",
	VEX_OP:   "VEX_OP",
	EVEX_OP:  "EVEX_OP",
	EVEX_K:   "EVEX_K",
	EVEX_KZ:  "EVEX_KZ",
	EVEX_SAE: "EVEX_SAE",
	EVEX_ER:  "EVEX_ER",
	EVEX_B4:  "EVEX_B4",
	EVEX_B8:  "EVEX_B8",
}
