package x86

// Arg represents an instruction operand. A nil Arg is the absent operand;
// the operand vector ends at the first absent entry.
type Arg interface {
	isArg()
	width() uint8
}

// Mem is a memory-reference operand. Base may be RIP for RIP-relative
// addressing; Index may be an XMM/YMM/ZMM register for
// vector-index (VSIB) addressing. Width is the element size in bytes, or 0
// when the reference carries no size of its own.
//
// Mem implements Arg.
type Mem struct {
	Disp  int32
	Base  Reg
	Index Reg
	Scale uint8
	Width uint8
}

func (m Mem) isArg()       {}
func (m Mem) width() uint8 { return m.Width }

// ImmArg represents an immediate operand.
//
// Any Imm8, Imm16, Imm32, or Imm64 value implements ImmArg.
type ImmArg interface {
	Arg
	isImm()
	Int64() int64
}

// Imm8 is an 8-bit immediate operand.
type Imm8 int8

// Imm16 is a 16-bit immediate operand.
type Imm16 int16

// Imm32 is a 32-bit immediate operand.
type Imm32 int32

// Imm64 is a 64-bit immediate operand.
type Imm64 int64

func (i Imm8) isArg()  {}
func (i Imm16) isArg() {}
func (i Imm32) isArg() {}
func (i Imm64) isArg() {}

func (i Imm8) isImm()  {}
func (i Imm16) isImm() {}
func (i Imm32) isImm() {}
func (i Imm64) isImm() {}

func (i Imm8) width() uint8  { return 1 }
func (i Imm16) width() uint8 { return 2 }
func (i Imm32) width() uint8 { return 4 }
func (i Imm64) width() uint8 { return 8 }

func (i Imm8) Int64() int64  { return int64(i) }
func (i Imm16) Int64() int64 { return int64(i) }
func (i Imm32) Int64() int64 { return int64(i) }
func (i Imm64) Int64() int64 { return int64(i) }

// RelArg represents a relative branch target.
//
// Any Rel8 or Rel32 value implements RelArg.
type RelArg interface {
	Arg
	isRel()
	Int32() int32
}

// Rel8 is an 8-bit relative displacement operand.
type Rel8 int8

// Rel32 is a 32-bit relative displacement operand.
type Rel32 int32

func (r Rel8) isArg()  {}
func (r Rel32) isArg() {}

func (r Rel8) isRel()  {}
func (r Rel32) isRel() {}

func (r Rel8) width() uint8  { return 1 }
func (r Rel32) width() uint8 { return 4 }

func (r Rel8) Int32() int32  { return int32(r) }
func (r Rel32) Int32() int32 { return int32(r) }

// Reg is a register operand with a specific width and family. All registers
// have a number which distinguishes them within their family, with the
// exception of the IP/EIP/RIP registers.
//
// Reg implements Arg.
type Reg uint32

func (r Reg) isArg() {}

// Get the family for the register: REG_LEGACY, REG_RIP, REG_HIGHBYTE,
// REG_FP, REG_MMX, REG_XMM, REG_YMM, REG_ZMM, REG_K, REG_BND, REG_SEGMENT,
// REG_CONTROL, or REG_DEBUG.
func (r Reg) Family() uint8 { return uint8(r >> 8) }

// Get the number which distinguishes the register within its family. The
// IP/EIP/RIP registers have no meaningful number, so they will return 0.
func (r Reg) Num() uint8 { return uint8(r) }

// Get the width of the register in bytes.
func (r Reg) Width() uint8 { return r.width() }
func (r Reg) width() uint8 { return uint8(r >> 16) }

// Check if the register is numbered 8 or higher. Virtual registers are
// never reported as extended.
func (r Reg) IsExtended() bool { return r.Num() >= 8 && !r.IsVirtual() }

// Check if the register id is a virtual placeholder. Virtual registers are
// accepted by validation without encodability checks; a register allocator
// assigns them later.
func (r Reg) IsVirtual() bool { return r.Num() >= VirtIdMin }

// VirtReg builds a virtual register of the same family and width as base,
// numbered VirtIdMin+n.
func VirtReg(base Reg, n uint8) Reg {
	return (base &^ 0xff) | Reg(VirtIdMin+uint32(n))
}
