// Package x86 provides the instruction database and operand validator for
// the x86 and x86-64 instruction set architectures.
//
// The package is the static, data-driven heart that emitters (assemblers,
// compilers, analyzers) consult. It answers three questions:
//
//   - Instruction lookup: FindInst maps a mnemonic to an instruction id;
//     Record exposes the per-mnemonic encoding kind, opcode words, flags,
//     EFLAGS effect and CPU-feature set.
//
//   - Condition codes: Jcc, Setcc and Cmovcc map an abstract condition code
//     to the matching instruction family member; ReverseCond negates a
//     condition at zero cost.
//
//   - Validation: Validate decides whether an (architecture, instruction,
//     options, operands) combination is encodable, covering register
//     encodability per architecture, signature matching with implicit
//     operands, and the AVX-512 writemask/broadcast/rounding rules.
//
// Every table is immutable after package init; concurrent readers need no
// synchronization, and validation performs no heap allocation.
//
// Encoding bytes into a code buffer, label binding and relocation, and
// register allocation are the province of the packages consuming this one.
package x86
