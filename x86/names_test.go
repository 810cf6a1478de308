package x86

import (
	"strings"
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

func TestFindInst(t *testing.T) {
	id, err := FindInst([]byte("add"))
	if err != nil || id != ADD {
		t.Fatalf("FindInst(add) = %v, %v", id, err)
	}
	id, err = FindInst([]byte("ADD"))
	if err != nil || id != ADD {
		t.Fatalf("FindInst(ADD) = %v, %v", id, err)
	}
	if _, err = FindInst([]byte("zzz")); err != ErrInvalidInstructionId {
		t.Fatalf("FindInst(zzz) = %v", err)
	}
}

func TestFindInstRejects(t *testing.T) {
	bad := [][]byte{
		nil,
		{},
		[]byte("_"),
		[]byte("123xyz"),
		[]byte("anamethatislongerthananymnemonic"),
		[]byte("q"), // unused letter bucket
	}
	for _, in := range bad {
		if id, err := FindInst(in); err != ErrInvalidInstructionId || id != InstNone {
			t.Fatalf("FindInst(%q) = %v, %v", in, id, err)
		}
	}
}

// The jcc family is grouped before jecxz/jmp, so the 'j' bucket is scanned
// linearly; make sure both sides of the split resolve.
func TestFindInstJBucket(t *testing.T) {
	for want, name := range map[Inst]string{
		JA:    "ja",
		JE:    "je",
		JNZ:   "jnz",
		JZ:    "jz",
		JECXZ: "jecxz",
		JMP:   "jmp",
	} {
		id, err := FindInst([]byte(name))
		if err != nil || id != want {
			t.Fatalf("FindInst(%s) = %v, %v", name, id, err)
		}
	}
}

// Every mnemonic round-trips through the name index.
func TestNameRoundTrip(t *testing.T) {
	for i := 1; i < InstCount(); i++ {
		name := Inst(i).Name()
		if name == "" {
			t.Fatalf("id %d has no name", i)
		}
		id, err := FindInst([]byte(name))
		if err != nil {
			t.Fatalf("FindInst(%s): %v", name, err)
		}
		if id != Inst(i) {
			t.Fatalf("FindInst(%s) = %d, want %d", name, id, i)
		}
	}
}

// Cross-check the mnemonic spellings against x86asm's independent op tables:
// for every instruction we carry under one of these ops, the folded x86asm
// name must resolve to the same id.
func TestNamesAgainstX86asm(t *testing.T) {
	ops := []x86asm.Op{
		x86asm.ADD, x86asm.ADC, x86asm.AND, x86asm.CMP, x86asm.MOV,
		x86asm.LEA, x86asm.RET, x86asm.PUSH, x86asm.POP, x86asm.PAND,
		x86asm.PXOR, x86asm.FADD, x86asm.JMP, x86asm.NOP, x86asm.XCHG,
		x86asm.CPUID, x86asm.BSF, x86asm.BSR, x86asm.BSWAP, x86asm.BT,
		x86asm.HLT, x86asm.TEST, x86asm.XOR, x86asm.SAHF, x86asm.LAHF,
		x86asm.MOVAPS,
	}
	for _, op := range ops {
		name := strings.ToLower(op.String())
		id, err := FindInst([]byte(name))
		if err != nil {
			t.Fatalf("FindInst(%s): %v", name, err)
		}
		if got := id.Name(); got != name {
			t.Fatalf("FindInst(%s).Name() = %s", name, got)
		}
	}
}
