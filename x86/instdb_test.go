package x86

import (
	"testing"
	"unsafe"
)

func TestInstName(t *testing.T) {
	if ADD.Name() != "add" {
		t.Fatalf("ADD.Name() = %s", ADD.Name())
	}
	if MOV.Name() != "mov" {
		t.Fatalf("MOV.Name() = %s", MOV.Name())
	}
	if VZEROUPPER.Name() != "vzeroupper" {
		t.Fatalf("VZEROUPPER.Name() = %s", VZEROUPPER.Name())
	}
	if InstNone.Name() != "" {
		t.Fatalf("InstNone.Name() = %q", InstNone.Name())
	}
	if Inst(0xFFFF).Name() != "" {
		t.Fatalf("out-of-range Name() = %q", Inst(0xFFFF).Name())
	}
}

func TestRecordBounds(t *testing.T) {
	if _, err := Record(Inst(uint16(InstCount()))); err != ErrInvalidInstructionId {
		t.Fatalf("Record(out of range) = %v", err)
	}
	// every record's signature group stays within the signature table
	for i := 0; i < InstCount(); i++ {
		r, err := Record(Inst(i))
		if err != nil {
			t.Fatalf("Record(%d): %v", i, err)
		}
		if int(r.sigIndex)+int(r.sigCount) > SigCount() {
			t.Fatalf("%s: signature range [%d,%d) exceeds table length %d",
				Inst(i).Name(), r.sigIndex, r.sigIndex+uint16(r.sigCount), SigCount())
		}
	}
}

func TestRecordContent(t *testing.T) {
	r, _ := Record(SHL)
	if r.Encoding() != EncX86Rot {
		t.Fatalf("shl encoding = %d", r.Encoding())
	}
	// shifts keep the CL form as the alternate opcode; validation never
	// reads it but the encoder does
	if r.AltOpcode() == 0 {
		t.Fatal("shl has no alternate opcode")
	}
	if mo, ok := r.Opcode().ModO(); !ok || mo != 4 {
		t.Fatalf("shl /O = %d, %v", mo, ok)
	}

	r, _ = Record(ADC)
	if eff := r.EFlags().Effect(EfC); eff != EFlagRW {
		t.Fatalf("adc carry effect = %d", eff)
	}
	if eff := r.EFlags().Effect(EfZ); eff != EFlagW {
		t.Fatalf("adc zero effect = %d", eff)
	}

	r, _ = Record(FADD)
	if kind, _ := r.Family(); kind != FamilyFpu {
		t.Fatalf("fadd family = %d", kind)
	}
	r, _ = Record(VADDPD)
	if kind, _ := r.Family(); kind != FamilyAvx512 {
		t.Fatalf("vaddpd family = %d", kind)
	}
	if !r.Opcode().EvexW() {
		t.Fatal("vaddpd should set EVEX.W")
	}
	if r.Opcode().Tuple() != TupleFV {
		t.Fatalf("vaddpd tuple = %d", r.Opcode().Tuple())
	}

	r, _ = Record(SETA)
	if idx, size := r.WriteInfo(); idx != 0 || size != 1 {
		t.Fatalf("seta write info = %d, %d", idx, size)
	}
}

func TestOpSigRows(t *testing.T) {
	// row 0 is the reserved absent operand; every other row is non-empty
	for i, s := range opSigs {
		if i == 0 {
			if s.flags != 0 || s.memFlags != 0 {
				t.Fatal("row 0 must be empty")
			}
			continue
		}
		if s.flags == 0 && s.memFlags == 0 {
			t.Fatalf("operand signature row %d is empty", i)
		}
	}
	// signature rows reference valid operand rows
	for i, s := range instSigs {
		for p := 0; p < int(s.count); p++ {
			if int(s.ops[p]) >= len(opSigs) {
				t.Fatalf("signature row %d references operand row %d", i, s.ops[p])
			}
		}
		if s.implicit > s.count {
			t.Fatalf("signature row %d: implicit %d > count %d", i, s.implicit, s.count)
		}
	}
}

func TestStaticDataSize(t *testing.T) {
	if unsafe.Sizeof(opSig{}) != 8 {
		t.Fatalf("sizeof(opSig) = %v", unsafe.Sizeof(opSig{}))
	}
	size := InstCount() * int(unsafe.Sizeof(InstRecord{}))
	size += SigCount() * int(unsafe.Sizeof(instSig{}))
	size += len(opSigs) * int(unsafe.Sizeof(opSig{}))
	size += len(instNameBlob)
	t.Logf("static data size %v", size)
	if size > 0x10000 { // this can be revisited if the layout changes
		t.Fatalf("static data size exceeds %v", 0x10000)
	}
}
