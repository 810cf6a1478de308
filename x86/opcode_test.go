package x86

import "testing"

func TestOpcodeFields(t *testing.T) {
	o := NewOpcode(Prefix66, Map0F38, 0x92).
		WithModO(5).
		WithVecLen(L512).
		WithW().
		WithEvexW().
		WithTuple(TupleT1S, 3).
		WithForceVex3()

	if o.Byte() != 0x92 {
		t.Fatalf("Byte() = %#x", o.Byte())
	}
	if o.Map() != Map0F38 {
		t.Fatalf("Map() = %d", o.Map())
	}
	if o.Prefix() != Prefix66 {
		t.Fatalf("Prefix() = %d", o.Prefix())
	}
	if mo, ok := o.ModO(); !ok || mo != 5 {
		t.Fatalf("ModO() = %d, %v", mo, ok)
	}
	if o.VecLen() != L512 {
		t.Fatalf("VecLen() = %d", o.VecLen())
	}
	if !o.W() || !o.EvexW() {
		t.Fatal("W bits lost")
	}
	if o.CDShift() != 3 {
		t.Fatalf("CDShift() = %d", o.CDShift())
	}
	if o.Tuple() != TupleT1S {
		t.Fatalf("Tuple() = %d", o.Tuple())
	}
	if !o.ForceVex3() {
		t.Fatal("ForceVex3 lost")
	}
}

func TestOpcodeDefaults(t *testing.T) {
	o := op(0x90)
	if _, ok := o.ModO(); ok {
		t.Fatal("plain opcode should have no /O extension")
	}
	if o.Prefix() != PrefixNone || o.Map() != MapNone || o.VecLen() != LIgnore {
		t.Fatal("plain opcode carries stray fields")
	}
	if o.W() || o.EvexW() || o.ForceVex3() || o.Tuple() != TupleNone {
		t.Fatal("plain opcode carries stray bits")
	}
}
