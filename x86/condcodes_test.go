package x86

import (
	"strings"
	"testing"
)

// Mnemonic suffix per condition code for the jcc/setcc/cmovcc families.
var condSuffix = [condCount]string{
	CondO: "o", CondNO: "no", CondB: "b", CondAE: "ae",
	CondE: "e", CondNE: "ne", CondBE: "be", CondA: "a",
	CondS: "s", CondNS: "ns", CondPE: "p", CondPO: "np",
	CondL: "l", CondGE: "ge", CondLE: "le", CondG: "g",
}

func TestReverseCondInvolution(t *testing.T) {
	for cc := CondCode(0); cc < condCount; cc++ {
		if got := ReverseCond(ReverseCond(cc)); got != cc {
			t.Fatalf("ReverseCond(ReverseCond(%d)) = %d", cc, got)
		}
	}
	if ReverseCond(CondB) != CondAE || ReverseCond(CondL) != CondGE {
		t.Fatal("condition negation is wrong")
	}
}

func TestCondFamilies(t *testing.T) {
	for cc := CondO; cc <= CondG; cc++ {
		suffix := condSuffix[cc]

		jcc := Jcc(cc)
		r, err := Record(jcc)
		if err != nil || r.Encoding() != EncX86Jcc {
			t.Fatalf("Jcc(%d) encoding = %d, %v", cc, r.Encoding(), err)
		}
		if name := jcc.Name(); !strings.HasSuffix(name, suffix) || name[0] != 'j' {
			t.Fatalf("Jcc(%d) = %s, want suffix %s", cc, name, suffix)
		}

		set := Setcc(cc)
		r, err = Record(set)
		if err != nil || r.Encoding() != EncX86Set {
			t.Fatalf("Setcc(%d) encoding = %d, %v", cc, r.Encoding(), err)
		}
		if name := set.Name(); !strings.HasSuffix(name, suffix) || !strings.HasPrefix(name, "set") {
			t.Fatalf("Setcc(%d) = %s, want suffix %s", cc, name, suffix)
		}

		cmov := Cmovcc(cc)
		r, err = Record(cmov)
		if err != nil || r.Encoding() != EncX86Rm {
			t.Fatalf("Cmovcc(%d) encoding = %d, %v", cc, r.Encoding(), err)
		}
		if name := cmov.Name(); !strings.HasSuffix(name, suffix) || !strings.HasPrefix(name, "cmov") {
			t.Fatalf("Cmovcc(%d) = %s, want suffix %s", cc, name, suffix)
		}
	}
}

func TestCondSpecials(t *testing.T) {
	if Jcc(CondAlways) != JMP {
		t.Fatalf("Jcc(always) = %s", Jcc(CondAlways).Name())
	}
	if Jcc(CondNone) != InstNone || Setcc(CondAlways) != InstNone || Cmovcc(CondNone) != InstNone {
		t.Fatal("nonexistent family members must map to InstNone")
	}
	if Jcc(CondFpuUn) != JP || Jcc(CondFpuNotUn) != JNP {
		t.Fatal("FPU aggregates ride the parity flag")
	}
}
