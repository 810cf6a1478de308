package x86

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestValidatePreconditions(t *testing.T) {
	require.Equal(t, ErrInvalidArch, Validate(ArchNone, ADD, 0, nil, EAX, EDX))
	require.Equal(t, ErrInvalidArch, Validate(Arch(9), ADD, 0, nil, EAX, EDX))
	require.Equal(t, ErrInvalidArgument, Validate(ArchX64, Inst(0xFFF0), 0, nil))
}

func TestValidateScenarios(t *testing.T) {
	cases := []struct {
		name string
		arch Arch
		inst Inst
		opts Options
		ext  Arg
		args []Arg
		want error
	}{
		{"cmp eax, edx", ArchX86, CMP, 0, nil, []Arg{EAX, EDX}, nil},
		{"cmp rax, rdx", ArchX64, CMP, 0, nil, []Arg{RAX, RDX}, nil},
		{"cmp rax, rdx on x86", ArchX86, CMP, 0, nil, []Arg{RAX, RDX}, ErrInvalidUseOfGpq},
		{"cmp rax, al", ArchX64, CMP, 0, nil, []Arg{RAX, AL}, ErrInvalidInstruction},
		{"fadd st0, st7", ArchX86, FADD, 0, nil, []Arg{F0, F7}, nil},
		{"fadd st0, eax", ArchX86, FADD, 0, nil, []Arg{F0, EAX}, ErrInvalidInstruction},
		{"pand xmm0, xmm1", ArchX86, PAND, 0, nil, []Arg{X0, X1}, nil},
		{"pand xmm8, xmm9", ArchX64, PAND, 0, nil, []Arg{X8, X9}, nil},
		{"pand xmm8, xmm9 on x86", ArchX86, PAND, 0, nil, []Arg{X8, X9}, ErrInvalidPhysId},
		{"vpaddw zmm0, zmm1, zmm2", ArchX86, VPADDW, 0, nil, []Arg{Z0, Z1, Z2}, nil},
		{"mov eax, cr8 on x86", ArchX86, MOV, 0, nil, []Arg{EAX, CR8}, ErrInvalidPhysId},
		{"mov rax, cr8", ArchX64, MOV, 0, nil, []Arg{RAX, CR8}, nil},
		{"mov ax, cs", ArchX86, MOV, 0, nil, []Arg{AX, CS}, ErrInvalidInstruction},
		{"mov ax, ds", ArchX86, MOV, 0, nil, []Arg{AX, DS}, nil},
		{"vaddpd {1to2} with m32", ArchX86, VADDPD, OptBroadcast, nil,
			[]Arg{X1, X2, Mem{Base: EAX, Width: 4}}, ErrInvalidBroadcast},
		{"vaddpd {er} on xmm", ArchX86, VADDPD, OptER, nil, []Arg{X0, X1, X2}, ErrInvalidSAEOrER},
	}
	for _, c := range cases {
		err := Validate(c.arch, c.inst, c.opts, c.ext, c.args...)
		if c.want == nil {
			require.NoError(t, err, "%s\n%s", c.name, spew.Sdump(c.args))
		} else {
			require.Equal(t, c.want, err, "%s\n%s", c.name, spew.Sdump(c.args))
		}
	}
}

func TestValidateOperandGap(t *testing.T) {
	require.Equal(t, ErrInvalidState, Validate(ArchX64, ADD, 0, nil, RAX, nil, RDX))
	// trailing absent operands are fine
	require.NoError(t, Validate(ArchX64, ADD, 0, nil, RAX, RDX, nil, nil))
}

func TestValidateRegTypes(t *testing.T) {
	// the instruction pointer is not an operand register
	require.Equal(t, ErrInvalidRegType, Validate(ArchX64, PUSH, 0, nil, RIP))
	// virtual ids skip encodability checks
	require.NoError(t, Validate(ArchX86, ADD, 0, nil, VirtReg(EAX, 0), EDX))
	require.NoError(t, Validate(ArchX86, PAND, 0, nil, VirtReg(X0, 9), X1))
}

func TestValidateGpbHiRex(t *testing.T) {
	require.NoError(t, Validate(ArchX64, ADD, 0, nil, AH, BL))
	require.Equal(t, ErrInvalidUseOfGpbHi, Validate(ArchX64, ADD, 0, nil, AH, R8B))
	// an extended base register in a memory operand conflicts the same way
	require.Equal(t, ErrInvalidUseOfGpbHi,
		Validate(ArchX64, MOV, 0, nil, Mem{Base: R8, Width: 1}, AH))
}

func TestValidateAddressing(t *testing.T) {
	require.NoError(t, Validate(ArchX64, MOV, 0, nil, RAX, Mem{Base: RBX, Width: 8}))
	require.NoError(t, Validate(ArchX64, LEA, 0, nil, RAX, Mem{Base: RIP, Disp: 16}))
	// a 64-bit base is not addressable in 32-bit mode
	require.Equal(t, ErrInvalidAddress, Validate(ArchX86, MOV, 0, nil, EAX, Mem{Base: RAX, Width: 4}))
	// control registers never address memory
	require.Equal(t, ErrInvalidAddress, Validate(ArchX64, MOV, 0, nil, RAX, Mem{Base: CR0, Width: 8}))
	// an index above the encodable range is rejected even inside a reference
	require.Equal(t, ErrInvalidPhysId,
		Validate(ArchX86, MOV, 0, nil, EAX, Mem{Base: EBX, Index: R8L, Width: 4}))
}

func TestValidateImplicitOperands(t *testing.T) {
	// div r/m64 consumes rdx:rax implicitly; both spellings are accepted
	require.NoError(t, Validate(ArchX64, DIV, 0, nil, RCX))
	require.NoError(t, Validate(ArchX64, DIV, 0, nil, RDX, RAX, RCX))
	// the wrong registers in the explicit spelling do not match
	require.Equal(t, ErrInvalidInstruction, Validate(ArchX64, DIV, 0, nil, RBX, RAX, RCX))

	require.NoError(t, Validate(ArchX64, CMPXCHG, 0, nil, Mem{Base: RBX, Width: 8}, RCX))
	require.NoError(t, Validate(ArchX64, CMPXCHG, 0, nil, Mem{Base: RBX, Width: 8}, RCX, RAX))

	// in/out pin the accumulator and dx as explicit fixed registers
	require.NoError(t, Validate(ArchX86, IN, 0, nil, AL, DX))
	require.NoError(t, Validate(ArchX86, OUT, 0, nil, DX, EAX))
	require.Equal(t, ErrInvalidInstruction, Validate(ArchX86, IN, 0, nil, BL, DX))
}

func TestValidateVsib(t *testing.T) {
	require.NoError(t, Validate(ArchX64, VGATHERDPS, 0, nil, X0, Mem{Base: RDX, Index: X1}, X2))
	require.NoError(t, Validate(ArchX64, VGATHERDPS, 0, nil, Y0, Mem{Base: RDX, Index: Y1}, Y2))
	// index shape must agree with the destination width
	require.Equal(t, ErrInvalidInstruction,
		Validate(ArchX64, VGATHERDPS, 0, nil, X0, Mem{Base: RDX, Index: Y1}, X2))
	// a plain memory form never matches a vector-index signature
	require.Equal(t, ErrInvalidInstruction,
		Validate(ArchX64, VGATHERDPS, 0, nil, X0, Mem{Base: RDX, Width: 16}, X2))
}

func TestValidateVectorShifts(t *testing.T) {
	// register-form count is always xmm/m128, regardless of vector length
	require.NoError(t, Validate(ArchX64, VPSLLD, 0, nil, X0, X1, X2))
	require.NoError(t, Validate(ArchX64, VPSLLD, 0, nil, Y0, Y1, X2))
	require.NoError(t, Validate(ArchX64, VPSRLQ, 0, nil, Z0, Z1, Mem{Base: RAX, Width: 16}))
	require.Equal(t, ErrInvalidInstruction, Validate(ArchX64, VPSLLD, 0, nil, Y0, Y1, Y2))
	// immediate form shifts the full-width source
	require.NoError(t, Validate(ArchX64, VPSRAW, 0, nil, X0, X1, Imm8(3)))
	require.NoError(t, Validate(ArchX64, VPSLLQ, 0, nil, Z0, Mem{Base: RAX, Width: 64}, Imm8(1)))
	require.Equal(t, ErrInvalidInstruction, Validate(ArchX64, VPSRAW, 0, nil, X0, Y1, Imm8(3)))
	// the doubleword/quadword forms broadcast through the immediate form
	require.NoError(t, Validate(ArchX64, VPSLLD, OptBroadcast, nil, Z0, Mem{Base: RAX, Width: 4}, Imm8(1)))
	require.Equal(t, ErrInvalidBroadcast,
		Validate(ArchX64, VPSLLQ, OptBroadcast, nil, Z0, Mem{Base: RAX, Width: 4}, Imm8(1)))
	require.Equal(t, ErrInvalidBroadcast,
		Validate(ArchX64, VPSLLW, OptBroadcast, nil, Z0, Mem{Base: RAX, Width: 2}, Imm8(1)))
}

func TestValidateAvx512Masking(t *testing.T) {
	require.NoError(t, Validate(ArchX64, VADDPD, OptMaskK, K1, X0, X1, X2))
	require.NoError(t, Validate(ArchX64, VADDPD, OptMaskK|OptMaskZ, K1, X0, X1, X2))
	require.Equal(t, ErrInvalidKZeroUse, Validate(ArchX64, VADDPD, OptMaskZ, nil, X0, X1, X2))
	require.Equal(t, ErrInvalidKMaskReg, Validate(ArchX64, VADDPD, OptMaskK, nil, X0, X1, X2))
	require.Equal(t, ErrInvalidKMaskReg, Validate(ArchX64, VADDPD, OptMaskK, EAX, X0, X1, X2))
	require.Equal(t, ErrInvalidKMaskUse, Validate(ArchX64, PAND, OptMaskK, K1, X0, X1))
}

func TestValidateAvx512Broadcast(t *testing.T) {
	require.NoError(t, Validate(ArchX64, VADDPD, OptBroadcast, nil, Z0, Z1, Mem{Base: RAX, Width: 8}))
	require.NoError(t, Validate(ArchX64, VADDPS, OptBroadcast, nil, Z0, Z1, Mem{Base: RAX, Width: 4}))
	// an unsized reference is accepted; the encoder scales it by tuple
	require.NoError(t, Validate(ArchX64, VADDPD, OptBroadcast, nil, Z0, Z1, Mem{Base: RAX}))
	require.Equal(t, ErrInvalidBroadcast,
		Validate(ArchX64, VADDPS, OptBroadcast, nil, Z0, Z1, Mem{Base: RAX, Width: 8}))
	// broadcast without a memory operand has no referent
	require.Equal(t, ErrInvalidBroadcast, Validate(ArchX64, VADDPD, OptBroadcast, nil, Z0, Z1, Z2))
	// vpand has no EVEX form at all
	require.Equal(t, ErrInvalidBroadcast,
		Validate(ArchX64, VPAND, OptBroadcast, nil, X0, X1, Mem{Base: RAX, Width: 4}))
}

func TestValidateAvx512Rounding(t *testing.T) {
	require.NoError(t, Validate(ArchX64, VADDPD, OptER, nil, Z0, Z1, Z2))
	require.NoError(t, Validate(ArchX64, VADDPD, OptSAE, nil, Z0, Z1, Z2))
	// scalar forms take {er} at any register width
	require.NoError(t, Validate(ArchX64, VADDSD, OptER, nil, X0, X1, X2))
	require.Equal(t, ErrInvalidSAEOrER,
		Validate(ArchX64, VADDPD, OptER, nil, Z0, Z1, Mem{Base: RAX, Width: 64}))
	require.Equal(t, ErrInvalidSAEOrER, Validate(ArchX64, VANDPD, OptER, nil, Z0, Z1, Z2))
	require.Equal(t, ErrInvalidSAEOrER, Validate(ArchX64, PAND, OptSAE, nil, X0, X1))
}

// Validation is a pure function: equal inputs give equal results.
func TestValidatePurity(t *testing.T) {
	args := []Arg{RAX, Mem{Base: RBX, Index: RCX, Scale: 4, Width: 8}}
	first := Validate(ArchX64, ADD, 0, nil, args...)
	for i := 0; i < 4; i++ {
		require.Equal(t, first, Validate(ArchX64, ADD, 0, nil, args...))
	}
}
