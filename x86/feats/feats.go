package feats

type Feature uint32

// CPU Features
const (
	BASE Feature = 0
	FPU  Feature = 1 << iota
	MMX
	TDNOW
	SSE
	SSE2
	SSE3
	SSSE3
	SSE41
	SSE42
	AVX
	AVX2
	AVX512F
	AVX512VL
	AVX512BW
	AVX512DQ
	AVX512CD
	FMA
	BMI1
	BMI2
	ADX
	LZCNT
	POPCNT
	SHA
	MPX
	RTM
	VMX
	AMD
)

const AllFeatures Feature = 0xffffffff

func FeatName(f Feature) string { return featNames[f] }

var featNames = map[Feature]string{
	BASE:     "BASE",
	FPU:      "FPU",
	MMX:      "MMX",
	TDNOW:    "TDNOW",
	SSE:      "SSE",
	SSE2:     "SSE2",
	SSE3:     "SSE3",
	SSSE3:    "SSSE3",
	SSE41:    "SSE41",
	SSE42:    "SSE42",
	AVX:      "AVX",
	AVX2:     "AVX2",
	AVX512F:  "AVX512F",
	AVX512VL: "AVX512VL",
	AVX512BW: "AVX512BW",
	AVX512DQ: "AVX512DQ",
	AVX512CD: "AVX512CD",
	FMA:      "FMA",
	BMI1:     "BMI1",
	BMI2:     "BMI2",
	ADX:      "ADX",
	LZCNT:    "LZCNT",
	POPCNT:   "POPCNT",
	SHA:      "SHA",
	MPX:      "MPX",
	RTM:      "RTM",
	VMX:      "VMX",
	AMD:      "AMD",
}
