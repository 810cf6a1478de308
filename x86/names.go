package x86

// The name index: every mnemonic lives in one zero-separated blob; records
// store an offset into it. A 26-entry table maps the first letter of a name
// to the first instruction id in that letter's bucket. Buckets are sorted,
// so lookup binary-searches the bucket slice — except the 'j' bucket, where
// the conditional-jump family is grouped before jecxz/jmp and the scan is
// linear.

const maxNameLength = 16

var (
	instNameBlob string
	alphaIndex   [26]Inst
)

// FindInst maps a mnemonic (case-insensitive) to an instruction id.
// FindInst fails with ErrInvalidInstructionId when the input is empty,
// longer than any mnemonic, or unknown.
func FindInst(name []byte) (Inst, error) {
	if len(name) == 0 || len(name) > maxNameLength {
		return InstNone, ErrInvalidInstructionId
	}
	var buf [maxNameLength]byte
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch >= 'A' && ch <= 'Z' {
			ch |= 0x20
		}
		buf[i] = ch
	}
	folded := buf[:len(name)]

	c := folded[0]
	if c < 'a' || c > 'z' {
		return InstNone, ErrInvalidInstructionId
	}
	start := alphaIndex[c-'a']
	if start == InstNone {
		return InstNone, ErrInvalidInstructionId
	}
	end := Inst(len(instRecords))
	for n := int(c-'a') + 1; n < 26; n++ {
		if alphaIndex[n] != InstNone {
			end = alphaIndex[n]
			break
		}
	}

	if c == 'j' {
		// jcc sorts before jecxz/jmp, so this bucket is not ordered
		for id := start; id < end; id++ {
			if cmpName(instRecords[id].nameOff, folded) == 0 {
				return id, nil
			}
		}
		return InstNone, ErrInvalidInstructionId
	}

	lo, hi := int(start), int(end)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch cmpName(instRecords[mid].nameOff, folded) {
		case 0:
			return Inst(mid), nil
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return InstNone, ErrInvalidInstructionId
}

// cmpName compares the zero-terminated blob entry at off against s, which is
// already folded to lowercase. The stored name must match s exactly: len(s)
// equal bytes followed by the terminator.
func cmpName(off uint16, s []byte) int {
	b := instNameBlob
	for i := 0; i < len(s); i++ {
		bc := b[int(off)+i]
		if bc != s[i] {
			if bc < s[i] { // the terminator is 0, so a shorter name sorts first
				return -1
			}
			return 1
		}
	}
	if b[int(off)+len(s)] != 0 {
		return 1
	}
	return 0
}

func nameFromBlob(off uint16) string {
	b := instNameBlob
	end := int(off)
	for b[end] != 0 {
		end++
	}
	return b[off:end]
}

// buildNameIndex concatenates every mnemonic into the blob, assigns name
// offsets, and fills the first-letter table. Offset 0 holds a lone
// terminator so InstNone resolves to "".
func buildNameIndex() {
	blob := make([]byte, 1, 2048)
	for i := 1; i < len(instRecords); i++ {
		r := &instRecords[i]
		r.nameOff = uint16(len(blob))
		blob = append(blob, r.name...)
		blob = append(blob, 0)
		c := r.name[0]
		if alphaIndex[c-'a'] == InstNone {
			alphaIndex[c-'a'] = Inst(i)
		}
	}
	instNameBlob = string(blob)
}
