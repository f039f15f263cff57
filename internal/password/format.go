package password

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	saltpasserrors "saltpass/internal/errors"
	"saltpass/internal/secret"
)

// Password length bounds. Requests outside this range are rejected rather
// than clamped, so a caller can never silently get a shorter password than
// it asked for.
const (
	MinLength = 12
	MaxLength = 64
)

// specials is the fixed special-character alphabet. The base64 symbols
// '+', '/', and '=' map into it by output position, so special characters
// land at input-derived spots instead of always being the same rune.
var specials = [8]rune{'!', '@', '#', '$', '%', '^', '&', '*'}

type charClass int

const (
	classLower charClass = iota
	classUpper
	classDigit
	classSpecial
)

func classOf(r rune) charClass {
	switch {
	case r >= 'A' && r <= 'Z':
		return classUpper
	case r >= '0' && r <= '9':
		return classDigit
	case r >= 'a' && r <= 'z':
		return classLower
	}
	return classSpecial
}

// Format converts raw key material into a printable password of exactly
// length characters containing at least one uppercase letter, one digit,
// and one special character. It is a pure function of (raw, length): the
// same inputs always produce the same password, which is what makes the
// whole tool work. Format never sees the master secret.
//
// The encoding is base64 of the raw bytes with '+', '/', '=' mapped into
// the specials table. If length exceeds what one encoding pass yields, the
// stream is extended with base64(SHA-256(raw || counter)) blocks, still
// fully determined by the input.
func Format(raw []byte, length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("%w: got %d", saltpasserrors.ErrLengthOutOfRange, length)
	}
	if len(raw) < 8 {
		return "", fmt.Errorf("%w: raw key material too short", saltpasserrors.ErrAlgorithmParameter)
	}

	out := make([]rune, 0, length)
	encoded := base64.StdEncoding.EncodeToString(raw)
	counter := byte(0)

	for len(out) < length {
		for _, ch := range encoded {
			if len(out) >= length {
				break
			}
			pos := len(out)
			switch ch {
			case '+':
				ch = specials[pos%len(specials)]
			case '/':
				ch = specials[(pos+1)%len(specials)]
			case '=':
				ch = specials[(pos+2)%len(specials)]
			}
			out = append(out, ch)
		}
		// Encoding exhausted before reaching length: extend the stream.
		block := sha256.Sum256(append(append(make([]byte, 0, len(raw)+1), raw...), counter))
		encoded = base64.StdEncoding.EncodeToString(block[:])
		counter++
	}

	enforceClasses(out, raw)
	return string(out), nil
}

// enforceClasses guarantees the uppercase/digit/special policy by
// substituting characters at positions derived from the raw material.
// Substitutions are deterministic, never touch a position twice, and never
// consume the last remaining member of another required class, so the
// result always satisfies all three requirements.
func enforceClasses(out []rune, raw []byte) {
	var counts [4]int
	for _, r := range out {
		counts[classOf(r)]++
	}

	required := []struct {
		cls     charClass
		seed    byte
		replace rune
	}{
		{classUpper, raw[0], 'A' + rune(raw[1]%26)},
		{classDigit, raw[2], '0' + rune(raw[3]%10)},
		{classSpecial, raw[4], specials[int(raw[5])%len(specials)]},
	}

	used := make(map[int]bool, len(required))
	for _, req := range required {
		if counts[req.cls] > 0 {
			continue
		}
		pos := int(req.seed) % len(out)
		for used[pos] || soleRequired(counts, classOf(out[pos])) {
			pos = (pos + 1) % len(out)
		}
		counts[classOf(out[pos])]--
		out[pos] = req.replace
		counts[req.cls]++
		used[pos] = true
	}
}

// soleRequired reports whether cls is a required class down to its last
// member, and therefore must not be overwritten.
func soleRequired(counts [4]int, cls charClass) bool {
	if cls == classLower {
		return false
	}
	return counts[cls] == 1
}

// Generate is the full derivation pipeline: Derive then Format. The
// intermediate raw key material is wiped before returning, on success and
// on formatting failure alike.
func Generate(sec *secret.Secret, identifier string, alg Algorithm, length int) (string, error) {
	raw, err := Derive(sec, identifier, alg)
	if err != nil {
		return "", err
	}
	defer secret.Wipe(raw)

	return Format(raw, length)
}
