package password

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	saltpasserrors "saltpass/internal/errors"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("Bad hex in test: %v", err)
	}
	return b
}

// Golden outputs for the HMAC-SHA256 raw material of
// ("correct-horse", "github.com"), computed independently.
func TestFormat_Golden(t *testing.T) {
	raw := mustHex(t, "120889f77e6e8cc48a9fdace12c2a1706ca6ade7d312a092dc89dab4db66b6d9")

	tests := []struct {
		length int
		want   string
	}{
		{12, "EgiJ93&ujMSK"},
		{16, "EgiJ935ujMSKn9&O"},
		{64, "EgiJ935ujMSKn9rOEsKhcGymrefTEqCS3InatNtmttk^MS8brpuVCUIGhojrAk9D"},
	}

	for _, tt := range tests {
		got, err := Format(raw, tt.length)
		if err != nil {
			t.Fatalf("Format(%d) failed: %v", tt.length, err)
		}
		if got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.length, got, tt.want)
		}
	}
}

// Golden outputs across the stream-extension boundary (one base64 pass of
// 32 bytes yields 44 characters).
func TestFormat_StreamExtension(t *testing.T) {
	raw := sha256.Sum256([]byte("saltpass-test-vector"))

	tests := []struct {
		length int
		want   string
	}{
		{44, "hu2%W88KGD5ncw5zvcuzjmrYdQwzseKdCsPIZmG9nGQ^"},
		{45, "hu2%W88KGD5ncw5zvcuzjmrYdQwzseKdCsPIZmG9nGQ^t"},
		{64, "hu2%W88KGD5ncw5zvcuzjmrYdQwzseKdCsPIZmG9nGQ^tSocx2lgz2VX@cjW3ppm"},
	}

	for _, tt := range tests {
		got, err := Format(raw[:], tt.length)
		if err != nil {
			t.Fatalf("Format(%d) failed: %v", tt.length, err)
		}
		if got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.length, got, tt.want)
		}
	}
}

func TestFormat_LengthOutOfRange(t *testing.T) {
	raw := sha256.Sum256([]byte("seed"))

	for _, length := range []int{0, 11, 65, -1} {
		_, err := Format(raw[:], length)
		if !errors.Is(err, saltpasserrors.ErrLengthOutOfRange) {
			t.Errorf("Format(%d): expected ErrLengthOutOfRange, got: %v", length, err)
		}
	}
}

func TestFormat_RawTooShort(t *testing.T) {
	_, err := Format([]byte{1, 2, 3}, 16)
	if !errors.Is(err, saltpasserrors.ErrAlgorithmParameter) {
		t.Errorf("Expected ErrAlgorithmParameter for short raw material, got: %v", err)
	}
}

// Every produced password must have exactly the requested length and
// satisfy the uppercase/digit/special policy, for all lengths and a spread
// of raw inputs.
func TestFormat_PolicySatisfaction(t *testing.T) {
	for seed := 0; seed < 20; seed++ {
		raw := sha256.Sum256([]byte{byte(seed)})
		for length := MinLength; length <= MaxLength; length++ {
			got, err := Format(raw[:], length)
			if err != nil {
				t.Fatalf("Format(seed=%d, length=%d) failed: %v", seed, length, err)
			}
			if len(got) != length {
				t.Fatalf("Format(seed=%d, length=%d) produced %d characters", seed, length, len(got))
			}

			var hasUpper, hasDigit, hasSpecial bool
			for _, r := range got {
				switch classOf(r) {
				case classUpper:
					hasUpper = true
				case classDigit:
					hasDigit = true
				case classSpecial:
					hasSpecial = true
				}
				if r < '!' || r > '~' {
					t.Fatalf("Format(seed=%d, length=%d) produced non-printable %q", seed, length, r)
				}
			}
			if !hasUpper || !hasDigit || !hasSpecial {
				t.Errorf("Format(seed=%d, length=%d) = %q misses a required class (upper=%t digit=%t special=%t)",
					seed, length, got, hasUpper, hasDigit, hasSpecial)
			}
		}
	}
}

func TestFormat_Deterministic(t *testing.T) {
	raw := sha256.Sum256([]byte("determinism"))

	first, err := Format(raw[:], 32)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	second, err := Format(raw[:], 32)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if first != second {
		t.Errorf("Format not deterministic: %q vs %q", first, second)
	}
}

// The concrete end-to-end scenario: secret "correct-horse", identifier
// "github.com", hmac-sha256, length 16. Stable across runs and across
// processes, which the golden value pins down.
func TestGenerate_ConcreteScenario(t *testing.T) {
	sec := testSecret(t, "correct-horse")

	first, err := Generate(sec, "github.com", HmacSha256, 16)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate(sec, "github.com", HmacSha256, 16)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if first != second {
		t.Errorf("Generate not stable across runs: %q vs %q", first, second)
	}
	if first != "EgiJ935ujMSKn9&O" {
		t.Errorf("Generate = %q, want %q", first, "EgiJ935ujMSKn9&O")
	}
}

func TestGenerate_LengthErrorAfterDerivation(t *testing.T) {
	sec := testSecret(t, "correct-horse")

	_, err := Generate(sec, "github.com", HmacSha256, 8)
	if !errors.Is(err, saltpasserrors.ErrLengthOutOfRange) {
		t.Errorf("Expected ErrLengthOutOfRange, got: %v", err)
	}
}
