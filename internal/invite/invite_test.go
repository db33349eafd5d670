package invite

import (
	"strings"
	"testing"
)

func TestNewCode(t *testing.T) {
	t.Run("length_and_alphabet", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code, err := NewCode()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(code) != CodeLength {
				t.Fatalf("expected %d characters, got %d (%q)", CodeLength, len(code), code)
			}
			for _, c := range code {
				if !strings.ContainsRune(Alphabet, c) {
					t.Fatalf("character %q outside alphabet in %q", c, code)
				}
			}
		}
	})

	t.Run("no_confusable_characters", func(t *testing.T) {
		for _, c := range "0O1I" {
			if strings.ContainsRune(Alphabet, c) {
				t.Errorf("alphabet contains confusable character %q", c)
			}
		}
	})

	t.Run("codes_differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			code, err := NewCode()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			seen[code] = true
		}
		if len(seen) < 49 {
			t.Errorf("expected distinct codes, got %d unique out of 50", len(seen))
		}
	})
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"abcd2345":     "ABCD2345",
		"  ABCD2345  ": "ABCD2345",
		"aBcD2345\n":   "ABCD2345",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
