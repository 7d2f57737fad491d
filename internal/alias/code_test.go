package alias

import (
	"strings"
	"testing"
)

func TestNewCode_Length(t *testing.T) {
	for _, n := range []int{1, 4, 8, 16} {
		if got := len(NewCode(n)); got != n {
			t.Errorf("NewCode(%d) length %d", n, got)
		}
	}
}

func TestNewCode_LowercaseAlphabetic(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewCode(8)
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q outside a-z", code, r)
			}
		}
	}
}

func TestNewCode_NotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[NewCode(8)] = true
	}
	if len(seen) < 2 {
		t.Error("50 generated codes were all identical")
	}
}
