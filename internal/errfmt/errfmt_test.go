package errfmt

import (
	"strings"
	"testing"
)

func TestTruncate_ShortPassthrough(t *testing.T) {
	result := Truncate("x1 3.14159265")
	if result != "x1 3.14159265" {
		t.Errorf("Truncate() = %q, want %q", result, "x1 3.14159265")
	}
}

func TestTruncate_LongLine(t *testing.T) {
	long := strings.Repeat("x", MaxLen+500)
	result := Truncate(long)
	if len(result) > MaxLen {
		t.Errorf("len(result) = %d, want <= %d", len(result), MaxLen)
	}
}

func TestTruncate_UTF8Truncation(t *testing.T) {
	prefix := strings.Repeat("x", MaxLen-2)
	input := prefix + "\U0001F600" // 4-byte rune at the boundary
	result := Truncate(input)
	if len(result) > MaxLen {
		t.Errorf("len(result) = %d, want <= %d", len(result), MaxLen)
	}
	for i, r := range result {
		if r == '�' {
			t.Errorf("invalid UTF-8 at byte %d", i)
			break
		}
	}
}
