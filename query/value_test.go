package query

import (
	"testing"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind ValueKind
		wantNum  float64
	}{
		{"integer", "42", KindNumber, 42},
		{"float", "3.14", KindNumber, 3.14},
		{"negative", "-5", KindNumber, -5},
		{"scientific", "1e3", KindNumber, 1000},
		{"surrounding whitespace", " 42 ", KindNumber, 42},
		{"empty string", "", KindText, 0},
		{"whitespace only", "   ", KindText, 0},
		{"text", "xiaomi", KindText, 0},
		{"number with suffix", "42abc", KindText, 0},
		{"nan stays textual", "NaN", KindText, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(tt.raw)
			if got.Kind != tt.wantKind {
				t.Fatalf("Coerce(%q).Kind = %v, want %v", tt.raw, got.Kind, tt.wantKind)
			}
			if got.Kind == KindNumber && got.Num != tt.wantNum {
				t.Errorf("Coerce(%q).Num = %v, want %v", tt.raw, got.Num, tt.wantNum)
			}
			if got.Raw != tt.raw {
				t.Errorf("Coerce(%q).Raw = %q, want original string", tt.raw, got.Raw)
			}
		})
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		// Numeric comparisons
		{"number less", "100", "600", -1},
		{"number greater", "700", "600", 1},
		{"number equal", "500", "500", 0},
		{"numeric not lexicographic", "9", "10", -1},
		{"different spellings equal", "1.0", "1", 0},

		// Textual comparisons
		{"text less", "apple", "banana", -1},
		{"text greater", "banana", "apple", 1},
		{"text equal", "apple", "apple", 0},
		{"case sensitive", "Apple", "apple", -1},

		// Mixed kinds fall back to original string forms
		{"number vs text", "42", "apple", -1},
		{"text vs number", "apple", "42", 1},

		// Empty string sorts before any non-empty text
		{"empty before text", "", "a", -1},
		{"empty before number", "", "0", -1},
		{"empty equals empty", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareValues(Coerce(tt.a), Coerce(tt.b))
			if got != tt.want {
				t.Errorf("CompareValues(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
