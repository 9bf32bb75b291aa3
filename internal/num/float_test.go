package num

import (
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		bits    int
		want    float64
		errKind ParseErrKind
		wantErr bool
	}{
		{name: "finite", input: "1.25", bits: 64, want: 1.25},
		{name: "exponent", input: "-2.5E3", bits: 64, want: -2500},
		{name: "leading dot", input: ".5", bits: 64, want: 0.5},
		{name: "trailing dot", input: "7.", bits: 64, want: 7},
		{name: "space", input: " 3 ", bits: 32, want: 3},
		{name: "inf", input: "INF", bits: 64, want: math.Inf(1)},
		{name: "neg inf", input: "-INF", bits: 64, want: math.Inf(-1)},
		{name: "overflow rounds", input: "1e400", bits: 64, want: math.Inf(1)},
		{name: "empty", input: "", bits: 64, wantErr: true, errKind: ParseEmpty},
		{name: "dangling exponent", input: "1e", bits: 64, wantErr: true, errKind: ParseBadChar},
		{name: "plus inf", input: "+INF", bits: 64, wantErr: true, errKind: ParseBadChar},
		{name: "letters", input: "abc", bits: 64, wantErr: true, errKind: ParseBadChar},
		{name: "lone dot", input: ".", bits: 64, wantErr: true, errKind: ParseBadChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFloat([]byte(tc.input), tc.bits)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if err.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", err.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseFloat(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseFloatNaN(t *testing.T) {
	got, err := ParseFloat([]byte("NaN"), 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Fatalf("ParseFloat(NaN) = %v, want NaN", got)
	}
}

func TestScanFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain", input: "1.5", want: 1.5},
		{name: "letters", input: "abc", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "prefix", input: "2.75kg", want: 2.75},
		{name: "dangling exponent", input: "1e", want: 1},
		{name: "exponent sign only", input: "4e+x", want: 4},
		{name: "exponent", input: "  -1.5e2 rest", want: -150},
		{name: "infinity word", input: "Infinity", want: math.Inf(1)},
		{name: "neg inf", input: "-inf", want: math.Inf(-1)},
		{name: "lone dot", input: ".", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScanFloat([]byte(tc.input), 64); got != tc.want {
				t.Fatalf("ScanFloat(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
	if got := ScanFloat([]byte("nan"), 64); !math.IsNaN(got) {
		t.Fatalf("ScanFloat(nan) = %v, want NaN", got)
	}
}
