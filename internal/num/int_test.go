package num

import "testing"

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		bits    int
		want    int64
		errKind ParseErrKind
		wantErr bool
	}{
		{name: "zero", input: "0", bits: 32, want: 0},
		{name: "neg zero", input: "-0", bits: 32, want: 0},
		{name: "pos sign", input: "+000", bits: 32, want: 0},
		{name: "positive", input: "123", bits: 32, want: 123},
		{name: "negative", input: "-456", bits: 32, want: -456},
		{name: "surrounding space", input: "\n  42\t", bits: 32, want: 42},
		{name: "short max", input: "32767", bits: 16, want: 32767},
		{name: "short min", input: "-32768", bits: 16, want: -32768},
		{name: "long max", input: "9223372036854775807", bits: 64, want: 9223372036854775807},
		{name: "long min", input: "-9223372036854775808", bits: 64, want: -9223372036854775808},
		{name: "empty", input: "", bits: 32, wantErr: true, errKind: ParseEmpty},
		{name: "blank", input: "   ", bits: 32, wantErr: true, errKind: ParseEmpty},
		{name: "sign only", input: "+", bits: 32, wantErr: true, errKind: ParseNoDigits},
		{name: "bad char", input: "12a", bits: 32, wantErr: true, errKind: ParseBadChar},
		{name: "letters", input: "abc", bits: 32, wantErr: true, errKind: ParseBadChar},
		{name: "short overflow", input: "32768", bits: 16, wantErr: true, errKind: ParseRange},
		{name: "int underflow", input: "-2147483649", bits: 32, wantErr: true, errKind: ParseRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInt([]byte(tc.input), tc.bits)
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
				t.Fatalf("ParseInt(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestScanInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		bits  int
		want  int64
	}{
		{name: "digits", input: "42", bits: 32, want: 42},
		{name: "letters", input: "abc", bits: 32, want: 0},
		{name: "empty", input: "", bits: 32, want: 0},
		{name: "digit prefix", input: "12abc", bits: 32, want: 12},
		{name: "leading space", input: " \v\f-7x", bits: 32, want: -7},
		{name: "sign only", input: "-", bits: 32, want: 0},
		{name: "trailing decimal", input: "3.99", bits: 32, want: 3},
		{name: "saturate high", input: "99999", bits: 16, want: 32767},
		{name: "saturate low", input: "-99999", bits: 16, want: -32768},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScanInt([]byte(tc.input), tc.bits); got != tc.want {
				t.Fatalf("ScanInt(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestIntBounds(t *testing.T) {
	lo, hi := IntBounds(8)
	if lo != -128 || hi != 127 {
		t.Fatalf("IntBounds(8) = (%d, %d), want (-128, 127)", lo, hi)
	}
	lo, hi = IntBounds(0)
	if lo != -1<<63 || hi != 1<<63-1 {
		t.Fatalf("IntBounds(0) = (%d, %d), want int64 bounds", lo, hi)
	}
}
