package payments

import (
	"math/big"
	"testing"
)

func TestParseUnits(t *testing.T) {
	cases := []struct {
		in       string
		decimals uint8
		want     string
	}{
		{"1", 18, "1000000000000000000"},
		{"0.5", 18, "500000000000000000"},
		{"100.25", 6, "100250000"},
		{"0", 18, "0"},
		{".5", 2, "50"},
		{"7.", 2, "700"},
		{"0.000000000000000001", 18, "1"},
		{" 42 ", 0, "42"},
	}
	for _, c := range cases {
		got, err := ParseUnits(c.in, c.decimals)
		if err != nil {
			t.Errorf("ParseUnits(%q, %d): %v", c.in, c.decimals, err)
			continue
		}
		if got.String() != c.want {
			t.Errorf("ParseUnits(%q, %d) = %s, want %s", c.in, c.decimals, got, c.want)
		}
	}
}

func TestParseUnits_Rejects(t *testing.T) {
	cases := []struct {
		in       string
		decimals uint8
	}{
		{"", 18},
		{"-1", 18},
		{"0.123", 2},
		{"abc", 18},
		{"1.2.3", 18},
		{"1e18", 18},
	}
	for _, c := range cases {
		if _, err := ParseUnits(c.in, c.decimals); err == nil {
			t.Errorf("ParseUnits(%q, %d): expected error", c.in, c.decimals)
		}
	}
}

func TestFormatUnits(t *testing.T) {
	cases := []struct {
		in       string
		decimals uint8
		want     string
	}{
		{"1000000000000000000", 18, "1"},
		{"500000000000000000", 18, "0.5"},
		{"100250000", 6, "100.25"},
		{"0", 18, "0"},
		{"1", 18, "0.000000000000000001"},
		{"1500000", 6, "1.5"},
		{"-2500000", 6, "-2.5"},
		{"42", 0, "42"},
	}
	for _, c := range cases {
		v, ok := new(big.Int).SetString(c.in, 10)
		if !ok {
			t.Fatalf("bad test input %q", c.in)
		}
		if got := FormatUnits(v, c.decimals); got != c.want {
			t.Errorf("FormatUnits(%s, %d) = %q, want %q", c.in, c.decimals, got, c.want)
		}
	}
}

func TestFormatUnits_Nil(t *testing.T) {
	if got := FormatUnits(nil, 18); got != "0" {
		t.Errorf("FormatUnits(nil) = %q, want %q", got, "0")
	}
}

func TestUnits_RoundTrip(t *testing.T) {
	tok := Token{Decimals: 18, Symbol: "USDFC"}
	for _, s := range []string{"0", "1", "0.5", "123.456789", "0.000000000000000001"} {
		v, err := tok.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := tok.Format(v); got != s {
			t.Errorf("Format(Parse(%q)) = %q", s, got)
		}
	}
}
