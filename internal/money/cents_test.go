// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package money

import (
	"errors"
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func TestFromFloat_HalfUp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Cents
	}{
		{"whole", 10, 1000},
		{"two places", 12.5, 1250},
		{"half rounds up", 1.005, 101},
		{"below half rounds down", 1.004, 100},
		{"negative half rounds away from zero", -0.125, -13},
		{"float drift", 0.1 + 0.2, 30},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromFloat(tt.in)
			if err != nil {
				t.Fatalf("FromFloat(%v) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("FromFloat(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromFloat_RejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FromFloat(f); !errors.Is(err, ErrNonFinite) {
			t.Errorf("FromFloat(%v) error = %v, want ErrNonFinite", f, err)
		}
	}
}

func TestFromDecimal_OutOfRange(t *testing.T) {
	tests := []string{
		"184467440737095516.17",
		"92233720368547758.08",
		"-92233720368547758.09",
		"92233720368547758.075",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if got, err := FromDecimal(decimal.RequireFromString(in)); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("FromDecimal(%s) = %d, %v; want ErrOutOfRange", in, got, err)
			}
			if _, err := Parse(in); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Parse(%s) error = %v, want ErrOutOfRange", in, err)
			}
		})
	}

	got, err := FromDecimal(decimal.RequireFromString("92233720368547758.07"))
	if err != nil || got != math.MaxInt64 {
		t.Errorf("FromDecimal(max) = %d, %v; want %d", got, err, int64(math.MaxInt64))
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("18.00")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got != 1800 {
		t.Errorf("Parse(18.00) = %d, want 1800", got)
	}

	if _, err := Parse("eighteen"); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestString(t *testing.T) {
	tests := map[Cents]string{
		0:     "0.00",
		5:     "0.05",
		1100:  "11.00",
		-75:   "-0.75",
		12345: "123.45",
	}
	for in, want := range tests {
		if got := in.String(); got != want {
			t.Errorf("Cents(%d).String() = %q, want %q", in, got, want)
		}
	}
}

func TestJSON(t *testing.T) {
	type payload struct {
		Price Cents `json:"price"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"price": 9.995}`), &p); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if p.Price != 1000 {
		t.Errorf("price = %d, want 1000", p.Price)
	}

	if err := json.Unmarshal([]byte(`{"price": "4.20"}`), &p); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if p.Price != 420 {
		t.Errorf("price = %d, want 420", p.Price)
	}

	if err := json.Unmarshal([]byte(`{"price": 184467440737095516.17}`), &p); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unmarshal out of range: error = %v, want ErrOutOfRange", err)
	}

	out, err := json.Marshal(payload{Price: 1100})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"price":11.00}` {
		t.Errorf("marshal = %s", out)
	}
}

func TestUnits(t *testing.T) {
	if Units(15) != 1500 {
		t.Errorf("Units(15) = %d", Units(15))
	}
}
