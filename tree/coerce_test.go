package tree

import (
	"math"
	"testing"
)

func TestWeights(t *testing.T) {
	tests := []struct {
		name    string
		n       *Node
		float   float64
		integer int64
		ok      bool
	}{
		{"int", FromInt(3), 3, 3, true},
		{"float truncates", FromFloat(2.9), 2.9, 2, true},
		{"negative float truncates toward zero", FromFloat(-2.9), -2.9, -2, true},
		{"numeric string is not a weight", FromString("5"), 0, 0, false},
		{"null", Null(), 0, 0, false},
		{"nil", nil, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Weight(tt.n)
			if ok != tt.ok || f != tt.float {
				t.Errorf("Weight = %v,%v want %v,%v", f, ok, tt.float, tt.ok)
			}
			i, ok := IntWeight(tt.n)
			if ok != tt.ok || i != tt.integer {
				t.Errorf("IntWeight = %v,%v want %v,%v", i, ok, tt.integer, tt.ok)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		a, b *Node
		want bool
	}{
		{FromString("true"), FromBool(true), true},
		{FromString("FALSE"), FromBool(false), true},
		{FromBool(true), FromBool(true), true},
		{FromString("True"), FromString("true"), true},
		{FromString("100"), FromInt(100), false},
		{FromString("on"), FromBool(true), false},
	}
	for _, tt := range tests {
		if got := Matches(tt.a, tt.b); got != tt.want {
			t.Errorf("Matches(%s, %s) = %v, want %v", tt.a.Text(), tt.b.Text(), got, tt.want)
		}
	}
}

func TestAsInt(t *testing.T) {
	if v, ok := AsInt(FromString(" 12 ")); !ok || v != 12 {
		t.Errorf("got %d,%v", v, ok)
	}
	if _, ok := AsInt(FromString("twelve")); ok {
		t.Errorf("expected failure")
	}
}

func TestLive(t *testing.T) {
	tests := []struct {
		n    *Node
		want bool
	}{
		{FromInt(1), true},
		{FromInt(0), false},
		{FromInt(-3), false},
		{FromFloat(0.5), true},
		{FromFloat(math.Inf(1)), false},
		{FromString("10"), false},
	}
	for _, tt := range tests {
		if got := Live(tt.n); got != tt.want {
			t.Errorf("Live(%s) = %v, want %v", tt.n.Text(), got, tt.want)
		}
	}
}
