package tree

import (
	"math"
	"testing"
)

func TestMappingOrder(t *testing.T) {
	m := FromPairs("a", 1, "b", 2, "c", 3)
	m.Set(FromString("b"), FromInt(20))
	m.Set(FromString("d"), FromInt(4))

	want := []string{"a", "b", "c", "d"}
	if len(m.Keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(m.Keys), len(want))
	}
	for i, k := range want {
		if m.Keys[i].String != k {
			t.Errorf("key %d: got %q want %q", i, m.Keys[i].String, k)
		}
	}
	if got := m.GetString("b"); got == nil || got.Int != 20 {
		t.Errorf("b was not replaced in place: %v", got)
	}
}

func TestDeleteAndRenameKey(t *testing.T) {
	m := FromPairs("a", 1, "b", 2, "c", 3)
	if v := m.DeleteString("b"); v == nil || v.Int != 2 {
		t.Fatalf("delete returned %v", v)
	}
	if m.Len() != 2 {
		t.Fatalf("len %d", m.Len())
	}
	if !m.RenameKey(FromString("a"), FromString("z")) {
		t.Fatalf("rename failed")
	}
	if m.Keys[1].String != "z" || m.Values[1].Int != 1 {
		t.Errorf("renamed key should be appended, got %s", m.Text())
	}
	if m.RenameKey(FromString("missing"), FromString("y")) {
		t.Errorf("rename of missing key reported success")
	}
}

func TestDeleteFunc(t *testing.T) {
	m := FromPairs("a", 1, "b", 0, "c", 3)
	n := m.DeleteFunc(func(_, v *Node) bool { return !Live(v) })
	if n != 1 || m.Text() != "{a: 1, c: 3}" {
		t.Errorf("got %d %s", n, m.Text())
	}
}

func TestCompositeKeyLookup(t *testing.T) {
	key := FromStrings("x", "y")
	m := FromKeyVals([]KeyVal{{Key: key, Val: FromInt(5)}})
	if got := m.Get(FromStrings("x", "y")); got == nil || got.Int != 5 {
		t.Errorf("composite key lookup failed: %v", got)
	}
}

func TestParseScalar(t *testing.T) {
	tests := []struct {
		in   string
		want *Node
	}{
		{"~", Null()},
		{"null", Null()},
		{"true", FromBool(true)},
		{"False", FromBool(false)},
		{"42", FromInt(42)},
		{"-7", FromInt(-7)},
		{"010", FromInt(10)},
		{"0x10", FromInt(16)},
		{"1.5", FromFloat(1.5)},
		{"1e3", FromFloat(1000)},
		{".inf", FromFloat(math.Inf(1))},
		{"random-range-50-90", FromString("random-range-50-90")},
		{"1_000", FromString("1_000")},
		{"Infinity", FromString("Infinity")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseScalar(tt.in); !Equal(got, tt.want) {
				t.Errorf("ParseScalar(%q) = %s (%s), want %s", tt.in, got.Text(), got.Type, tt.want.Text())
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := FromPairs("a", FromPairs("b", 1))
	c := m.Clone()
	c.GetString("a").SetString("b", FromInt(2))
	if m.GetString("a").GetString("b").Int != 1 {
		t.Errorf("clone shares children")
	}
}

func TestMarshalJSON(t *testing.T) {
	m := FromPairs("z", 1, "a", FromStrings("x"), "f", 1.5, "n", nil)
	m.Set(FromInt(3), FromBool(true))
	d, err := m.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":["x"],"f":1.5,"n":null,"3":true}`
	if string(d) != want {
		t.Errorf("got %s want %s", d, want)
	}
	if _, err := Alias("x").MarshalJSON(); err == nil {
		t.Errorf("expected error for alias")
	}
}
