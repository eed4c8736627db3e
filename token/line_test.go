package token

import "testing"

func TestScanLine(t *testing.T) {
	tests := []struct {
		ln      string
		key     string
		hasKey  bool
		comment int
	}{
		{"key: 1", "key", true, -1},
		{"key:", "key", true, -1},
		{"  nested:  # about nested", "nested", true, 11},
		{"# top", "", false, 0},
		{"    # indented", "", false, 4},
		{"- item: 3", "item", true, -1},
		{"- - deep: x", "deep", true, -1},
		{"'quoted key': 2", "quoted key", true, -1},
		{`"dq: key": 2`, "dq: key", true, -1},
		{`name: "a # b"`, "name", true, -1},
		{`name: 'it''s # fine' # real`, "name", true, 21},
		{"url: http://x.y/z#frag", "url", true, -1},
		{"time: 12:30", "time", true, -1},
		{"- plain item # tail", "", false, 13},
		{"plain", "", false, -1},
		{"a:b: c", "a:b", true, -1},
		{`esc: "x\" # y"`, "esc", true, -1},
		{"Pokémon: 1", "Pokémon", true, -1},
	}
	for _, tt := range tests {
		t.Run(tt.ln, func(t *testing.T) {
			got := ScanLine(tt.ln)
			if got.Key != tt.key || got.HasKey != tt.hasKey || got.Comment != tt.comment {
				t.Errorf("ScanLine(%q) = %+v, want key %q %v comment %d", tt.ln, got, tt.key, tt.hasKey, tt.comment)
			}
		})
	}
}

func TestFindHelpers(t *testing.T) {
	if k, ok := FindKey("  progression_balancing: 50"); !ok || k != "progression_balancing" {
		t.Errorf("FindKey = %q %v", k, ok)
	}
	if i := FindComment("a: b #c"); i != 5 {
		t.Errorf("FindComment = %d", i)
	}
}

func TestScanLineBlock(t *testing.T) {
	tests := []struct {
		ln     string
		block  bool
		indent int
	}{
		{"text: |", true, 0},
		{"  text: >- # folded", true, 2},
		{"    - |", true, 4},
		{"text: a|b", false, 0},
		{"text: '|'", false, 0},
		{"  | not a key", true, 2},
	}
	for _, tt := range tests {
		got := ScanLine(tt.ln)
		if got.Block != tt.block || got.Indent != tt.indent {
			t.Errorf("ScanLine(%q) = %+v, want block %v indent %d", tt.ln, got, tt.block, tt.indent)
		}
	}
	if !IsBlank("  \t") || IsBlank(" x") {
		t.Errorf("IsBlank")
	}
}
