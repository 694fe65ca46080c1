package morphdict

import "testing"

func TestCompound(t *testing.T) {
	tests := []struct {
		name            string
		surface, pos    string
		pos2            string
		want            []CompoundPart
	}{
		{
			name: "no breakdown",
			surface: "으니", pos: "EC",
			want: []CompoundPart{{Surface: "으니", Pos: "EC"}},
		},
		{
			name: "single compound",
			surface: "었다", pos: "EF", pos2: "었/EP+다/EF",
			want: []CompoundPart{{Surface: "었", Pos: "EP"}, {Surface: "다", Pos: "EF"}},
		},
		{
			name: "double compound",
			pos2: "으시/EP+겠/EP+어요/EF",
			want: []CompoundPart{
				{Surface: "으시", Pos: "EP"},
				{Surface: "겠", Pos: "EP"},
				{Surface: "어요", Pos: "EF"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compound(tt.surface, tt.pos, tt.pos2)
			if len(got) != len(tt.want) {
				t.Fatalf("Compound() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("part %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildIndex(t *testing.T) {
	entries := []Entry{
		{Word: "으니", Pos: "EC"},
		{Word: "ㄴ", Pos: "JX"},
	}
	idx := Build(entries)

	if !idx.HasLastEumjeol('니') {
		t.Error("expected 니 in last-eumjeol set")
	}
	if !idx.HasLastEumjeol('퍼') {
		t.Error("expected 퍼 compensation entry in last-eumjeol set")
	}
	if !idx.HasJungjongStart('ㄴ') {
		t.Error("expected ㄴ in jungjong-start set")
	}
	if got := idx.Lookup("으니"); len(got) != 1 || got[0].Pos != "EC" {
		t.Errorf("Lookup(으니) = %+v", got)
	}
	if got := idx.Lookup("missing"); got != nil {
		t.Errorf("Lookup(missing) = %+v, want nil", got)
	}
}

func TestWordDict(t *testing.T) {
	idx := Build(nil)
	idx.BuildWordDict("사람", []string{"NNG"})
	if got := idx.WordDict("사람"); len(got) != 1 || got[0] != "NNG" {
		t.Errorf("WordDict(사람) = %v", got)
	}
	if got := idx.WordDict("없음"); got != nil {
		t.Errorf("WordDict(없음) = %v, want nil", got)
	}
}
