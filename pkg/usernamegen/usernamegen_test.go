package usernamegen

import (
	"fmt"
	"testing"
)

func set(usernames ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(usernames))
	for _, u := range usernames {
		s[u] = struct{}{}
	}
	return s
}

func equalSets(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for u := range a {
		if _, ok := b[u]; !ok {
			return false
		}
	}
	return true
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		firstNames []string
		lastNames  []string
		prefixes   []string
		suffixes   []string
		opts       Options
		want       map[string]struct{}
	}{
		{
			name:       "truncation",
			firstNames: []string{"Alexander"},
			lastNames:  []string{"Smith"},
			opts:       Options{NumFirstNameChars: 3, NumLastNameChars: 4},
			want:       set("alesmit"),
		},
		{
			name:       "name shorter than truncation length",
			firstNames: []string{"Bo"},
			lastNames:  []string{"Li"},
			opts:       Options{NumFirstNameChars: 3, NumLastNameChars: 3},
			want:       set("boli"),
		},
		{
			name:       "prefix and suffix composition",
			firstNames: []string{"Bo"},
			lastNames:  []string{"Li"},
			prefixes:   []string{"x."},
			suffixes:   []string{".y"},
			opts:       Options{NumFirstNameChars: 3, NumLastNameChars: 3},
			want:       set("x.boli.y"),
		},
		{
			name:      "empty first name axis substituted",
			lastNames: []string{"Doe"},
			opts:      Options{NumFirstNameChars: 3, NumLastNameChars: 3},
			want:      set("doe"),
		},
		{
			name:       "transliteration of aao",
			firstNames: []string{"Åke"},
			lastNames:  []string{"Öberg"},
			opts:       Options{NumFirstNameChars: 3, NumLastNameChars: 3},
			want:       set("akeobe"),
		},
		{
			name:       "permit aao keeps accents",
			firstNames: []string{"Åke"},
			lastNames:  []string{"Öberg"},
			opts:       Options{NumFirstNameChars: 3, NumLastNameChars: 3, PermitAao: true},
			want:       set("åkeöbe"),
		},
		{
			name:       "e acute folded regardless of permit aao",
			firstNames: []string{"André"},
			lastNames:  []string{"Léger"},
			opts:       Options{NumFirstNameChars: 3, NumLastNameChars: 3, PermitAao: true},
			want:       set("andleg"),
		},
		{
			name:       "surrounding whitespace trimmed",
			firstNames: []string{"  Jo  "},
			lastNames:  []string{" Ng "},
			opts:       Options{NumFirstNameChars: 8, NumLastNameChars: 8},
			want:       set("jong"),
		},
		{
			name:       "mixed case lowered",
			firstNames: []string{"JOHN"},
			lastNames:  []string{"McCarthy"},
			opts:       Options{NumFirstNameChars: 3, NumLastNameChars: 4},
			want:       set("johmcca"),
		},
		{
			name:       "zero truncation lengths keep prefix and suffix",
			firstNames: []string{"John"},
			lastNames:  []string{"Doe"},
			prefixes:   []string{"svc-"},
			suffixes:   []string{"01"},
			want:       set("svc-01"),
		},
		{
			name:       "all empty parts produce nothing",
			firstNames: []string{""},
			lastNames:  []string{""},
			prefixes:   []string{""},
			suffixes:   []string{""},
			opts:       Options{NumFirstNameChars: 3, NumLastNameChars: 3},
			want:       set(),
		},
		{
			name:       "colliding names deduplicated",
			firstNames: []string{"Johan", "Johannes", "John"},
			lastNames:  []string{"Svensson", "Svedberg"},
			opts:       Options{NumFirstNameChars: 3, NumLastNameChars: 3},
			want:       set("johsve"),
		},
		{
			name:       "multiple axes combine fully",
			firstNames: []string{"Anna", "Erik"},
			lastNames:  []string{"Berg", "Lund"},
			prefixes:   []string{"", "adm-"},
			suffixes:   []string{"", "1"},
			opts:       Options{NumFirstNameChars: 3, NumLastNameChars: 3},
			want: set(
				"annber", "annber1", "adm-annber", "adm-annber1",
				"annlun", "annlun1", "adm-annlun", "adm-annlun1",
				"eriber", "eriber1", "adm-eriber", "adm-eriber1",
				"erilun", "erilun1", "adm-erilun", "adm-erilun1",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.firstNames, tt.lastNames, tt.prefixes, tt.suffixes, tt.opts)
			if !equalSets(got, tt.want) {
				t.Errorf("Generate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateIdempotent(t *testing.T) {
	firstNames := []string{"Åsa", "Märta", "Örjan", "André"}
	lastNames := []string{"Sjöberg", "Åström", "Léger"}
	opts := Options{NumFirstNameChars: 3, NumLastNameChars: 3}

	first := Generate(firstNames, lastNames, nil, nil, opts)
	second := Generate(firstNames, lastNames, nil, nil, opts)

	if !equalSets(first, second) {
		t.Errorf("repeated Generate() calls disagree: %v vs %v", first, second)
	}
}

func TestGenerateSizeBound(t *testing.T) {
	var firstNames, lastNames, suffixes []string
	for i := 0; i < 10; i++ {
		firstNames = append(firstNames, fmt.Sprintf("First%d", i))
		lastNames = append(lastNames, fmt.Sprintf("Last%d", i))
	}
	for i := 0; i < 3; i++ {
		suffixes = append(suffixes, fmt.Sprintf("%d", i))
	}

	// Long truncation lengths keep every name distinct, so the set size
	// must hit the full product exactly.
	got := Generate(firstNames, lastNames, nil, suffixes, Options{NumFirstNameChars: 10, NumLastNameChars: 10})
	if want := 10 * 10 * 3; len(got) != want {
		t.Errorf("expected full cartesian product of %d usernames, got %d", want, len(got))
	}

	// Shorter truncation lengths collapse the numbered names onto their
	// shared stems, so the set stays within the product bound.
	got = Generate(firstNames, lastNames, nil, suffixes, Options{NumFirstNameChars: 5, NumLastNameChars: 4})
	if bound := 10 * 10 * 3; len(got) > bound {
		t.Errorf("set size %d exceeds product bound %d", len(got), bound)
	}
}

func TestGenerateDoesNotMutateInputs(t *testing.T) {
	firstNames := []string{"  Åke  "}
	lastNames := []string{"ÖBERG"}

	Generate(firstNames, lastNames, nil, nil, Options{NumFirstNameChars: 3, NumLastNameChars: 3})

	if firstNames[0] != "  Åke  " || lastNames[0] != "ÖBERG" {
		t.Errorf("input slices were mutated: %v %v", firstNames, lastNames)
	}
}
