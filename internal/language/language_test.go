package language

import (
	"testing"

	textlang "golang.org/x/text/language"
)

func TestToISO2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 2-letter codes pass through
		{"en", "en"},
		{"EN", "en"},
		{"es", "es"},
		// 3-letter codes convert
		{"eng", "en"},
		{"spa", "es"},
		{"fra", "fr"},
		{"fre", "fr"},
		{"deu", "de"},
		{"ger", "de"},
		{"por", "pt"},
		{"dut", "nl"},
		{"baq", "eu"},
		// Word forms
		{"spanish", "es"},
		{"French", "fr"},
		{"GERMAN", "de"},
		// BCP 47 tags
		{"es-MX", "es"},
		{"pt_BR", "pt"},
		// Unknown 2-letter passes through
		{"xy", "xy"},
		// Unknown 3-letter returns empty
		{"xyz", ""},
		// Empty
		{"", ""},
		{" ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToISO2(tt.input)
			if result != tt.expected {
				t.Errorf("ToISO2(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	e, ok := Resolve("spanish")
	if !ok {
		t.Fatal("expected spanish to resolve")
	}
	if e.Code2 != "es" || e.Resource != "spanish" || e.Display != "Spanish" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Tag != textlang.Spanish {
		t.Fatalf("unexpected tag: %v", e.Tag)
	}

	if _, ok := Resolve("klingon"); ok {
		t.Fatal("expected unknown language to fail")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"es", "Spanish"},
		{"fre", "French"},
		{"", "Unknown"},
		{"zz", "ZZ"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.input); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeList(t *testing.T) {
	got := NormalizeList([]string{"Spanish", "es", "", "eng", "en-GB"})
	want := []string{"es", "en"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NormalizeList() = %v, want %v", got, want)
		}
	}
	if NormalizeList(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("expected languages")
	}
	all[0].Display = "mutated"
	if DisplayName(all[0].Code2) == "mutated" {
		t.Fatal("All must not expose internal entries")
	}
}

func TestResolveCaseFoldingTag(t *testing.T) {
	tests := []struct {
		input string
		want  textlang.Tag
	}{
		{"tur", textlang.Turkish},
		{"es-MX", textlang.Spanish},
	}
	for _, tt := range tests {
		e, ok := Resolve(tt.input)
		if !ok || e.Tag != tt.want {
			t.Errorf("Resolve(%q).Tag = %v, %v; want %v", tt.input, e.Tag, ok, tt.want)
		}
	}
}
