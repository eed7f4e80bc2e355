package analysis

import "testing"

func TestSentences(t *testing.T) {
	paragraph := "La inteligencia artificial avanza rápido. Muchas empresas la adoptan en sus procesos diarios. ¿Estamos preparados?"
	sentences := Sentences(paragraph)
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %+v", len(sentences), sentences)
	}
	wantWords := []int{5, 8, 2}
	for i, s := range sentences {
		if s.Words != wantWords[i] {
			t.Fatalf("sentence %d %q has %d words, want %d", i, s.Text, s.Words, wantWords[i])
		}
	}
	if sentences[2].Text != "¿Estamos preparados?" {
		t.Fatalf("unexpected last sentence %q", sentences[2].Text)
	}

	longest, ok := LongestSentence(sentences)
	if !ok || longest != sentences[1] {
		t.Fatalf("LongestSentence = %+v, %v", longest, ok)
	}
}

func TestLongestSentenceFirstWins(t *testing.T) {
	sentences := []Sentence{{Text: "uno dos", Words: 2}, {Text: "tres cuatro", Words: 2}}
	longest, ok := LongestSentence(sentences)
	if !ok || longest.Text != "uno dos" {
		t.Fatalf("LongestSentence = %+v, %v", longest, ok)
	}
	if _, ok := LongestSentence(nil); ok {
		t.Fatal("expected false for no sentences")
	}
}

func TestSentencesEmpty(t *testing.T) {
	if got := Sentences("   "); len(got) != 0 {
		t.Fatalf("expected no sentences, got %+v", got)
	}
}

func TestSentencesAfterAbbreviation(t *testing.T) {
	sentences := Sentences("El Sr. García llegó temprano. Luego se fue.")
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %+v", len(sentences), sentences)
	}
	if sentences[0].Words != 5 || sentences[1].Words != 3 {
		t.Fatalf("unexpected word counts: %+v", sentences)
	}
}
