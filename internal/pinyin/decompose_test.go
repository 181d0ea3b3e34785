package pinyin

import (
	"errors"
	"testing"

	"github.com/heartmarshall/my-hanzi/internal/domain"
)

func TestDecompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		syllable  string
		wantOnset domain.Onset
		wantRime  domain.Rime
	}{
		{"retroflex zh before z", "zhong", domain.OnsetZh, "ong"},
		{"retroflex ch", "chang", domain.OnsetCh, "ang"},
		{"retroflex sh", "shi", domain.OnsetSh, "i"},
		{"single consonant", "ma", domain.OnsetM, "a"},
		{"z alone", "zai", domain.OnsetZ, "ai"},
		{"vowel-initial", "an", domain.OnsetNone, "an"},
		{"vowel-initial er", "er", domain.OnsetNone, "er"},
		{"semivowel y", "yi", domain.OnsetY, "i"},
		{"semivowel w", "wu", domain.OnsetW, "u"},
		{"ü spelled with v", "nv", domain.OnsetN, "ü"},
		{"üe spelled with v", "lve", domain.OnsetL, "üe"},
		{"ü spelled directly", "nü", domain.OnsetN, "ü"},
		{"bare v is ü", "v", domain.OnsetNone, "ü"},
		{"uppercase input", "ZHONG", domain.OnsetZh, "ong"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			onset, rime, err := Decompose(tt.syllable)
			if err != nil {
				t.Fatalf("Decompose(%q) returned error: %v", tt.syllable, err)
			}
			if onset != tt.wantOnset || rime != tt.wantRime {
				t.Errorf("Decompose(%q) = (%q, %q), want (%q, %q)",
					tt.syllable, onset, rime, tt.wantOnset, tt.wantRime)
			}
		})
	}
}

func TestDecompose_EmptyInput(t *testing.T) {
	t.Parallel()

	_, _, err := Decompose("")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Decompose(\"\") error = %v, want ErrValidation", err)
	}
}

// Every decomposition must reconstruct its input: onset + rime equals
// the syllable after "v"→"ü" normalization on both sides.
func TestDecompose_RoundTrip(t *testing.T) {
	t.Parallel()

	syllables := []string{
		"zhong", "chang", "shi", "ma", "an", "e", "ai", "er",
		"nv", "nü", "lv", "lve", "yu", "wang", "cong", "ri",
		"jiong", "xuan", "qu", "hui", "kuai", "geng", "pian",
	}
	for _, s := range syllables {
		onset, rime, err := Decompose(s)
		if err != nil {
			t.Fatalf("Decompose(%q) returned error: %v", s, err)
		}
		normalized := domain.NormalizeQuery(s)
		if got := string(onset) + string(rime); got != normalized {
			t.Errorf("round-trip failed for %q: onset %q + rime %q = %q, want %q",
				s, onset, rime, got, normalized)
		}
	}
}
