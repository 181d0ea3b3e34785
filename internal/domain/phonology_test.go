package domain

import "testing"

func TestOnset_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		onset Onset
		want  bool
	}{
		{OnsetB, true},
		{OnsetZh, true},
		{OnsetCh, true},
		{OnsetSh, true},
		{OnsetW, true},
		{OnsetNone, true},
		{Onset("zz"), false},
		{Onset("ng"), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.onset.Label(), func(t *testing.T) {
			t.Parallel()
			if got := tt.onset.IsValid(); got != tt.want {
				t.Errorf("Onset(%q).IsValid() = %v, want %v", tt.onset, got, tt.want)
			}
		})
	}
}

func TestOnset_Label(t *testing.T) {
	t.Parallel()
	if got := OnsetZh.Label(); got != "zh" {
		t.Errorf("got %q, want zh", got)
	}
	if got := OnsetNone.Label(); got != NoneLabel {
		t.Errorf("got %q, want %q", got, NoneLabel)
	}
}

func TestRime_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rime Rime
		want bool
	}{
		{Rime("a"), true},
		{Rime("ong"), true},
		{Rime("iang"), true},
		{Rime("ü"), true},
		{Rime("üe"), true},
		{Rime("ue"), true},
		{Rime("er"), true},
		{Rime(""), false},
		{Rime("xyz"), false},
		// The ASCII substitute is normalized away before a Rime is built.
		{Rime("v"), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.rime), func(t *testing.T) {
			t.Parallel()
			if got := tt.rime.IsValid(); got != tt.want {
				t.Errorf("Rime(%q).IsValid() = %v, want %v", tt.rime, got, tt.want)
			}
		})
	}
}

func TestTone_IsValid(t *testing.T) {
	t.Parallel()

	for tone := ToneFirst; tone <= ToneNeutral; tone++ {
		if !tone.IsValid() {
			t.Errorf("Tone(%d).IsValid() = false, want true", tone)
		}
	}
	if Tone(0).IsValid() || Tone(6).IsValid() {
		t.Error("tones outside 1..5 must be invalid")
	}
}

func TestHanziRecord_Char(t *testing.T) {
	t.Parallel()

	rec := HanziRecord{Simplified: "马", Traditional: "馬"}
	if got := rec.Char(ScriptSimplified); got != "马" {
		t.Errorf("simplified form: got %q", got)
	}
	if got := rec.Char(ScriptTraditional); got != "馬" {
		t.Errorf("traditional form: got %q", got)
	}
}
