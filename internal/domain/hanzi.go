package domain

// Tone is one of the five Mandarin pitch contours. Tone 5 is the
// neutral tone and sorts after tone 4 in all reports.
type Tone int

const (
	ToneFirst   Tone = 1
	ToneSecond  Tone = 2
	ToneThird   Tone = 3
	ToneFourth  Tone = 4
	ToneNeutral Tone = 5
)

func (t Tone) IsValid() bool { return t >= ToneFirst && t <= ToneNeutral }

// Script selects which character form a report displays.
type Script string

const (
	ScriptSimplified  Script = "SIMPLIFIED"
	ScriptTraditional Script = "TRADITIONAL"
)

func (s Script) String() string { return string(s) }

func (s Script) IsValid() bool {
	switch s {
	case ScriptSimplified, ScriptTraditional:
		return true
	}
	return false
}

// HanziRecord is one row of the character dataset: a single Chinese
// character with its frequency rank, both written forms, and its
// pronunciation. Onset and Rime are derived from PinyinPlain at load
// time; records are read-only afterwards.
type HanziRecord struct {
	Frequency   int    // 1-based rank, lower = more common, unique per dataset
	Simplified  string
	Traditional string
	Pinyin      string // with tone diacritics, e.g. "zhōng"
	PinyinPlain string // without tone marks, e.g. "zhong"; grouping key
	Tone        Tone
	Onset       Onset
	Rime        Rime
}

// Char returns the character form selected by script.
func (r HanziRecord) Char(script Script) string {
	if script == ScriptTraditional {
		return r.Traditional
	}
	return r.Simplified
}
