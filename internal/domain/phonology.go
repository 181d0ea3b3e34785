package domain

// Onset is the initial consonant part of a Mandarin syllable.
// The empty value is the valid "no onset" case (vowel-initial syllables
// such as "an" or "ü"). Its display label is "none".
type Onset string

const (
	OnsetB    Onset = "b"
	OnsetP    Onset = "p"
	OnsetM    Onset = "m"
	OnsetF    Onset = "f"
	OnsetD    Onset = "d"
	OnsetT    Onset = "t"
	OnsetN    Onset = "n"
	OnsetZ    Onset = "z"
	OnsetC    Onset = "c"
	OnsetS    Onset = "s"
	OnsetL    Onset = "l"
	OnsetZh   Onset = "zh"
	OnsetCh   Onset = "ch"
	OnsetSh   Onset = "sh"
	OnsetR    Onset = "r"
	OnsetJ    Onset = "j"
	OnsetQ    Onset = "q"
	OnsetX    Onset = "x"
	OnsetG    Onset = "g"
	OnsetK    Onset = "k"
	OnsetH    Onset = "h"
	OnsetY    Onset = "y"
	OnsetW    Onset = "w"
	OnsetNone Onset = ""
)

// NoneLabel is the literal accepted in queries and used in output in
// place of the empty onset.
const NoneLabel = "none"

func (o Onset) String() string { return string(o) }

// Label returns the display form of the onset: the onset letters, or
// "none" for the empty onset.
func (o Onset) Label() string {
	if o == OnsetNone {
		return NoneLabel
	}
	return string(o)
}

func (o Onset) IsValid() bool {
	switch o {
	case OnsetB, OnsetP, OnsetM, OnsetF, OnsetD, OnsetT, OnsetN,
		OnsetZ, OnsetC, OnsetS, OnsetL, OnsetZh, OnsetCh, OnsetSh,
		OnsetR, OnsetJ, OnsetQ, OnsetX, OnsetG, OnsetK, OnsetH,
		OnsetY, OnsetW, OnsetNone:
		return true
	}
	return false
}

// Rime is the remainder of a syllable after the onset. It is stored
// verbatim (with "ü" already normalized), so Onset + Rime always
// reconstructs the plain pinyin even for spellings outside the standard
// table; IsValid reports table membership.
type Rime string

func (r Rime) String() string { return string(r) }

// standardRimes is the set of rime spellings in standard Mandarin
// pinyin, after "v"→"ü" normalization.
var standardRimes = map[Rime]bool{
	"e": true, "a": true, "o": true,
	"ei": true, "ai": true, "ou": true, "ao": true,
	"en": true, "an": true, "ong": true, "eng": true, "ang": true, "er": true,
	"i": true, "ie": true, "ia": true, "iu": true, "iao": true,
	"in": true, "ian": true, "iong": true, "ing": true, "iang": true,
	"u": true, "uo": true, "ua": true, "ui": true, "uai": true,
	"un": true, "uan": true, "uang": true,
	"ü": true, "üe": true, "ue": true,
}

func (r Rime) IsValid() bool { return standardRimes[r] }
