// Package pinyin splits plain (tone-less) pinyin syllables into their
// onset and rime parts. Pure functions: syllable string in, domain
// values out.
package pinyin

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/my-hanzi/internal/domain"
)

// onsetCandidates lists every non-empty onset, longest first, so that
// "zh" matches before "z".
var onsetCandidates = []domain.Onset{
	domain.OnsetZh, domain.OnsetCh, domain.OnsetSh,
	domain.OnsetB, domain.OnsetP, domain.OnsetM, domain.OnsetF,
	domain.OnsetD, domain.OnsetT, domain.OnsetN,
	domain.OnsetZ, domain.OnsetC, domain.OnsetS,
	domain.OnsetL, domain.OnsetR,
	domain.OnsetJ, domain.OnsetQ, domain.OnsetX,
	domain.OnsetG, domain.OnsetK, domain.OnsetH,
	domain.OnsetY, domain.OnsetW,
}

// Decompose splits a plain pinyin syllable into onset and rime. The
// input may use the ASCII substitute "v" for "ü"; it is normalized
// before matching, so string(onset)+string(rime) equals the normalized
// syllable. A syllable with no matching initial (vowel-initial, or
// starting with "ü") gets the empty onset with the whole syllable as
// rime.
//
// An empty syllable is a contract violation and returns an error
// wrapping domain.ErrValidation.
func Decompose(plain string) (domain.Onset, domain.Rime, error) {
	if plain == "" {
		return domain.OnsetNone, "", fmt.Errorf("%w: empty pinyin syllable", domain.ErrValidation)
	}

	s := strings.ReplaceAll(strings.ToLower(plain), "v", "ü")

	for _, onset := range onsetCandidates {
		if rest, ok := strings.CutPrefix(s, string(onset)); ok {
			return onset, domain.Rime(rest), nil
		}
	}

	return domain.OnsetNone, domain.Rime(s), nil
}
