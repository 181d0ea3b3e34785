// Package grouping aggregates hanzi records into the three report
// shapes: by plain pinyin, by tone for one pinyin, and by onset.
// Pure functions over read-only records; groups are built fresh per
// call and carry deterministic, total orderings.
package grouping

import (
	"fmt"
	"sort"

	"github.com/heartmarshall/my-hanzi/internal/domain"
)

// PinyinGroup is every character sharing one plain pinyin. Count is the
// number of member records. Chars holds the display forms in ascending
// frequency-rank order (most common first).
type PinyinGroup struct {
	Pinyin string
	Count  int
	Chars  []string
}

// ToneGroup is every character of one tone within a single plain
// pinyin. Pinyin carries the tone diacritics of the group's most
// frequent member; the dataset is assumed to spell a (pinyin, tone)
// pair consistently.
type ToneGroup struct {
	Tone   domain.Tone
	Pinyin string
	Chars  []string
}

// OnsetGroup is the population of one onset. The empty onset is a
// valid, distinct group. Chars holds the display forms in ascending
// frequency-rank order.
type OnsetGroup struct {
	Onset domain.Onset
	Count int
	Chars []string
}

// ByPinyin groups records by plain pinyin. Groups are ordered by
// descending member count, ties broken by ascending pinyin, which makes
// the order total; members are ordered by ascending frequency rank.
// Empty input yields an empty result.
func ByPinyin(records []domain.HanziRecord, script domain.Script) []PinyinGroup {
	buckets := make(map[string][]domain.HanziRecord)
	for _, rec := range records {
		buckets[rec.PinyinPlain] = append(buckets[rec.PinyinPlain], rec)
	}

	groups := make([]PinyinGroup, 0, len(buckets))
	for key, members := range buckets {
		sort.Slice(members, func(i, j int) bool {
			return members[i].Frequency < members[j].Frequency
		})
		chars := make([]string, len(members))
		for i, rec := range members {
			chars[i] = rec.Char(script)
		}
		groups = append(groups, PinyinGroup{Pinyin: key, Count: len(members), Chars: chars})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Pinyin < groups[j].Pinyin
	})
	return groups
}

// ByTone filters records to one plain pinyin and groups them by tone,
// ordered tone 1 through 5 with members by ascending frequency rank.
// A pinyin absent from the dataset returns an error wrapping
// domain.ErrNotFound; this is distinct from an empty-but-valid result,
// which cannot occur.
func ByTone(records []domain.HanziRecord, targetPinyin string, script domain.Script) ([]ToneGroup, error) {
	var matching []domain.HanziRecord
	for _, rec := range records {
		if rec.PinyinPlain == targetPinyin {
			matching = append(matching, rec)
		}
	}
	if len(matching) == 0 {
		return nil, fmt.Errorf("pinyin %q: %w", targetPinyin, domain.ErrNotFound)
	}

	sort.Slice(matching, func(i, j int) bool {
		return matching[i].Frequency < matching[j].Frequency
	})

	buckets := make(map[domain.Tone]*ToneGroup)
	var order []domain.Tone
	for _, rec := range matching {
		g, ok := buckets[rec.Tone]
		if !ok {
			// Members arrive most-frequent-first, so the representative
			// toned pinyin is the most frequent member's spelling.
			g = &ToneGroup{Tone: rec.Tone, Pinyin: rec.Pinyin}
			buckets[rec.Tone] = g
			order = append(order, rec.Tone)
		}
		g.Chars = append(g.Chars, rec.Char(script))
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	groups := make([]ToneGroup, 0, len(order))
	for _, tone := range order {
		groups = append(groups, *buckets[tone])
	}
	return groups, nil
}

// ByOnset groups records by derived onset and counts each group.
// Ordering matches ByPinyin: descending count, ties broken by ascending
// onset text, with the empty onset comparing as the empty string (so it
// sorts before any letter on a tie). Empty input yields an empty
// result.
func ByOnset(records []domain.HanziRecord, script domain.Script) []OnsetGroup {
	buckets := make(map[domain.Onset][]domain.HanziRecord)
	for _, rec := range records {
		buckets[rec.Onset] = append(buckets[rec.Onset], rec)
	}

	groups := make([]OnsetGroup, 0, len(buckets))
	for onset, members := range buckets {
		sort.Slice(members, func(i, j int) bool {
			return members[i].Frequency < members[j].Frequency
		})
		chars := make([]string, len(members))
		for i, rec := range members {
			chars[i] = rec.Char(script)
		}
		groups = append(groups, OnsetGroup{Onset: onset, Count: len(members), Chars: chars})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Onset < groups[j].Onset
	})
	return groups
}

// ByOnsetDetail restricts records to one onset and delegates to
// ByPinyin over the restricted set, producing per-pinyin detail for
// that onset. The empty onset is a valid filter. An onset with no
// records returns an error wrapping domain.ErrNotFound.
func ByOnsetDetail(records []domain.HanziRecord, onset domain.Onset, script domain.Script) ([]PinyinGroup, error) {
	var matching []domain.HanziRecord
	for _, rec := range records {
		if rec.Onset == onset {
			matching = append(matching, rec)
		}
	}
	if len(matching) == 0 {
		return nil, fmt.Errorf("onset %q: %w", onset.Label(), domain.ErrNotFound)
	}
	return ByPinyin(matching, script), nil
}
