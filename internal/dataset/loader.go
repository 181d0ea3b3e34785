// Package dataset loads the six-column hanzi TSV into domain records.
// Pure function: file path in, domain structs out.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/my-hanzi/internal/domain"
	"github.com/heartmarshall/my-hanzi/internal/pinyin"
)

// fieldCount is the number of mandatory TSV columns:
// frequency, simplified, traditional, pinyin, pinyin without tone, tone.
const fieldCount = 6

// errSkipLine signals that a line should be skipped (empty, short, or
// carrying unparseable numbers). Validation happens here at the
// boundary; the grouping engines assume well-formed records.
var errSkipLine = errors.New("skip line")

// Stats holds loader statistics for logging.
type Stats struct {
	TotalLines   int
	SkippedLines int
	Records      int
}

// Load reads the hanzi TSV at path and returns records enriched with
// their onset/rime decomposition, in file order (ascending frequency
// rank in the shipped dataset).
func Load(path string) ([]domain.HanziRecord, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var (
		records []domain.HanziRecord
		stats   Stats
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		stats.TotalLines++

		rec, err := parseLine(scanner.Text())
		if err != nil {
			stats.SkippedLines++
			continue
		}

		rec.Onset, rec.Rime, err = pinyin.Decompose(rec.PinyinPlain)
		if err != nil {
			stats.SkippedLines++
			continue
		}
		if !rec.Rime.IsValid() {
			slog.Debug("nonstandard rime in dataset",
				slog.String("pinyin", rec.PinyinPlain),
				slog.String("rime", rec.Rime.String()))
		}

		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("scan dataset: %w", err)
	}

	stats.Records = len(records)
	return records, stats, nil
}

// parseLine parses one TSV row into a record. Rows with missing fields
// or unparseable numbers are skipped rather than failing the load.
func parseLine(line string) (domain.HanziRecord, error) {
	parts := strings.Split(line, "\t")
	if len(parts) < fieldCount {
		return domain.HanziRecord{}, errSkipLine
	}

	freq, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return domain.HanziRecord{}, errSkipLine
	}

	toneNum, err := strconv.Atoi(strings.TrimSpace(parts[5]))
	if err != nil {
		return domain.HanziRecord{}, errSkipLine
	}
	tone := domain.Tone(toneNum)

	rec := domain.HanziRecord{
		Frequency:   freq,
		Simplified:  strings.TrimSpace(parts[1]),
		Traditional: strings.TrimSpace(parts[2]),
		Pinyin:      strings.TrimSpace(parts[3]),
		PinyinPlain: strings.TrimSpace(parts[4]),
		Tone:        tone,
	}
	if rec.Simplified == "" || rec.Pinyin == "" || rec.PinyinPlain == "" || !tone.IsValid() {
		return domain.HanziRecord{}, errSkipLine
	}
	return rec, nil
}
