// Command mkdataset builds the six-column hanzi TSV consumed by the
// hanzi CLI from a three-column source list (frequency rank, simplified
// form, traditional form). The three pinyin columns — diacritic form,
// plain form, and tone digit — are derived with go-pinyin.
// It is intended to be run offline, not as part of normal use.
//
// Flags:
//
//	--in    path to the three-column source TSV (required)
//	--out   path to write the six-column dataset (default: stdout)
//
// Characters go-pinyin cannot resolve are skipped and counted.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"

	"github.com/heartmarshall/my-hanzi/internal/app"
	"github.com/heartmarshall/my-hanzi/internal/config"
)

func main() {
	inFlag := flag.String("in", "", "path to three-column source TSV (frequency, simplified, traditional)")
	outFlag := flag.String("out", "", "path to write the dataset (default: stdout)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(os.Stderr, cfg.Log)

	if *inFlag == "" {
		logger.Error("missing required flag --in")
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			logger.Error("create output", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	stats, err := build(*inFlag, out)
	if err != nil {
		logger.Error("build dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("dataset built",
		slog.Int("lines", stats.TotalLines),
		slog.Int("written", stats.Written),
		slog.Int("unresolved", stats.Unresolved))
}

// stats holds builder counters for logging.
type stats struct {
	TotalLines int
	Written    int
	Unresolved int
}

// build reads the source list and writes the derived dataset rows.
func build(inPath string, out io.Writer) (stats, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return stats{}, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(out)
	var st stats

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		st.TotalLines++

		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) < 3 {
			continue
		}
		freq := strings.TrimSpace(parts[0])
		simplified := strings.TrimSpace(parts[1])
		traditional := strings.TrimSpace(parts[2])
		if freq == "" || simplified == "" {
			continue
		}
		if traditional == "" {
			traditional = simplified
		}

		toned, plain, tone, ok := derivePinyin(simplified)
		if !ok {
			st.Unresolved++
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n", freq, simplified, traditional, toned, plain, tone)
		st.Written++
	}
	if err := scanner.Err(); err != nil {
		return stats{}, fmt.Errorf("scan source: %w", err)
	}

	if err := w.Flush(); err != nil {
		return stats{}, fmt.Errorf("flush output: %w", err)
	}
	return st, nil
}

// derivePinyin returns the diacritic pinyin, the plain (tone-less)
// pinyin, and the tone digit for a single character. Heteronyms
// collapse to go-pinyin's primary reading. Returns ok=false when
// go-pinyin has no reading for the character.
func derivePinyin(char string) (toned, plain string, tone int, ok bool) {
	toned = firstReading(char, gopinyin.Tone)
	plain = firstReading(char, gopinyin.Normal)
	numbered := firstReading(char, gopinyin.Tone3)
	if toned == "" || plain == "" {
		return "", "", 0, false
	}

	// go-pinyin follows the pypinyin convention of "v" for "ü" in
	// ASCII-only styles; the dataset stores "ü".
	plain = strings.ReplaceAll(strings.ToLower(plain), "v", "ü")

	tone = toneDigit(numbered)
	return toned, plain, tone, true
}

// firstReading converts char with the given style and returns the
// primary reading, or "" when the character is not in go-pinyin's table.
func firstReading(char string, style int) string {
	a := gopinyin.NewArgs()
	a.Style = style
	readings := gopinyin.Pinyin(char, a)
	if len(readings) == 0 || len(readings[0]) == 0 {
		return ""
	}
	return readings[0][0]
}

// toneDigit extracts the trailing tone number from a Tone3-style
// reading ("zhong1" → 1). A missing digit is the neutral tone, 5.
func toneDigit(numbered string) int {
	if numbered == "" {
		return 5
	}
	last := numbered[len(numbered)-1]
	if last >= '1' && last <= '5' {
		return int(last - '0')
	}
	return 5
}
