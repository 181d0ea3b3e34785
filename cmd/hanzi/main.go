// Command hanzi explores a frequency-ranked Chinese character dataset
// from the terminal.
//
// Subcommands:
//
//	by-pinyin            group all characters by pinyin (no tone), most populous first
//	by-tone <pinyin>     show one pinyin's characters broken out by tone
//	by-onset [<onset>]   onset population counts, or one onset's pinyin detail
//	completion <shell>   generate a shell completion script
//
// Shared flags: --traditional/-r selects traditional character forms,
// --fold/-f folds long character lists (a bare --fold uses the
// configured default width). Queries accept "v" for "ü" ("nv" finds
// "nü") and the literal "none" for the empty onset.
//
// The dataset path and defaults come from internal/config
// (ENV > hanzi.yaml > defaults). Exit codes: 0 = success, 1 = error.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/my-hanzi/internal/app"
	"github.com/heartmarshall/my-hanzi/internal/config"
	"github.com/heartmarshall/my-hanzi/internal/dataset"
	"github.com/heartmarshall/my-hanzi/internal/domain"
	"github.com/heartmarshall/my-hanzi/internal/grouping"
	"github.com/heartmarshall/my-hanzi/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hanzi: %v\n", err)
		os.Exit(1)
	}

	logger := app.NewLogger(os.Stderr, cfg.Log)

	root := newRootCmd(cfg, logger)
	if err := root.Execute(); err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "hanzi",
		Short:         "Explore Chinese characters by pinyin, tone, and onset",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newByPinyinCmd(cfg, logger))
	root.AddCommand(newByToneCmd(cfg, logger))
	root.AddCommand(newByOnsetCmd(cfg, logger))

	return root
}

// loadRecords reads and enriches the dataset, logging loader stats.
func loadRecords(cfg *config.Config, logger *slog.Logger) ([]domain.HanziRecord, error) {
	records, stats, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("dataset loaded",
		slog.String("path", cfg.Dataset.Path),
		slog.Int("lines", stats.TotalLines),
		slog.Int("skipped", stats.SkippedLines),
		slog.Int("records", stats.Records))
	return records, nil
}

func scriptFlag(traditional bool) domain.Script {
	if traditional {
		return domain.ScriptTraditional
	}
	return domain.ScriptSimplified
}

// addFoldFlag registers --fold/-f. A bare --fold (no value) folds at
// the configured default width; omitting the flag disables folding.
func addFoldFlag(cmd *cobra.Command, cfg *config.Config, fold *int) {
	cmd.Flags().IntVarP(fold, "fold", "f", 0, "fold character lists at WIDTH display characters")
	cmd.Flags().Lookup("fold").NoOptDefVal = strconv.Itoa(cfg.Output.DefaultFold)
}

func newByPinyinCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var (
		fold        int
		traditional bool
	)

	cmd := &cobra.Command{
		Use:   "by-pinyin",
		Short: "List unique pinyin with character counts and characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(cfg, logger)
			if err != nil {
				return err
			}

			groups := grouping.ByPinyin(records, scriptFlag(traditional))
			lines := render.PinyinLines(groups, fold)
			return render.NewWriter(cmd.OutOrStdout()).Print(lines)
		},
	}

	addFoldFlag(cmd, cfg, &fold)
	cmd.Flags().BoolVarP(&traditional, "traditional", "r", false, "use traditional characters instead of simplified")
	return cmd
}

func newByToneCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var traditional bool

	cmd := &cobra.Command{
		Use:   "by-tone <pinyin>",
		Short: "Show characters for one pinyin grouped by tone",
		Long:  "Show characters for one pinyin (without tone marks) grouped by tone.\nUse 'v' for 'ü': by-tone nv finds nü.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := domain.NormalizeQuery(args[0])
			out := render.NewWriter(cmd.OutOrStdout())

			records, err := loadRecords(cfg, logger)
			if err != nil {
				return err
			}

			groups, err := grouping.ByTone(records, target, scriptFlag(traditional))
			if errors.Is(err, domain.ErrNotFound) {
				return out.Printf("No characters found for pinyin: %s", target)
			}
			if err != nil {
				return err
			}
			return out.Print(render.ToneLines(groups))
		},
	}

	cmd.Flags().BoolVarP(&traditional, "traditional", "r", false, "use traditional characters instead of simplified")
	return cmd
}

func newByOnsetCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var (
		fold        int
		traditional bool
	)

	cmd := &cobra.Command{
		Use:   "by-onset [<onset>]",
		Short: "Count characters by onset, or drill into one onset's pinyin",
		Long: "Without an argument, counts characters per onset (initial consonant).\n" +
			"With an onset argument (such as zh, or the literal \"none\" for\n" +
			"vowel-initial syllables), lists that onset's pinyin groups.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := render.NewWriter(cmd.OutOrStdout())
			script := scriptFlag(traditional)

			records, err := loadRecords(cfg, logger)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				groups := grouping.ByOnset(records, script)
				return out.Print(render.OnsetLines(groups))
			}

			onset, ok := domain.ParseOnsetQuery(args[0])
			if !ok {
				return out.Printf("Unknown onset: %s", args[0])
			}

			groups, err := grouping.ByOnsetDetail(records, onset, script)
			if errors.Is(err, domain.ErrNotFound) {
				return out.Printf("No characters found for onset: %s", onset.Label())
			}
			if err != nil {
				return err
			}
			return out.Print(render.PinyinLines(groups, fold))
		},
	}

	addFoldFlag(cmd, cfg, &fold)
	cmd.Flags().BoolVarP(&traditional, "traditional", "r", false, "use traditional characters instead of simplified")
	return cmd
}
