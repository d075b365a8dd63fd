package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youruser/bingoapp/internal/config"
	"github.com/youruser/bingoapp/internal/generator"
	"github.com/youruser/bingoapp/internal/logging"
	"github.com/youruser/bingoapp/internal/sheet"
)

type app struct {
	configPath string
	verbose    bool

	phrases        string
	template       string
	fontPath       string
	fontSize       float64
	seed           int64
	outDir         string
	sentinel       string
	includeOwnPool bool
	dryRun         bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "bingo <player1,player2,...>",
		Short: "Generate personal bingo sheets for a group of players",
		Long: `bingo draws 25 phrases for every player from the shared and per-player
phrase pools and writes <player>.png with the phrases laid out on a 5x5 grid.

Example:
  bingo markus,sven`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runGenerate,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.phrases, "phrases", "", "phrase pool file (JSON or YAML)")
	pf.StringVar(&a.template, "template", "", "template image path or URL")
	pf.StringVar(&a.fontPath, "font", "", "TrueType/OpenType font file")
	pf.Float64Var(&a.fontSize, "font-size", 0, "font size in points")
	pf.StringVarP(&a.outDir, "out", "o", "", "output directory")

	f := root.Flags()
	f.Int64Var(&a.seed, "seed", 0, "random seed (0 picks one)")
	f.StringVar(&a.sentinel, "sentinel", "", "name used in parameterized phrases when playing alone")
	f.BoolVar(&a.includeOwnPool, "include-own-pool", false, "also draw from the player's own phrases")
	f.BoolVar(&a.dryRun, "dry-run", false, "print the sheets instead of writing images")

	root.AddCommand(newClearCmd(a), newServeCmd(a))
	return root
}

// init loads the config file and applies flags that were set explicitly.
func (a *app) init(cmd *cobra.Command) error {
	var err error
	a.logger, err = logging.New(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("phrases") {
		cfg.Phrases = a.phrases
	}
	if flags.Changed("template") {
		cfg.Template = a.template
	}
	if flags.Changed("font") {
		cfg.Font.Path = a.fontPath
	}
	if flags.Changed("font-size") {
		cfg.Font.Size = a.fontSize
	}
	if flags.Changed("out") {
		cfg.OutputDir = a.outDir
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("sentinel") {
		cfg.SelfSentinel = a.sentinel
	}
	if flags.Changed("include-own-pool") {
		cfg.IncludeOwnPool = a.includeOwnPool
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	players, err := sheet.ParsePlayers(args[0])
	if err != nil {
		return err
	}
	gen, err := generator.New(a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer gen.Close()

	seed := generator.ResolveSeed(a.cfg.Seed)
	a.logger.Info("generating sheets", zap.Strings("players", players), zap.Int64("seed", seed))

	if a.dryRun {
		sheets, err := gen.Sample(players, seed)
		if err != nil {
			return err
		}
		for _, s := range sheets {
			fmt.Fprintln(cmd.OutOrStdout(), sheet.ExportSheetText(s))
		}
		return nil
	}

	written, err := gen.Generate(players, seed, a.cfg.OutputDir)
	if err != nil {
		return err
	}
	for _, p := range written {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
