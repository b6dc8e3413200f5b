package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/fontmerge/internal/charset"
	"github.com/jonathan/fontmerge/internal/config"
	"github.com/jonathan/fontmerge/internal/observability"
	"github.com/jonathan/fontmerge/internal/pipeline"
)

var mergeCommand = &cobra.Command{
	Use:   "merge",
	Short: "Subset, deduplicate and merge the input fonts into one file",
	Long: `Builds the target character set (ASCII + optional corpus + optional named blocks),
assigns each codepoint to the first font in the prefer order that covers it, subsets every
font to its assignment, merges the subsets and renames the output.

Configuration can be loaded from a JSON file using --config. Command-line arguments override
config file values.`,
	RunE: runMergeCmd,
}

var (
	mergeConfigPath   string
	mergeLatin        []string
	mergeZhTW         string
	mergeZhCN         string
	mergeJA           string
	mergeCorpus       []string
	mergeDropTables   []string
	mergeOut          string
	mergeOutName      string
	mergeOutSubfamily string
	mergePreferOrder  string
	mergeTimeout      time.Duration
	mergeVerbose      bool

	mergeAddLatin1        bool
	mergeAddCJKPunct      bool
	mergeAddJPSyllabaries bool
	mergeAddHalfwidth     bool
	mergeAddHanBasic      bool
)

func init() {
	// Config file flag (processed first)
	mergeCommand.Flags().StringVar(&mergeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	mergeCommand.Flags().StringSliceVar(&mergeLatin, "latin", nil, "One or more Latin font paths (coverage sources)")
	mergeCommand.Flags().StringVar(&mergeZhTW, "zh-tw", "", "Traditional Chinese font path")
	mergeCommand.Flags().StringVar(&mergeZhCN, "zh-cn", "", "Simplified Chinese font path")
	mergeCommand.Flags().StringVar(&mergeJA, "ja", "", "Japanese font path (optional)")
	mergeCommand.Flags().StringSliceVar(&mergeCorpus, "corpus", nil, "Optional UTF-8 text files defining your common character set")
	mergeCommand.Flags().StringSliceVar(&mergeDropTables, "drop-tables", nil, "Tables to drop from each subset (for Noto, drop vhea and vmtx)")

	mergeCommand.Flags().StringVarP(&mergeOut, "out", "o", "", "Output font path")
	mergeCommand.Flags().StringVar(&mergeOutName, "out-name", "", "Family name of the output font")
	mergeCommand.Flags().StringVar(&mergeOutSubfamily, "out-subfamily", "", "Subfamily name of the output font")
	mergeCommand.Flags().StringVar(&mergePreferOrder, "prefer-order", "", "Priority tags; 'latin' refers to all Latin inputs. Example: latin,zh-tw,zh-cn,ja")
	mergeCommand.Flags().DurationVar(&mergeTimeout, "merge-timeout", pipeline.DefaultMergeTimeout, "Timeout for the external merge step")
	mergeCommand.Flags().BoolVarP(&mergeVerbose, "verbose", "v", false, "Print detailed debug information")

	mergeCommand.Flags().BoolVar(&mergeAddLatin1, "add-latin1", false, "Include the Latin-1 Supplement block")
	mergeCommand.Flags().BoolVar(&mergeAddCJKPunct, "add-cjk-punct", false, "Include CJK symbols and punctuation")
	mergeCommand.Flags().BoolVar(&mergeAddJPSyllabaries, "add-jp-syllabaries", false, "Include Hiragana and Katakana")
	mergeCommand.Flags().BoolVar(&mergeAddHalfwidth, "add-halfwidth", false, "Include halfwidth and fullwidth forms")
	mergeCommand.Flags().BoolVar(&mergeAddHanBasic, "add-han-basic", false, "Include broad Han blocks (Unified + Ext A + Compat)")

	rootCmd.AddCommand(mergeCommand)
}

func runMergeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if mergeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(mergeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if mergeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", mergeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	cfg = applyMergeFlagOverrides(cmd, cfg)

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Out:          "merged_common.ttf",
		OutName:      "Noto Serif CJK",
		OutSubfamily: "Light",
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if len(cfg.Latin) == 0 {
		return fmt.Errorf("at least one --latin font is required (via flag or config)")
	}
	if cfg.ZhTW == "" {
		return fmt.Errorf("--zh-tw is required (via flag or config)")
	}
	if cfg.ZhCN == "" {
		return fmt.Errorf("--zh-cn is required (via flag or config)")
	}

	stats, err := pipeline.Run(ctx, pipeline.RunOptions{
		LatinPaths:    cfg.Latin,
		ZhTWPath:      cfg.ZhTW,
		ZhCNPath:      cfg.ZhCN,
		JAPath:        cfg.JA,
		CorpusPaths:   cfg.Corpus,
		Blocks:        blocksFromConfig(cfg),
		DropTables:    cfg.DropTables,
		OutPath:       cfg.Out,
		FamilyName:    cfg.OutName,
		SubfamilyName: cfg.OutSubfamily,
		PreferOrder:   cfg.PreferOrder,
		MergeTimeout:  mergeTimeout,
		Verbose:       cfg.Verbose,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Unassigned target codepoints (no font had them): %d\n", stats.Unassigned)
	fmt.Printf("Output: %s\n", stats.OutPath)
	fmt.Printf("Glyphs in output: %d\n", stats.GlyphCount)
	if stats.AtGlyphLimit() {
		fmt.Printf("WARNING: glyph count is at/over the 65535 limit. " +
			"Reduce target set (avoid --add-han-basic) or use a smaller corpus.\n")
	}
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintStats(stats)
	}
	return nil
}

// applyMergeFlagOverrides copies explicitly-set flags over the loaded config.
func applyMergeFlagOverrides(cmd *cobra.Command, cfg config.Config) config.Config {
	if cmd.Flags().Changed("latin") {
		cfg.Latin = mergeLatin
	}
	if cmd.Flags().Changed("zh-tw") {
		cfg.ZhTW = mergeZhTW
	}
	if cmd.Flags().Changed("zh-cn") {
		cfg.ZhCN = mergeZhCN
	}
	if cmd.Flags().Changed("ja") {
		cfg.JA = mergeJA
	}
	if cmd.Flags().Changed("corpus") {
		cfg.Corpus = mergeCorpus
	}
	if cmd.Flags().Changed("drop-tables") {
		cfg.DropTables = mergeDropTables
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = mergeOut
	}
	if cmd.Flags().Changed("out-name") {
		cfg.OutName = mergeOutName
	}
	if cmd.Flags().Changed("out-subfamily") {
		cfg.OutSubfamily = mergeOutSubfamily
	}
	if cmd.Flags().Changed("prefer-order") {
		cfg.PreferOrder = mergePreferOrder
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = mergeVerbose
	}
	if cmd.Flags().Changed("add-latin1") {
		cfg.AddLatin1 = mergeAddLatin1
	}
	if cmd.Flags().Changed("add-cjk-punct") {
		cfg.AddCJKPunct = mergeAddCJKPunct
	}
	if cmd.Flags().Changed("add-jp-syllabaries") {
		cfg.AddJPSyllabaries = mergeAddJPSyllabaries
	}
	if cmd.Flags().Changed("add-halfwidth") {
		cfg.AddHalfwidth = mergeAddHalfwidth
	}
	if cmd.Flags().Changed("add-han-basic") {
		cfg.AddHanBasic = mergeAddHanBasic
	}
	return cfg
}

// blocksFromConfig maps the block switches onto the charset options.
func blocksFromConfig(cfg config.Config) charset.Blocks {
	return charset.Blocks{
		Latin1:        cfg.AddLatin1,
		CJKPunct:      cfg.AddCJKPunct,
		JPSyllabaries: cfg.AddJPSyllabaries,
		Halfwidth:     cfg.AddHalfwidth,
		HanBasic:      cfg.AddHanBasic,
	}
}
