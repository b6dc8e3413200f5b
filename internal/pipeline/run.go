// Package pipeline orchestrates the full merge: descriptor reading, order
// resolution, compatibility validation, target building, ownership
// partitioning, per-font subsetting, the external merge and the final
// rename. All filesystem and process side effects of the run are confined
// to this package and its collaborators.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/fontmerge/internal/charset"
	"github.com/jonathan/fontmerge/internal/fontio"
	"github.com/jonathan/fontmerge/internal/partition"
	"github.com/jonathan/fontmerge/internal/priority"
	"github.com/jonathan/fontmerge/internal/types"
	"github.com/jonathan/fontmerge/internal/validation"
)

// GlyphLimit is the 16-bit glyph-index ceiling of the sfnt format.
const GlyphLimit = 65535

// FontReader reads font metadata. Modeled as an interface so the
// orchestration logic is testable without real font files.
type FontReader interface {
	ReadDescriptor(path string, tag types.FontTag) (*types.FontDescriptor, error)
	CountGlyphs(path string) (int, error)
}

// Subsetter produces a physical subset artifact scoped to the kept
// codepoints, with the named tables dropped.
type Subsetter interface {
	Subset(path string, keep types.CodeSet, dropTables []string, outPath string) ([]string, error)
}

// Merger combines subset artifacts into one font file.
type Merger interface {
	Merge(ctx context.Context, subsetPaths []string, outPath string) error
}

// Renamer rewrites the output font's name-table identifiers.
type Renamer interface {
	SetNames(path, family, subfamily string) error
}

// RunOptions holds the configuration for one merge run.
type RunOptions struct {
	LatinPaths []string // One or more Latin fonts, tagged latin0, latin1, ...
	ZhTWPath   string
	ZhCNPath   string
	JAPath     string // Optional

	CorpusPaths []string
	Blocks      charset.Blocks

	DropTables    []string
	OutPath       string
	FamilyName    string
	SubfamilyName string
	PreferOrder   string // Comma-separated tags; empty uses the default order
	MergeTimeout  time.Duration
	Verbose       bool

	// Collaborators; left nil, the real implementations are used.
	Reader    FontReader
	Subsetter Subsetter
	Merger    Merger
	Renamer   Renamer
}

// Stats summarizes a completed run.
type Stats struct {
	Order      []types.FontTag
	TargetSize int
	Assigned   map[types.FontTag]int
	Unassigned int
	GlyphCount int
	OutPath    string
	Warnings   []string
}

// AtGlyphLimit reports whether the output is at or over the 16-bit
// glyph-index limit.
func (s *Stats) AtGlyphLimit() bool {
	return s.GlyphCount >= GlyphLimit
}

// Run executes the merge pipeline end to end and returns the run summary.
// Temporary subset artifacts are removed best-effort whether the run
// succeeds or fails, and the advertised output path is only written after
// merge and rename have both completed.
func Run(ctx context.Context, opts RunOptions) (*Stats, error) {
	if opts.Reader == nil {
		opts.Reader = fontio.NewReader()
	}
	if opts.Subsetter == nil {
		opts.Subsetter = fontio.NewSubsetter()
	}
	if opts.Merger == nil {
		opts.Merger = NewToolMerger(opts.MergeTimeout)
	}
	if opts.Renamer == nil {
		opts.Renamer = fontio.NewRenamer()
	}

	latinTags := make([]types.FontTag, len(opts.LatinPaths))
	fontPaths := make(map[types.FontTag]string, len(opts.LatinPaths)+3)
	for i, path := range opts.LatinPaths {
		tag := fmt.Sprintf("latin%d", i)
		latinTags[i] = tag
		fontPaths[tag] = path
	}
	fontPaths["zh-tw"] = opts.ZhTWPath
	fontPaths["zh-cn"] = opts.ZhCNPath
	if opts.JAPath != "" {
		fontPaths["ja"] = opts.JAPath
	}

	var tokens []string
	if opts.PreferOrder != "" {
		tokens = priority.SplitTokens(opts.PreferOrder)
	} else {
		tokens = priority.DefaultOrder(latinTags, opts.JAPath != "")
	}
	order, err := priority.Resolve(tokens, latinTags, fontPaths)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Prefer order: %s\n", strings.Join(order, ","))

	fmt.Printf("Step 1/6: Reading %d fonts...\n", len(order))
	descriptors := make(map[types.FontTag]*types.FontDescriptor, len(order))
	for _, tag := range order {
		desc, err := opts.Reader.ReadDescriptor(fontPaths[tag], tag)
		if err != nil {
			return nil, err
		}
		descriptors[tag] = desc
		if opts.Verbose {
			fmt.Printf("[VERBOSE] %s: upem=%d outline=%s glyphs=%d coverage=%d\n",
				tag, desc.UnitsPerEm, desc.Outline, desc.NumGlyphs, desc.Coverage.Len())
		}
	}

	fmt.Printf("Step 2/6: Validating font compatibility...\n")
	warnings, err := validation.Validate(order, descriptors)
	if err != nil {
		return nil, err
	}
	for _, warning := range warnings {
		fmt.Printf("WARNING: %s\n", warning)
	}

	fmt.Printf("Step 3/6: Building target codepoint set...\n")
	corpusTexts, err := charset.ReadCorpus(opts.CorpusPaths)
	if err != nil {
		return nil, err
	}
	if len(opts.CorpusPaths) == 0 {
		fmt.Printf("Corpus not provided: using ASCII + any --add-* blocks.\n")
	}
	target := charset.BuildTarget(corpusTexts, opts.Blocks)
	fmt.Printf("Target codepoints (pre-font filter): %d\n", target.Len())

	fmt.Printf("Step 4/6: Partitioning codepoint ownership...\n")
	coverage := make(map[types.FontTag]types.CodeSet, len(order))
	for _, tag := range order {
		coverage[tag] = descriptors[tag].Coverage
	}
	assigned, unassigned := partition.Partition(target, order, coverage)

	stats := &Stats{
		Order:      order,
		TargetSize: target.Len(),
		Assigned:   make(map[types.FontTag]int, len(order)),
		Unassigned: unassigned,
		OutPath:    opts.OutPath,
		Warnings:   warnings,
	}
	for _, tag := range order {
		stats.Assigned[tag] = assigned[tag].Len()
	}

	tmpDir := filepath.Join(os.TempDir(), "fontmerge-"+uuid.NewString())
	if err := os.MkdirAll(tmpDir, 0755); err != nil {
		return nil, fmt.Errorf("creating temp artifact directory: %w", err)
	}
	// Best-effort cleanup of every temporary artifact, also on failure.
	defer os.RemoveAll(tmpDir)

	fmt.Printf("Step 5/6: Subsetting fonts...\n")
	subsetPaths, err := subsetAll(ctx, opts.Subsetter, fontPaths, opts.DropTables, order, assigned, tmpDir)
	if err != nil {
		return nil, err
	}
	if len(subsetPaths) == 0 {
		return nil, &NothingToMergeError{}
	}

	fmt.Printf("Step 6/6: Merging %d subsets...\n", len(subsetPaths))
	mergedPath := filepath.Join(tmpDir, "merged.ttf")
	if err := opts.Merger.Merge(ctx, subsetPaths, mergedPath); err != nil {
		return nil, err
	}

	if err := opts.Renamer.SetNames(mergedPath, opts.FamilyName, opts.SubfamilyName); err != nil {
		return nil, fmt.Errorf("renaming merged font: %w", err)
	}
	fullName := opts.FamilyName
	if opts.SubfamilyName != "Regular" {
		fullName = opts.FamilyName + " " + opts.SubfamilyName
	}
	fmt.Printf("Font renamed to: %s\n", fullName)

	// Only now does the advertised output path get written.
	if err := moveFile(mergedPath, opts.OutPath); err != nil {
		return nil, fmt.Errorf("writing output %s: %w", opts.OutPath, err)
	}

	glyphs, err := opts.Reader.CountGlyphs(opts.OutPath)
	if err != nil {
		return nil, fmt.Errorf("counting output glyphs: %w", err)
	}
	stats.GlyphCount = glyphs

	return stats, nil
}

// subsetAll subsets every font with a non-empty assignment into tmpDir, in
// parallel. Fonts owning nothing are skipped entirely rather than merged as
// empty-glyph files. The returned artifact paths preserve priority order.
func subsetAll(ctx context.Context, subsetter Subsetter, fontPaths map[types.FontTag]string, dropTables []string, order []types.FontTag, assigned partition.Assignment, tmpDir string) ([]string, error) {
	results := make([]string, len(order))
	g, ctx := errgroup.WithContext(ctx)

	for i, tag := range order {
		keep := assigned[tag]
		if keep.Len() == 0 {
			fmt.Printf("%s: assigned 0 codepoints, skipping\n", tag)
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outPath := filepath.Join(tmpDir, tag+".subset.ttf")
			removed, err := subsetter.Subset(fontPaths[tag], keep, dropTables, outPath)
			if err != nil {
				return err
			}
			for _, name := range removed {
				fmt.Printf("%s: dropped table %s\n", tag, name)
			}
			fmt.Printf("%s: assigned %d codepoints\n", tag, keep.Len())
			results[i] = outPath
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	subsetPaths := make([]string, 0, len(order))
	for _, path := range results {
		if path != "" {
			subsetPaths = append(subsetPaths, path)
		}
	}
	return subsetPaths, nil
}

// moveFile renames src to dst, falling back to copy+remove when the paths
// live on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}
