// Package build orchestrates the full index-construction pipeline:
// C2 (corpus stream) → C4 (SPIMI) → C6/C5 (multi-pass merge) → C7
// (descriptor persistence). Grounded on original_source/irspimi/
// irsystem.py's build_index/_merge_index.
package build

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/corpusdex/irspimi/analysis"
	"github.com/corpusdex/irspimi/corpus"
	"github.com/corpusdex/irspimi/index"
	"github.com/corpusdex/irspimi/merge"
	"github.com/corpusdex/irspimi/spimi"
)

// Options controls one build run.
type Options struct {
	Files       []string
	DestDir     string
	Recipe      analysis.Chain
	SpimiBudget int
	FanIn       int
	InputBufLen int
	OutputBuf   int
}

// Run executes a full build: it drains Files through the compression
// recipe, spills SPIMI blocks, merges them down to one index, and
// persists the descriptor. Returns the final index directory (DestDir).
func Run(opts Options) (string, error) {
	if err := os.MkdirAll(opts.DestDir, 0o755); err != nil {
		return "", fmt.Errorf("build: creating dest dir %s: %w", opts.DestDir, err)
	}

	stream := corpus.NewStream(opts.Files, opts.Recipe)
	inv := spimi.NewInverter(stream, opts.SpimiBudget, opts.DestDir)

	var blocks []string
	for {
		path, exhausted, err := inv.Invert()
		if err != nil {
			return "", err
		}
		if exhausted {
			break
		}
		blocks = append(blocks, path)
	}
	if len(blocks) == 0 {
		return "", fmt.Errorf("build: no documents indexed from %d source file(s)", len(opts.Files))
	}

	outPath := filepath.Join(opts.DestDir, index.IndexFilename)
	merger := &merge.MultiPassMerger{
		FanIn:        opts.FanIn,
		InputBufLen:  opts.InputBufLen,
		OutputBufLen: opts.OutputBuf,
		WorkDir:      opts.DestDir,
	}
	if err := merger.Run(blocks, outPath); err != nil {
		return "", err
	}

	desc := &index.Descriptor{
		DocIDList:         stream.DocIDList(),
		DocLengths:        stream.DocLengths(),
		CompressionRecipe: opts.Recipe.Recipe(),
	}
	if err := desc.Save(outPath + index.DescriptorSuffix); err != nil {
		return "", err
	}

	slog.Default().Info("build: complete", "dest_dir", opts.DestDir, "docs", len(desc.DocIDList), "blocks", len(blocks))
	return opts.DestDir, nil
}
