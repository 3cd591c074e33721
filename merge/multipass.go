package merge

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// MultiPassMerger groups an arbitrary number of sorted block files into
// fan-in-k batches and iterates Merge until one file remains, bounding
// peak open file handles to FanIn+2 regardless of block count. Grounded
// on irsystem.py's MultiPassMergeSPIMI.
type MultiPassMerger struct {
	FanIn        int
	InputBufLen  int
	OutputBufLen int
	WorkDir      string
	// KeepIntermediates disables deletion of consumed partial files
	// between passes; default (false) deletes them eagerly, per
	// spec.md §4.6 ("intermediate partials may be deleted after each
	// pass (optional)").
	KeepIntermediates bool
}

// Run merges blocks down to a single output file at finalOutPath, along
// with its dictionary sidecar (merge.DictionaryPath(finalOutPath)),
// produced only by the final pass.
func (m *MultiPassMerger) Run(blocks []string, finalOutPath string) error {
	if len(blocks) == 0 {
		return fmt.Errorf("merge: no blocks to merge")
	}
	fanIn := m.FanIn
	if fanIn <= 0 {
		fanIn = 4
	}

	current := blocks
	pass := 0
	for len(current) > fanIn {
		var next []string
		for i := 0; i < len(current); i += fanIn {
			end := i + fanIn
			if end > len(current) {
				end = len(current)
			}
			group := current[i:end]
			partial := filepath.Join(m.WorkDir, fmt.Sprintf("partial_%d_%d.blk", pass, i/fanIn))
			if err := Merge(group, partial, m.InputBufLen, m.OutputBufLen, false); err != nil {
				return err
			}
			next = append(next, partial)
		}
		slog.Default().Info("merge: pass complete", "pass", pass, "fan_in", fanIn, "inputs", len(current), "outputs", len(next))
		if !m.KeepIntermediates {
			for _, b := range current {
				os.Remove(b)
			}
		}
		current = next
		pass++
	}

	return Merge(current, finalOutPath, m.InputBufLen, m.OutputBufLen, true)
}
