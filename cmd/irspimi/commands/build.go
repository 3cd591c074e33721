package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corpusdex/irspimi/analysis"
	"github.com/corpusdex/irspimi/build"
)

var (
	buildDestDir   string
	buildCompress  []string
	buildSpimiSize int
	buildFanIn     int
)

var buildCmd = &cobra.Command{
	Use:   "build <corpus-file...>",
	Short: "Builds the inverted index for the Reuters corpus",
	Long: `build constructs the positional inverted index over one or more Reuters
SGML source files, given in reading order, using the SPIMI algorithm
followed by a multi-pass external merge.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipe, err := compressionRecipe(buildCompress)
		if err != nil {
			return err
		}

		opts := build.Options{
			Files:       args,
			DestDir:     buildDestDir,
			Recipe:      recipe,
			SpimiBudget: buildSpimiSize,
			FanIn:       buildFanIn,
			InputBufLen: 64,
			OutputBuf:   64,
		}
		dir, err := build.Run(opts)
		if err != nil {
			return err
		}
		fmt.Println(dir)
		return nil
	},
}

// compressionRecipe builds an analysis.Chain from the --compress-dict
// flag values, in the order given (spec.md §6's recognized set).
func compressionRecipe(names []string) (analysis.Chain, error) {
	filters := make([]analysis.Filter, 0, len(names))
	for _, name := range names {
		f, err := analysis.RecipeNameToFilter(name)
		if err != nil {
			return analysis.Chain{}, fmt.Errorf("build: --compress-dict %s: %w", name, err)
		}
		filters = append(filters, f)
	}
	return analysis.Chain{Filters: filters}, nil
}

func init() {
	buildCmd.Flags().StringVarP(&buildDestDir, "dest-dir", "d", ".", "destination directory for the inverted index")
	buildCmd.Flags().StringArrayVar(&buildCompress, "compress-dict", nil,
		"dictionary compression filter to apply, in order (repeatable): nonum, casefold, stopw30, stopw150, portstem")
	buildCmd.Flags().IntVar(&buildSpimiSize, "spimi-budget", 50000, "approximate term-entry budget per SPIMI block")
	buildCmd.Flags().IntVar(&buildFanIn, "fan-in", 8, "number of blocks merged together per pass")
	AddCommand(buildCmd)
}
