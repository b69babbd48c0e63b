// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package root

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dalzilio/adf/adf"
	"github.com/dalzilio/adf/bdd"
)

type options struct {
	grounded   bool
	complete   bool
	stable     bool
	stableMode string
	twovalued  bool
	lx         bool
	an         bool
	importPath string
	exportPath string
	memoized   bool
	verbose    int
}

// NewRootCmd returns the adf command. It reads an ADF from a file (or
// stdin with "-"), or imports a previously exported state, computes the
// requested semantics, and prints one line per interpretation.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "adf [flags] <file>",
		Short: "adf solves Abstract Dialectical Frameworks using shared BDDs",
		Long: `adf computes three-valued semantics of Abstract Dialectical Frameworks.
Statements are read as dot-terminated facts, for instance:

	s(a). s(b).
	ac(a, neg(b)). ac(b, neg(a)).

Each interpretation is printed on its own line as tokens T(name), F(name)
or u(name), one per statement in variable order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.lx && opts.an {
				return fmt.Errorf("flags --lx and --an are mutually exclusive")
			}
			if opts.importPath == "" && len(args) == 0 {
				return fmt.Errorf("missing input file (or --import)")
			}
			if opts.importPath != "" && len(args) > 0 {
				return fmt.Errorf("--import cannot be combined with an input file")
			}
			if _, ok := adf.ParseStableVariant(opts.stableMode); !ok {
				return fmt.Errorf("unknown stable mode %q", opts.stableMode)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.grounded, "grd", false, "compute the grounded interpretation")
	cmd.Flags().BoolVar(&opts.complete, "com", false, "compute the complete interpretations")
	cmd.Flags().BoolVar(&opts.stable, "stm", false, "compute the stable interpretations")
	cmd.Flags().StringVar(&opts.stableMode, "stm-mode", "naive", "stable strategy: naive|prefilter|rewrite|count-a|count-b|nogood")
	cmd.Flags().BoolVar(&opts.twovalued, "twoval", false, "compute the two-valued models (no-good learning)")
	cmd.Flags().BoolVar(&opts.lx, "lx", false, "order statements lexicographically before building the BDD")
	cmd.Flags().BoolVar(&opts.an, "an", false, "order statements alphanumerically before building the BDD")
	cmd.Flags().StringVar(&opts.importPath, "import", "", "import a previously exported ADF state instead of parsing")
	cmd.Flags().StringVar(&opts.exportPath, "export", "", "export the ADF state after construction")
	cmd.Flags().BoolVar(&opts.memoized, "memoized", false, "compute BDD counts on demand instead of on insertion")
	cmd.Flags().CountVarP(&opts.verbose, "verbose", "v", "increase verbosity (-v for info, -vv for debug)")
	return cmd
}

func run(w io.Writer, opts *options, args []string) error {
	switch {
	case opts.verbose >= 2:
		logrus.SetLevel(logrus.DebugLevel)
	case opts.verbose == 1:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}
	countmode := bdd.Adhoc
	if opts.memoized {
		countmode = bdd.Memoized
	}

	var a *adf.Adf
	if opts.importPath != "" {
		f, err := os.Open(opts.importPath)
		if err != nil {
			return err
		}
		defer f.Close()
		a, err = adf.Import(f, adf.WithCounting(countmode))
		if err != nil {
			return err
		}
	} else {
		in, err := readInput(args[0])
		if err != nil {
			return err
		}
		if opts.lx {
			in.SortLexicographic()
		}
		if opts.an {
			in.SortAlphanumeric()
		}
		a, err = adf.New(in, adf.WithCounting(countmode))
		if err != nil {
			return err
		}
	}
	logrus.Info("ADF ready\n" + a.Stats())

	if opts.exportPath != "" {
		f, err := os.Create(opts.exportPath)
		if err != nil {
			return err
		}
		if err := a.Export(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if opts.grounded {
		if err := a.Print(w, a.Grounded()); err != nil {
			return err
		}
	}
	if opts.complete {
		for _, iv := range a.Complete() {
			if err := a.Print(w, iv); err != nil {
				return err
			}
		}
	}
	if opts.stable {
		variant, _ := adf.ParseStableVariant(opts.stableMode)
		for _, iv := range a.Stable(variant) {
			if err := a.Print(w, iv); err != nil {
				return err
			}
		}
	}
	if opts.twovalued {
		for _, iv := range a.TwoValuedModels() {
			if err := a.Print(w, iv); err != nil {
				return err
			}
		}
	}
	return nil
}

func readInput(path string) (*adf.Input, error) {
	if path == "-" {
		return adf.Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return adf.Parse(f)
}
