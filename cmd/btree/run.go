package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/internal/logger"
	"github.com/katalvlaran/bintree/internal/profile"
	"github.com/katalvlaran/bintree/internal/store"
	"github.com/katalvlaran/bintree/weight"
)

// Phase names reported by --profile.
const (
	phaseDeserialize = "deserialize"
	phaseGenerate    = "generate"
	phaseSearch      = "search"
	phaseSerialize   = "serialize"
)

// promptLeaves asks for the number of nodes to generate. Swapped by tests.
var promptLeaves = func() (int, error) {
	text, err := pterm.DefaultInteractiveTextInput.Show("Enter max amount of leaves")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(text))
}

func newRunCmd(a *app) *cobra.Command {
	var (
		leaves      int
		withProfile bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load or generate the tree file, then report its min and max ratio subtrees",
		Long: `Loads the tree file when it exists. Otherwise a tree with the requested
number of nodes is generated and saved to the file. The tree, its size and
the subtrees with the smallest and largest weight ratio are then printed.`,
		Example: "btree run --leaves 20 --profile",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("leaves") {
				a.cfg.MaxLeaves = leaves
			}
			return a.run(cmd.OutOrStdout(), withProfile)
		},
	}
	cmd.Flags().IntVarP(&leaves, "leaves", "n", 0, "nodes to generate when the tree file is missing (BTREE_MAX_LEAVES)")
	cmd.Flags().BoolVar(&withProfile, "profile", false, "print time and memory spent per phase")
	return cmd
}

func (a *app) run(out io.Writer, showProfile bool) error {
	prof := profile.New()

	exists, err := a.store.Exists(a.cfg.File)
	if err != nil {
		return err
	}

	var (
		tree      *core.Node[int]
		generated bool
	)
	if exists {
		err = prof.Track(phaseDeserialize, func() (err error) {
			tree, err = a.loadTree()
			return err
		})
	} else {
		n := a.cfg.MaxLeaves
		if n == 0 {
			if n, err = promptLeaves(); err != nil {
				return errors.WithMessage(err, "leaves")
			}
		}
		err = prof.Track(phaseGenerate, func() (err error) {
			tree, err = builder.BuildTree(a.builderOptions(), builder.LevelOrder(n))
			return err
		})
		generated = true
	}
	if err != nil {
		return err
	}

	ext := weight.NewExtremes[int]()
	_ = prof.Track(phaseSearch, func() error {
		weight.MinMaxSumChildrenRatio(tree, ext)
		return nil
	})
	logger.Info("ratios found", "min", ext.MinVal, "max", ext.MaxVal)

	if generated {
		if err = prof.Track(phaseSerialize, func() error {
			return store.Save(a.store, a.cfg.File, tree)
		}); err != nil {
			return err
		}
		size, err := a.store.Size(a.cfg.File)
		if err != nil {
			return err
		}
		logger.Info("tree saved", "file", a.cfg.File, "nodes", tree.Count(), "bytes", size)
	}

	if showProfile {
		if err = printProfile(out, prof); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%d bytes used by tree\n\n", tree.ByteSize())
	fmt.Fprintln(out, heading("Tree:"))
	if err = a.printTree(out, tree); err != nil {
		return err
	}

	for _, sub := range []struct {
		title string
		ratio float64
		node  *core.Node[int]
	}{
		{"Minimum ratio subtree:", ext.MinVal, ext.MinNode},
		{"Maximum ratio subtree:", ext.MaxVal, ext.MaxNode},
	} {
		fmt.Fprintln(out)
		fmt.Fprintln(out, heading(sub.title))
		fmt.Fprintf(out, "%s ratio; Tree:\n", formatRatio(sub.ratio))
		if err = a.printTree(out, sub.node); err != nil {
			return err
		}
	}
	return nil
}

// printProfile renders one row per measured phase.
func printProfile(out io.Writer, prof *profile.Profiler) error {
	phases, err := prof.Phases()
	if err != nil {
		return errors.WithMessage(err, "profile")
	}
	data := pterm.TableData{{"Phase", "Time (µs)", "Allocated (bytes)"}}
	for _, ph := range phases {
		data = append(data, []string{
			ph.Name,
			fmt.Sprint(ph.Duration.Microseconds()),
			fmt.Sprint(ph.Bytes),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader(true).WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, table)
	fmt.Fprintln(out)
	return nil
}
