package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/jumboframes/gstree/dot"
	"github.com/jumboframes/gstree/metrics"
	"github.com/jumboframes/gstree/suffixtree"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	limit := -1
	cmd := &cobra.Command{
		Use:   "search <pattern>",
		Short: "Print the identifiers of the words containing pattern",
		Example: `
$ gstree search --input words.txt ana
$ gstree search --input words.txt -l 10 a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, ok := a.tree.SearchLimit(args[0], limit)
			if err := notFound(ok, args[0]); err != nil {
				return err
			}
			printIDs(cmd.OutOrStdout(), ids)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", -1, "Print at most limit identifiers, negative for all.")
	return cmd
}

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count <pattern>",
		Short: "Print how many distinct words contain pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.conf.Load.ComputeCount {
				a.tree.ComputeCount()
			}
			count, ok := a.tree.Count(args[0])
			if err := notFound(ok, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}

func newMatchCmd(a *app) *cobra.Command {
	useExpr := false
	cmd := &cobra.Command{
		Use:   "match <regexp>",
		Short: "Print every distinct suffix fully matching the pattern",
		Example: `
$ gstree match --input words.txt 'an.*'
$ gstree match --input words.txt --expr 'len(suffix) > 3 && suffix endsWith "na"'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				matcher suffixtree.Matcher
				err     error
			)
			if useExpr {
				matcher, err = suffixtree.ExprMatcher(args[0])
			} else {
				matcher, err = suffixtree.RegexpMatcher(args[0])
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, suffix := range a.tree.SearchMatchingSuffix(matcher) {
				fmt.Fprintln(out, suffix)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useExpr, "expr", false, "Treat the pattern as an expr boolean expression over suffix.")
	return cmd
}

func newDotCmd(a *app) *cobra.Command {
	name := ""
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the tree as a graphviz digraph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = a.conf.Dot.Name
			}
			file, err := dot.WriteTree(a.tree.Root(), name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), file)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "output", "o", "", "Graph file name without the .gv suffix.")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print tree statistics in the prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			if err := reg.Register(metrics.NewCollector(a.tree,
				metrics.OptionCollectorLoader(a.loader))); err != nil {
				return errors.Wrap(err, "register collector")
			}
			families, err := reg.Gather()
			if err != nil {
				return errors.Wrap(err, "gather stats")
			}
			out := cmd.OutOrStdout()
			for _, family := range families {
				if _, err := expfmt.MetricFamilyToText(out, family); err != nil {
					return errors.Wrap(err, "write stats")
				}
			}
			return nil
		},
	}
}

func printIDs(w io.Writer, ids *roaring.Bitmap) {
	strs := make([]string, 0, ids.GetCardinality())
	it := ids.Iterator()
	for it.HasNext() {
		strs = append(strs, strconv.FormatUint(uint64(it.Next()), 10))
	}
	fmt.Fprintln(w, strings.Join(strs, " "))
}
