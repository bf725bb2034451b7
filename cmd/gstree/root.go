/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package main

import (
	"context"
	"flag"
	"strconv"
	"syscall"

	"github.com/jumboframes/gstree/config"
	"github.com/jumboframes/gstree/loader"
	"github.com/jumboframes/gstree/log"
	"github.com/jumboframes/gstree/sigaction"
	"github.com/jumboframes/gstree/suffixtree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var (
	errNoInput  = errors.New("no input word list, set --input or load.input")
	errNotFound = errors.New("not found")
)

type rootFlags struct {
	config string
	input  string
	tabbed bool
}

// app is what every subcommand runs against: the loaded tree and the loader
// that filled it.
type app struct {
	flags  rootFlags
	conf   *config.Config
	tree   suffixtree.Tree
	loader *loader.Loader
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "gstree",
		Short: "generalized suffix tree over a word list",
		Long: `gstree loads a word list into a generalized suffix tree and answers
substring and suffix queries against it. The identifier of a word is its zero
based line number, or the leading number of "<id>\t<word>" lines.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
	}

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)
	rootCmd.PersistentFlags().StringVarP(&a.flags.config, "config", "c", "", "TOML config file.")
	rootCmd.PersistentFlags().StringVarP(&a.flags.input, "input", "i", "", "Word list to load, - for stdin.")
	rootCmd.PersistentFlags().BoolVar(&a.flags.tabbed, "tabbed", false, "Read \"<id>\\t<word>\" lines.")

	rootCmd.AddCommand(
		newSearchCmd(a),
		newCountCmd(a),
		newMatchCmd(a),
		newDotCmd(a),
		newStatsCmd(a),
	)
	return rootCmd
}

func (a *app) prepare(cmd *cobra.Command) error {
	conf, err := config.Load(a.flags.config)
	if err != nil {
		return err
	}
	if a.flags.input != "" {
		conf.Load.Input = a.flags.input
	}
	if a.flags.tabbed {
		conf.Load.Format = "tabbed"
	}
	if conf.Load.Input == "" {
		return errNoInput
	}
	if !cmd.Flags().Changed("v") {
		verbosity := log.NewKLog().Verbosity(conf.Log.LogLevel())
		if err := cmd.Flags().Set("v", strconv.Itoa(verbosity)); err != nil {
			return errors.Wrap(err, "set klog verbosity")
		}
	}
	a.conf = conf

	a.tree = suffixtree.NewTree(
		suffixtree.OptionTreeCapacity(conf.Tree.Capacity),
		suffixtree.OptionTreeStaleWarning(conf.Tree.StaleWarning))

	options := []loader.LoaderOption{
		loader.OptionLoaderFormat(conf.Load.LoaderFormat()),
	}
	if conf.Load.SkipEmpty {
		options = append(options, loader.OptionLoaderSkipEmpty())
	}
	if conf.Load.ComputeCount {
		options = append(options, loader.OptionLoaderComputeCount())
	}
	if interval := conf.Load.ProgressInterval; interval > 0 {
		options = append(options, loader.OptionLoaderProgress(interval.Duration(),
			func(p loader.Progress) {
				log.Infof("loading, lines: %d, loaded: %d", p.Lines, p.Loaded)
			}))
	}
	a.loader = loader.NewLoader(a.tree, options...)
	defer a.loader.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sig := sigaction.NewSignal(sigaction.OptionSignalCancel(cancel))
	defer sig.Stop()
	sig.Add(syscall.SIGUSR1, a.loader)
	go sig.Wait(ctx)

	if conf.Load.Input == "-" {
		_, err = a.loader.Load(ctx, cmd.InOrStdin())
	} else {
		_, err = a.loader.LoadFile(ctx, conf.Load.Input)
	}
	return err
}

func notFound(ok bool, pattern string) error {
	if ok {
		return nil
	}
	return errors.Wrapf(errNotFound, "%q", pattern)
}
