package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kaydubbed/PanRuleOrder/internal/version"
	"github.com/kaydubbed/PanRuleOrder/pkg/commands/listgroups"
	"github.com/kaydubbed/PanRuleOrder/pkg/commands/reorder"
	"github.com/kaydubbed/PanRuleOrder/pkg/config"
	"github.com/kaydubbed/PanRuleOrder/pkg/errors"
	"github.com/kaydubbed/PanRuleOrder/pkg/logging"
	"github.com/kaydubbed/PanRuleOrder/pkg/panorama"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity   int
		targetGroup string
		useShared   bool
		listTargets bool
		indent      int
	)

	rootCmd := &cobra.Command{
		Use:     "panruleorder <input-xml> <order-csv> <output-xml>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.RangeArgs(1, 3),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf(MsgErrLoadCfg, err)
			}

			// Listing exits before the order list or output path matter.
			if listTargets {
				return runListTargets(cmd, args[0])
			}

			if len(args) != 3 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrArgCount, len(args))
			}

			target, err := resolveTarget(useShared, targetGroup, cfg)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("indent") {
				indent = cfg.Output.Indent
			}

			return runReorder(cmd, reorder.Options{
				InputPath:  args[0],
				OrderPath:  args[1],
				OutputPath: args[2],
				Target:     target,
				Indent:     indent,
			})
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVar(&targetGroup, "target", "", MsgFlagTarget)
	rootCmd.Flags().BoolVar(&useShared, "use-shared", false, MsgFlagUseShared)
	rootCmd.Flags().BoolVar(&listTargets, "list-targets", false, MsgFlagListTargets)
	rootCmd.Flags().IntVar(&indent, "indent", 0, MsgFlagIndent)
	rootCmd.MarkFlagsMutuallyExclusive("target", "use-shared")

	return rootCmd
}

// resolveTarget builds the single tagged selector from the flag state, the
// configured default filling in when no flag was given.
func resolveTarget(useShared bool, targetGroup string, cfg *config.Config) (panorama.Target, error) {
	switch {
	case useShared:
		return panorama.SharedTarget(), nil
	case targetGroup != "":
		return panorama.GroupTarget(targetGroup), nil
	case cfg.Target.Default != "":
		return panorama.GroupTarget(cfg.Target.Default), nil
	}
	return panorama.Target{}, errors.New(errors.ErrInvalidInput, MsgErrNoTarget)
}

func runListTargets(cmd *cobra.Command, inputPath string) error {
	result, err := listgroups.ListGroups(listgroups.Options{InputPath: inputPath})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, MsgAvailableGroups)
	if len(result.Groups) == 0 {
		fmt.Fprintln(out, MsgNoGroups)
		return nil
	}
	for _, group := range result.Groups {
		fmt.Fprintf(out, MsgGroupItem, group)
	}
	return nil
}

func runReorder(cmd *cobra.Command, opts reorder.Options) error {
	result, err := reorder.Reorder(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	fmt.Fprintf(out, MsgUsingRulebase, result.Rulebase, opts.Target)

	if len(result.Missing) > 0 {
		fmt.Fprintln(errOut, render(warningStyle, MsgMissingHeader))
		for _, name := range result.Missing {
			fmt.Fprintf(errOut, MsgNoticeItem, name)
		}
	}
	if len(result.Unlisted) > 0 {
		fmt.Fprintln(errOut, MsgUnlistedHeader)
		for _, name := range result.Unlisted {
			fmt.Fprintf(errOut, MsgNoticeItem, name)
		}
	}

	fmt.Fprintf(out, MsgSummaryFormat, result.Ordered, result.Total)
	fmt.Fprintln(out, render(successStyle, fmt.Sprintf(MsgWrittenFormat, opts.OutputPath)))
	return nil
}
