package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"distro-collections/internal/app"
)

type dependantsOptions struct {
	Dir     string
	Targets []string
	Waves   bool
}

func newDependantsCommand() *cobra.Command {
	opts := dependantsOptions{}
	cmd := &cobra.Command{
		Use:   "dependants",
		Short: "List downstream dependants of libraries and their merge waves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDependants(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "Registry directory")
	cmd.Flags().StringSliceVar(&opts.Targets, "target", nil, "Target library names")
	cmd.Flags().BoolVar(&opts.Waves, "waves", false, "Print topologically ordered merge waves")
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("targets", cmd.Flags().Lookup("target"))
	_ = viper.BindPFlag("waves", cmd.Flags().Lookup("waves"))
	return cmd
}

func runDependants(ctx context.Context, cmd *cobra.Command, opts dependantsOptions) error {
	service := newAppService()
	result, err := service.Dependants(ctx, app.DependantsRequest{
		Dir:     resolveString(cmd, opts.Dir, "dir", "dir"),
		Targets: resolveStrings(cmd, opts.Targets, "targets", "target"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, target := range result.Report.Targets {
		if len(target.Dependants) == 0 {
			fmt.Fprintf(out, "%s: no dependants\n", target.Target)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", target.Target, strings.Join(target.Dependants, " "))
	}

	if resolveBool(cmd, opts.Waves, "waves", "waves") {
		fmt.Fprintln(out, "merge waves (merge highest first):")
		for _, wave := range result.Report.Waves {
			fmt.Fprintf(out, "%d: %s\n", wave.Level, strings.Join(wave.Libraries, " "))
		}
	}
	return nil
}
