package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"distro-collections/internal/app"
)

type retargetOptions struct {
	Dir    string
	Yes    bool
	DryRun bool
}

func newRetargetCommand() *cobra.Command {
	opts := retargetOptions{}
	cmd := &cobra.Command{
		Use:   "retarget LIBRARY FROM TO",
		Short: "Rewrite a pinned library version across a registry directory",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRetarget(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "Registry directory")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Apply without confirmation")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show the planned changes without writing")
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("yes", cmd.Flags().Lookup("yes"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	return cmd
}

func runRetarget(ctx context.Context, cmd *cobra.Command, opts retargetOptions, args []string) error {
	service := newAppService()
	plan, err := service.PlanRetarget(ctx, app.RetargetRequest{
		Dir:     resolveString(cmd, opts.Dir, "dir", "dir"),
		Library: args[0],
		From:    args[1],
		To:      args[2],
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(plan.Changes) == 0 {
		fmt.Fprintln(out, "nothing to retarget")
		return nil
	}

	fmt.Fprintln(out, "The following changes will be applied:")
	for _, change := range plan.Changes {
		fmt.Fprint(out, change.Diff)
	}

	if resolveBool(cmd, opts.DryRun, "dry_run", "dry-run") {
		return nil
	}
	if !resolveBool(cmd, opts.Yes, "yes", "yes") {
		proceed, err := confirm(cmd, "Proceed with retarget? [Y/n] ")
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Fprintln(out, "aborted")
			return nil
		}
	}

	result, err := service.ApplyRetarget(ctx, plan)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "retargeted %d files\n", result.Applied)
	return nil
}

// confirm reads one answer line; an empty answer counts as yes.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.TrimSpace(line)
	return answer == "" || strings.EqualFold(answer, "y"), nil
}
