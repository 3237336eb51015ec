package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"distro-collections/internal/app"
)

type validateOptions struct {
	CollectionFiles []string
	Dir             string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate collection files against the registry rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.CollectionFiles, "collection-file", nil, "Collection yaml paths")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Directory of collection yaml files")
	_ = viper.BindPFlag("collection_files", cmd.Flags().Lookup("collection-file"))
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		CollectionFiles: resolveStrings(cmd, opts.CollectionFiles, "collection_files", "collection-file"),
		Dir:             resolveString(cmd, opts.Dir, "dir", "dir"),
	})
	for _, file := range result.Problems {
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", file.Path)
		for _, problem := range file.Problems {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", problem)
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "validated: %d collections\n", result.Checked)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
