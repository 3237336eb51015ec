package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"distro-collections/internal/app"
)

type resolveOptions struct {
	CollectionFiles []string
	Packages        []string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve package versions from collection files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.CollectionFiles, "collection-file", nil, "Collection yaml paths")
	cmd.Flags().StringSliceVar(&opts.Packages, "lib", nil, "Package names to resolve")

	_ = viper.BindPFlag("collection_files", cmd.Flags().Lookup("collection-file"))
	_ = viper.BindPFlag("libs", cmd.Flags().Lookup("lib"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		CollectionFiles: resolveStrings(cmd, opts.CollectionFiles, "collection_files", "collection-file"),
		Packages:        resolveStrings(cmd, opts.Packages, "libs", "lib"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(result.Versions, " "))
	return nil
}
