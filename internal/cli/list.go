package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"distro-collections/internal/app"
)

type listOptions struct {
	CollectionFiles []string
	Quiet           bool
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the packages pinned by collection files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.CollectionFiles, "collection-file", nil, "Collection yaml paths")
	cmd.Flags().BoolVar(&opts.Quiet, "quiet", false, "Print only package and version pairs")
	_ = viper.BindPFlag("collection_files", cmd.Flags().Lookup("collection-file"))
	_ = viper.BindPFlag("quiet", cmd.Flags().Lookup("quiet"))
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		CollectionFiles: resolveStrings(cmd, opts.CollectionFiles, "collection_files", "collection-file"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	quiet := resolveBool(cmd, opts.Quiet, "quiet", "quiet")
	for _, collection := range result.Collections {
		if quiet {
			for _, entry := range collection.Entries {
				fmt.Fprintf(out, "%s %s\n", entry.Package, entry.Version)
			}
			continue
		}
		fmt.Fprintf(out, "%s (%d packages)\n", collection.Name, len(collection.Entries))
		for _, entry := range collection.Entries {
			fmt.Fprintf(out, "- %s %s (%s)\n", entry.Package, entry.Version, entry.Type)
		}
	}
	return nil
}
