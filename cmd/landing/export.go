package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"finitefield.org/landing-web/internal/export"
	"finitefield.org/landing-web/public"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		out         string
		year        int
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every site and locale to static HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			static, err := public.StaticFS()
			if err != nil {
				return err
			}
			if year == 0 {
				year = time.Now().Year()
			}
			res, err := export.Run(cmd.Context(), rt.store.Sites(), export.Options{
				Dir:         out,
				Catalog:     rt.catalog,
				Static:      static,
				Year:        year,
				Concurrency: concurrency,
				Logger:      rt.logger,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(res.Files), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "dist", "output directory")
	cmd.Flags().IntVar(&year, "year", 0, "copyright year (defaults to the current year)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "pages rendered in parallel (defaults to GOMAXPROCS)")
	return cmd
}
