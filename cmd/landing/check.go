package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"finitefield.org/landing-web/internal/sitecheck"
)

var errCheckFailed = errors.New("site check found errors")

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and every site document",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			issues := sitecheck.Sites(rt.store.Sites(), rt.catalog)
			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintln(out, issue.String())
			}
			if sitecheck.HasErrors(issues) || (strict && len(issues) > 0) {
				return errCheckFailed
			}
			fmt.Fprintf(out, "%d sites ok\n", len(rt.store.Sites()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	return cmd
}
