package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrhq/tradewright/pkg/config"
	"github.com/entrhq/tradewright/pkg/driver"
)

func newPositionsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Download the portfolio positions file",
		Long: `Download the portfolio positions export and print its local path.

The file is downloaded to a browser-managed temporary location; copy it
somewhere durable if you want to keep it.

Examples:
  tradewright positions --account 123456789`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccount(flags); err != nil {
				return err
			}
			return withSession(flags, func(session *driver.Session, _ *config.Config) error {
				path, err := session.DownloadPositions(flags.account)
				if err != nil {
					return err
				}
				fmt.Println(path)
				return nil
			})
		},
	}
	return cmd
}
