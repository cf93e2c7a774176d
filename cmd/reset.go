package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete scheduling state and attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		user, _ := cmd.Flags().GetString("user")

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		target := user
		if all {
			target = ""
		}
		res, err := svc.Reset(cmd.Context(), target)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d records and %d attempts.\n", res.Records, res.Attempts)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Reset every user, not just --user")
}
