package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var weakspotsCmd = &cobra.Command{
	Use:   "weakspots",
	Short: "List the questions you struggle with most",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		spots, err := svc.WeakSpots(cmd.Context(), user, limit)
		if err != nil {
			return err
		}
		if len(spots) == 0 {
			fmt.Println("No weak spots. Keep it up.")
			return nil
		}

		for _, s := range spots {
			fmt.Printf("%5.1f%%  %-16s  %s\n", s.Accuracy, s.CategoryName, s.Prompt)
		}
		return nil
	},
}

func init() {
	weakspotsCmd.Flags().Int("limit", 10, "Maximum weak spots to list")
}
