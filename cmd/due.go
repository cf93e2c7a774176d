package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List questions due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		items, err := svc.DueQueue(cmd.Context(), user, time.Now().UTC(), limit)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}

		for _, item := range items {
			overdue := time.Since(item.Record.NextReview).Round(time.Minute)
			fmt.Printf("%-12s  %-40s  overdue %s\n",
				item.Question.ID, item.Question.Prompt, overdue)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().Int("limit", 20, "Maximum questions to list (0 = all)")
}
