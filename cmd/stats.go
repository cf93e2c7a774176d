package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [category-id]",
	Short: "Show learning statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		now := time.Now().UTC()

		if len(args) == 1 {
			a, err := svc.CategoryAnalytics(cmd.Context(), user, args[0], now)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d questions, %.1f%% accuracy, %d mastered, %d struggling\n",
				a.CategoryID, a.TotalQuestions, a.AverageAccuracy,
				a.MasteredQuestions, a.StrugglingQuestions)
			return nil
		}

		perCategory, overall, err := svc.Overview(cmd.Context(), user, now)
		if err != nil {
			return err
		}
		for _, a := range perCategory {
			fmt.Printf("%-16s %4d questions  %6.1f%%  %d mastered  %d struggling\n",
				a.CategoryID, a.TotalQuestions, a.AverageAccuracy,
				a.MasteredQuestions, a.StrugglingQuestions)
		}
		fmt.Printf("\nOverall: %d questions, %.1f%% accuracy, %d%% mastered\n",
			overall.TotalQuestions, overall.OverallAccuracy, overall.MasteryPercentage)
		return nil
	},
}
