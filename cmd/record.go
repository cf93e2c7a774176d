package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nshant/revise/internal/progress"
	"github.com/nshant/revise/internal/srs"
)

var recordCmd = &cobra.Command{
	Use:   "record <question-id>",
	Short: "Record a graded answer",
	Long: `Record a graded answer for a question and reschedule it.

Confidence is one of: guess, unsure, sure, knew_it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		correct, _ := cmd.Flags().GetBool("correct")
		confStr, _ := cmd.Flags().GetString("confidence")
		attemptID, _ := cmd.Flags().GetString("attempt-id")
		user, _ := cmd.Flags().GetString("user")

		confidence, err := srs.ParseConfidence(confStr)
		if err != nil {
			return err
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		rec, err := svc.RecordAnswer(cmd.Context(), progress.AnswerEvent{
			AttemptID:  attemptID,
			QuestionID: args[0],
			UserID:     user,
			Correct:    correct,
			Confidence: confidence,
		})
		if err != nil {
			return err
		}

		verdict := "incorrect"
		if correct {
			verdict = "correct"
		}
		fmt.Printf("%s (%s): streak %d, next review %s\n",
			args[0], verdict, rec.Repetitions,
			rec.NextReview.Local().Format(time.RFC822))
		return nil
	},
}

func init() {
	recordCmd.Flags().Bool("correct", false, "The answer was correct")
	recordCmd.Flags().String("confidence", "unsure", "Self-reported confidence")
	recordCmd.Flags().String("attempt-id", "", "Idempotency key for this submission")
}
