package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nshant/revise/internal/store"
)

// importFile is the JSON shape accepted by the import command.
type importFile struct {
	Categories []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
	Questions []struct {
		ID       string `json:"id"`
		Category string `json:"category"`
		Prompt   string `json:"prompt"`
		Answer   string `json:"answer"`
	} `json:"questions"`
}

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import categories and questions from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		var file importFile
		if err := json.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		categories := make([]store.Category, 0, len(file.Categories))
		for _, c := range file.Categories {
			categories = append(categories, store.Category{ID: c.ID, Name: c.Name})
		}
		questions := make([]store.Question, 0, len(file.Questions))
		for _, q := range file.Questions {
			questions = append(questions, store.Question{
				ID:         q.ID,
				CategoryID: q.Category,
				Prompt:     q.Prompt,
				Answer:     q.Answer,
				Active:     true,
			})
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		res, err := svc.Import(cmd.Context(), categories, questions)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d categories and %d questions.\n", res.Categories, res.Questions)
		return nil
	},
}
