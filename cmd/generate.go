package main

import (
	"encoding/json"
	"github.com/deanjroach84/DreamTales/application/ports/inbound"
	"github.com/spf13/cobra"
)

func newGenerateCommand() *cobra.Command {
	var input inbound.StoryRequestInput

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one story and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			story, err := a.pipeline.GenerateStory(cmd.Context(), input)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(story)
		},
	}

	cmd.Flags().StringVar(&input.ChildName, "child", "", "child's name")
	cmd.Flags().StringVar(&input.Animal, "animal", "", "favorite animal (lion, elephant, rabbit, bear, owl, fox, giraffe, penguin)")
	cmd.Flags().StringVar(&input.Theme, "theme", "", "lesson theme (friendship, courage, sharing, honesty, perseverance, empathy, curiosity)")

	return cmd
}
