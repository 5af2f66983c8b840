package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dialogkit/pkg/descriptor"
	"github.com/goliatone/go-dialogkit/pkg/orchestrator"
)

var (
	renderOut       string
	renderState     string
	renderStateFile string
	renderNoButtons bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Write output to a file instead of stdout")
	renderCmd.Flags().StringVar(&renderState, "state", "", "Serialised dialog state to restore before rendering")
	renderCmd.Flags().StringVar(&renderStateFile, "state-file", envDefault("DIALOGKIT_STATE", ""), "File holding serialised dialog state")
	renderCmd.Flags().BoolVar(&renderNoButtons, "no-buttons", false, "Omit the button row")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [document]",
	Short: "Render a dialog document as an HTML form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := descriptor.LoadDocument(args[0])
		if err != nil {
			return err
		}

		state := renderState
		if state == "" && renderStateFile != "" {
			raw, err := os.ReadFile(renderStateFile)
			if err != nil {
				return fmt.Errorf("read state file: %w", err)
			}
			state = string(raw)
		}

		out, _, err := orchestrator.New().Present(context.Background(), orchestrator.Request{
			Document:       &doc,
			IncludeButtons: !renderNoButtons,
			State:          state,
		})
		if err != nil {
			return err
		}

		if renderOut == "" {
			_, err = os.Stdout.Write(out)
			return err
		}
		return os.WriteFile(renderOut, out, 0o644)
	},
}
