package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dialogkit/pkg/descriptor"
	"github.com/goliatone/go-dialogkit/pkg/orchestrator"
	"github.com/goliatone/go-dialogkit/pkg/renderers/tui"
)

var (
	presentStateFile string
	presentNoButtons bool
)

func init() {
	presentCmd.Flags().StringVar(&presentStateFile, "state-file", envDefault("DIALOGKIT_STATE", ""), "File to restore dialog state from and save it back to")
	presentCmd.Flags().BoolVar(&presentNoButtons, "no-buttons", false, "Omit the button prompt")
	rootCmd.AddCommand(presentCmd)
}

var presentCmd = &cobra.Command{
	Use:   "present [document]",
	Short: "Present a dialog document interactively in the terminal",
	Long: `present walks the dialog's controls as terminal prompts and writes the
entered values to stdout as JSON. With --state-file the previous
answers pre-fill the prompts and the new answers are saved back when
the session finishes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := descriptor.LoadDocument(args[0])
		if err != nil {
			return err
		}

		var state string
		if presentStateFile != "" {
			if raw, err := os.ReadFile(presentStateFile); err == nil {
				state = string(raw)
			}
		}

		o := orchestrator.New(
			orchestrator.WithRenderer(tui.New()),
			orchestrator.WithDefaultRenderer("tui"),
		)

		out, dlg, err := o.Present(context.Background(), orchestrator.Request{
			Document:       &doc,
			IncludeButtons: !presentNoButtons,
			State:          state,
		})
		if err != nil {
			return err
		}

		fmt.Println(string(out))

		if presentStateFile != "" {
			if err := os.WriteFile(presentStateFile, []byte(dlg.Serialise()), 0o644); err != nil {
				return fmt.Errorf("save state file: %w", err)
			}
		}
		return nil
	},
}
