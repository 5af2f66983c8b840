// Command dialogkit loads dialog definition documents and presents them
// through the registered renderers, either as static HTML or as an
// interactive terminal session.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dialogkit",
	Short: "Render and present descriptor-driven dialogs",
	Long: `dialogkit builds dialogs from JSON or YAML definition documents and
presents them through a renderer: "render" emits a static HTML form,
"present" walks the controls interactively in the terminal and prints
the values the user entered.`,
	SilenceUsage: true,
}

func main() {
	// Local .env files hold per-project defaults such as DIALOGKIT_STATE.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
