// Command savant is a terminal client for the Savant Seeker server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"savant-seeker/backend/internal/client"
	"savant-seeker/backend/internal/config"
)

var (
	serverURL string
	api       *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "savant",
	Short: "Chat with Savant Seeker from the terminal",
	Long: `savant talks to a running Savant Seeker server.

The server address comes from --server, then SERVER_URL, then http://localhost:8000.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if serverURL == "" {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			serverURL = cfg.ServerURL
		}
		api = client.New(serverURL, nil)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Savant Seeker server URL")
	rootCmd.AddCommand(loginCmd, logoutCmd, chatsCmd, newChatCmd, useChatCmd, sendCmd, regenerateCmd, stopCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
