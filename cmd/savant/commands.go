package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"savant-seeker/backend/internal/client"
	"savant-seeker/backend/internal/model"
)

var (
	loginPassword string
	sendChatID    string
	sendMood      string
	exportDir     string
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in to the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := api.Login(cmd.Context(), args[0], loginPassword)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and wipe all saved data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

var chatsCmd = &cobra.Command{
	Use:   "chats",
	Short: "List chats",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := api.ListChats(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(list.Chats) == 0 {
			fmt.Fprintln(out, "No chats yet.")
			return nil
		}
		for _, c := range list.Chats {
			marker := " "
			if c.ID == list.ActiveChatID {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s  %s (%d messages)\n", marker, c.ID, c.Title, c.MessageCount)
		}
		return nil
	},
}

var newChatCmd = &cobra.Command{
	Use:   "new [prompt]",
	Short: "Start a new chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		chat, err := api.NewChat(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", chat.ID, chat.Title)
		return nil
	},
}

var useChatCmd = &cobra.Command{
	Use:   "use <chat-id>",
	Short: "Make a chat active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chat, err := api.SelectChat(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Now chatting in %s\n", chat.Title)
		return nil
	},
}

var sendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Send a message and stream the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg := client.Message{ChatID: sendChatID, Content: strings.Join(args, " "), Mood: sendMood}
		final, err := api.SendMessage(cmd.Context(), msg, progress(cmd))
		if err != nil {
			return err
		}
		return render(cmd, final)
	},
}

var regenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Regenerate the last reply of the active chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		final, err := api.Regenerate(cmd.Context(), progress(cmd))
		if err != nil {
			return err
		}
		return render(cmd, final)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		stopped, err := api.Stop(cmd.Context())
		if err != nil {
			return err
		}
		if stopped {
			fmt.Fprintln(cmd.OutOrStdout(), "Stopped.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing was generating.")
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the lifemap as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, data, err := api.ExportLifemap(cmd.Context())
		if err != nil {
			return err
		}
		path := filepath.Join(exportDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (any non-empty value)")
	_ = loginCmd.MarkFlagRequired("password")
	sendCmd.Flags().StringVar(&sendChatID, "chat", "", "chat id; defaults to the active chat")
	sendCmd.Flags().StringVar(&sendMood, "mood", "", "mood for this reply: happy, sad, bored or angry")
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "directory to write the export into")
}

// progress prints a dot for every streamed update of the assistant reply.
func progress(cmd *cobra.Command) func(model.StreamEvent) {
	errOut := cmd.ErrOrStderr()
	return func(ev model.StreamEvent) {
		if ev.Message != nil && ev.Message.Role == model.RoleAssistant && !ev.Done {
			fmt.Fprint(errOut, ".")
		}
	}
}

func render(cmd *cobra.Command, final model.StreamEvent) error {
	fmt.Fprintln(cmd.ErrOrStderr())
	if final.Message == nil {
		return nil
	}
	out := cmd.OutOrStdout()
	content := final.Message.Content
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err == nil {
		if rendered, rerr := renderer.Render(content); rerr == nil {
			content = rendered
		}
	}
	fmt.Fprint(out, content)
	for _, c := range final.Message.Citations {
		fmt.Fprintf(out, "  [source] %s %s\n", c.Title, c.URI)
	}
	if n := len(final.Message.GeneratedImages); n > 0 {
		fmt.Fprintf(out, "  (%d generated images)\n", n)
	}
	if final.Error != "" {
		return fmt.Errorf("generation failed: %s", final.Error)
	}
	return nil
}
