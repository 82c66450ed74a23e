package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/site-assist/internal/pipeline"
)

var chatLanguage string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant from the terminal",
	Long:  `Runs an interactive terminal session against the full assistant pipeline. Type "exit" or press Ctrl+C to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if chatLanguage != "" {
			cfg.DefaultLanguage = chatLanguage
		}

		deps, err := buildAssistant(cfg, false)
		if err != nil {
			return err
		}

		sessionID := uuid.New().String()
		fmt.Printf("siteassist chat (%s, session %s)\n", cfg.DefaultLanguage, sessionID[:8])
		fmt.Println(`Type "exit" to quit.`)
		fmt.Println()

		for {
			prompt := promptui.Prompt{Label: "you"}
			input, err := prompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					return nil
				}
				return fmt.Errorf("reading input: %w", err)
			}
			if input == "exit" || input == "quit" {
				return nil
			}

			resp := deps.pipe.Process(context.Background(), pipeline.ChatRequest{
				Message:   input,
				Language:  cfg.DefaultLanguage,
				SessionID: sessionID,
			})

			fmt.Printf("\nassistant: %s\n", resp.Message)
			if verbose {
				fmt.Printf("  intent=%s confidence=%.2f", resp.Intent, resp.Confidence)
				if resp.SpellingCorrection != nil {
					fmt.Printf(" corrected=%q", resp.SpellingCorrection.Corrected)
				}
				fmt.Println()
			}
			if len(resp.Suggestions) > 0 {
				fmt.Println("  try:")
				for _, s := range resp.Suggestions {
					fmt.Printf("    - %s\n", s)
				}
			}
			fmt.Println()
		}
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatLanguage, "language", "", "Conversation language (en or ar)")
	rootCmd.AddCommand(chatCmd)
}
