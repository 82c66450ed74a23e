package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "siteassist",
	Short: "Embeddable website assistant with bilingual NLU and knowledge search",
	Long: `Site Assist runs the conversational assistant that powers website chat
widgets: spelling correction, intent classification, knowledge retrieval,
and personalized responses around a generative model backend, in English
and Arabic.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".siteassist.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
