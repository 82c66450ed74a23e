package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/site-assist/internal/knowledge"
	"github.com/ziadkadry99/site-assist/internal/progress"
)

var (
	knowledgeLanguage string
	knowledgeCategory string
)

var knowledgeCmd = &cobra.Command{
	Use:   "knowledge",
	Short: "Inspect and validate knowledge catalogs",
}

var knowledgeValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate catalog files and report indexing problems",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			items []knowledge.Item
			err   error
		)
		if len(args) > 0 {
			items, err = knowledge.LoadCatalogDir(args[0])
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
		} else {
			items = knowledge.BuiltinCatalog()
		}

		reporter := progress.NewReporter()
		reporter.Start("Validating catalog", len(items))

		index := knowledge.NewIndex()
		var problems []string
		for _, item := range items {
			reporter.Step(item.ID)
			if err := index.Add(item); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", item.ID, err))
			}
		}
		reporter.Finish()

		if len(problems) > 0 {
			for _, p := range problems {
				fmt.Println(p)
			}
			return fmt.Errorf("%d of %d items failed validation", len(problems), len(items))
		}

		fmt.Printf("%d items indexed across %d categories\n", index.Len(), countCategories(items))
		return nil
	},
}

var knowledgeSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the knowledge catalog from the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		language := knowledgeLanguage
		if language == "" {
			language = cfg.DefaultLanguage
		}

		index, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		results := index.Search(args[0], language, knowledgeCategory)
		if len(results) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s  (%s, relevance %d)\n    %s\n", r.Item.ID, r.Item.Category, r.RelevanceScore, r.Snippet)
		}
		return nil
	},
}

func countCategories(items []knowledge.Item) int {
	seen := make(map[string]struct{})
	for _, item := range items {
		seen[item.Category] = struct{}{}
	}
	return len(seen)
}

func init() {
	knowledgeSearchCmd.Flags().StringVar(&knowledgeLanguage, "language", "", "Search language (en or ar)")
	knowledgeSearchCmd.Flags().StringVar(&knowledgeCategory, "category", "", "Restrict results to a category")
	knowledgeCmd.AddCommand(knowledgeValidateCmd)
	knowledgeCmd.AddCommand(knowledgeSearchCmd)
	rootCmd.AddCommand(knowledgeCmd)
}
