package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/enaizabil/Proyecto-Deportivo/internal/ai"
	"github.com/enaizabil/Proyecto-Deportivo/internal/capability"
	"github.com/enaizabil/Proyecto-Deportivo/internal/cli"
	"github.com/enaizabil/Proyecto-Deportivo/internal/export"
	"github.com/enaizabil/Proyecto-Deportivo/internal/models"
	"github.com/enaizabil/Proyecto-Deportivo/internal/pipeline"
	"github.com/enaizabil/Proyecto-Deportivo/internal/sportsdb"
	"github.com/enaizabil/Proyecto-Deportivo/internal/summary"
	"github.com/enaizabil/Proyecto-Deportivo/internal/translation"
)

func main() {
	// Pick up API keys from a local .env when present
	_ = godotenv.Load()

	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// The flags are bound to viper, so config file and environment values
	// apply whenever a flag was not set on the command line.
	flags.OutputPath = viper.GetString("output.path")
	flags.BaseURL = viper.GetString("api.base_url")
	flags.Delay = viper.GetDuration("pipeline.delay")
	flags.WordLimit = viper.GetInt("pipeline.word_limit")
	flags.NoDirectTranslation = viper.GetBool("translation.disable_direct")
	flags.OpenAIModel = viper.GetString("ai.openai_model")

	openAIKey := cli.GetOpenAIKey()
	geminiKey := cli.GetGeminiKey()

	if flags.ListModels {
		lister := models.NewLister(openAIKey)
		return lister.ListAvailableModels()
	}

	ctx := cmd.Context()

	aiClient, provider, err := ai.NewFromKeys(ctx, openAIKey, geminiKey, flags.OpenAIModel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: AI backend could not be initialized: %v\n", err)
		aiClient = nil
		provider = "none"
	}

	caps := capability.Detect(openAIKey, geminiKey, flags.NoDirectTranslation)
	if aiClient == nil {
		caps.AI = false
	}
	fmt.Printf("AI available: %t (backend: %s)\n", caps.AI, provider)

	teams := pipeline.DefaultTeams
	if len(args) > 0 {
		teams = args
	}

	fetcher := sportsdb.NewClient(flags.BaseURL)
	translator := translation.NewTranslator(caps, aiClient)
	summarizer := summary.NewSummarizer(caps, aiClient, flags.WordLimit)
	processor := pipeline.NewProcessor(fetcher, translator, summarizer, flags.Delay)

	records := processor.Process(ctx, teams)

	// Export failure is logged, the run still ends normally.
	if err := export.SaveCSV(records, flags.OutputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving CSV: %v\n", err)
	}

	return nil
}
