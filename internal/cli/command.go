package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/enaizabil/Proyecto-Deportivo/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deportivo [team...]",
		Short: "Sports team metadata pipeline",
		Long: `deportivo fetches sports-team metadata from TheSportsDB, translates the
English descriptions to Spanish, summarizes them and writes everything to a
CSV file.

Examples:
  deportivo                          # Process the built-in Premier League teams
  deportivo "Real Madrid" Barcelona  # Process specific teams
  deportivo --output out/teams.csv   # Write the CSV somewhere else`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.deportivo.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", flags.OutputPath, "Output CSV path")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "TheSportsDB base URL (default is the free tier endpoint)")
	cmd.Flags().DurationVar(&flags.Delay, "delay", flags.Delay, "Pause between processed teams")
	cmd.Flags().IntVar(&flags.WordLimit, "word-limit", flags.WordLimit, "Maximum words per summary")
	cmd.Flags().BoolVar(&flags.NoDirectTranslation, "no-direct-translation", false, "Skip the free Google translation backend")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", "", "OpenAI chat model for translation and summaries")

	bindFlagsToViper(cmd.Flags())
}

func bindFlagsToViper(flags *pflag.FlagSet) {
	viper.BindPFlag("output.path", flags.Lookup("output"))
	viper.BindPFlag("api.base_url", flags.Lookup("base-url"))
	viper.BindPFlag("pipeline.delay", flags.Lookup("delay"))
	viper.BindPFlag("pipeline.word_limit", flags.Lookup("word-limit"))
	viper.BindPFlag("translation.disable_direct", flags.Lookup("no-direct-translation"))
	viper.BindPFlag("ai.openai_model", flags.Lookup("openai-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".deportivo" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".deportivo")
	}

	// Environment variables
	viper.SetEnvPrefix("DEPORTIVO")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("ai.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("ai.gemini_key")
}
