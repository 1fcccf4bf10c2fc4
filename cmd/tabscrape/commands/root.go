// Package commands implements the CLI commands for tabscrape.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabscrape/tabscrape/internal/logger"
	"github.com/tabscrape/tabscrape/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tabscrape",
	Short: "LLM-assisted extraction of tabular data from web pages",
	Long: `Tabscrape fetches a web page, strips it to readable text, asks an LLM
to extract the information you describe, and reconstructs the answer as a
table exportable to CSV, JSON, YAML, or PDF.

Examples:
  # Extract course listings with Gemini
  tabscrape scrape -u "https://example.com/courses" \
      -i "course name, rating, duration" -p gemini

  # Fetch through ScrapingBee with JS rendering, export a PDF
  tabscrape scrape -u "https://example.com/listings" \
      -i "address and price" -p openai \
      --fetch-provider scrapingbee --render-js \
      --format pdf -o listings.pdf`,
	Version: version.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.tabscrape.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.SetVersionTemplate(version.Full() + "\n")
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".tabscrape")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("TABSCRAPE")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
