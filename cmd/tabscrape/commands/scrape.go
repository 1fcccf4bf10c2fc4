package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tabscrape/tabscrape/internal/output"
	"github.com/tabscrape/tabscrape/pkg/fetcher"
	"github.com/tabscrape/tabscrape/pkg/llm"
	"github.com/tabscrape/tabscrape/pkg/tabscrape"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch a page and extract tabular data from it",
	Long: `Scrape one web page and extract the information you describe.

The instruction is plain language: name the fields you want and the LLM
does the rest. The merged answer is reconstructed into a table and written
in the chosen format.

API keys come from flags or from the conventional environment variables
(GEMINI_API_KEY, GROQ_API_KEY, OPENAI_API_KEY for extraction;
SCRAPERAPI_KEY, SCRAPINGBEE_KEY, SCRAPINGDOG_KEY, ZENROWS_KEY for fetching).

Examples:
  tabscrape scrape -u "https://example.com/courses" \
      -i "course name, rating, duration, lessons" -p gemini

  tabscrape scrape -u "https://example.com" -i "product and price" \
      -p groq --format json -o products.json`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	flags := scrapeCmd.Flags()

	flags.StringP("url", "u", "", "URL to scrape (required)")
	flags.StringP("instruction", "i", "", "what to extract, in plain language (required)")

	// Extraction settings
	flags.StringP("provider", "p", "gemini", "LLM provider: gemini, groq, openai")
	flags.StringP("api-key", "k", "", "LLM API key (or use env var)")
	flags.StringP("model", "m", "", "model name (provider-specific)")
	flags.Int("chunk-size", 0, "max characters per extraction chunk (default 6000)")

	// Fetch settings
	flags.String("fetch-provider", "direct", "fetch mode: direct, scraperapi, scrapingbee, scrapingdog, zenrows")
	flags.String("fetch-api-key", "", "scraping provider API key (or use env var)")
	flags.Bool("render-js", false, "ask the scraping provider to render JavaScript (where supported)")
	flags.Duration("timeout", 30*time.Second, "per-request timeout")

	// Output settings
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "csv", "output format: csv, json, yaml, pdf")
	flags.String("title", "Parsed Table", "document title for PDF output")
	flags.Bool("show-content", false, "print the normalized page text to stderr before extraction results")

	_ = scrapeCmd.MarkFlagRequired("url")
	_ = scrapeCmd.MarkFlagRequired("instruction")
}

func runScrape(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	url, _ := flags.GetString("url")
	instruction, _ := flags.GetString("instruction")
	providerName, _ := flags.GetString("provider")
	apiKey, _ := flags.GetString("api-key")
	model, _ := flags.GetString("model")
	chunkSize, _ := flags.GetInt("chunk-size")
	fetchProvider, _ := flags.GetString("fetch-provider")
	fetchAPIKey, _ := flags.GetString("fetch-api-key")
	renderJS, _ := flags.GetBool("render-js")
	timeout, _ := flags.GetDuration("timeout")
	outputPath, _ := flags.GetString("output")
	formatName, _ := flags.GetString("format")
	title, _ := flags.GetString("title")
	showContent, _ := flags.GetBool("show-content")

	format, err := output.ParseFormat(formatName)
	if err != nil {
		logError("%v", err)
		return err
	}

	if apiKey == "" {
		apiKey = llm.KeyFromEnv(providerName)
	}
	if fetchAPIKey == "" {
		fetchAPIKey = fetcher.KeyFromEnv(fetcher.Provider(fetchProvider))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := tabscrape.New()

	logInfo("Scraping %s ...", url)
	result, err := client.Run(ctx, tabscrape.Request{
		URL:           url,
		FetchProvider: fetcher.Provider(fetchProvider),
		FetchAPIKey:   fetchAPIKey,
		RenderJS:      renderJS,
		LLMProvider:   providerName,
		LLMAPIKey:     apiKey,
		LLMModel:      model,
		Instruction:   instruction,
		ChunkSize:     chunkSize,
		Timeout:       timeout,
	})
	if err != nil {
		logError("%v", err)
		return err
	}

	logInfo("Scraped %s of text in %s; extracted %d row(s) across %d chunk(s) in %s",
		humanize.Bytes(uint64(len(result.Content))),
		result.FetchDuration.Round(time.Millisecond),
		len(result.Table.Rows),
		result.ChunkCount,
		result.ExtractDuration.Round(time.Millisecond))

	if showContent {
		fmt.Fprintln(os.Stderr, result.Content)
	}

	dest := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			logError("failed to create output file: %v", err)
			return err
		}
		defer f.Close()
		dest = f
	}

	writer, err := output.NewWriter(dest, format, output.WithTitle(title))
	if err != nil {
		logError("%v", err)
		return err
	}
	if err := writer.Write(result.Table); err != nil {
		logError("failed to write output: %v", err)
		return err
	}

	if outputPath != "" {
		logInfo("Wrote %s", outputPath)
	}
	return nil
}
