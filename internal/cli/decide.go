package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/model"
	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/pipeline"
)

var (
	threadPath   string
	investorPath string
	sentPath     string
	signalsPath  string
	outDir       string
	threshold    float64
	workers      int
	timeout      time.Duration
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// decideCmd represents the decide command
var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Evaluate signals for one deal and draft outreach if warranted",
	Long: `Decide runs one complete re-engagement evaluation:
- Confirm the prior thread carried a "too early" deferral
- Score each business-activity signal against investor weights
- Aggregate the scores into one confidence value (diminishing returns)
- Gate the confidence against the investor's threshold
- When recommended, infer the investor's tone and draft the follow-up

Example:
  reengage decide --thread thread.json --investor investor.json \
    --sent sent.json --signals signals.json --outdir out
  reengage decide --thread thread.json --investor investor.json \
    --sent sent.json --signals signals.json --llm --llm-model gpt-4o-mini`,
	RunE: runDecide,
}

func init() {
	rootCmd.AddCommand(decideCmd)

	// Input flags
	decideCmd.Flags().StringVar(&threadPath, "thread", "", "prior email thread JSON (required)")
	decideCmd.Flags().StringVar(&investorPath, "investor", "", "investor profile JSON (required)")
	decideCmd.Flags().StringVar(&sentPath, "sent", "", "sent-email style corpus JSON (required)")
	decideCmd.Flags().StringVar(&signalsPath, "signals", "", "signal feed JSON (required)")
	_ = decideCmd.MarkFlagRequired("thread")
	_ = decideCmd.MarkFlagRequired("investor")
	_ = decideCmd.MarkFlagRequired("sent")
	_ = decideCmd.MarkFlagRequired("signals")

	// Output and tuning flags
	decideCmd.Flags().StringVar(&outDir, "outdir", "out", "output directory for artifacts")
	decideCmd.Flags().Float64Var(&threshold, "threshold", 0.75, "re-engagement threshold (overridden by investor profile)")
	decideCmd.Flags().IntVar(&workers, "workers", 4, "concurrent scoring workers")
	decideCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall run timeout")

	// LLM flags
	decideCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM draft polish (separate artifact)")
	decideCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	decideCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runDecide(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := buildConfig(cmd)

	inputs, err := pipeline.LoadInputs(threadPath, investorPath, sentPath, signalsPath)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Thread: %s (%d messages)\n", inputs.Thread.ThreadID, len(inputs.Thread.Messages))
		fmt.Fprintf(os.Stderr, "Investor: %s <%s>\n", inputs.Investor.Name, inputs.Investor.Email)
		fmt.Fprintf(os.Stderr, "Signals: %d events, style corpus: %d bodies\n", len(inputs.Events), len(inputs.SentBodies))
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	result, err := p.Run(ctx, inputs)
	if err != nil {
		return fmt.Errorf("decide failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Scored %d events\n", len(result.Decision.ScoredEvents))
		fmt.Fprintf(os.Stderr, "✓ Aggregate confidence: %.2f (threshold %.2f)\n", result.Decision.TotalScore, result.Decision.Threshold)
		fmt.Fprintf(os.Stderr, "✓ Recommended: %v\n", result.Decision.Recommended)
		if result.Draft != nil {
			fmt.Fprintf(os.Stderr, "✓ Drafted outreach to %s\n", result.Draft.ToEmail)
		}
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer(verbose)
	if err := renderer.RenderAll(result, outDir); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Printf("Wrote outputs to %s\n", outDir)
	return nil
}

// buildConfig layers defaults, config file / env values, then flags
func buildConfig(cmd *cobra.Command) *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("scoring.threshold") {
		cfg.Scoring.Threshold = viper.GetFloat64("scoring.threshold")
	}
	if viper.IsSet("concurrency.scoring_workers") {
		cfg.Concurrency.ScoringWorkers = viper.GetInt("concurrency.scoring_workers")
	}
	if viper.IsSet("llm.provider") {
		cfg.LLM.Provider = viper.GetString("llm.provider")
	}
	if viper.IsSet("llm.model") {
		cfg.LLM.Model = viper.GetString("llm.model")
	}

	if cmd.Flags().Changed("threshold") {
		cfg.Scoring.Threshold = threshold
	}
	if cmd.Flags().Changed("workers") {
		cfg.Concurrency.ScoringWorkers = workers
	}
	cfg.Output.OutDir = outDir
	cfg.Output.Verbose = verbose

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg
}
