// Command souschef turns a spoken-style cooking narration into a structured
// recipe, printed as a title banner with numbered ingredients and steps.
//
// The narration is taken from the command-line arguments, from stdin, or —
// with -url — from a web page converted to Markdown. The runner credential
// comes from the SOUSCHEF_API_KEY environment variable (a .env file is
// loaded automatically when present).
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"souschef/core/generate"
	"souschef/core/jobs"
	"souschef/internal/config"
	"souschef/providers/runner/httprunner"
	"souschef/providers/source"
	"souschef/providers/source/webpage"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	pageURL := flag.String("url", "", "fetch the narration from a web page instead of text input")
	interactive := flag.Bool("i", false, "interactive mode: keep recording narrations until told to stop")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err.Error())
		os.Exit(1)
	}

	provider := httprunner.New().WithAPIKey(cfg.APIKey)
	if cfg.RunnerURL != "" {
		provider = provider.WithBaseURL(cfg.RunnerURL)
	}

	driver := jobs.NewDriver(provider,
		jobs.WithPollInterval(cfg.PollInterval()),
		jobs.WithMaxAttempts(cfg.MaxAttempts),
		jobs.WithPollObserver(func(attempt int, status jobs.Status) {
			fmt.Fprintf(os.Stderr, "\rwaiting for the kitchen... poll %d (%s)", attempt, status)
			if status.Terminal() {
				fmt.Fprintln(os.Stderr)
			}
		}),
	)

	generator := generate.New(driver,
		generate.WithModel(cfg.Model),
		generate.WithGenerationConfig(cfg.GenerationConfig()),
	)

	ctx := context.Background()

	if *interactive {
		runInteractive(ctx, generator)
		return
	}

	src, err := resolveSource(*pageURL, flag.Args(), os.Stdin)
	if err != nil {
		slog.Error("no narration to work with", "error", err.Error())
		os.Exit(1)
	}

	record, err := generator.FromSource(ctx, src)
	if err != nil {
		slog.Warn("generation degraded to fallback", "error", err.Error())
	}
	fmt.Print(render(record))
}

// resolveSource picks the narration source: an explicit URL wins, then
// command-line arguments, then stdin.
func resolveSource(pageURL string, args []string, stdin io.Reader) (source.Source, error) {
	if pageURL != "" {
		return webpage.Page{URL: pageURL}, nil
	}
	if len(args) > 0 {
		return source.Text(strings.Join(args, " ")), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read narration from stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("empty narration")
	}
	return source.Text(text), nil
}

// runInteractive loops: read one narration per line, generate, print, ask
// whether to record another.
func runInteractive(ctx context.Context, generator *generate.Generator) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Narration: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}

		record, err := generator.FromText(ctx, text)
		if err != nil {
			slog.Warn("generation degraded to fallback", "error", err.Error())
		}
		fmt.Print(render(record))

		fmt.Print("Record another? [y/N] ")
		answer, err := reader.ReadString('\n')
		if err != nil || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			return
		}
	}
}
