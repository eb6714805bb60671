package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/oukeidos/gemtrans/internal/auth"
	"github.com/oukeidos/gemtrans/internal/gemini"
	"github.com/oukeidos/gemtrans/internal/httpclient"
	"github.com/oukeidos/gemtrans/internal/logger"
	"github.com/oukeidos/gemtrans/internal/metadata"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

var (
	isTerminal   = term.IsTerminal
	getKey       = auth.GetKey
	getEnvKey    = auth.GetEnvKey
	getStatus    = auth.GetStatus
	saveKey      = auth.SaveKey
	deleteKey    = auth.DeleteKey
	promptForKey = auth.PromptForAPIKey
	newTransport = func() gemini.Transport { return httpclient.NewTransport() }
)

// resolveAPIKey finds the API key. An empty key with a nil error means nothing
// was found; the translator then reports the missing credential itself.
func resolveAPIKey(configKey string, allowEnv, envOnly bool) (string, string, error) {
	if envOnly {
		if key, ok := getEnvKey(); ok {
			return key, auth.SourceEnv, nil
		}
		return "", "", fmt.Errorf("env-only set but %s is not set", auth.EnvVar)
	}

	if key := strings.TrimSpace(configKey); key != "" {
		return key, auth.SourceConfig, nil
	}

	if key, source := getKey(false); key != "" {
		return key, source, nil
	}

	if allowEnv {
		if key, ok := getEnvKey(); ok {
			return key, auth.SourceEnv, nil
		}
	}

	if isTerminal(int(os.Stdin.Fd())) {
		key, err := promptForKey("Gemini API Key (press Enter to skip): ")
		if err != nil {
			return "", "", fmt.Errorf("error reading API key: %w", err)
		}
		if key = strings.TrimSpace(key); key != "" {
			return key, auth.SourcePrompt, nil
		}
	}

	return "", "", nil
}

// readInput joins positional args, or reads stdin when there are none or the only arg is "-".
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func printUsageStats(w io.Writer, res *gemini.Result, input string, duration time.Duration) {
	fmt.Fprintln(w, "\n--- Execution Stats ---")
	fmt.Fprintf(w, "Time: %s\n", duration.Round(time.Millisecond))
	fmt.Fprintf(w, "Model: %s\n", res.Model)
	fmt.Fprintf(w, "Graphemes: In=%d, Out=%d\n", uniseg.GraphemeClusterCount(input), uniseg.GraphemeClusterCount(res.Text))

	usage := res.Usage
	if usage.TotalTokenCount > 0 {
		fmt.Fprintf(w, "Tokens: In=%d, Out=%d, Thinking=%d, Total=%d\n",
			usage.PromptTokenCount, usage.CandidatesTokenCount, usage.ThoughtsTokenCount, usage.TotalTokenCount)
		cost := metadata.EstimateCost(res.Model, usage.PromptTokenCount, usage.CandidatesTokenCount, usage.ThoughtsTokenCount)
		fmt.Fprintf(w, "Estimated Cost: $%.6f\n", cost)
	}
}

func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Warn("Cancellation requested")
			cancel()
		case <-ctx.Done():
		}
	}()
	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
