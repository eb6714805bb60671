package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oukeidos/gemtrans/internal/auth"
	"github.com/oukeidos/gemtrans/internal/cleanup"
	"github.com/oukeidos/gemtrans/internal/files"
	"github.com/oukeidos/gemtrans/internal/gemini"
	"github.com/oukeidos/gemtrans/internal/language"
	"github.com/oukeidos/gemtrans/internal/logger"
	"github.com/oukeidos/gemtrans/internal/options"
	"github.com/oukeidos/gemtrans/internal/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GEMTRANS"

type translateOptions struct {
	from        string
	to          string
	configPath  string
	envFile     string
	outputPath  string
	logFilePath string
	yes         bool
	allowEnv    bool
	envOnly     bool
	stats       bool
	verbose     bool
	debug       bool
}

func newTranslateCmd() *cobra.Command {
	opts := translateOptions{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text (args or stdin) with Gemini",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, &opts, v)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addTranslateFlags(cmd.Flags(), &opts)
	bindConfig(cmd.Flags(), v)
	return cmd
}

func addTranslateFlags(f *pflag.FlagSet, opts *translateOptions) {
	f.StringVarP(&opts.from, "from", "f", language.Auto, "Source language code or name")
	f.StringVarP(&opts.to, "to", "t", "en", "Target language code or name")
	f.StringVar(&opts.configPath, "config", "", "Path to a config file (yaml, toml or json)")
	f.StringVar(&opts.envFile, "env-file", "", "Load environment variables from a dotenv file")
	f.StringVarP(&opts.outputPath, "output", "o", "", "Write the translation to a file instead of stdout")
	f.StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
	f.BoolVarP(&opts.yes, "yes", "y", false, "Overwrite output file without asking")
	f.BoolVar(&opts.allowEnv, "allow-env", false, "Allow reading "+auth.EnvVar+" from the environment")
	f.BoolVar(&opts.envOnly, "env-only", false, "Use only "+auth.EnvVar+" for the API key")
	f.BoolVar(&opts.stats, "stats", false, "Print timing, token usage and cost to stderr")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable info logging")
	f.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	// Request settings; these are also read from the config file and GEMTRANS_* variables.
	f.String("endpoint", "", "API base URL (default "+gemini.DefaultEndpoint+")")
	f.String("model", "", "Model name (default depends on --variant)")
	f.String("variant", "", "Prompt variant: classic or instruct (default instruct)")
	f.String("google-search", "", "Search grounding: enable or disable")
	f.String("thinking", "", "Thinking: enable, disable, or a token budget (-1 = dynamic)")
	f.String("temperature", "", "Sampling temperature 0-2 (default depends on --variant)")
}

// bindConfig wires request settings to flags, GEMTRANS_* variables and the config file.
func bindConfig(f *pflag.FlagSet, v *viper.Viper) {
	bindings := []struct {
		key  string
		flag string
		env  string
	}{
		{options.KeyEndpoint, "endpoint", "ENDPOINT"},
		{options.KeyModel, "model", "MODEL"},
		{options.KeyVariant, "variant", "VARIANT"},
		{options.KeyGoogleSearch, "google-search", "GOOGLE_SEARCH"},
		{options.KeyThinking, "thinking", "THINKING"},
		{options.KeyTemperature, "temperature", "TEMPERATURE"},
		{options.KeyAPIKey, "", "API_KEY"},
	}
	for _, b := range bindings {
		if b.flag != "" {
			_ = v.BindPFlag(b.key, f.Lookup(b.flag))
		}
		_ = v.BindEnv(b.key, envPrefix+"_"+b.env)
	}
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		if err := files.RejectSymlinkPath(path); err != nil {
			return err
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "gemtrans"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func initLogging(opts *translateOptions) error {
	level := logger.LevelWarn
	if opts.verbose {
		level = logger.LevelInfo
	}
	if opts.debug {
		level = logger.LevelDebug
	}

	var logFileW io.Writer
	if opts.logFilePath != "" {
		if err := files.RejectSymlinkPath(opts.logFilePath); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup.Register(f.Close)
		logFileW = f
	}
	logger.InitWriter(os.Stderr, level, logFileW)
	return nil
}

func runTranslate(cmd *cobra.Command, args []string, opts *translateOptions, v *viper.Viper) error {
	if err := initLogging(opts); err != nil {
		return err
	}

	if opts.envFile != "" {
		if err := auth.LoadEnvFile(opts.envFile); err != nil {
			return err
		}
		opts.allowEnv = true
	}
	if err := readConfigFile(v, opts.configPath); err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Info("Loaded config", "path", used)
	}

	raw := options.Load(v)
	apiKey, source, err := resolveAPIKey(raw.APIKey, opts.allowEnv, opts.envOnly)
	if err != nil {
		return err
	}
	raw.APIKey = apiKey
	if source != "" {
		logger.Info("Using API Key", "service", "gemini", "source", source)
	}

	reqOpts, err := raw.Options()
	if err != nil {
		return err
	}

	if opts.outputPath != "" && files.Exists(opts.outputPath) {
		ok, err := prompt.DefaultConfirmer().ConfirmOverwrite(opts.outputPath, opts.yes)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("aborted: %s not overwritten", opts.outputPath)
		}
	}

	text, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no input text (pass it as arguments or on stdin)")
	}

	from := language.DisplayName(opts.from)
	to := language.DisplayName(opts.to)
	logger.Debug("Translating",
		"from", from,
		"to", to,
		"model", reqOpts.ResolvedModel(),
		"variant", reqOpts.Variant.Name,
		"google_search", reqOpts.GoogleSearch,
		"thinking", reqOpts.Thinking.String(),
		"temperature", reqOpts.ResolvedTemperature(),
	)

	ctx, stop := signalContext()
	defer stop()

	start := time.Now()
	res, err := gemini.NewTranslator(newTransport()).TranslateWithUsage(ctx, text, from, to, reqOpts)
	if err != nil {
		return err
	}

	if opts.outputPath != "" {
		if err := files.AtomicWrite(opts.outputPath, []byte(res.Text+"\n"), 0644); err != nil {
			return err
		}
		logger.Info("Wrote translation", "path", opts.outputPath)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	}

	if opts.stats {
		printUsageStats(cmd.ErrOrStderr(), res, text, time.Since(start))
	}
	return nil
}
