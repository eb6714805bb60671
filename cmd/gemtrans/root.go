package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oukeidos/gemtrans/internal/apperrors"
	"github.com/oukeidos/gemtrans/internal/auth"
	"github.com/oukeidos/gemtrans/internal/cleanup"
	"github.com/oukeidos/gemtrans/internal/gemini"
	"github.com/oukeidos/gemtrans/internal/logger"
	"github.com/oukeidos/gemtrans/internal/version"
	"github.com/spf13/cobra"
)

func execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		if err == nil {
			err = cleanupErr
		} else {
			fmt.Fprintln(os.Stderr, cleanupErr)
		}
	}
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err for the terminal, with a hint for the classified failures.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", apperrors.PublicMessage(err))

	kind, ok := apperrors.KindOf(err)
	if !ok {
		return
	}
	status, _ := apperrors.StatusOf(err)
	logger.Debug("Command failed", "kind", kind, "status", status)

	switch {
	case kind == apperrors.KindAuth, errors.Is(err, gemini.ErrMissingAPIKey):
		fmt.Fprintln(w, "Hint: run 'gemtrans env setup' or pass --allow-env with "+auth.EnvVar+" set.")
	case apperrors.IsRetryable(err):
		fmt.Fprintln(w, "Hint: this failure is temporary; try again later.")
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gemtrans",
		Short:         "Translate text with the Gemini API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)

	cmd.AddCommand(
		newTranslateCmd(),
		newEnvCmd(),
		newListCmd(),
		newAboutCmd(),
	)

	cmd.InitDefaultCompletionCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "completion" {
			sub.SetUsageTemplate(subcommandUsageTemplate)
			break
		}
	}

	return cmd
}
