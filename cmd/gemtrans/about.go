package main

import (
	"fmt"

	"github.com/oukeidos/gemtrans/internal/gemini"
	"github.com/spf13/cobra"
)

func newAboutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show a short description and link",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "gemtrans: single-shot text translation through the Gemini generateContent API")
			fmt.Fprintf(out, "Endpoint: %s\n", gemini.DefaultEndpoint)
			fmt.Fprintln(out, "https://github.com/oukeidos/gemtrans")
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
