package main

import (
	"fmt"

	"github.com/oukeidos/gemtrans/internal/gemini"
	"github.com/oukeidos/gemtrans/internal/language"
	"github.com/oukeidos/gemtrans/internal/metadata"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List languages, models and prompt variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.AddCommand(newListLanguagesCmd(), newListModelsCmd())
	return cmd
}

func newListLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List common language codes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Common Languages (any BCP 47 code or plain name is accepted):")
			for _, l := range language.Supported() {
				fmt.Fprintf(out, "  %-35s [%s]\n", l.Name, l.Code)
			}
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newListModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List known models, pricing and prompt variants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Models (USD per 1M tokens, input/output):")
			for _, m := range metadata.GeminiModels {
				fmt.Fprintf(out, "  %-25s $%.2f / $%.2f\n", m.ID, m.InputPerMillion, m.OutputPerMillion)
			}
			fmt.Fprintln(out, "\nVariants:")
			for _, v := range gemini.Variants() {
				marker := ""
				if v.Name == gemini.DefaultVariant.Name {
					marker = " (default)"
				}
				fmt.Fprintf(out, "  %-10s model=%s temperature=%.1f%s\n", v.Name, v.DefaultModel, v.DefaultTemperature, marker)
			}
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
