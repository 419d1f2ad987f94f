package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/lexindo/pasalcorpus/internal/config"
	"github.com/lexindo/pasalcorpus/internal/extractor"
	"github.com/lexindo/pasalcorpus/internal/normalize"
	"github.com/lexindo/pasalcorpus/internal/pipeline"
	"github.com/lexindo/pasalcorpus/internal/structure"
)

var version = "0.1.0"

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	rootCmd := &cobra.Command{
		Use:   "pasalcorpus",
		Short: "Build a per-Pasal JSONL corpus from Indonesian statute documents",
		Long: `pasalcorpus reads the statute documents listed in a sources manifest,
extracts their text, detects the BUKU/BAB/Bagian/Pasal structure, and
writes one JSON record per article to a newline-delimited corpus file.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, log)
		},
	}

	addBuildFlags(rootCmd)

	rootCmd.AddCommand(buildCmd(log))
	rootCmd.AddCommand(inspectCmd(log))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("manifest", "m", "", "sources manifest path (default from PASALCORPUS_MANIFEST)")
	cmd.Flags().StringP("output", "o", "", "corpus output path (default from PASALCORPUS_OUTPUT)")
	cmd.Flags().Int("min-text-len", 0, "minimum accepted extraction length before falling back")
}

func buildCmd(log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the corpus from the sources manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, log)
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func runBuild(cmd *cobra.Command, log *slog.Logger) error {
	cfg := config.Load()
	if v, _ := cmd.Flags().GetString("manifest"); v != "" {
		cfg.ManifestPath = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputPath = v
	}
	if v, _ := cmd.Flags().GetInt("min-text-len"); v > 0 {
		cfg.MinTextLen = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	manifest, err := config.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting corpus build",
		"manifest", cfg.ManifestPath,
		"output", cfg.OutputPath,
		"sources", len(manifest.Sources))

	sum, err := pipeline.New(cfg, log).Run(ctx, manifest, out)
	if err != nil {
		return err
	}

	log.Info("corpus build complete",
		"files_processed", sum.FilesProcessed,
		"files_skipped", sum.FilesSkipped,
		"records_written", sum.RecordsWritten,
		"penjelasan_dropped", sum.PenjelasanDropped,
		"fallback_uses", sum.FallbackUses)
	return nil
}

func inspectCmd(log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the detected structure of one document without writing the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			cfg := config.Load()
			if v, _ := cmd.Flags().GetInt("min-text-len"); v > 0 {
				cfg.MinTextLen = v
			}

			chain, err := extractor.ForFile(source, cfg.MinTextLen, cfg.FallbackPdftotext)
			if err != nil {
				return err
			}
			result, err := chain.Extract(source)
			if err != nil {
				return fmt.Errorf("extract %s: %w", source, err)
			}
			log.Info("extracted", "file", source, "strategy", result.Strategy, "chars", len(result.Text))

			text := normalize.StripArtifacts(normalize.Clean(result.Text))
			blocks := structure.Detect(text)

			data, err := sonic.MarshalIndent(blocks, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal blocks: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringP("source", "s", "", "document path to inspect")
	cmd.Flags().Int("min-text-len", 0, "minimum accepted extraction length before falling back")
	return cmd
}
