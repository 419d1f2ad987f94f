package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Sources manifest and corpus output
	ManifestPath string
	OutputPath   string

	// Extraction
	MinTextLen        int
	FallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		ManifestPath: envOr("PASALCORPUS_MANIFEST", "sources.yaml"),
		OutputPath:   envOr("PASALCORPUS_OUTPUT", "final_corpus.jsonl"),

		MinTextLen: envInt("PASALCORPUS_MIN_TEXT_LEN", 500),

		FallbackPdftotext: envBool("PASALCORPUS_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MinTextLen <= 0 {
		cfg.MinTextLen = 500
	}

	return cfg
}

func (c Config) Validate() error {
	if c.ManifestPath == "" {
		return fmt.Errorf("PASALCORPUS_MANIFEST is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("PASALCORPUS_OUTPUT is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
