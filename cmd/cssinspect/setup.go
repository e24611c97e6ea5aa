package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yacobolo/cssinspect"
	"github.com/yacobolo/cssinspect/internal/hostdoc"
)

// buildRegistry assembles the token registry: built-in table first, then any
// CSS token files from the configured directory (later tokens win reverse-
// index collisions, so project tokens shadow built-ins).
func buildRegistry(logger zerolog.Logger) (*cssinspect.Registry, error) {
	tokens := append([]cssinspect.Token(nil), cssinspect.DefaultTokens...)

	if dir := getStringWithFallback("tokens-dir", "tokens.dir", ""); dir != "" {
		result, err := cssinspect.LoadTokenFiles(dir, getStringsWithFallback("include", "tokens.include"))
		if err != nil {
			return nil, fmt.Errorf("loading token files: %w", err)
		}
		for _, warning := range result.Warnings {
			logger.Warn().Msg(warning)
		}
		logger.Debug().
			Int("files", result.FilesScanned).
			Int("tokens", len(result.Tokens)).
			Str("dir", dir).
			Msg("loaded token files")
		tokens = append(tokens, result.Tokens...)
	}

	rootFontSize := getFloat64WithFallback("root-font-size", "root-font-size", cssinspect.DefaultRootFontSize)
	return cssinspect.NewRegistry(tokens, cssinspect.WithRootFontSize(rootFontSize)), nil
}

// loadDocument reads the document fixture named by config.
func loadDocument(logger zerolog.Logger) (*hostdoc.Document, error) {
	path := getStringWithFallback("document", "document", "document.yaml")
	doc, err := hostdoc.Load(path)
	if err != nil {
		return nil, err
	}

	count := 0
	doc.Walk(func(*hostdoc.Node) bool { count++; return true })
	logger.Debug().Str("path", path).Int("elements", count).Msg("loaded document")
	return doc, nil
}

// useColors reports whether report output should be colored.
func useColors() bool {
	return getBoolWithFallback("color", "color", false)
}
