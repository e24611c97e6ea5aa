package cssinspect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// DefaultTokenIncludes are the glob patterns used to discover token files
// under a source directory when none are configured.
var DefaultTokenIncludes = []string{
	"**/tokens.css",
	"**/*.tokens.css",
	"tokens/**/*.css",
}

// LoadResult reports what token loading found.
type LoadResult struct {
	Tokens       []Token
	FilesScanned int
	Warnings     []string
}

// LoadTokenFiles discovers CSS token files under sourceDir via glob
// patterns, filters gitignored files, and parses custom-property
// declarations from each. Parsed tokens extend the built-in table; a file
// that fails to read is a warning, not a failure.
func LoadTokenFiles(sourceDir string, includes []string) (*LoadResult, error) {
	if len(includes) == 0 {
		includes = DefaultTokenIncludes
	}

	var files []string
	for _, pattern := range includes {
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	// Deduplicate across overlapping patterns.
	seen := make(map[string]bool)
	unique := make([]string, 0, len(files))
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}

	// Honor .gitignore when present; absence is fine.
	gi, giErr := ignore.CompileIgnoreFile(filepath.Join(sourceDir, ".gitignore"))

	result := &LoadResult{}
	for _, path := range unique {
		if giErr == nil && gi != nil && gi.MatchesPath(path) {
			continue
		}

		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(path)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("read %s: %v", path, err))
			continue
		}

		tokens, warnings := ParseTokensCSS(string(content), path)
		result.Tokens = append(result.Tokens, tokens...)
		result.Warnings = append(result.Warnings, warnings...)
		result.FilesScanned++
	}

	return result, nil
}

// ParseTokensCSS lexes CSS content and extracts every custom-property
// declaration as a token, inferring the category from the property name
// prefix. Declarations with unrecognized prefixes produce warnings and are
// skipped; nothing here is a hard error.
func ParseTokensCSS(content, filename string) ([]Token, []string) {
	var tokens []Token
	var warnings []string

	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		name, ok := customPropertyName(tt, string(text))
		if !ok {
			continue
		}

		value, terminated := lexDeclarationValue(lexer)
		if !terminated || value == "" {
			continue
		}

		category, ok := inferCategory(name)
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("%s: unknown token category for --%s (skipped)", filename, name))
			continue
		}

		tokens = append(tokens, Token{Name: name, Category: category, Raw: value})
	}

	return tokens, warnings
}

// customPropertyName recognizes a `--name` declaration head and returns the
// name without the leading dashes.
func customPropertyName(tt css.TokenType, text string) (string, bool) {
	if tt != css.CustomPropertyNameToken && tt != css.IdentToken {
		return "", false
	}
	if !strings.HasPrefix(text, "--") {
		return "", false
	}
	return strings.TrimPrefix(text, "--"), true
}

// lexDeclarationValue reads tokens after a custom property name until the
// declaration ends. Returns the joined value and whether a colon was seen.
func lexDeclarationValue(lexer *css.Lexer) (string, bool) {
	var parts []string
	sawColon := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken || tt == css.SemicolonToken || tt == css.RightBraceToken {
			break
		}
		if tt == css.ColonToken && !sawColon {
			sawColon = true
			continue
		}
		if sawColon {
			parts = append(parts, string(text))
		}
	}

	return strings.TrimSpace(strings.Join(parts, "")), sawColon
}

// categoryPrefixes maps the first name segment of a custom property to its
// token category.
var categoryPrefixes = map[string]Category{
	"color":   CategoryColor,
	"space":   CategorySpacing,
	"font":    CategoryTypography,
	"leading": CategoryTypography,
	"radius":  CategoryRadius,
	"shadow":  CategoryShadow,
	"border":  CategoryBorder,
	"glass":   CategoryGlass,
}

func inferCategory(name string) (Category, bool) {
	segment, _, _ := strings.Cut(name, "-")
	cat, ok := categoryPrefixes[segment]
	return cat, ok
}
