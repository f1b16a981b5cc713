package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"GoTextPrep/internal/pipeline"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// demoText is processed when no input is supplied, so the tool demonstrates
// itself like the tutorial it grew out of. It mirrors testutil.DemoText,
// which stays separate so the binary does not pull in test helpers; a test
// asserts the two never drift.
const demoText = "Natural Language Processing (NLP) is a field that " +
	"combines computer science, artificial intelligence and " +
	"language studies. It helps computers understand, process and " +
	"create human language in a way that makes sense and is useful. " +
	"With the growing amount of text data from social media, " +
	"websites and other sources, NLP is becoming a key tool to gain " +
	"insights and automate tasks like analyzing text or translating " +
	"languages."

func main() {
	filePath := flag.String("file", "", "read input text from a file")
	text := flag.String("text", "", "process the given text")
	analyzer := flag.String("analyzer", "classic", "tokenizer: classic, standard, whitespace, or keyword")
	stemmer := flag.String("stemmer", "porter", "stemming algorithm: porter or snowball")
	asJSON := flag.Bool("json", false, "emit the result as JSON")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("GOTEXTPREP_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	input, source, err := readInput(*filePath, *text)
	if err != nil {
		logger.Error("reading input", "error", err)
		os.Exit(1)
	}
	logger.Debug("input resolved", "version", Version, "source", source, "bytes", len(input))

	p, err := pipeline.New(pipeline.Options{Analyzer: *analyzer, Stemmer: *stemmer})
	if err != nil {
		logger.Error("building pipeline", "error", err)
		os.Exit(1)
	}
	result := p.Process(input)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			logger.Error("encoding result", "error", err)
			os.Exit(1)
		}
		return
	}

	printTerms("tokens", result.Tokens)
	printTerms("filtered", result.Filtered)
	printTerms("stemmed", result.Stemmed)
	printTerms("lemmas", result.Lemmas)
	printSentences(result.Sentences)
}

// readInput resolves the input text: -file first, then -text, then piped
// stdin, falling back to the built-in demo paragraph.
func readInput(filePath, text string) (string, string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", "", err
		}
		return string(data), "file", nil
	}
	if text != "" {
		return text, "flag", nil
	}
	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		if strings.TrimSpace(string(data)) != "" {
			return string(data), "stdin", nil
		}
	}
	return demoText, "demo", nil
}

func printTerms(name string, terms []string) {
	fmt.Printf("%s (%d):\n  %s\n", name, len(terms), strings.Join(terms, " "))
}

func printSentences(sentences []string) {
	fmt.Printf("sentences (%d):\n", len(sentences))
	for i, s := range sentences {
		fmt.Printf("  %d: %s\n", i+1, s)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
