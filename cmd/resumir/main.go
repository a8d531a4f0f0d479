// Package main provides a CLI that summarizes a text file or stdin with the
// same rules as POST /resumir.
// Usage: resumir [--file path] [--output json|text]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"resumen-backend/internal/config"
	"resumen-backend/internal/domain/entity"
	hsummary "resumen-backend/internal/handler/http/summary"
	"resumen-backend/internal/infra/summarizer"
	"resumen-backend/internal/observability/logging"
	sumUC "resumen-backend/internal/usecase/summary"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("resumir", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		file         string
		outputFormat string
	)
	fs.StringVar(&file, "file", "", "Path of the text to summarize (default: stdin)")
	fs.StringVar(&outputFormat, "output", "json", "Output format: json or text")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if outputFormat != "json" && outputFormat != "text" {
		fmt.Fprintf(stderr, "Error: Invalid output format '%s' (must be 'json' or 'text')\n", outputFormat)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: Failed to load configuration: %v\n", err)
		return 1
	}

	// Logs go to stderr so stdout carries only the result.
	logger := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	ctx = logging.WithLogger(ctx, logger)

	input, err := readInput(file, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: Failed to read input: %v\n", err)
		return 1
	}

	provider, err := summarizer.New(ctx, cfg.SummarizerModel())
	if err != nil {
		fmt.Fprintf(stderr, "Error: Failed to initialize summarizer: %v\n", err)
		return 1
	}
	defer func() { _ = provider.Close() }()

	instruction, err := cfg.LoadInstruction()
	if err != nil {
		fmt.Fprintf(stderr, "Error: Failed to load prompt: %v\n", err)
		return 1
	}
	summaryCfg := cfg.SummaryConfig()
	summaryCfg.Instruction = instruction

	res, err := sumUC.NewService(provider, summaryCfg).Summarize(ctx, input)
	if err != nil {
		writeError(stdout, outputFormat, err)
		return 1
	}

	ideas := res.Ideas
	if ideas == nil {
		ideas = []string{}
	}
	writeResult(stdout, outputFormat, hsummary.Response{Resumen: res.Summary, IdeasPrincipales: ideas})
	return 0
}

func readInput(file string, stdin io.Reader) (string, error) {
	if file == "" || file == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(file)
	return string(b), err
}

// errorMessage returns the client-facing message of a use-case error.
func errorMessage(err error) string {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, sumUC.ErrNoValidSummary):
		return sumUC.MsgNoValidSummary
	default:
		var uerr *sumUC.UnexpectedError
		if !errors.As(err, &uerr) {
			uerr = &sumUC.UnexpectedError{Err: err}
		}
		return uerr.Error()
	}
}

func writeError(w io.Writer, format string, err error) {
	msg := errorMessage(err)
	if format == "text" {
		fmt.Fprintf(w, "Error: %s\n", msg)
		return
	}
	writeJSON(w, map[string]string{"error": msg})
}

func writeResult(w io.Writer, format string, resp hsummary.Response) {
	if format == "text" {
		fmt.Fprintln(w, resp.Resumen)
		if len(resp.IdeasPrincipales) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Ideas principales:")
			for i, idea := range resp.IdeasPrincipales {
				fmt.Fprintf(w, "%d. %s\n", i+1, strings.TrimSpace(idea))
			}
		}
		return
	}
	writeJSON(w, resp)
}

func writeJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
