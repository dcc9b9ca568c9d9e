package main

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/splithouse/receipts-engine/internal/parser"
)

// parse reads receipt text (or an OCR JSON payload with -json) from a file
// or stdin and prints the structured result as JSON.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	asJSON := flag.Bool("json", false, "input is an OCR JSON payload rather than raw text")
	flag.Parse()

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			logger.Error("open input", "path", flag.Arg(0), "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		logger.Error("read input", "error", err)
		os.Exit(1)
	}

	var ocr parser.OCRResult
	if *asJSON {
		schema := parser.BuildOCRResultJSONSchema()
		if err := parser.ValidateJSONAgainstSchema(schema, data); err != nil {
			logger.Error("invalid ocr payload", "error", err)
			os.Exit(2)
		}
		ocr, err = parser.DecodeOCRResult(data)
		if err != nil {
			logger.Error("decode ocr payload", "error", err)
			os.Exit(2)
		}
	} else {
		ocr = parser.OCRResult{Success: true, Text: string(data)}
	}

	p := parser.New(parser.DefaultConfig(), logger)
	parsed := p.Parse(ocr)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(parsed); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
