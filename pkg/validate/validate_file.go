package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/eventbus/internal/contract"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ResolveFormat: auto определяется по расширению (по умолчанию JSON).
func ResolveFormat(format InputFormat, filePath string) InputFormat {
	if format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile: валидирует файл как JSON или JSONL и пишет канонический вывод в writer.
func ValidateFile[T any](ctx context.Context, c contract.Contract[T], filePath string, format InputFormat, ow io.Writer) (JSONLResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return JSONLResult{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ValidateReader(ctx, c, file, ResolveFormat(format, filePath), ow)
}

// ValidateReader: то же для произвольного reader (stdin).
func ValidateReader[T any](ctx context.Context, c contract.Contract[T], ir io.Reader, format InputFormat, ow io.Writer) (JSONLResult, error) {
	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(ir)
		if err != nil {
			return JSONLResult{}, fmt.Errorf("read input: %w", err)
		}
		value, err := ValidateFromJSON(c, raw)
		if err != nil {
			return JSONLResult{InvalidLinesCount: 1, Invalid: []LineError{{Line: 1, Err: err}}}, err
		}
		canonical, err := Canonical(c, value)
		if err != nil {
			return JSONLResult{}, fmt.Errorf("canonicalize: %w", err)
		}
		if _, err := ow.Write(append(canonical, '\n')); err != nil {
			return JSONLResult{}, fmt.Errorf("write json: %w", err)
		}
		return JSONLResult{ValidLinesCount: 1}, nil

	case FormatJSONL:
		return ValidateJSONLStream(ctx, c, ir, ow)

	default:
		return JSONLResult{}, fmt.Errorf("unsupported format: %s", format)
	}
}

// Summary: строка итога для CLI.
func (r JSONLResult) Summary() string {
	return fmt.Sprintf("%d valid / %d invalid", r.ValidLinesCount, r.InvalidLinesCount)
}
