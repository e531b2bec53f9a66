package validate

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Gunvolt24/eventbus/internal/contract"
)

// LineError: невалидная строка JSONL и причина.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

// JSONLResult: статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
	Invalid           []LineError
}

// ValidateJSONLStream читает JSONL, проверяет каждую строку контрактом и пишет
// канонический JSON валидных записей по одной на строку. Пустые строки пропускаются,
// невалидные не прерывают поток.
func ValidateJSONLStream[T any](ctx context.Context, c contract.Contract[T], ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return res, err
		}
		lineBytes := scanner.Bytes()
		if len(bytes.TrimSpace(lineBytes)) == 0 {
			continue
		}

		value, err := ValidateFromJSON(c, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			res.Invalid = append(res.Invalid, LineError{Line: line, Err: err})
			continue
		}

		canonical, err := Canonical(c, value)
		if err != nil {
			return res, fmt.Errorf("line %d: canonicalize: %w", line, err)
		}
		if _, err := ow.Write(append(canonical, '\n')); err != nil {
			return res, fmt.Errorf("write valid line: %w", err)
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
