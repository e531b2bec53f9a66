package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/eventbus/internal/contract"
	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/pkg/validate"
)

// CLI-приложение для проверки событий media.uploaded до отправки в брокер.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	topic := flag.String("topic", "media.uploaded", "topic name used in error messages")
	verbose := flag.Bool("v", false, "print every invalid line to stderr")
	flag.Parse()

	ctx := context.Background()
	mediaContract := contract.NewJSON[domain.MediaUploaded](*topic)
	format := validate.InputFormat(*formatStr)

	var (
		res validate.JSONLResult
		err error
	)
	if *inputPath == "" {
		// stdin: считаем, что jsonl
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
		res, err = validate.ValidateReader(ctx, mediaContract, os.Stdin, format, os.Stdout)
	} else {
		res, err = validate.ValidateFile(ctx, mediaContract, *inputPath, format, os.Stdout)
	}

	if *verbose {
		for _, lineErr := range res.Invalid {
			fmt.Fprintln(os.Stderr, lineErr.Error())
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, res.Summary())
		os.Exit(1)
	}
	if res.InvalidLinesCount > 0 {
		fmt.Fprintf(os.Stderr, "validation failed (%s)\n", res.Summary())
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", res.Summary())
}
