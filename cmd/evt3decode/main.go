// Command evt3decode decodes a Prophesee EVT 3.0 .raw capture to CSV or a
// compact binary format, optionally splitting external trigger events into
// their own CSV file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/evt3decode/evt3/internal/evtlog"
	"github.com/evt3decode/evt3/sink"
	"github.com/evt3decode/evt3/stream"
)

func main() {
	format := flag.String("format", "x,y,p,t", "CSV field order, comma-separated (x, y, p, t)")
	triggers := flag.String("triggers", "", "optional path to write trigger events as CSV")
	quiet := flag.Bool("quiet", false, "suppress the summary written to stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	if err := run(inputPath, outputPath, *triggers, *format, *quiet); err != nil {
		log.Fatalf("evt3decode: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] INPUT OUTPUT\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "INPUT is an EVT 3.0 .raw capture (optionally zstd/lz4/s2-compressed).")
	fmt.Fprintln(os.Stderr, "OUTPUT format is chosen by extension: .csv or .bin.")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func run(inputPath, outputPath, triggerPath, fieldFormat string, quiet bool) error {
	fieldOrder, err := sink.ParseFieldOrder(fieldFormat)
	if err != nil {
		return fmt.Errorf("invalid field format %q: %w", fieldFormat, err)
	}

	start := time.Now()
	result, err := stream.Decode(inputPath)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}
	decodeDuration := time.Since(start)

	if !quiet {
		evtlog.Infof("decoded %d cd events, %d trigger events in %s", len(result.CdEvents), len(result.TriggerEvents), decodeDuration)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}
	defer out.Close()

	switch ext := strings.ToLower(filepath.Ext(outputPath)); ext {
	case ".csv":
		if _, err := sink.WriteCSV(out, result.CdEvents, &result.Metadata, fieldOrder); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	case ".bin":
		if _, err := sink.WriteBinary(out, result.CdEvents, result.Metadata, binaryEngine()); err != nil {
			return fmt.Errorf("write binary: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q: use .csv or .bin", ext)
	}

	if triggerPath != "" && len(result.TriggerEvents) > 0 {
		triggerFile, err := os.Create(triggerPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", triggerPath, err)
		}
		defer triggerFile.Close()

		if _, err := sink.WriteTriggerCSV(triggerFile, result.TriggerEvents); err != nil {
			return fmt.Errorf("write trigger csv: %w", err)
		}
	}

	totalDuration := time.Since(start)
	if !quiet {
		eventsPerSec := float64(len(result.CdEvents)) / totalDuration.Seconds()
		fmt.Fprintf(os.Stderr, "\nSummary:\n")
		fmt.Fprintf(os.Stderr, "  Input:      %s\n", inputPath)
		fmt.Fprintf(os.Stderr, "  Output:     %s\n", outputPath)
		fmt.Fprintf(os.Stderr, "  CD events:  %d\n", len(result.CdEvents))
		fmt.Fprintf(os.Stderr, "  Triggers:   %d\n", len(result.TriggerEvents))
		fmt.Fprintf(os.Stderr, "  Sensor:     %dx%d\n", result.Metadata.Width, result.Metadata.Height)
		fmt.Fprintf(os.Stderr, "  Duration:   %s\n", totalDuration)
		fmt.Fprintf(os.Stderr, "  Throughput: %.0f events/s\n", eventsPerSec)
	}

	return nil
}
