package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"tripmap/internal/config"
	"tripmap/internal/dates"
	"tripmap/internal/geo"
	"tripmap/internal/logger"
	"tripmap/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"   env:"CONFIG_FILE" description:"Path to optional configuration file"`
	Input      string `short:"i" long:"in"       description:"Input file path. Skips the mode prompt"`
	Output     string `short:"o" long:"out"      description:"Output file path, .geojson suffix is enforced"`
	OnError    string `short:"e" long:"on-error" description:"Error policy for bad input lines" choice:"skip" choice:"abort"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	output := "output.geojson"
	policy := processor.PolicyLegacy

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		if cfg.Output != "" {
			output = cfg.Output
		}
		policy = cfg.Policy()
	}

	if opts.OnError != "" {
		policy = processor.Policy(opts.OnError)
	}

	stdin := bufio.NewScanner(os.Stdin)

	var records []processor.Record
	interactive := false

	if opts.Input != "" {
		records = readRecords(opts.Input, policy)
	} else {
		interactive = true

		fmt.Println("How would you like to input coordinates?")
		fmt.Println("1. Type them manually")
		fmt.Println("2. Read from a text file")

		choice, _ := prompt(stdin, "Enter your choice (1 or 2): ")
		switch choice {
		case "1":
			records = collectInteractive(stdin)
		case "2":
			filename, _ := prompt(stdin, "Enter the filename (e.g. coordinates.txt): ")
			records = readRecords(filename, policy)
		default:
			log.Error().Msg("Invalid choice, expected 1 or 2")
			os.Exit(1)
		}
	}

	if len(records) == 0 {
		log.Warn().Msg("No coordinates to process")
		return
	}

	if opts.Output != "" {
		output = opts.Output
	} else if interactive {
		if name, _ := prompt(stdin, fmt.Sprintf("Output filename (default: %s): ", output)); name != "" {
			output = name
		}
	}

	fc := processor.Build(records)

	path, err := geo.Save(output, fc)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write output file")
	}

	log.Info().
		Int("points", len(fc.Features)).
		Str("path", path).
		Msg("GeoJSON document written")
}

// readRecords runs the file producer and turns its error taxonomy into
// diagnostics. A missing source yields zero records; a malformed line keeps
// whatever was read before it.
func readRecords(path string, policy processor.Policy) []processor.Record {
	records, err := processor.ReadFile(path, policy)
	if err != nil {
		var lineErr *processor.LineError

		switch {
		case errors.Is(err, processor.ErrNoSource):
			log.Error().Str("path", path).Msg("Input file not found")
		case errors.As(err, &lineErr):
			log.Error().
				Int("line", lineErr.Line).
				Str("content", lineErr.Value).
				Str("path", path).
				Msg("Malformed input, file read aborted")
		default:
			log.Error().Err(err).Str("path", path).Msg("Failed to read input file")
		}

		return records
	}

	log.Info().Int("records", len(records)).Str("path", path).Msg("Coordinates read from file")

	return records
}

// collectInteractive runs the prompt loop until the stop sentinel. A bad
// round is reported and discarded; the loop keeps going.
func collectInteractive(in *bufio.Scanner) []processor.Record {
	records := []processor.Record{}

	fmt.Println("\nEnter coordinates in \"latitude, longitude\" format.")
	fmt.Printf("Type '%s' when finished.\n\n", processor.StopSentinel)

	for {
		raw, ok := prompt(in, fmt.Sprintf("Coordinates (or '%s'): ", processor.StopSentinel))
		if !ok || processor.IsDone(raw) {
			break
		}

		name, _ := prompt(in, "  Name for this point (optional): ")
		start, _ := prompt(in, "  Start date (ddmmyyyy, empty for unknown): ")
		end, _ := prompt(in, "  End date (ddmmyyyy, empty for unknown): ")

		next, err := processor.Append(records, raw, name, start, end)
		if err != nil {
			log.Warn().Err(err).Msg("Round discarded")
			continue
		}
		records = next

		added := records[len(records)-1]
		if d := dates.DurationDays(added.StartDate, added.EndDate); d != nil {
			fmt.Printf("Added #%d %s (%g, %g), %d days\n\n",
				len(records), added.Name, added.Lat, added.Lon, *d)
		} else {
			fmt.Printf("Added #%d %s (%g, %g)\n\n",
				len(records), added.Name, added.Lat, added.Lon)
		}
	}

	return records
}

// prompt prints the label and returns the next trimmed input line.
// ok is false once the input is exhausted.
func prompt(in *bufio.Scanner, label string) (value string, ok bool) {
	fmt.Print(label)

	if !in.Scan() {
		fmt.Println()
		return "", false
	}

	return strings.TrimSpace(in.Text()), true
}
