package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"git.sr.ht/~whereswaldon/touchcharts/logger"
	"github.com/rs/zerolog"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: generate a changing CSV dataset
Usage:

 %[1]s -output data.csv &
 touchcharts -data data.csv

The output file is rewritten every interval, so a chart watching it animates.

`, os.Args[0])
	flag.PrintDefaults()
}

var days = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// feed produces successive datasets as a random walk around a fixed target.
type feed struct {
	rng     *rand.Rand
	values  []float64
	targets []float64
	signed  bool
}

func newFeed(seed uint64, target float64, signed bool) *feed {
	f := &feed{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		values:  make([]float64, len(days)),
		targets: make([]float64, len(days)),
		signed:  signed,
	}
	for i := range days {
		f.targets[i] = target
		f.values[i] = target * f.rng.Float64()
	}
	return f
}

func (f *feed) step() {
	for i := range f.values {
		f.values[i] += (f.rng.Float64() - 0.5) * f.targets[i] * 0.2
		if !f.signed {
			f.values[i] = max(0, f.values[i])
		}
	}
}

func (f *feed) write(w io.Writer) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"label", "value", "target"}); err != nil {
		return err
	}
	for i, day := range days {
		err := out.Write([]string{
			day,
			strconv.FormatFloat(f.values[i], 'f', 2, 64),
			strconv.FormatFloat(f.targets[i], 'f', 2, 64),
		})
		if err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

// writeFile replaces path with the current dataset. The data is written to a
// temporary file first so readers never observe a partial dataset.
func (f *feed) writeFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed creating temporary file: %w", err)
	}
	if err := f.write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed writing dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed closing dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed replacing %q: %w", path, err)
	}
	return nil
}

func main() {
	flag.Usage = usage
	interval := flag.Duration("interval", time.Second, "Interval between rewrites of the dataset")
	outputName := flag.String("output", "-", "Output file for CSV data; - writes a single dataset to stdout")
	target := flag.Float64("target", 100, "Target value for every data point")
	signed := flag.Bool("signed", false, "Allow values to walk below zero")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()
	log := logger.New(logger.Config{Level: *logLevel, Pretty: true})

	f := newFeed(*seed, *target, *signed)
	if *outputName == "-" {
		if err := f.write(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("writing dataset")
		}
		return
	}
	if err := run(f, *outputName, *interval, log); err != nil {
		log.Fatal().Err(err).Msg("feeding dataset")
	}
}

func run(f *feed, path string, interval time.Duration, log zerolog.Logger) error {
	if err := f.writeFile(path); err != nil {
		return err
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	for {
		select {
		case <-sigChan:
			return nil
		case <-ticker.C:
			f.step()
			if err := f.writeFile(path); err != nil {
				return err
			}
			log.Debug().Str("file", path).Floats64("values", f.values).Msg("dataset rewritten")
		}
	}
}
