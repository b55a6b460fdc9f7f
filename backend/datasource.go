package backend

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Update is one complete replacement for the working dataset.
type Update struct {
	// Source names the file or stream the points were read from.
	Source string
	Points []DataPoint
	Err    error
}

// Datasource reads CSV datasets. Every load is recorded as a mutation keyed
// by a load counter, and the newest load is the current dataset. Files
// loaded through [Datasource.WatchFile] keep publishing a fresh [Update]
// each time they are written, until another load supersedes them.
type Datasource struct {
	log    zerolog.Logger
	appCtx context.Context
	pool   *stream.MutationPool[string, Update]

	lock     sync.Mutex
	loads    uint64
	stopLast context.CancelFunc
}

func NewDatasource(appCtx context.Context, mutator *stream.Mutator, log zerolog.Logger) *Datasource {
	return &Datasource{
		log:    log.With().Str("component", "datasource").Logger(),
		appCtx: appCtx,
		pool:   stream.NewMutationPool[string, Update](mutator),
	}
}

// Updates streams the current dataset until ctx is cancelled. The current
// dataset, if any, is delivered first, and the stream follows each newer
// load as it is recorded.
func (d *Datasource) Updates(ctx context.Context) <-chan Update {
	return stream.Multiplex(d.pool.Stream(ctx), func(ctx context.Context, current string, loads map[string]*stream.Mutation[Update]) (<-chan Update, string) {
		newest := current
		for key := range loads {
			if key > newest {
				newest = key
			}
		}
		if newest == current {
			return nil, current
		}
		return loads[newest].Stream(ctx), newest
	})
}

// supersede stops the previous load and returns the key and lifetime of the
// next one. Keys are fixed width so that they order like the counter.
func (d *Datasource) supersede() (string, context.Context) {
	live, stop := context.WithCancel(d.appCtx)
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.stopLast != nil {
		d.stopLast()
	}
	d.stopLast = stop
	d.loads++
	return fmt.Sprintf("%016x", d.loads), live
}

// record publishes first as a new load. If follow is non-nil it runs
// afterwards to publish further updates of the same source.
func (d *Datasource) record(first Update, follow func(ctx context.Context, out chan<- Update)) {
	key, live := d.supersede()
	stream.Mutate(d.pool, key, func(ctx context.Context) <-chan Update {
		out := make(chan Update, 1)
		go func() {
			defer close(out)
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			defer context.AfterFunc(live, cancel)()
			out <- first
			if follow == nil {
				<-ctx.Done()
				return
			}
			follow(ctx, out)
		}()
		return out
	})
}

// LoadFromFile asks the user to choose a dataset file and loads it. Regular
// files are watched for further writes.
func (d *Datasource) LoadFromFile(expl *explorer.Explorer) error {
	file, err := expl.ChooseFile(".csv")
	if err != nil {
		return fmt.Errorf("failed choosing dataset file: %w", err)
	}
	if f, ok := file.(*os.File); ok {
		name := f.Name()
		if err := f.Close(); err != nil {
			d.log.Warn().Err(err).Str("file", name).Msg("closing chosen file")
		}
		return d.WatchFile(name)
	}
	return d.LoadFromStream("explorer", file)
}

// LoadFromStream reads a single dataset from r and closes it.
func (d *Datasource) LoadFromStream(name string, r io.ReadCloser) error {
	u, err := d.parse(name, r)
	d.record(u, nil)
	return err
}

// WatchFile loads the dataset at path and reloads it each time the file is
// written or replaced. A file that does not exist yet is loaded once it is
// created. Only the most recent load is watched.
func (d *Datasource) WatchFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed resolving %q: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	// Watch the directory rather than the file so that editors which replace
	// the file on save keep triggering reloads.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		err = fmt.Errorf("failed watching %q: %w", abs, err)
		d.record(Update{Source: abs, Err: err}, nil)
		return err
	}
	first, err := d.read(abs)
	d.record(first, func(ctx context.Context, out chan<- Update) {
		d.watch(ctx, watcher, abs, out)
	})
	return err
}

func (d *Datasource) read(path string) (Update, error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("failed opening dataset: %w", err)
		return Update{Source: path, Err: err}, err
	}
	return d.parse(path, f)
}

func (d *Datasource) parse(name string, r io.ReadCloser) (Update, error) {
	points, err := ParseCSV(r, d.log)
	err = errors.Join(err, r.Close())
	if err != nil {
		err = fmt.Errorf("failed loading %q: %w", name, err)
	}
	return Update{Source: name, Points: points, Err: err}, err
}

func (d *Datasource) watch(ctx context.Context, watcher *fsnotify.Watcher, path string, out chan<- Update) {
	defer func() {
		if err := watcher.Close(); err != nil {
			d.log.Warn().Err(err).Msg("closing file watcher")
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			d.log.Debug().Str("file", path).Stringer("op", ev.Op).Msg("dataset changed")
			u, err := d.read(path)
			if err != nil {
				d.log.Error().Err(err).Str("file", path).Msg("reloading dataset")
			}
			select {
			case out <- u:
			case <-ctx.Done():
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			d.log.Error().Err(err).Msg("file watcher")
		}
	}
}

// ParseCSV reads rows of the form "label, value[, target]". A row with a
// single column is an unlabeled value. Blank numeric cells read as zero. A
// first row whose value column is not numeric is taken to be a header. Rows
// that fail to parse are logged and skipped. A final row without a trailing
// newline is parsed once the source is exhausted.
func ParseCSV(r io.Reader, log zerolog.Logger) ([]DataPoint, error) {
	lines := NewLineReader(r)
	var points []DataPoint
	row, err := parseRows(lines, 0, &points, log)
	if err != nil {
		return points, err
	}
	if tail := bytes.TrimSpace(lines.Pending()); len(tail) > 0 {
		if _, err := parseRows(bytes.NewReader(tail), row, &points, log); err != nil {
			return points, err
		}
	}
	return points, nil
}

// parseRows appends every record in r to points, numbering rows from first.
// It returns the number of the next row.
func parseRows(r io.Reader, first int, points *[]DataPoint, log zerolog.Logger) (int, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1
	csvReader.Comment = '#'
	for row := first; ; row++ {
		rec, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			return row, nil
		} else if err != nil {
			return row, fmt.Errorf("failed reading dataset: %w", err)
		}
		p, err := parseRecord(rec)
		if err != nil {
			if row == 0 {
				// Header row.
				continue
			}
			log.Warn().Err(err).Int("row", row).Strs("record", rec).Msg("skipping dataset row")
			continue
		}
		*points = append(*points, p)
	}
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	return strconv.ParseFloat(cell, 64)
}

func parseRecord(rec []string) (DataPoint, error) {
	var p DataPoint
	var err error
	switch len(rec) {
	case 0:
		return p, fmt.Errorf("empty record")
	case 1:
		p.Value, err = parseCell(rec[0])
		if err != nil {
			return p, fmt.Errorf("failed parsing value: %w", err)
		}
		return p, nil
	}
	p.Label = strings.TrimSpace(rec[0])
	if p.Value, err = parseCell(rec[1]); err != nil {
		return p, fmt.Errorf("failed parsing value: %w", err)
	}
	if len(rec) > 2 {
		if p.Target, err = parseCell(rec[2]); err != nil {
			return p, fmt.Errorf("failed parsing target: %w", err)
		}
	}
	return p, nil
}
