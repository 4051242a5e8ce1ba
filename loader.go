package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/truj/midica-sub006/config"
	"github.com/truj/midica-sub006/logging"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyTable        = errors.New("table has no messages")
	ErrUnknownCharset    = errors.New("unknown charset")
)

// messageTable is the loaded data of one or more files, in natural order.
type messageTable struct {
	rows []*messageRow
	tree *typeNode
}

// loadTables reads every path concurrently and merges them in argument
// order. Track numbers of later files are shifted past the earlier ones.
func loadTables(paths []string, cfg config.InputConfig) (*messageTable, error) {
	results := make([][]*messageRow, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			rows, err := loadMessages(path, cfg)
			if err != nil {
				return fmt.Errorf("load %q: %w", path, err)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []*messageRow
	var offset int64
	for i, rows := range results {
		var maxTrack int64 = -1
		for _, r := range rows {
			if offset > 0 {
				r.track += offset
				r.cols[colTrack] = fmt.Sprint(r.track)
				r.id = r.ComputeID()
			}
			maxTrack = max(maxTrack, r.track)
		}
		logging.Infof("loaded %d messages from %s", len(rows), paths[i])
		merged = append(merged, rows...)
		if maxTrack >= offset {
			offset = maxTrack + 1
		}
	}
	return buildTable(merged)
}

func loadMessages(path string, cfg config.InputConfig) ([]*messageRow, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readMessagesCSVFile(path, cfg)
	case ".json":
		snap, err := readSnapshotFile(path)
		if err != nil {
			return nil, err
		}
		return snap.messages()
	default:
		return nil, fmt.Errorf("%w %q (want .csv or .json)", ErrUnsupportedFormat, ext)
	}
}

func readMessagesCSVFile(path string, cfg config.InputConfig) ([]*messageRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()
	return readMessagesCSV(f, cfg)
}

// decodeReader wraps r so it yields UTF-8 from the named charset.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownCharset, charset)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// readMessagesCSV parses a header line followed by one message per line.
// The header is matched by name, so column order in the file is free.
func readMessagesCSV(r io.Reader, cfg config.InputConfig) ([]*messageRow, error) {
	decoded, err := decodeReader(r, cfg.Charset)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	if d := []rune(cfg.Delimiter); len(d) == 1 {
		cr.Comma = d[0]
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyTable
	}

	order := headerOrder(records[0])
	rows := make([]*messageRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		ordered := make([]string, columnCount)
		for col, src := range order {
			if src >= 0 && src < len(rec) {
				ordered[col] = rec[src]
			}
		}
		row, err := newMessageRow(ordered)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// headerOrder maps each message column to its position in header, or -1.
func headerOrder(header []string) [columnCount]int {
	var order [columnCount]int
	for col, name := range columnNames {
		order[col] = -1
		for i, h := range header {
			h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
			if strings.EqualFold(h, name) {
				order[col] = i
				break
			}
		}
	}
	return order
}

// buildTable groups messages by track in first-seen order, inserts one
// category row ahead of each track and resolves type tree nodes.
func buildTable(messages []*messageRow) (*messageTable, error) {
	if len(messages) == 0 {
		return nil, ErrEmptyTable
	}

	tree := newTypeTree()
	var trackOrder []int64
	byTrack := make(map[int64][]*messageRow)
	for _, m := range messages {
		if _, seen := byTrack[m.track]; !seen {
			trackOrder = append(trackOrder, m.track)
		}
		byTrack[m.track] = append(byTrack[m.track], m)
		m.node = tree.add(m.cols[colType])
	}

	rows := make([]*messageRow, 0, len(messages)+len(trackOrder))
	for _, track := range trackOrder {
		msgs := byTrack[track]
		rows = append(rows, newCategoryRow(track, len(msgs)))
		rows = append(rows, msgs...)
	}
	for i, r := range rows {
		r.originalIndex = i
	}
	return &messageTable{rows: rows, tree: tree}, nil
}
