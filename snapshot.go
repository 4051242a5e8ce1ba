package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// --- Wire format ---

const snapshotVersion = 1

type messageRowDTO struct {
	Cols []string `json:"cols"`
	ID   uint64   `json:"id"`
}

// snapshotDTO holds messages only. Category rows are rebuilt on load and
// filter or sort state is never written.
type snapshotDTO struct {
	Version int             `json:"version"`
	Header  []string        `json:"header"`
	Rows    []messageRowDTO `json:"rows"`
}

func toDTORow(r *messageRow) messageRowDTO {
	return messageRowDTO{
		Cols: append([]string(nil), r.cols...),
		ID:   r.id,
	}
}

func readSnapshotFile(path string) (*snapshotDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if dto.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d not supported (want %d)", dto.Version, snapshotVersion)
	}
	return &dto, nil
}

// messages rebuilds the rows of the snapshot, honoring its header order.
func (s *snapshotDTO) messages() ([]*messageRow, error) {
	if len(s.Rows) == 0 {
		return nil, ErrEmptyTable
	}
	header := s.Header
	if len(header) == 0 {
		header = columnNames[:]
	}
	order := headerOrder(header)

	rows := make([]*messageRow, 0, len(s.Rows))
	for i, dr := range s.Rows {
		ordered := make([]string, columnCount)
		for col, src := range order {
			if src >= 0 && src < len(dr.Cols) {
				ordered[col] = dr.Cols[src]
			}
		}
		row, err := newMessageRow(ordered)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// --- Public API ---

// SaveTable writes every message of d in natural order to a JSON file.
func SaveTable(d *dataState, path string) error {
	dto := snapshotDTO{
		Version: snapshotVersion,
		Header:  make([]string, 0, len(d.header)),
		Rows:    make([]messageRowDTO, 0, len(d.rows)),
	}
	for _, col := range d.header {
		dto.Header = append(dto.Header, col.Name)
	}
	for _, r := range d.rows {
		if r.category {
			continue
		}
		dto.Rows = append(dto.Rows, toDTORow(r))
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// ExportVisible writes the messages currently shown, in display order, to a
// CSV file. Category rows are left out.
func ExportVisible(d *dataState, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, 0, len(d.header))
	for _, col := range d.header {
		header = append(header, col.Name)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, idx := range d.filteredIndices {
		if idx < 0 || idx >= len(d.rows) {
			return fmt.Errorf("filtered index %d out of range", idx)
		}
		r := d.rows[idx]
		if r.category {
			continue
		}
		if err := w.Write(r.cols); err != nil {
			return fmt.Errorf("write row %d: %w", idx, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
