// Package ingest turns uploaded tabular text into raw records for the
// analysis pipeline. The header row supplies field names; every cell stays a
// string here — numeric coercion belongs to the engine.
package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/adlens/campaign-brief-go/internal/models"
)

var ErrNoHeader = errors.New("csv: missing header row")

// ParseCSV reads header-driven CSV into raw records. The delimiter is
// auto-detected among comma, semicolon and tab on the header line. Ragged
// rows are tolerated: extra cells are dropped, missing cells stay absent.
// Fully blank rows are skipped.
func ParseCSV(r io.Reader) ([]models.RawRecord, error) {
	br := bufio.NewReader(r)

	cr := csv.NewReader(br)
	cr.Comma = detectDelimiter(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []models.RawRecord
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(models.RawRecord, len(header))
		blank := true
		for i, name := range header {
			if i >= len(cells) || name == "" {
				continue
			}
			v := strings.TrimSpace(cells[i])
			if v != "" {
				blank = false
			}
			row[name] = v
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// detectDelimiter mira la línea de cabecera sin consumirla.
func detectDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(4096)
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	best, sep := 0, ','
	for _, c := range []rune{',', ';', '\t'} {
		if n := strings.Count(line, string(c)); n > best {
			best, sep = n, c
		}
	}
	return sep
}
