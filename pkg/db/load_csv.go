// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package db

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"
)

// CopyFromer is the part of *pgxpool.Pool used to bulk load rows.
type CopyFromer interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// CsvSource implements the pgx.CopyFromSource interface
type CsvSource struct {
	reader *csv.Reader
	cols   []string
	err    error
}

// NewCsvSource wraps reader. The header row must already be consumed.
func NewCsvSource(reader *csv.Reader) *CsvSource {
	return &CsvSource{reader: reader}
}

func (s *CsvSource) Next() bool {
	record, err := s.reader.Read()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return false
	}
	s.cols = record
	return true
}

func (s *CsvSource) Values() ([]any, error) {
	values := make([]any, len(s.cols))
	for i, col := range s.cols {
		if col == "" {
			// Empty cells load as NULL so they are never scanned as candidates
			values[i] = nil
			continue
		}
		values[i] = col
	}
	return values, nil
}

func (s *CsvSource) Err() error {
	return s.err
}

// LoadProjectsCSV copies a CSV with a header row into table and returns the
// number of rows copied.
func LoadProjectsCSV(ctx context.Context, conn CopyFromer, table string, r io.Reader) (int64, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("error reading CSV header: %w", err)
	}

	source := NewCsvSource(reader)
	copyCount, err := conn.CopyFrom(ctx, pgx.Identifier{table}, headers, source)
	if err != nil {
		return 0, fmt.Errorf("error copying data to %s: %w", table, err)
	}
	if err := source.Err(); err != nil {
		return copyCount, fmt.Errorf("error reading CSV: %w", err)
	}

	return copyCount, nil
}
