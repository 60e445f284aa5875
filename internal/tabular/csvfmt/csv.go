/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package csvfmt parses comma-delimited, header-first files into tables.
// It registers itself for the .csv extension; callers wire it in with a
// blank import.
package csvfmt

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/tabledata/csv-analyst/internal/tabular"
)

type loader struct{}

func init() {
	tabular.RegisterFormat(".csv", loader{})
}

// Load reads the whole file and parses it with standard CSV quoting. The
// first record is the header; blank lines are skipped by the reader. Records
// may have fewer fields than the header (padded as missing downstream) but
// never more.
func (loader) Load(path string) (*tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &tabular.ErrNotFound{Name: path}
		}
		return nil, &tabular.ErrIO{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var header []string
	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				// pe.Line counts file lines including the header; report
				// the 1-based data-row index like every other row error.
				return nil, &tabular.ErrMalformedRow{Row: pe.Line - 1, Msg: pe.Err.Error()}
			}
			return nil, &tabular.ErrIO{Path: path, Err: err}
		}
		if header == nil {
			header = record
			continue
		}
		records = append(records, record)
	}
	if header == nil {
		return nil, &tabular.ErrEmptyFile{Path: path}
	}

	return tabular.NewTable(header, records)
}
