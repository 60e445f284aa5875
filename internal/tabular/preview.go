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
package tabular

// PreviewResult holds the leading rows of a table together with the total
// row count, so a caller can tell a short file from a truncated preview.
type PreviewResult struct {
	Columns   []string
	Rows      [][]Cell
	TotalRows int
}

// Preview returns the first min(n, row count) rows in original order.
// n greater than the row count is not an error; n <= 0 is.
func Preview(t *Table, n int) (*PreviewResult, error) {
	if n <= 0 {
		return nil, &ErrInvalidArgument{Msg: "n must be a positive integer"}
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &PreviewResult{
		Columns:   t.Columns,
		Rows:      t.Rows[:n],
		TotalRows: len(t.Rows),
	}, nil
}
