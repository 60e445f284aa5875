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

import (
	"strconv"
)

// CellKind tags a single table value. A missing value is an explicit state,
// distinct from the empty string.
type CellKind int

const (
	KindMissing CellKind = iota
	KindNumber
	KindText
)

// Cell is one tagged value. Number is only meaningful for KindNumber; Text
// keeps the raw field for both number and text cells.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// MissingCell is the canonical missing value.
var MissingCell = Cell{Kind: KindMissing}

// Value returns the cell as a JSON-renderable value: float64, string or nil.
func (c Cell) Value() any {
	switch c.Kind {
	case KindNumber:
		return c.Number
	case KindText:
		return c.Text
	default:
		return nil
	}
}

// ColumnType is the inferred whole-column type. It is decided once at load
// time so every operation agrees on it.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeNumber
)

func (t ColumnType) String() string {
	if t == TypeNumber {
		return "numeric"
	}
	return "text"
}

// parseNumber reports whether s is a plain decimal number: optional sign,
// digits, optional fraction and exponent. Inf/NaN spellings, hex floats,
// digit separators and surrounding whitespace do not count.
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
