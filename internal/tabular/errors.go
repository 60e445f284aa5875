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
	"fmt"
	"strings"
)

// ErrInvalidPath represents a requested filename that is not a plain name
// inside the data directory.
type ErrInvalidPath struct {
	Name   string
	Reason string
}

// ErrNotFound represents a filename that resolved safely but does not exist
// as a regular file.
type ErrNotFound struct {
	Name string
}

// ErrEmptyFile represents a file with no header line.
type ErrEmptyFile struct {
	Path string
}

// ErrMalformedHeader represents a duplicate column name after trimming.
type ErrMalformedHeader struct {
	Column string
}

// ErrMalformedRow represents a data row that cannot be fit to the header.
// Row is the 1-based data row index (the header is row 0).
type ErrMalformedRow struct {
	Row    int
	Fields int
	Want   int
	Msg    string
}

// ErrIO wraps an underlying filesystem or decoding failure.
type ErrIO struct {
	Path string
	Err  error
}

// ErrInvalidArgument represents a caller-supplied argument outside its
// allowed range.
type ErrInvalidArgument struct {
	Msg string
}

// ErrUnknownColumn represents a reference to a column the table does not have.
type ErrUnknownColumn struct {
	Column    string
	Available []string
}

func (e *ErrInvalidPath) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Name, e.Reason)
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("file not found: %s", e.Name)
}

func (e *ErrEmptyFile) Error() string {
	return fmt.Sprintf("empty file (no header line): %s", e.Path)
}

func (e *ErrMalformedHeader) Error() string {
	return fmt.Sprintf("malformed header: duplicate column %q", e.Column)
}

func (e *ErrMalformedRow) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("malformed row %d: %s", e.Row, e.Msg)
	}
	return fmt.Sprintf("malformed row %d: %d fields, header has %d", e.Row, e.Fields, e.Want)
}

func (e *ErrIO) Error() string {
	return fmt.Sprintf("io error reading %s: %v", e.Path, e.Err)
}

func (e *ErrIO) Unwrap() error {
	return e.Err
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Msg)
}

func (e *ErrUnknownColumn) Error() string {
	return fmt.Sprintf("column %q not found, available: %s", e.Column, strings.Join(e.Available, ", "))
}
