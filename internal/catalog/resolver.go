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
package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tabledata/csv-analyst/internal/tabular"
)

// Resolver confines requested filenames to one base data directory. Files
// outside it are unreachable by construction.
type Resolver struct {
	baseDir string
}

// NewResolver returns a Resolver rooted at baseDir, made absolute.
func NewResolver(baseDir string) (*Resolver, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, &tabular.ErrIO{Path: baseDir, Err: err}
	}
	return &Resolver{baseDir: abs}, nil
}

// BaseDir returns the absolute base data directory.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Resolve turns a simple filename into an absolute path inside the base
// directory. The name must not contain path separators or parent segments,
// the resolved file must exist as a regular file, and any symlinks must
// stay inside the base directory.
func (r *Resolver) Resolve(name string) (string, error) {
	if name == "" {
		return "", &tabular.ErrInvalidPath{Name: name, Reason: "empty filename"}
	}
	if strings.ContainsAny(name, `/\`) {
		return "", &tabular.ErrInvalidPath{Name: name, Reason: "path separators are not allowed"}
	}
	if name == "." || name == ".." {
		return "", &tabular.ErrInvalidPath{Name: name, Reason: "parent directory segments are not allowed"}
	}

	path := filepath.Join(r.baseDir, name)
	// Join cleans the path; anything that escaped the base directory will no
	// longer have it as a prefix.
	if path != r.baseDir && !strings.HasPrefix(path, r.baseDir+string(os.PathSeparator)) {
		return "", &tabular.ErrInvalidPath{Name: name, Reason: "escapes the data directory"}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &tabular.ErrNotFound{Name: name}
		}
		return "", &tabular.ErrIO{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", &tabular.ErrNotFound{Name: name}
	}

	// The lexical check above cannot see symlinks: a link inside the base
	// directory may still point outside it. Compare the fully resolved
	// paths before handing the file out.
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", &tabular.ErrIO{Path: path, Err: err}
	}
	realBase, err := filepath.EvalSymlinks(r.baseDir)
	if err != nil {
		return "", &tabular.ErrIO{Path: r.baseDir, Err: err}
	}
	if !strings.HasPrefix(real, realBase+string(os.PathSeparator)) {
		return "", &tabular.ErrInvalidPath{Name: name, Reason: "escapes the data directory"}
	}
	return path, nil
}
