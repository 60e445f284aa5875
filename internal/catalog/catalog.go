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
	"sort"

	"github.com/tabledata/csv-analyst/internal/tabular"
)

// FileDescriptor identifies one eligible file in the data directory.
type FileDescriptor struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
}

// ListFiles enumerates the regular files directly inside the base directory
// whose extension has a registered format loader, sorted by name ascending.
// An empty directory yields an empty slice, not an error.
func (r *Resolver) ListFiles() ([]FileDescriptor, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, &tabular.ErrIO{Path: r.baseDir, Err: err}
	}

	files := make([]FileDescriptor, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !tabular.Recognized(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, &tabular.ErrIO{Path: r.baseDir, Err: err}
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, FileDescriptor{Name: entry.Name(), SizeBytes: info.Size()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
