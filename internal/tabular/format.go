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
	"log"
	"path/filepath"
	"strings"
	"sync"
)

// FormatLoader parses one file format into a Table. Implementations register
// themselves per extension from an init function and are wired in with a
// blank import.
type FormatLoader interface {
	Load(path string) (*Table, error)
}

var (
	formatLoaders = make(map[string]FormatLoader)
	mu            sync.RWMutex
)

// RegisterFormat registers a loader for a file extension such as ".csv".
func RegisterFormat(ext string, loader FormatLoader) {
	mu.Lock()
	defer mu.Unlock()
	ext = strings.ToLower(ext)
	if _, exists := formatLoaders[ext]; exists {
		log.Printf("WARN: Format loader for '%s' is being overwritten.", ext)
	}
	formatLoaders[ext] = loader
}

// Recognized reports whether a filename carries an extension with a
// registered loader. The comparison is case-insensitive.
func Recognized(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := formatLoaders[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Load parses the file at path with the loader registered for its extension.
func Load(path string) (*Table, error) {
	mu.RLock()
	loader, ok := formatLoaders[strings.ToLower(filepath.Ext(path))]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
	return loader.Load(path)
}
