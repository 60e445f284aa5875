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
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tabledata/csv-analyst/internal/utils"
)

var listFilesOut string

var listFilesCmd = &cobra.Command{
	Use:   "list-files",
	Short: "List the CSV files in the data directory",
	RunE:  runListFiles,
}

func runListFiles(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	files, err := svc.ListFiles()
	if err != nil {
		return err
	}

	if listFilesOut != "" {
		if err := utils.WriteJSONFile(listFilesOut, files); err != nil {
			return err
		}
		fmt.Printf("File list written to: %s\n", listFilesOut)
		return nil
	}

	if len(files) == 0 {
		fmt.Printf("No CSV files found in %s\n", svc.DataDir())
		return nil
	}
	bold := color.New(color.Bold)
	bold.Printf("%-40s %12s\n", "NAME", "SIZE")
	for _, f := range files {
		fmt.Printf("%-40s %12d\n", f.Name, f.SizeBytes)
	}
	return nil
}

func init() {
	listFilesCmd.Flags().StringVarP(&listFilesOut, "out", "o", "", "Write the result as JSON to this file instead of stdout")
}
