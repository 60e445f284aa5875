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
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tabledata/csv-analyst/internal/utils"
)

var (
	previewN   int
	previewOut string
)

var previewCmd = &cobra.Command{
	Use:     "preview <filename>",
	Short:   "Show the header and first N rows of a CSV file",
	Example: `csv-analyst preview games.csv -n 10 --data-dir ./data`,
	Args:    cobra.ExactArgs(1),
	RunE:    runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	resp, err := svc.Preview(args[0], previewN)
	if err != nil {
		return err
	}

	if previewOut == "default" {
		previewOut = utils.GetDefaultOutputFilePath(args[0], "preview")
	}
	if previewOut != "" {
		if err := utils.WriteJSONFile(previewOut, resp); err != nil {
			return err
		}
		fmt.Printf("Preview written to: %s\n", previewOut)
		return nil
	}

	printRows(resp.Columns, resp.Rows)
	fmt.Printf("\n%d of %d rows\n", len(resp.Rows), resp.TotalRowCount)
	return nil
}

// printRows renders column-keyed rows as an aligned table; missing cells show
// as a faint placeholder so they read differently from empty strings.
func printRows(columns []string, rows []map[string]any) {
	bold := color.New(color.Bold)
	bold.Println(strings.Join(columns, " | "))
	faint := color.New(color.Faint)
	for _, row := range rows {
		parts := make([]string, len(columns))
		for i, col := range columns {
			switch v := row[col].(type) {
			case nil:
				parts[i] = faint.Sprint("<missing>")
			case float64:
				parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
			default:
				parts[i] = fmt.Sprint(v)
			}
		}
		fmt.Println(strings.Join(parts, " | "))
	}
}

func init() {
	previewCmd.Flags().IntVarP(&previewN, "rows", "n", 5, "Number of leading rows to show")
	previewCmd.Flags().StringVar(&previewOut, "out", "", "Write the result as JSON to this file instead of stdout (bare --out derives the path from the filename)")
	previewCmd.Flags().Lookup("out").NoOptDefVal = "default"
}
