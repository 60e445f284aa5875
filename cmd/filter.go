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

	"github.com/spf13/cobra"

	"github.com/tabledata/csv-analyst/internal/utils"
)

var (
	filterLimit int
	filterOut   string
)

var filterCmd = &cobra.Command{
	Use:   "filter <filename> <column> <value>",
	Short: "Show the rows where a column equals a value",
	Long: `Filters rows by exact column-value match. The value is coerced to the
column's inferred type: numeric columns compare numerically, text columns
compare case-sensitively. Missing cells never match.`,
	Example: `csv-analyst filter games.csv genre "Strategy" --limit 20`,
	Args:    cobra.ExactArgs(3),
	RunE:    runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	resp, err := svc.FilterEquals(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	if filterLimit > 0 && len(resp.Rows) > filterLimit {
		resp.Rows = resp.Rows[:filterLimit]
	}

	if filterOut == "default" {
		filterOut = utils.GetDefaultOutputFilePath(args[0], "filter")
	}
	if filterOut != "" {
		if err := utils.WriteJSONFile(filterOut, resp); err != nil {
			return err
		}
		fmt.Printf("Matching rows written to: %s\n", filterOut)
		return nil
	}

	printRows(resp.Columns, resp.Rows)
	fmt.Printf("\n%d matching rows\n", len(resp.Rows))
	return nil
}

func init() {
	filterCmd.Flags().IntVar(&filterLimit, "limit", 0, "Maximum rows to show; 0 means unlimited")
	filterCmd.Flags().StringVar(&filterOut, "out", "", "Write the result as JSON to this file instead of stdout (bare --out derives the path from the filename)")
	filterCmd.Flags().Lookup("out").NoOptDefVal = "default"
}
