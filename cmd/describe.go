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

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tabledata/csv-analyst/internal/utils"
)

var describeOut string

var describeCmd = &cobra.Command{
	Use:     "describe <filename>",
	Short:   "Compute per-column summary statistics for a CSV file",
	Example: `csv-analyst describe games.csv --data-dir ./data`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	resp, err := svc.Describe(args[0])
	if err != nil {
		return err
	}

	if describeOut == "default" {
		describeOut = utils.GetDefaultOutputFilePath(args[0], "describe")
	}
	if describeOut != "" {
		if err := utils.WriteJSONFile(describeOut, resp); err != nil {
			return err
		}
		fmt.Printf("Summary written to: %s\n", describeOut)
		return nil
	}

	bold := color.New(color.Bold)
	for _, col := range resp.Columns {
		s := resp.Summary[col]
		bold.Printf("%s (%s)\n", col, s.Type)
		fmt.Printf("  non-missing: %d  missing: %d\n", s.NonMissing, s.Missing)
		if s.Min != nil {
			fmt.Printf("  min: %s  max: %s  mean: %s\n",
				formatFloat(*s.Min), formatFloat(*s.Max), formatFloat(*s.Mean))
		}
		if s.Distinct != nil {
			fmt.Printf("  distinct: %d", *s.Distinct)
			if s.MostFrequent != nil {
				fmt.Printf("  most frequent: %q", *s.MostFrequent)
			}
			fmt.Println()
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func init() {
	describeCmd.Flags().StringVar(&describeOut, "out", "", "Write the result as JSON to this file instead of stdout (bare --out derives the path from the filename)")
	describeCmd.Flags().Lookup("out").NoOptDefVal = "default"
}
