package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/olfenv/envcov"
)

// newDefaultsCmd exposes the library's diagnostic "defaults" mode: the full
// set of recognized options with default values and constraints. It needs
// no size argument and cannot fail.
func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "List recognized options with defaults and constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			return printDefaults(jsonOut)
		},
	}
}

func printDefaults(jsonOut bool) error {
	defs := envcov.Defaults()
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPTION\tDEFAULT\tCONSTRAINT\tMEANING")
	for _, d := range defs {
		fmt.Fprintf(tw, "%s\t%v\t%s\t%s\n", d.Name, d.Value, d.Constraint, d.Meaning)
	}
	return tw.Flush()
}

// newModelsCmd lists the closed model set, marking the models that need a
// base matrix.
func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List generation models",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			models := envcov.Models()

			if jsonOut {
				type row struct {
					Name         string `json:"name"`
					RequiresBase bool   `json:"requires_base"`
				}
				rows := make([]row, 0, len(models))
				for _, m := range models {
					rows = append(rows, row{Name: m.String(), RequiresBase: m.RequiresBase()})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			for _, m := range models {
				if m.RequiresBase() {
					fmt.Printf("%s (requires --base)\n", m)
				} else {
					fmt.Println(m)
				}
			}
			return nil
		},
	}
}
