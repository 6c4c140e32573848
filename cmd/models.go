package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"camodlib/model"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the reaction models camodlib can simulate.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range model.Names() {
			d, _ := model.Get(name)
			fmt.Printf("%-24s %2d species, %2d reactions\n", name, d.NumSpecies(), d.NumReactions())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
