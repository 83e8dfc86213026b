package cmd

import (
	"context"
	"fmt"
	"github.com/semlayer/go-cubejs/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
	"strings"
	"text/tabwriter"
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "List cubes with their measures, dimensions and segments",
	Args:  requireConnectionFlags,
	Run: func(cmd *cobra.Command, args []string) {
		meta, err := newClient().Meta(context.Background(), credentials())
		if err != nil {
			logger.Fatal("unable to load cube metadata",
				"error", err)
		}

		printMeta(meta)
	},
}

func printMeta(meta *models.Meta) {
	if viper.GetString("output") == "json" {
		printJSON(meta.Cubes)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "cube\tmember\tkind\ttype")
	for _, cube := range meta.Cubes {
		printMembers(w, cube.Name, "measure", cube.Measures)
		printMembers(w, cube.Name, "dimension", cube.Dimensions)
		printMembers(w, cube.Name, "segment", cube.Segments)
	}
	w.Flush()
}

func printMembers(w *tabwriter.Writer, cube, kind string, members []models.MemberMeta) {
	for _, member := range members {
		fmt.Fprintln(w, strings.Join([]string{cube, member.Name, kind, member.Type}, "\t"))
	}
}
