package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/iancoleman/strcase"
	"github.com/semlayer/go-cubejs/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io/ioutil"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
)

var loadCmd = &cobra.Command{
	Use:   "load [QUERY_FILE]",
	Short: "Run a query and print its result set",
	Long:  "Run a query read as JSON from QUERY_FILE, or from stdin when no file is given.",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
			return err
		}
		return requireConnectionFlags(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		query := readQuery(args)

		result, err := newClient().Load(context.Background(), credentials(), query)
		if err != nil {
			logger.Fatal("unable to load query results",
				"error", err)
		}

		printResult(result)
	},
}

func readQuery(args []string) *models.Query {
	var raw []byte
	var err error

	if len(args) > 0 {
		raw, err = ioutil.ReadFile(args[0])
	} else {
		raw, err = ioutil.ReadAll(os.Stdin)
	}
	if err != nil {
		logger.Fatal("unable to read query",
			"error", err)
	}

	var query models.Query
	if err := json.Unmarshal(raw, &query); err != nil {
		logger.Fatal("unable to parse query",
			"error", err)
	}

	return &query
}

func printResult(result *models.ResultSet) {
	if viper.GetString("output") == "json" {
		printJSON(result.Data)
		return
	}

	if len(result.Data) == 0 {
		fmt.Println("no rows")
		return
	}

	columns := make([]string, 0, len(result.Data[0]))
	for name := range result.Data[0] {
		columns = append(columns, name)
	}
	sort.Strings(columns)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	headers := make([]string, len(columns))
	for i, name := range columns {
		headers[i] = columnTitle(name)
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, row := range result.Data {
		values := make([]string, len(columns))
		for i, name := range columns {
			values[i] = formatValue(row[name])
		}
		fmt.Fprintln(w, strings.Join(values, "\t"))
	}
	w.Flush()
}

func printJSON(value interface{}) {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		logger.Fatal("unable to render output",
			"error", err)
	}
	fmt.Println(string(out))
}

// columnTitle humanizes a member name, "calendars.confirmed_booking_revenue"
// becomes "confirmed booking revenue".
func columnTitle(name string) string {
	parts := strings.Split(name, ".")
	return strcase.ToDelimited(parts[len(parts)-1], ' ')
}

func formatValue(value interface{}) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}
