// Command concerncheck validates a concern option string and prints the
// canonical write and read concern documents it produces.
//
// Usage:
//
//	concerncheck "w=majority&wTimeoutMS=5000&journal=true"
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ikmak/concern/connstring"
)

func main() {
	root := &cobra.Command{
		Use:          "concerncheck <options>",
		Short:        "Validate concern options and print their canonical documents",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, options string) error {
	cs, err := connstring.Parse(options)
	if err != nil {
		return err
	}

	wc, err := cs.WriteConcern()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if wc != nil {
		doc, err := json.Marshal(wc.Document())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "writeConcern: %s\n", doc)
		fmt.Fprintf(out, "acknowledged: %t\n", wc.Acknowledged())
		fmt.Fprintf(out, "serverDefault: %t\n", wc.IsServerDefault())
	} else {
		fmt.Fprintln(out, "writeConcern: server default")
	}

	if rc := cs.ReadConcern(); rc != nil {
		doc, err := json.Marshal(rc.Document())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "readConcern: %s\n", doc)
	}

	return nil
}
