// Command ctldump prints what a GrADS descriptor declares and, on request,
// the record index of its data file.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/batchatco/go-native-grads/grads/ctl"
	"github.com/batchatco/go-native-grads/grads/data"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	records  bool
	varName  string
	format   string
	logLevel int
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds and executes the command, so tests can drive it.
func run(outW io.Writer, args []string) error {
	cmd := newRootCmd(outW)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd(outW io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "ctldump [flags] file.ctl",
		Short: "Print the contents of a GrADS descriptor file.",
		Long: `ctldump decodes a GrADS descriptor (control) file and prints its
grid, time axis and variables. With --records it also prints the record
index: the position of every 2D field in the binary data file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(outW, args[0], opts)
		},
	}
	cmd.SetOut(outW)
	cmd.SetErr(outW)
	addFlags(cmd.Flags(), opts)
	return cmd
}

func addFlags(fs *pflag.FlagSet, opts *options) {
	fs.BoolVarP(&opts.records, "records", "r", false, "print the record index")
	fs.StringVar(&opts.varName, "var", "", "only print records of this variable (implies --records)")
	fs.StringVarP(&opts.format, "format", "f", "text", "output format: text, json or pretty")
	fs.IntVar(&opts.logLevel, "log-level", 2, "0 (fatal only) to 4 (debug)")
}

func dump(w io.Writer, fname string, opts *options) error {
	ctl.SetLogLevel(opts.logLevel)
	data.SetLogLevel(opts.logLevel)

	c, err := ctl.Parse(fname)
	if err != nil {
		return err
	}
	records := c.Records
	if opts.varName != "" {
		if _, has := c.Variable(opts.varName); !has {
			return fmt.Errorf("%s: no variable %q", fname, opts.varName)
		}
		records = c.RecordsFor(opts.varName)
		opts.records = true
	}

	switch opts.format {
	case "text":
		printSummary(w, c)
		if opts.records {
			return printRecords(w, c, records)
		}
	case "json":
		view := *c
		view.Records = nil
		if opts.records {
			view.Records = records
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(&view)
	case "pretty":
		view := *c
		view.Records = nil
		if opts.records {
			view.Records = records
		}
		_, err = pretty.Fprintf(w, "%# v\n", view)
		return err
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
	return nil
}

func printSummary(w io.Writer, c *ctl.Ctl) {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "dset:\t%s\n", c.Dset)
	fmt.Fprintf(tw, "title:\t%s\n", c.Title)
	fmt.Fprintf(tw, "options:\t%s\n", strings.Join(c.Options, " "))
	fmt.Fprintf(tw, "byte order:\t%s\n", c.ByteOrder)
	if c.Undef != nil {
		fmt.Fprintf(tw, "undef:\t%g\n", *c.Undef)
	}
	for _, dim := range []*ctl.Dimension{c.XDef, c.YDef, c.ZDef} {
		if dim == nil {
			continue
		}
		fmt.Fprintf(tw, "%s:\t%d %s %g .. %g\n", dim.Name, dim.Count, dim.Type,
			dim.Values[0], dim.Values[len(dim.Values)-1])
	}
	if c.TDef != nil {
		fmt.Fprintf(tw, "tdef:\t%d %s from %s every %s\n", c.TDef.Count, c.TDef.Type,
			c.TDef.Start.Format(time.RFC3339), c.TDef.Step)
	}
	if c.StartTime != nil {
		fmt.Fprintf(tw, "start time:\t%s\n", c.StartTime.Format(time.RFC3339))
	}
	if c.ForecastTime != nil {
		fmt.Fprintf(tw, "forecast time:\t%s\n", *c.ForecastTime)
	}
	fmt.Fprintf(tw, "vars:\t%d\n", len(c.Vars))
	for _, v := range c.Vars {
		fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\n", v.Name, v.Levels, v.Units, v.Description)
	}
	fmt.Fprintf(tw, "records:\t%d\n", len(c.Records))
	tw.Flush()
}

func printRecords(w io.Writer, c *ctl.Ctl, records []ctl.Record) error {
	// Offsets need a horizontal grid; nothing is read.
	r, err := data.New(c, nil)
	if err != nil && !errors.Is(err, data.ErrNoGrid) {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tNAME\tTYPE\tLEVEL\tLEVEL INDEX\tVALID TIME\tOFFSET")
	for _, rec := range records {
		offset := "-"
		if r != nil {
			offset = fmt.Sprint(r.Offset(rec))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%d\t%s\t%s\n", rec.Index, rec.Name, rec.LevelType,
			rec.Level, rec.LevelIndex, rec.ValidTime.Format(time.RFC3339), offset)
	}
	return tw.Flush()
}
