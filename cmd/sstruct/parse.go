package main

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-sstruct"
)

func (a *app) newParseCmd(use, short string, printMeta bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [filename]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			meta := sstruct.NewRecord()
			opts := []sstruct.Option{
				sstruct.Meta(meta),
				sstruct.Logger(a.log),
				sstruct.FileSystem(a.fs),
				sstruct.TrimValue(!a.v.GetBool("no_trim_value")),
				sstruct.TrimMeta(!a.v.GetBool("no_trim_meta")),
			}

			var (
				values *sstruct.Record
				err    error
			)
			if len(args) == 1 {
				values, err = sstruct.ParseFile(args[0], opts...)
			} else {
				values, err = sstruct.ParseStream(cmd.InOrStdin(), opts...)
			}
			if err != nil {
				return err
			}

			if printMeta {
				return writeRecord(cmd.OutOrStdout(), meta)
			}
			return writeRecord(cmd.OutOrStdout(), values)
		},
	}
}

func writeRecord(w io.Writer, r *sstruct.Record) error {
	out, err := json.Marshal(r, jsontext.WithIndent("    "), jsontext.AllowInvalidUTF8(true))
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}
