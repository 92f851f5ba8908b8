package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tdscan/internal/clog"
	"tdscan/internal/nucleotide"
	"tdscan/internal/refset"
)

func renderSequence(seq []nucleotide.Nucleotide) string {
	var sb strings.Builder
	for _, n := range seq {
		sb.WriteByte(n.Abbreviation())
	}
	return sb.String()
}

// newGenerateReferencesCmd fetches a reference sequence set over FTP and
// writes it back out as FASTA, so a later run can score it without a live
// network round trip every time.
func newGenerateReferencesCmd(logger *clog.Logger) *cobra.Command {
	var addr, user, pass, remotePath, outPath string

	cmd := &cobra.Command{
		Use:   "generate-references",
		Short: "fetch a reference sequence set over FTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" || remotePath == "" {
				return fmt.Errorf("generate-references: --addr and --path are required")
			}
			group, err := refset.Fetch(refset.Source{
				Addr: addr,
				User: user,
				Pass: pass,
				Path: remotePath,
			})
			if err != nil {
				return err
			}
			logger.Infof("fetched %d reference sequences from %s%s", len(group.Sequences), addr, remotePath)

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}
			for i, name := range group.Names {
				if _, err := fmt.Fprintf(out, ">%s\n%s\n", name, renderSequence(group.Sequences[i])); err != nil {
					return fmt.Errorf("generate-references: writing %s: %w", name, err)
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", "", "FTP server address, host:port")
	flags.StringVar(&user, "user", "", "FTP username (default anonymous)")
	flags.StringVar(&pass, "pass", "", "FTP password (ignored without --user, which logs in as anonymous)")
	flags.StringVar(&remotePath, "path", "", "remote FASTA path to retrieve")
	flags.StringVarP(&outPath, "out", "o", "", "output path (default: stdout)")
	return cmd
}
