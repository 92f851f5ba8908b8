package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/armon/go-radix"
	"github.com/spf13/cobra"

	"tdscan/internal/batch"
	"tdscan/internal/clog"
	"tdscan/internal/config"
	"tdscan/internal/nucleotide"
	"tdscan/internal/seqio"
	"tdscan/internal/topk"
)

// shellGroups indexes loaded sequence groups by name in a radix tree, so the
// "groups" command below can answer prefix queries (e.g. every group whose
// name starts with "rep") without a linear scan, the same way a CLI that
// autocompletes flag or branch names by prefix would.
type shellGroups struct {
	tree *radix.Tree
}

func newShellGroups() *shellGroups {
	return &shellGroups{tree: radix.New()}
}

func (g *shellGroups) put(name string, group seqio.Group) {
	g.tree.Insert(name, group)
}

func (g *shellGroups) get(name string) (seqio.Group, bool) {
	v, ok := g.tree.Get(name)
	if !ok {
		return seqio.Group{}, false
	}
	return v.(seqio.Group), true
}

func (g *shellGroups) withPrefix(prefix string) []string {
	var names []string
	g.tree.WalkPrefix(prefix, func(name string, _ interface{}) bool {
		names = append(names, name)
		return false
	})
	return names
}

// newRunTestsCmd launches an interactive shell for loading sequence groups
// and scoring them against the current configuration repeatedly, without
// re-invoking the process per file, via abiosoft/ishell.
func newRunTestsCmd(logger *clog.Logger, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run-tests",
		Short: "interactive shell for exploratory batch runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runShell(logger, cfg)
			return nil
		},
	}
	return cmd
}

func runShell(logger *clog.Logger, cfg *config.Config) {
	groups := newShellGroups()
	shell := ishell.New()
	shell.SetPrompt("tdscan> ")
	shell.Println("tdscan interactive shell. Type 'help' for commands, 'exit' to quit.")

	shell.AddCmd(&ishell.Cmd{
		Name: "load",
		Help: "load <name> <fasta-file>: read a sequence group into memory",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Println("usage: load <name> <fasta-file>")
				return
			}
			name, path := c.Args[0], c.Args[1]
			f, err := os.Open(path)
			if err != nil {
				c.Println("error:", err)
				return
			}
			defer f.Close()
			group, err := seqio.Read(f)
			if err != nil {
				c.Println("error:", err)
				return
			}
			groups.put(name, group)
			c.Printf("loaded %q: %d sequences\n", name, len(group.Sequences))
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "groups",
		Help: "groups [prefix]: list loaded sequence groups, optionally by name prefix",
		Func: func(c *ishell.Context) {
			prefix := ""
			if len(c.Args) > 0 {
				prefix = c.Args[0]
			}
			names := groups.withPrefix(prefix)
			if len(names) == 0 {
				c.Println("(none)")
				return
			}
			c.Println(strings.Join(names, "\n"))
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "score",
		Help: "score <name>: run a batch scoring pass over a loaded group using the current configuration",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Println("usage: score <name>")
				return
			}
			group, ok := groups.get(c.Args[0])
			if !ok {
				c.Printf("no such group %q\n", c.Args[0])
				return
			}
			summary, err := scoreGroup(cfg, c.Args[0], group)
			if err != nil {
				c.Println("error:", err)
				return
			}
			c.Printf("%d results in %s\n", len(summary.Results), summary.Elapsed)
			for _, r := range summary.Results {
				c.Printf("%d\t%d\t%g\n", r.Start, r.SegmentLength, r.Cost)
			}
		},
	})

	shell.Run()
}

func scoreGroup(cfg *config.Config, name string, group seqio.Group) (batch.RunSummary, error) {
	sink := batch.NewCollector()
	triple := batch.Triple{
		Group:   batch.Group{Name: name, Sequences: group.Sequences},
		Algo:    cfg.Algorithm,
		Threads: cfg.Threads,
	}
	params := batch.Params{
		MinLength:  cfg.MinLength,
		MaxLength:  cfg.MaxLength,
		LengthStep: cfg.LengthStep,
		Capacity:   cfg.Capacity,
		Epsilon:    topk.Epsilon(cfg.Epsilon),
		States:     nucleotide.Bases[:],
		CostFn:     hammingCost,
	}
	if err := batch.Run(context.Background(), []batch.Triple{triple}, params, 1, sink); err != nil {
		return batch.RunSummary{}, err
	}
	summaries := sink.Summaries()
	if len(summaries) == 0 {
		return batch.RunSummary{}, fmt.Errorf("run-tests: no results produced")
	}
	return summaries[0], nil
}
