// ABOUTME: Command rttidump prints the hierarchy descriptors of the fixture types
// ABOUTME: Shows blob blocks, ambiguous ancestors and an optional DOT graph

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tliron/commonlog"

	"github.com/prateek/rtti"
	"github.com/prateek/rtti/hierarchy"
	"github.com/prateek/rtti/rttitest"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("rttidump")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("rttidump", flag.ContinueOnError)
	types := fs.String("type", "", "comma-separated type names to dump (default all)")
	dot := fs.Bool("dot", false, "print the hierarchy as Graphviz DOT instead")
	verbose := fs.Int("v", 0, "log verbosity")

	if err := fs.Parse(args); err != nil {
		return err
	}
	commonlog.Configure(*verbose, nil)

	r := rtti.NewRegistry()
	if err := rttitest.RegisterIn(r); err != nil {
		return fmt.Errorf("register fixtures: %w", err)
	}
	g, err := hierarchy.FromRegistry(r)
	if err != nil {
		return err
	}

	if *dot {
		fmt.Fprint(out, hierarchy.DOT(g, "rtti"))
		return nil
	}

	want := make(map[string]bool)
	for _, name := range strings.Split(*types, ",") {
		if name = strings.TrimSpace(name); name != "" {
			want[name] = true
		}
	}

	dumped := 0
	for _, e := range r.Entries() {
		if len(want) > 0 && !want[e.Name] {
			continue
		}
		info, err := r.TypeInfo(e.Type)
		if err != nil {
			return err
		}
		if err := dump(out, g, info); err != nil {
			return err
		}
		delete(want, e.Name)
		dumped++
	}

	if len(want) > 0 {
		missing := make([]string, 0, len(want))
		for name := range want {
			missing = append(missing, name)
		}
		sort.Strings(missing)
		return fmt.Errorf("unknown types: %s", strings.Join(missing, ", "))
	}
	log.Debugf("dumped %d types", dumped)
	return nil
}

// dump prints one descriptor
func dump(out io.Writer, g *hierarchy.Graph, info *rtti.TypeInfo) error {
	data := info.Data()
	blocks, err := data.Blocks()
	if err != nil {
		return fmt.Errorf("%s: %w", info.Name(), err)
	}

	fmt.Fprintf(out, "%s (id %d): value %s, descriptor %s, %d blocks\n",
		info.Name(), info.ID(),
		humanize.Bytes(uint64(info.Type().Size())),
		humanize.Bytes(uint64(len(data))),
		len(blocks))

	for _, blk := range blocks {
		names := make([]string, len(blk.IDs))
		for i, id := range blk.IDs {
			names[i] = g.Name(rtti.TypeID(id))
		}
		fmt.Fprintf(out, "  @%-4d %s\n", blk.Offset, strings.Join(names, " > "))
	}

	if amb := hierarchy.Ambiguous(g, info.ID()); len(amb) > 0 {
		names := make([]string, len(amb))
		for i, id := range amb {
			names[i] = g.Name(id)
		}
		fmt.Fprintf(out, "  ambiguous: %s\n", strings.Join(names, ", "))

		idom := hierarchy.Dominators(g, info.ID())
		for _, id := range amb {
			fmt.Fprintf(out, "    %s joins at %s\n", g.Name(id), g.Name(idom[id]))
		}
	}
	return nil
}
