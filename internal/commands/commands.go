package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnknownCommand is returned by Execute for a name nothing was registered under.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a console subcommand with its own flags. Run receives the positional
// arguments left after flag parsing.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds console commands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a command. fs may be nil for commands without flags; its output is
// silenced so parse errors surface only through Execute's error.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Parse splits a console line into tokens. ok is false for a blank line.
func Parse(line string) (args []string, ok bool) {
	args = strings.Fields(line)
	return args, len(args) > 0
}

// Execute runs the command named by args[0] with the rest as flags and positional arguments.
// Every flag starts from its default on each call.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	// Values from a previous run, complete or failed, must not leak into this one.
	cmd.FlagSet.VisitAll(func(f *flag.Flag) { _ = f.Value.Set(f.DefValue) })
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// Help returns one "name  usage" line per command, sorted by name.
func (r *Registry) Help() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n+"  "+r.cmds[n].Usage)
	}
	return out
}
