// Package cli implements the spend and influencer subcommands.
//
// Parsing and execution are split: Parse validates the arguments without
// touching storage and returns an Action, which the caller runs once the
// database and services have been wired.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"campaigen/internal/services"
	"campaigen/internal/storage"

	"github.com/sirupsen/logrus"
)

// ErrUsage is returned when the arguments do not name a known command or
// omit a required flag. The usage text has already been written.
var ErrUsage = errors.New("invalid usage")

// Services are the application services a command may call.
type Services struct {
	Spend       *services.SpendTrackingService
	Influencers *services.InfluencerService
}

// NewServices wires stores and services over db.
func NewServices(db *storage.DB, log logrus.FieldLogger) *Services {
	return &Services{
		Spend:       services.NewSpendTrackingService(storage.NewSpendRecordStore(db), log),
		Influencers: services.NewInfluencerService(storage.NewInfluencerStore(db), log),
	}
}

// Action executes a parsed command.
type Action func(ctx context.Context, svc *Services, stdout io.Writer) error

type command struct {
	group   string
	name    string
	summary string
	parse   func(args []string, stderr io.Writer) (Action, error)
}

var commands = []command{
	{"spend", "add", "Add a new spend record.", parseSpendAdd},
	{"spend", "list", "List all spend records.", parseSpendList},
	{"spend", "get", "Show one spend record.", parseSpendGet},
	{"spend", "delete", "Delete a spend record.", parseSpendDelete},
	{"influencer", "add", "Add a new influencer.", parseInfluencerAdd},
	{"influencer", "list", "List all influencers.", parseInfluencerList},
	{"influencer", "get", "Show one influencer.", parseInfluencerGet},
	{"influencer", "delete", "Delete an influencer.", parseInfluencerDelete},
}

var groupSummaries = map[string]string{
	"spend":      "Manage marketing spend records.",
	"influencer": "Manage influencer information.",
}

// Parse resolves "<group> <command> [flags]" to an Action.
// It returns flag.ErrHelp when help was requested.
func Parse(args []string, stderr io.Writer) (Action, error) {
	if len(args) == 0 {
		Usage(stderr)
		return nil, fmt.Errorf("%w: missing command", ErrUsage)
	}

	group := args[0]
	if isHelp(group) {
		Usage(stderr)
		return nil, flag.ErrHelp
	}
	if _, ok := groupSummaries[group]; !ok {
		Usage(stderr)
		return nil, fmt.Errorf("%w: unknown command %q", ErrUsage, group)
	}

	if len(args) < 2 {
		groupUsage(stderr, group)
		return nil, fmt.Errorf("%w: missing %s subcommand", ErrUsage, group)
	}
	if isHelp(args[1]) {
		groupUsage(stderr, group)
		return nil, flag.ErrHelp
	}

	for _, c := range commands {
		if c.group == group && c.name == args[1] {
			return c.parse(args[2:], stderr)
		}
	}

	groupUsage(stderr, group)
	return nil, fmt.Errorf("%w: unknown %s subcommand %q", ErrUsage, group, args[1])
}

// Usage writes the top-level help text.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Campaigen CLI for managing marketing campaign data.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: campaigen [-db <path>] <command> <subcommand> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, g := range []string{"spend", "influencer"} {
		fmt.Fprintf(w, "  %-12s %s\n", g, groupSummaries[g])
	}
}

func groupUsage(w io.Writer, group string) {
	fmt.Fprintf(w, "%s\n\nUsage: campaigen %s <subcommand> [flags]\n\nSubcommands:\n", groupSummaries[group], group)
	for _, c := range commands {
		if c.group == group {
			fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
		}
	}
}

func isHelp(arg string) bool {
	switch strings.TrimLeft(arg, "-") {
	case "h", "help":
		return true
	}
	return false
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(group, name, summary string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(group+" "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "%s\n\nUsage: campaigen %s %s [flags]\n", summary, group, name)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses args and rejects positional leftovers and missing required flags.
func parseFlags(fs *flag.FlagSet, args []string, required ...string) (map[string]bool, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(fs.Args(), " "))
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var missing []string
	for _, name := range required {
		if !set[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		fs.Usage()
		return nil, fmt.Errorf("%w: missing required flags: %s", ErrUsage, strings.Join(missing, ", "))
	}
	return set, nil
}
