package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/rustickingdom/talentcalc/infrastructure/i18n"
	"github.com/rustickingdom/talentcalc/infrastructure/render"
	"github.com/rustickingdom/talentcalc/internal/domain"
)

// Interpreter errors.
var (
	// ErrUnknownCommand is returned for a command name the interpreter does
	// not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command's arguments are missing or malformed.
	ErrUsage = errors.New("usage")
)

// maxSuggestionDistance is the largest edit distance at which an unknown
// command still gets a "did you mean" hint.
const maxSuggestionDistance = 2

// command is one interpreter verb.
type command struct {
	usage string
	help  string
	run   func(ctx context.Context, in *Interpreter, args []string) error
}

// Interpreter applies line-oriented commands to a Session. It is the
// terminal counterpart of the score form: each command edits one input,
// and nothing is recalculated until "calc".
type Interpreter struct {
	session *Session
	rc      i18n.RenderContext
	weights render.Weights
	out     io.Writer
	logger  *slog.Logger
	fold    cases.Caser

	commands map[string]command
}

// NewInterpreter creates an interpreter writing its responses to out.
func NewInterpreter(session *Session, rc i18n.RenderContext, weights render.Weights, out io.Writer, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	in := &Interpreter{
		session: session,
		rc:      rc,
		weights: weights,
		out:     out,
		logger:  logger,
		fold:    cases.Fold(),
	}
	in.commands = map[string]command{
		"judges":           {usage: "judges <n|+|->", help: "set, increase or decrease the number of judges", run: cmdJudges},
		"set":              {usage: "set <judge> <creativity|quality|weight> [value]", help: "edit a judge's rating or weight (half|full)", run: cmdSet},
		"criterion":        {usage: "criterion <judge> <n> [value]", help: "edit a special criterion (1-based)", run: cmdCriterion},
		"add-criterion":    {usage: "add-criterion <judge>", help: "add a special criterion", run: cmdAddCriterion},
		"remove-criterion": {usage: "remove-criterion <judge> <n>", help: "remove a special criterion (1-based)", run: cmdRemoveCriterion},
		"voters":           {usage: "voters <half|full> [value]", help: "set an audience pool's voter count", run: cmdVoters},
		"points":           {usage: "points <half|full> [value]", help: "set an audience pool's total points", run: cmdPoints},
		"calc":             {usage: "calc", help: "calculate and show the score", run: cmdCalc},
		"result":           {usage: "result", help: "show the last calculated score", run: cmdResult},
		"show":             {usage: "show", help: "show the current inputs", run: cmdShow},
		"lang":             {usage: "lang [en|ar]", help: "switch display language", run: cmdLang},
		"theme":            {usage: "theme [light|dark]", help: "switch colour theme", run: cmdTheme},
		"load":             {usage: "load <file>", help: "replace the inputs with a scoresheet file", run: cmdLoad},
		"save":             {usage: "save <file>", help: "write the inputs to a scoresheet file", run: cmdSave},
		"help":             {usage: "help", help: "list commands", run: cmdHelp},
		"quit":             {usage: "quit", help: "leave the session"},
	}
	return in
}

// RenderContext returns the current display preferences.
func (in *Interpreter) RenderContext() i18n.RenderContext { return in.rc }

// Execute runs one command line. It reports quit=true for "quit" or
// "exit". Blank lines and lines starting with '#' are ignored.
func (in *Interpreter) Execute(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}

	name := in.fold.String(fields[0])
	if name == "quit" || name == "exit" {
		return true, nil
	}

	cmd, ok := in.commands[name]
	if !ok {
		if s := in.suggest(name); s != "" {
			return false, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownCommand, fields[0], s)
		}
		return false, fmt.Errorf("%w %q, type \"help\" for a list", ErrUnknownCommand, fields[0])
	}

	in.logger.Debug("command", "name", name, "args", len(fields)-1)
	if err := cmd.run(ctx, in, fields[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			return false, fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
		}
		return false, err
	}
	return false, nil
}

// prompt shows the pre-calculation hint and names the command that
// calculates.
func (in *Interpreter) prompt() {
	fmt.Fprintln(in.out, render.Prompt(in.rc))
	fmt.Fprintf(in.out, "%s: calc\n", in.rc.Translator.T(i18n.KeyCalculateResult))
}

// Run reads commands from r until EOF, "quit" or ctx is done. Command
// errors are reported to the output and do not end the session.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	in.prompt()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(in.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(in.out)
			return scanner.Err()
		}
		quit, err := in.Execute(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(in.out, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

func (in *Interpreter) suggest(name string) string {
	best, bestDist := "", maxSuggestionDistance+1
	for _, candidate := range slices.Sorted(maps.Keys(in.commands)) {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// acknowledge reports whether an edit changed anything.
func (in *Interpreter) acknowledge(changed bool) {
	if changed {
		fmt.Fprintln(in.out, "ok")
		return
	}
	fmt.Fprintln(in.out, "no change")
}

// optional returns args[i], or "" when the value was left out to clear a field.
func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, ErrUsage
	}
	return n, nil
}

func cmdJudges(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	n := in.session.Sheet().Panel.Len()
	switch args[0] {
	case "+":
		n++
	case "-":
		n--
	default:
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return ErrUsage
		}
		n = v
	}
	in.acknowledge(in.session.SetJudgeCount(n))
	return nil
}

func cmdSet(_ context.Context, in *Interpreter, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	id, err := parsePositive(args[0])
	if err != nil {
		return err
	}
	field, ok := domain.ParseField(args[1])
	if !ok {
		return domain.NewFieldError("set", args[1], domain.ErrUnknownField)
	}
	changed, err := in.session.UpdateField(id, field, optional(args, 2))
	if err != nil {
		return err
	}
	in.acknowledge(changed)
	return nil
}

func cmdCriterion(_ context.Context, in *Interpreter, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	id, err := parsePositive(args[0])
	if err != nil {
		return err
	}
	n, err := parsePositive(args[1])
	if err != nil {
		return err
	}
	in.acknowledge(in.session.UpdateCriterion(id, n-1, optional(args, 2)))
	return nil
}

func cmdAddCriterion(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parsePositive(args[0])
	if err != nil {
		return err
	}
	in.acknowledge(in.session.AddCriterion(id))
	return nil
}

func cmdRemoveCriterion(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	id, err := parsePositive(args[0])
	if err != nil {
		return err
	}
	n, err := parsePositive(args[1])
	if err != nil {
		return err
	}
	in.acknowledge(in.session.RemoveCriterion(id, n-1))
	return nil
}

func parseTierArg(op string, args []string) (domain.Tier, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", ErrUsage
	}
	tier, ok := domain.ParseTier(args[0])
	if !ok {
		return "", domain.NewFieldError(op, args[0], domain.ErrUnknownTier)
	}
	return tier, nil
}

func cmdVoters(_ context.Context, in *Interpreter, args []string) error {
	tier, err := parseTierArg("voters", args)
	if err != nil {
		return err
	}
	changed, err := in.session.SetVoterCount(tier, optional(args, 1))
	if err != nil {
		return err
	}
	in.acknowledge(changed)
	return nil
}

func cmdPoints(_ context.Context, in *Interpreter, args []string) error {
	tier, err := parseTierArg("points", args)
	if err != nil {
		return err
	}
	changed, err := in.session.SetTotalPoints(tier, optional(args, 1))
	if err != nil {
		return err
	}
	in.acknowledge(changed)
	return nil
}

func cmdCalc(ctx context.Context, in *Interpreter, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return render.Text(in.out, in.rc, in.session.Calculate(ctx), in.weights)
}

func cmdResult(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	result, ok := in.session.Result()
	if !ok {
		in.prompt()
		return nil
	}
	if err := render.Text(in.out, in.rc, result, in.weights); err != nil {
		return err
	}
	if in.session.Changed() {
		fmt.Fprintln(in.out, "(inputs changed since this result; run \"calc\" to update)")
	}
	return nil
}

func cmdShow(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return render.Sheet(in.out, in.rc, in.session.Sheet())
}

func cmdLang(_ context.Context, in *Interpreter, args []string) error {
	switch len(args) {
	case 0:
		in.rc.Translator = in.rc.Translator.Toggle()
	case 1:
		in.rc.Translator = i18n.NewTranslator(i18n.Parse(args[0]))
	default:
		return ErrUsage
	}
	fmt.Fprintf(in.out, "%s (%s)\n", in.rc.Translator.Locale(), in.rc.Translator.Direction())
	return nil
}

func cmdTheme(_ context.Context, in *Interpreter, args []string) error {
	switch len(args) {
	case 0:
		in.rc.Theme = in.rc.Theme.Toggle()
	case 1:
		theme, err := i18n.ParseTheme(args[0])
		if err != nil {
			return err
		}
		in.rc.Theme = theme
	default:
		return ErrUsage
	}
	fmt.Fprintln(in.out, in.rc.Theme)
	return nil
}

func cmdLoad(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	sheet, err := LoadScoresheetFile(args[0])
	if err != nil {
		return err
	}
	in.acknowledge(in.session.Replace(sheet))
	return nil
}

func cmdSave(_ context.Context, in *Interpreter, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	f, err := os.Create(filepath.Clean(args[0]))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := SaveScoresheet(f, in.session.Sheet()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	fmt.Fprintln(in.out, "ok")
	return nil
}

func cmdHelp(_ context.Context, in *Interpreter, _ []string) error {
	for _, name := range slices.Sorted(maps.Keys(in.commands)) {
		c := in.commands[name]
		fmt.Fprintf(in.out, "  %-48s %s\n", c.usage, c.help)
	}
	return nil
}
