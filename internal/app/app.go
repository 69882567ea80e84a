package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/drills/internal/cli"
	"github.com/agbru/drills/internal/config"
	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/logging"
	"github.com/agbru/drills/internal/metrics"
	"github.com/agbru/drills/internal/ui"
)

const tracerName = "github.com/agbru/drills/internal/app"

// Application represents one drills invocation: its resolved configuration,
// its streams and the observability sinks shared by every exercise.
type Application struct {
	Config    config.AppConfig
	In        io.Reader
	Out       io.Writer
	ErrWriter io.Writer

	logger  logging.Logger
	metrics *metrics.Recorder
	tracer  trace.Tracer
}

// New creates an Application with default configuration. Flags and
// environment are resolved when a command runs.
func New(in io.Reader, out, errWriter io.Writer) *Application {
	return &Application{
		Config:    config.Default(),
		In:        in,
		Out:       out,
		ErrWriter: errWriter,
		logger:    logging.New(io.Discard, logging.Options{Level: zerolog.Disabled}),
		metrics:   metrics.NewRecorder(),
		tracer:    otel.Tracer(tracerName),
	}
}

// Execute runs the drills command line and returns the process exit code.
// args excludes the program name.
func Execute(ctx context.Context, args []string, in io.Reader, out, errWriter io.Writer) int {
	return New(in, out, errWriter).Run(ctx, args)
}

// Run executes the command tree for args.
func (a *Application) Run(ctx context.Context, args []string) int {
	root := a.newRootCommand()
	root.SetArgs(negativeOperandsLast(args))
	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.ErrWriter)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.logger.Error("command failed", err)
		cli.DisplayError(a.ErrWriter, err)
	}

	if a.Config.MetricsFile != "" {
		if werr := a.metrics.WriteTextfile(a.Config.MetricsFile); werr != nil {
			a.logger.Error("metrics export failed", werr, logging.String("path", a.Config.MetricsFile))
			if err == nil {
				cli.DisplayError(a.ErrWriter, werr)
				return apperrors.ExitErrorGeneric
			}
		}
	}

	return apperrors.ExitCode(err)
}

// numericCommands take a single number as their operand.
var numericCommands = map[string]bool{"temp": true, "fib": true, "plusone": true}

// negativeOperandsLast moves negative numbers given to a numeric command
// behind a "--" so that pflag does not read "-40" as the shorthand "-4".
// Everything before the subcommand, and after an existing "--", is untouched.
func negativeOperandsLast(args []string) []string {
	sub := -1
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if numericCommands[arg] {
			sub = i
			break
		}
	}
	if sub < 0 {
		return args
	}

	out := append([]string{}, args[:sub+1]...)
	var operands, tail []string
	for i, arg := range args[sub+1:] {
		if arg == "--" {
			tail = args[sub+2+i:]
			break
		}
		if isNegativeNumber(arg) {
			operands = append(operands, arg)
			continue
		}
		out = append(out, arg)
	}
	if len(operands) == 0 {
		return args
	}
	out = append(out, "--")
	out = append(out, operands...)
	return append(out, tail...)
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// setup resolves the configuration for cmd and initializes theme and logging.
// It runs before every subcommand.
func (a *Application) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.Config, cmd.Flags())
	if err != nil {
		return err
	}
	a.Config = cfg

	ui.InitTheme(cfg.Theme, cfg.NoColor)
	a.logger = logging.New(a.ErrWriter, logging.Options{
		Component: "drills",
		Level:     logLevel(cfg),
		Format:    logging.Format(cfg.LogFormat),
		NoColor:   cfg.NoColor || !ui.IsTerminal(a.ErrWriter),
	})
	a.logger.Debug("configuration resolved",
		logging.String("command", cmd.Name()),
		logging.String("theme", cfg.Theme),
		logging.Bool("quiet", cfg.Quiet),
	)
	return nil
}

func logLevel(cfg config.AppConfig) zerolog.Level {
	switch {
	case cfg.Verbose:
		return zerolog.DebugLevel
	case cfg.Quiet:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// runExercise wraps one exercise run in a span, records its metrics and
// logs its outcome.
func (a *Application) runExercise(ctx context.Context, exercise string, fn func(ctx context.Context, out io.Writer) error) error {
	ctx, span := a.tracer.Start(ctx, "exercise."+exercise,
		trace.WithAttributes(attribute.String("drills.exercise", exercise)))
	defer span.End()

	counter := &lineCounter{w: a.Out}
	start := time.Now()
	err := fn(ctx, counter)
	elapsed := time.Since(start)

	a.observe(exercise, elapsed, err)
	a.metrics.AddLines(exercise, counter.lines)
	span.SetAttributes(attribute.Int("drills.output_lines", counter.lines))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, apperrors.Diagnostic(err))
		return err
	}
	span.SetStatus(codes.Ok, "")
	if a.Config.Verbose && !a.Config.Quiet {
		cli.DisplayTiming(a.ErrWriter, exercise, elapsed)
	}
	return nil
}

// observe records a finished run. It doubles as the REPL's RunObserver.
func (a *Application) observe(exercise string, d time.Duration, err error) {
	a.metrics.ObserveRun(exercise, d, err)
	if err != nil {
		a.logger.Debug("exercise failed",
			logging.String("exercise", exercise),
			logging.Duration("duration", d),
			logging.Err(err),
		)
		return
	}
	a.logger.Debug("exercise completed",
		logging.String("exercise", exercise),
		logging.Duration("duration", d),
	)
}

// withSignals derives a context cancelled by SIGINT or SIGTERM.
func withSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// lineCounter counts newline-terminated lines written through it.
type lineCounter struct {
	w     io.Writer
	lines int
}

func (c *lineCounter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.lines += bytes.Count(p[:n], []byte{'\n'})
	return n, err
}
