package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/agbru/drills/internal/basics"
	"github.com/agbru/drills/internal/carol"
	"github.com/agbru/drills/internal/cli"
	"github.com/agbru/drills/internal/config"
	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/fibonacci"
	"github.com/agbru/drills/internal/logging"
	"github.com/agbru/drills/internal/temperature"
	"github.com/agbru/drills/internal/tui"
	"github.com/agbru/drills/internal/ui"
)

// defaultPlusOneInput is the value the plus-one demonstration uses when
// no argument is given.
const defaultPlusOneInput int32 = 5

func (a *Application) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "drills",
		Short:         "Small console exercises: temperature, fibonacci, the carol",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("drills {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})
	config.RegisterFlags(root.PersistentFlags(), &a.Config)

	root.AddCommand(
		a.newTempCommand(),
		a.newFibCommand(),
		a.newCarolCommand(),
		a.newPlusOneCommand(),
		a.newDemoCommand(),
		a.newREPLCommand(),
		newCompletionCommand(),
		newVersionCommand(),
	)
	return root
}

func (a *Application) newTempCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "temp [fahrenheit]",
		Short: "Convert a Fahrenheit temperature to Celsius",
		Long: `Convert a Fahrenheit temperature to Celsius.

Without an argument the value is read from a single line of standard input.
Input that is not a number ends the program with "enter a number".`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExercise(cmd.Context(), "temp", func(ctx context.Context, out io.Writer) error {
				var (
					conv temperature.Conversion
					err  error
				)
				if len(args) == 1 {
					conv, err = temperature.Converter{}.Report(args[0], out)
				} else {
					conv, err = temperature.Converter{ShowPrompt: true}.Run(ctx, a.In, out)
				}
				if err != nil {
					return err
				}
				a.logger.Debug("temperature converted",
					logging.Float64("fahrenheit", conv.Fahrenheit),
					logging.Float64("celsius", conv.Celsius),
				)
				return nil
			})
		},
	}
}

func (a *Application) newFibCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fib <position>",
		Short: fmt.Sprintf("Print the fibonacci value at a position (0-%d)", fibonacci.MaxPosition),
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExercise(cmd.Context(), "fib", func(_ context.Context, out io.Writer) error {
				pos, err := cli.ParsePosition(args[0])
				if err != nil {
					return err
				}
				a.logger.Debug("fibonacci position parsed", logging.Uint64("position", uint64(pos)))
				value, err := fibonacci.Checked(pos)
				if err != nil {
					return apperrors.CalculationError{Cause: err}
				}
				cli.DisplayFibonacci(out, pos, value)
				return nil
			})
		},
	}
}

func (a *Application) newCarolCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carol",
		Short: "Print the twelve days of the carol",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.Config.TUI {
				return a.runCarolViewer(cmd.Context())
			}
			return a.runExercise(cmd.Context(), "carol", a.printCarol)
		},
	}
	config.RegisterCarolFlags(cmd.Flags(), &a.Config)
	return cmd
}

// printCarol prints one day or all twelve, pacing between verses.
func (a *Application) printCarol(ctx context.Context, out io.Writer) error {
	if a.Config.Day > 0 {
		return carol.PrintVerse(out, a.Config.Day-1)
	}
	if a.Config.Pace <= 0 {
		return carol.Print(out)
	}

	ctx, stop := withSignals(ctx)
	defer stop()

	var sp cli.Spinner
	if !a.Config.Quiet && ui.IsTerminal(a.Out) {
		sp = cli.NewSpinner(a.Out)
	}

	for day := 0; day < carol.NumDays; day++ {
		if day > 0 {
			suffix := fmt.Sprintf(" day %d of %d", day+1, carol.NumDays)
			if err := cli.Pace(ctx, a.Config.Pace, sp, suffix); err != nil {
				return err
			}
		}
		if err := carol.PrintVerse(out, day); err != nil {
			return err
		}
	}
	return nil
}

func (a *Application) runCarolViewer(ctx context.Context) error {
	ctx, stop := withSignals(ctx)
	defer stop()

	_, span := a.tracer.Start(ctx, "exercise.carol.viewer")
	defer span.End()

	code := tui.Run(ctx, tui.Options{
		Version:   Version,
		In:        a.In,
		Out:       a.Out,
		AltScreen: ui.IsTerminal(a.Out),
	})
	switch code {
	case apperrors.ExitSuccess:
		return nil
	case apperrors.ExitErrorCanceled:
		return apperrors.WrapError(context.Canceled, "carol viewer interrupted")
	default:
		return errors.New("carol viewer failed")
	}
}

func (a *Application) newPlusOneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plusone [x]",
		Short: fmt.Sprintf("Print x + 1 (x defaults to %d)", defaultPlusOneInput),
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExercise(cmd.Context(), "plusone", func(_ context.Context, out io.Writer) error {
				x := defaultPlusOneInput
				if len(args) == 1 {
					parsed, err := cli.ParseInt32(args[0])
					if err != nil {
						return err
					}
					x = parsed
				}
				basics.PrintPlusOne(out, x)
				return nil
			})
		},
	}
}

func (a *Application) newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the function demonstrations in order",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExercise(cmd.Context(), "demo", func(_ context.Context, out io.Writer) error {
				basics.RunAll(out)
				return nil
			})
		},
	}
}

func (a *Application) newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			runs, failures := 0, 0
			repl := cli.NewREPL(cli.REPLConfig{
				Quiet: a.Config.Quiet,
				OnRun: func(exercise string, d time.Duration, err error) {
					runs++
					if err != nil {
						failures++
					}
					a.observe(exercise, d, err)
				},
			})
			repl.SetInput(a.In)
			repl.SetOutput(a.Out)

			a.logger.Info("repl session started")
			err := repl.Start()
			a.logger.Info("repl session ended",
				logging.Int("runs", runs),
				logging.Int("failures", failures),
			)
			return err
		},
	}
}

func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "completion bash|zsh|fish|powershell",
		Short:     "Generate a shell completion script",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      usageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			PrintVersion(cmd.OutOrStdout())
		},
	}
}

// usageArgs reports positional argument mistakes as input errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return apperrors.ValidationError{Field: "arguments", Message: err.Error(), Cause: err}
		}
		return nil
	}
}
