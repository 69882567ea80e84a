package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/ui"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// execute runs the command line against in-memory streams.
func execute(t *testing.T, ctx context.Context, stdin string, args ...string) result {
	t.Helper()
	original := ui.GetCurrentTheme()
	t.Cleanup(func() { ui.SetCurrentTheme(original) })

	var out, errOut bytes.Buffer
	code := Execute(ctx, args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return execute(t, context.Background(), stdin, args...)
}

func golden(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "carol", "testdata", "carol.golden"))
	require.NoError(t, err)
	return string(data)
}

func TestTemp(t *testing.T) {
	t.Run("reads stdin after the prompt", func(t *testing.T) {
		r := run(t, "98.6\n", "temp")
		assert.Equal(t, apperrors.ExitSuccess, r.code)
		assert.Equal(t,
			"please enter the fahrenheit value you'd like converted:\n"+
				"you entered 98.6\n"+
				"the celsius equivalent is: 37\n",
			r.stdout)
	})

	t.Run("argument skips the prompt", func(t *testing.T) {
		r := run(t, "", "temp", "212")
		assert.Equal(t, apperrors.ExitSuccess, r.code)
		assert.Equal(t, "you entered 212\nthe celsius equivalent is: 100\n", r.stdout)
	})

	t.Run("non-numeric input is fatal", func(t *testing.T) {
		r := run(t, "abc\n", "temp")
		assert.Equal(t, apperrors.ExitErrorInput, r.code)
		assert.Contains(t, r.stderr, "Error: enter a number")
		assert.NotContains(t, r.stdout, "celsius")
	})

	t.Run("empty stdin is fatal", func(t *testing.T) {
		r := run(t, "", "temp")
		assert.Equal(t, apperrors.ExitErrorInput, r.code)
		assert.Contains(t, r.stderr, "Error: failed to read input")
	})

	t.Run("negative argument is a temperature, not a flag", func(t *testing.T) {
		r := run(t, "", "temp", "-40")
		assert.Equal(t, apperrors.ExitSuccess, r.code, r.stderr)
		assert.Equal(t, "you entered -40\nthe celsius equivalent is: -40\n", r.stdout)
	})

	t.Run("negative argument mixed with flags", func(t *testing.T) {
		r := run(t, "", "temp", "-4.5", "--no-color", "-q")
		assert.Equal(t, apperrors.ExitSuccess, r.code, r.stderr)
		assert.Contains(t, r.stdout, "you entered -4.5")
	})

	t.Run("too many arguments", func(t *testing.T) {
		r := run(t, "", "temp", "1", "2")
		assert.Equal(t, apperrors.ExitErrorInput, r.code)
	})
}

func TestFib(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"position zero", []string{"fib", "0"}, apperrors.ExitSuccess, "fibonacci(0) = 1\n"},
		{"position one", []string{"fib", "1"}, apperrors.ExitSuccess, "fibonacci(1) = 0\n"},
		{"position ten", []string{"fib", "10"}, apperrors.ExitSuccess, "fibonacci(10) = 55\n"},
		{"largest position", []string{"fib", "47"}, apperrors.ExitSuccess, "fibonacci(47) = 2971215073\n"},
		{"overflow", []string{"fib", "48"}, apperrors.ExitErrorInput, ""},
		{"negative", []string{"fib", "-3"}, apperrors.ExitErrorInput, ""},
		{"missing position", []string{"fib"}, apperrors.ExitErrorInput, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, "", tt.args...)
			assert.Equal(t, tt.wantCode, r.code, "stderr: %s", r.stderr)
			assert.Equal(t, tt.wantOut, r.stdout)
		})
	}
}

func TestNegativeOperandsLast(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no subcommand", []string{"-q"}, []string{"-q"}},
		{"positive operand", []string{"fib", "5"}, []string{"fib", "5"}},
		{"negative operand", []string{"temp", "-40"}, []string{"temp", "--", "-40"}},
		{"flags stay flags", []string{"-q", "plusone", "-8", "--no-color"}, []string{"-q", "plusone", "--no-color", "--", "-8"}},
		{"shorthand flag is not a number", []string{"fib", "-v", "3"}, []string{"fib", "-v", "3"}},
		{"existing separator", []string{"fib", "--", "-3"}, []string{"fib", "--", "-3"}},
		{"separator before subcommand", []string{"--", "temp", "-1"}, []string{"--", "temp", "-1"}},
		{"other commands untouched", []string{"carol", "--pace=-1s"}, []string{"carol", "--pace=-1s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, negativeOperandsLast(tt.args))
		})
	}
}

func TestCarol(t *testing.T) {
	t.Run("all twelve days", func(t *testing.T) {
		r := run(t, "", "carol")
		require.Equal(t, apperrors.ExitSuccess, r.code, r.stderr)
		assert.Equal(t, golden(t), r.stdout)
	})

	t.Run("paced output matches unpaced", func(t *testing.T) {
		r := run(t, "", "carol", "--pace", "1ms")
		require.Equal(t, apperrors.ExitSuccess, r.code, r.stderr)
		assert.Equal(t, golden(t), r.stdout)
	})

	t.Run("single day", func(t *testing.T) {
		r := run(t, "", "carol", "--day", "1")
		require.Equal(t, apperrors.ExitSuccess, r.code, r.stderr)
		assert.Equal(t,
			"on the first day of christmas like a true hater >:) I gave em:\n"+
				"A partridge in a pear tree\n"+
				"---\n",
			r.stdout)
	})

	t.Run("day from environment", func(t *testing.T) {
		t.Setenv("DRILLS_DAY", "12")
		r := run(t, "", "carol")
		require.Equal(t, apperrors.ExitSuccess, r.code, r.stderr)
		assert.True(t, strings.HasPrefix(r.stdout, "on the twelfth day of christmas"))
		assert.Equal(t, 14, strings.Count(r.stdout, "\n"))
	})

	t.Run("day out of range", func(t *testing.T) {
		r := run(t, "", "carol", "--day", "13")
		assert.Equal(t, apperrors.ExitErrorConfig, r.code)
		assert.Empty(t, r.stdout)
	})

	t.Run("viewer cannot start on a day", func(t *testing.T) {
		r := run(t, "", "carol", "--tui", "--day", "2")
		assert.Equal(t, apperrors.ExitErrorConfig, r.code)
	})

	t.Run("cancelled while pacing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := execute(t, ctx, "", "carol", "--pace", "1h")
		assert.Equal(t, apperrors.ExitErrorCanceled, r.code)
		assert.Equal(t, 3, strings.Count(r.stdout, "\n"), "only the first verse should print")
	})
}

func TestPlusOneAndDemo(t *testing.T) {
	r := run(t, "", "plusone")
	assert.Equal(t, apperrors.ExitSuccess, r.code)
	assert.Equal(t, "The value of x is: 6\n", r.stdout)

	r = run(t, "", "plusone", "-8")
	assert.Equal(t, apperrors.ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "The value of x is: -7\n", r.stdout)

	r = run(t, "", "plusone", "seven")
	assert.Equal(t, apperrors.ExitErrorInput, r.code)

	r = run(t, "", "demo")
	assert.Equal(t, apperrors.ExitSuccess, r.code)
	assert.Contains(t, r.stdout, "The value of y is: 4")
	assert.Contains(t, r.stdout, "The value of x is: 6")
}

func TestREPL(t *testing.T) {
	r := run(t, "fib 5\ntemp nope\nquit\n", "repl", "--quiet", "--no-color")
	assert.Equal(t, apperrors.ExitSuccess, r.code, "errors inside the session are not fatal")
	assert.Contains(t, r.stdout, "fibonacci(5) = 5")
	assert.Contains(t, r.stdout, "Error: enter a number")
	assert.Contains(t, r.stdout, "Goodbye!")
	assert.NotContains(t, r.stdout, "Interactive Mode")
}

func TestCarolVariablesIgnoredByOtherCommands(t *testing.T) {
	t.Setenv("DRILLS_DAY", "13")
	t.Setenv("DRILLS_TUI", "true")

	r := run(t, "", "fib", "5")
	assert.Equal(t, apperrors.ExitSuccess, r.code, r.stderr)
	assert.Equal(t, "fibonacci(5) = 5\n", r.stdout)

	r = run(t, "", "carol")
	assert.Equal(t, apperrors.ExitErrorConfig, r.code, "carol still validates its own variables")
}

func TestErrorsAreUncoloredOffTerminal(t *testing.T) {
	r := run(t, "abc\n", "--theme", "dark", "temp")
	require.Equal(t, apperrors.ExitErrorInput, r.code)
	assert.Contains(t, r.stderr, "Error: enter a number\n")
	assert.NotContains(t, r.stderr, "\x1b[")
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"unknown flag", nil, []string{"fib", "--fast", "3"}},
		{"bad theme", nil, []string{"--theme", "purple", "plusone"}},
		{"bad log format", nil, []string{"--log-format", "xml", "plusone"}},
		{"bad theme from environment", map[string]string{"DRILLS_THEME": "purple"}, []string{"plusone"}},
		{"negative pace", nil, []string{"carol", "--pace=-1s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			r := run(t, "", tt.args...)
			assert.Equal(t, apperrors.ExitErrorConfig, r.code, "stderr: %s", r.stderr)
			assert.Contains(t, r.stderr, "Error: ")
			assert.Empty(t, r.stdout)
		})
	}
}

func TestVersionAndCompletion(t *testing.T) {
	r := run(t, "", "version")
	assert.Equal(t, apperrors.ExitSuccess, r.code)
	assert.Contains(t, r.stdout, "drills "+Version)

	r = run(t, "", "--version")
	assert.Equal(t, apperrors.ExitSuccess, r.code)
	assert.Equal(t, "drills "+Version+"\n", r.stdout)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		r = run(t, "", "completion", shell)
		assert.Equal(t, apperrors.ExitSuccess, r.code, shell)
		assert.Contains(t, r.stdout, "drills", shell)
	}

	r = run(t, "", "completion", "tcsh")
	assert.Equal(t, apperrors.ExitErrorInput, r.code)
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drills.prom")

	r := run(t, "", "--metrics-file", path, "fib", "5")
	require.Equal(t, apperrors.ExitSuccess, r.code, r.stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `drills_exercise_runs_total{exercise="fib",outcome="success"} 1`)
	assert.Contains(t, text, `drills_output_lines_total{exercise="fib"} 1`)
	assert.Contains(t, text, "go_goroutines")
}

func TestMetricsFileRecordsFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drills.prom")
	t.Setenv("DRILLS_METRICS_FILE", path)

	r := run(t, "oops\n", "temp")
	require.Equal(t, apperrors.ExitErrorInput, r.code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `drills_exercise_runs_total{exercise="temp",outcome="error"} 1`)
}

func TestLogging(t *testing.T) {
	t.Run("verbose json logs describe the run", func(t *testing.T) {
		r := run(t, "", "--verbose", "--log-format", "json", "fib", "3")
		require.Equal(t, apperrors.ExitSuccess, r.code)
		assert.Contains(t, r.stderr, `"component":"drills"`)
		assert.Contains(t, r.stderr, `"exercise":"fib"`)
		assert.Contains(t, r.stderr, "exercise completed")
		assert.Equal(t, "fibonacci(3) = 2\n", r.stdout, "logs never reach stdout")
	})

	t.Run("fibonacci position and temperature values", func(t *testing.T) {
		r := run(t, "", "-v", "--log-format", "json", "fib", "12")
		require.Equal(t, apperrors.ExitSuccess, r.code)
		assert.Contains(t, r.stderr, `"position":12`)

		r = run(t, "", "-v", "--log-format", "json", "temp", "-40")
		require.Equal(t, apperrors.ExitSuccess, r.code, r.stderr)
		assert.Contains(t, r.stderr, `"fahrenheit":-40`)
		assert.Contains(t, r.stderr, `"celsius":-40`)
	})

	t.Run("repl session boundaries", func(t *testing.T) {
		r := run(t, "fib 2\ntemp x\nhelp\n", "repl", "-q", "-v", "--log-format", "json")
		require.Equal(t, apperrors.ExitSuccess, r.code)
		assert.Contains(t, r.stderr, "repl session started")
		assert.Contains(t, r.stderr, "repl session ended")
		assert.Contains(t, r.stderr, `"runs":2`)
		assert.Contains(t, r.stderr, `"failures":1`)
	})

	t.Run("default level is quiet on success", func(t *testing.T) {
		r := run(t, "", "fib", "3")
		require.Equal(t, apperrors.ExitSuccess, r.code)
		assert.Empty(t, r.stderr)
	})
}
