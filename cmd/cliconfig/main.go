// FILE: lixenwraith/cliconfig/cmd/cliconfig/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/cliconfig"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var schema = cliconfig.MustSchema(
	cliconfig.Text("config", "~/.config/cliconfig/config.toml").WithShort('C').WithLong("config").
		WithUsage("the configuration path"),
	cliconfig.Text("format", "toml").WithShort('f').WithLong("format").
		WithUsage("output format of the resolved options: toml, json or yaml"),
	cliconfig.Flag("verbose").WithShort('v').WithLong("verbose").WithUsage("use verbose logging"),
	cliconfig.Flag("version").WithShort('V').WithLong("version").WithUsage("print the version and exit"),
	cliconfig.Flag("help").WithShort('h').WithLong("help").WithUsage("print this help menu"),
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	program := "cliconfig"
	if len(args) > 0 {
		program = filepath.Base(args[0])
	}

	rec, err := schema.Parse(args)
	if err != nil {
		reportError(stderr, program, err)
		return 2
	}

	if rec.MustBool("help") {
		fmt.Fprint(stdout, heredoc.Docf(`
			%s prints the options it resolved from its command line.

		`, program))
		fmt.Fprint(stdout, schema.Usage(program))
		return 0
	}

	if rec.MustBool("version") {
		fmt.Fprintln(stdout, version)
		return 0
	}

	logger := newLogger(stderr, rec.MustBool("verbose"))
	defer logger.Sync()

	logger.Info("app ready", zap.String("config", rec.MustText("config")))
	logger.Debug("resolved options", zap.Any("options", rec.Map()))

	format, err := cliconfig.ParseFormat(rec.MustText("format"))
	if err != nil {
		logger.Error("cannot print options", zap.Error(err))
		return 1
	}

	if err := rec.Encode(stdout, format); err != nil {
		logger.Error("cannot print options", zap.Error(err))
		return 1
	}

	return 0
}

// newLogger writes console-encoded logs to w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}

func reportError(w io.Writer, program string, err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(w, "%s: error: ", program)
	fmt.Fprintln(w, err)

	var perr *cliconfig.ParseError
	if errors.As(err, &perr) && perr.Kind == cliconfig.UnrecognizedArgument {
		fmt.Fprintf(w, "Try '%s --help' for more information.\n", program)
	}
}
