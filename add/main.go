package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	ansicolor "github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

func main() {
	ansicolor.NoColor = !colorEnabled(os.Stderr.Fd(), os.Getenv)

	if err := realMain(
		context.Background(),
		os.Args,
		os.Stdin,
		os.Stdout,
	); err != nil {
		fmt.Fprintln(os.Stderr, colorError.Sprintf("%v", err))
		os.Exit(1)
	}
}

func realMain(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
) error {
	exec := args[0]

	fs := flag.NewFlagSet(exec, flag.ExitOnError)
	flagComma := fs.Bool("comma", false, "group digits of the sum with commas")
	flagNoColor := fs.Bool("no-color", false, "disable colored error output")

	rootCmd := &ffcli.Command{
		Name:       exec,
		ShortUsage: fmt.Sprintf("echo '3 4' | %v [flags]\n  %v [flags] [--] <a> <b>", exec, exec),
		ShortHelp:  "Print the sum of the first two numbers on a line",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("ADD")},
		Exec: func(_ context.Context, args []string) error {
			if *flagNoColor {
				ansicolor.NoColor = true
			}

			input := stdin
			if len(args) > 0 {
				input = strings.NewReader(strings.Join(args, " "))
			}

			line, err := readLine(input)
			if err != nil {
				return err
			}

			sum, err := add(line)
			if err != nil {
				return err
			}

			fmt.Fprintln(stdout, format(sum, *flagComma))
			return nil
		},
	}

	return rootCmd.ParseAndRun(ctx, args[1:])
}

// colorEnabled reports whether diagnostics written to fd may be colored.
// fatih/color only looks at stdout, errors go to stderr.
func colorEnabled(fd uintptr, getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var colorError = ansicolor.New(ansicolor.FgRed)
