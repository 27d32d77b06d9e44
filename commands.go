package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mordilloSan/go-devlog/logger"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "devlog",
		Usage:     "Append timestamped lines to the devlog output",
		ArgsUsage: "[message...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Exclusion config file (default: $" + logger.EnvConfigFile + " or ~/.devlog)",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output file, - for stdout (default: $" + logger.EnvOutputFile + " or /tmp/devlog.log)",
			},
			&cli.DurationFlag{
				Name:  "poll",
				Usage: "How often the config file is checked for changes",
				Value: logger.DefaultPollInterval,
			},
		},
		Commands: []*cli.Command{
			checkCommand(),
			exclusionsCommand(),
		},
		Action: logAction,
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report whether a line would be excluded",
		ArgsUsage: "<line>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return errors.New("check requires a line argument")
			}
			line := strings.Join(cmd.Args().Slice(), " ")

			l := newQueryLogger(cmd)

			verdict := "kept"
			if l.IsExcluded(line) {
				verdict = "excluded"
			}
			_, err := fmt.Fprintf(cmd.Root().Writer, "%s (config: %s)\n", verdict, l.ConfigPath())
			return err
		},
	}
}

func exclusionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "exclusions",
		Usage: "Print the configured exclusion entries",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			l := newQueryLogger(cmd)

			w := cmd.Root().Writer
			for _, entry := range l.Exclusions() {
				if _, err := fmt.Fprintln(w, entry); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func logAction(ctx context.Context, cmd *cli.Command) error {
	l := newLogger(cmd)
	defer l.Close()

	if cmd.Args().Len() > 0 {
		l.Logf("%s", strings.Join(cmd.Args().Slice(), " "))
		return nil
	}

	in := cmd.Root().Reader
	if in == nil || isTerminal(in) {
		return errors.New("nothing to log: pass a message or pipe lines on stdin")
	}

	br := bufio.NewReader(in)
	for {
		line, err := readLine(br, logger.DefaultMaxLineLength+utf8.UTFMax)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		l.Logf("%s", line)
	}
}

// readLine returns the next line without its terminator, keeping at most max
// bytes. The rest of a longer line is discarded; the logger truncates further.
func readLine(br *bufio.Reader, max int) (string, error) {
	var buf []byte
	for {
		frag, isPrefix, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return "", err
		}
		if room := max - len(buf); room > 0 {
			if len(frag) > room {
				frag = frag[:room]
			}
			buf = append(buf, frag...)
		}
		if !isPrefix {
			return string(buf), nil
		}
	}
}

func newLogger(cmd *cli.Command) *logger.Logger {
	return logger.New(logger.Config{
		ConfigPath:   cmd.String("config"),
		OutputPath:   cmd.String("output"),
		PollInterval: cmd.Duration("poll"),
	})
}

// newQueryLogger reads the same config as newLogger but discards its
// diagnostics, so queries leave the log file untouched.
func newQueryLogger(cmd *cli.Command) *logger.Logger {
	return logger.New(logger.Config{
		ConfigPath: cmd.String("config"),
		Output:     io.Discard,
	})
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
