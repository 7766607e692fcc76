// Command j1 runs a Forth script against a J1 CPU image, in batch mode
// (writing a log file) or as a line-at-a-time REPL.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/urfave/cli.v2"

	j1cpu "j1cpu"
)

func main() {
	app := &cli.App{
		Name:    "j1",
		Usage:   "run a Forth script against a J1 CPU image",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "bin",
				Usage: "binary image to load (defaults to the embedded j1e image)",
			},
			&cli.StringFlag{
				Name:  "script",
				Usage: "Forth script to run in batch mode",
			},
			&cli.BoolFlag{
				Name:  "repl",
				Usage: "enter an interactive read-eval-print loop instead of batch mode",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print status messages",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	verbose := c.Bool("verbose")

	cpu := j1cpu.NewCPU()
	if binPath := c.String("bin"); binPath != "" {
		data, err := os.ReadFile(binPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("reading image: %v", err), 1)
		}
		if err := cpu.LoadBytes(data); err != nil {
			return cli.Exit(fmt.Sprintf("loading image: %v", err), 1)
		}
		logStatus(verbose, "loaded image from %s", binPath)
	} else {
		if err := cpu.LoadDefaultImage(); err != nil {
			return cli.Exit(fmt.Sprintf("loading embedded image: %v", err), 1)
		}
		logStatus(verbose, "loaded embedded j1e image")
	}

	if c.Bool("repl") {
		return runREPL(cpu)
	}
	return runBatch(cpu, c.String("script"), verbose)
}

func runBatch(cpu *j1cpu.CPU, scriptPath string, verbose bool) error {
	var script []byte
	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("reading script: %v", err), 1)
		}
		script = data
	}

	err := cpu.Run(script)
	if err != nil && !errors.Is(err, j1cpu.ErrHalt) {
		return cli.Exit(fmt.Sprintf("execution error: %v", err), 1)
	}

	if scriptPath != "" {
		logPath := scriptPath + "-log.txt"
		if werr := os.WriteFile(logPath, []byte(cpu.Log()), 0o644); werr != nil {
			return cli.Exit(fmt.Sprintf("writing log: %v", werr), 1)
		}
		logStatus(verbose, "log written to: %s", logPath)
	}

	fmt.Print(cpu.Output())
	return nil
}

func runREPL(cpu *j1cpu.CPU) error {
	scanner := bufio.NewScanner(os.Stdin)
	var printed int
	for scanner.Scan() {
		line := scanner.Text()
		err := cpu.Run([]byte(line))

		out := cpu.Output()
		fmt.Print(out[printed:])
		printed = len(out)

		if err != nil {
			if errors.Is(err, j1cpu.ErrHalt) {
				return nil
			}
			return cli.Exit(fmt.Sprintf("execution error: %v", err), 1)
		}
	}
	return scanner.Err()
}

func logStatus(verbose bool, format string, args ...any) {
	if !verbose {
		return
	}
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
