// Command j1dump disassembles a range of a J1 CPU image, optionally
// after preconditioning memory by running a compilation script first.
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/urfave/cli.v2"

	j1cpu "j1cpu"
)

const defaultEnd = 0x2000

func main() {
	app := &cli.App{
		Name:    "j1dump",
		Usage:   "disassemble a range of a J1 CPU image",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "bin",
				Usage: "binary image to load (defaults to the embedded j1e image)",
			},
			&cli.StringFlag{
				Name:  "script",
				Usage: "compile this script into memory before dumping",
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "start address (hex or decimal)",
				Value: "0x0000",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "end address (hex or decimal)",
				Value: "0x2000",
			},
			&cli.BoolFlag{
				Name:  "ast",
				Usage: "dump the verbose AST rendering instead of assembly",
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
	start, err := parseAddr(c.String("start"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid --start: %v", err), 2)
	}
	end, err := parseAddr(c.String("end"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid --end: %v", err), 2)
	}
	if start > end || end > defaultEnd {
		return cli.Exit("invalid arguments: start <= end <= 0x2000", 2)
	}

	cpu := j1cpu.NewCPU()
	if binPath := c.String("bin"); binPath != "" {
		data, rerr := os.ReadFile(binPath)
		if rerr != nil {
			return cli.Exit(fmt.Sprintf("reading image: %v", rerr), 1)
		}
		if lerr := cpu.LoadBytes(data); lerr != nil {
			return cli.Exit(fmt.Sprintf("loading image: %v", lerr), 1)
		}
	} else if lerr := cpu.LoadDefaultImage(); lerr != nil {
		return cli.Exit(fmt.Sprintf("loading embedded image: %v", lerr), 1)
	}

	if scriptPath := c.String("script"); scriptPath != "" {
		script, rerr := os.ReadFile(scriptPath)
		if rerr != nil {
			return cli.Exit(fmt.Sprintf("reading script: %v", rerr), 1)
		}
		if runErr := cpu.Run(script); runErr != nil && !errors.Is(runErr, j1cpu.ErrHalt) {
			return cli.Exit(fmt.Sprintf("compiling script: %v", runErr), 1)
		}
		cpu.ResetConsole()
	}

	if c.Bool("ast") {
		fmt.Print(cpu.DumpAST(start, end))
	} else {
		fmt.Print(cpu.DumpASM(start, end))
	}
	return nil
}

func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
