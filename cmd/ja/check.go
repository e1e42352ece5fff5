package main

import (
	"errors"
	"fmt"

	"github.com/fgoni/json-assistant/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		_, err = parse.Parse(d)
		if err == nil {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", arg)
			}
			continue
		}
		bad++
		if cfg.Quiet {
			continue
		}
		var perr *parse.Error
		if errors.As(err, &perr) && perr.Pos > 0 {
			line, col := lineCol(d, perr.Pos)
			fmt.Fprintf(cc.Out, "%s:%d:%d: %v\n", arg, line, col, err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// lineCol maps a 1-based rune position back to line and column.
func lineCol(d []byte, pos int) (int, int) {
	line, col := 1, 1
	for _, r := range string(d) {
		pos--
		if pos <= 0 {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
