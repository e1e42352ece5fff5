package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fgoni/json-assistant/encode"
	"github.com/fgoni/json-assistant/parse"

	"github.com/scott-cotton/cli"
)

func jaFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	if cfg.Write {
		for _, arg := range args {
			if arg == "-" {
				return fmt.Errorf("%w: -w cannot rewrite stdin", cli.ErrUsage)
			}
		}
	}
	for _, arg := range args {
		if err := fmtArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtArg(cfg *FmtConfig, cc *cli.Context, arg string) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	node, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}
	if cfg.Write {
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			return err
		}
		buf.WriteByte('\n')
		return os.WriteFile(arg, buf.Bytes(), 0644)
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
