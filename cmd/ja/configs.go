package main

import (
	"io"
	"os"

	"github.com/fgoni/json-assistant/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	NoColor bool `cli:"name=no-color desc='never encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.NoColor || os.Getenv("NO_COLOR") != "" {
		return nil
	}
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='rewrite files in place'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='no output, exit status only'"`

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type HistoryConfig struct {
	*MainConfig
	Full bool `cli:"name=l desc='print full document text'"`

	History *cli.Command
}

type FeedbackConfig struct {
	*MainConfig
	Feedback *cli.Command
}
