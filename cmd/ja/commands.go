package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ja").
		WithSynopsis("ja [opts] command [opts]").
		WithDescription("ja is a tool for viewing and formatting JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jaMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg),
			CheckCommand(cfg),
			HistoryCommand(cfg),
			FeedbackCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [file]").
		WithDescription("browse a JSON document as a searchable outline").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("beautify JSON documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jaFmt(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("check JSON documents for syntax errors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func HistoryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HistoryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.History, "history").
		WithAliases("h", "hist").
		WithSynopsis("history [-l]").
		WithDescription("list saved documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return history(cfg, cc, args)
		})
}

func FeedbackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FeedbackConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Feedback, "feedback").
		WithSynopsis("feedback <message>").
		WithDescription("send feedback to the configured endpoint").
		WithRun(func(cc *cli.Context, args []string) error {
			return sendFeedback(cfg, cc, args)
		})
}
