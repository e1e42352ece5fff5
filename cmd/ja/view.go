package main

import (
	"fmt"
	"os"

	"github.com/fgoni/json-assistant/config"
	"github.com/fgoni/json-assistant/log"
	"github.com/fgoni/json-assistant/session"
	"github.com/fgoni/json-assistant/store"
	"github.com/fgoni/json-assistant/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: view takes at most one file", cli.ErrUsage)
	}

	conf, err := config.Load()
	if err != nil {
		return err
	}
	if conf.LogFile != "" {
		if err := log.InitFile(conf.LogLevel, conf.LogFile); err != nil {
			return err
		}
	}

	if err := agent.Listen(agent.Options{}); err != nil {
		log.L().Warnw("gops agent failed", "error", err)
	}
	defer agent.Close()

	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	}
	d, err := readArg(arg)
	if err != nil {
		return err
	}

	sess := session.New(session.Options{
		Store:          store.NewFileStore(conf.HistoryPath),
		Logger:         log.L(),
		ParseDebounce:  conf.ParseDebounce,
		SearchDebounce: conf.SearchDebounce,
	})
	if _, err := sess.Load(string(d)); err != nil {
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if arg == "-" {
		// stdin held the document; key input comes from the terminal
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("cannot read keys from terminal: %w", err)
		}
		defer tty.Close()
		progOpts = append(progOpts, tea.WithInput(tty))
	}

	_, err = tea.NewProgram(tui.New(sess), progOpts...).Run()
	return err
}
