package main

import (
	"fmt"

	"github.com/fgoni/json-assistant/config"
	"github.com/fgoni/json-assistant/store"

	"github.com/scott-cotton/cli"
)

func history(cfg *HistoryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.History.Parse(cc, args)
	if err != nil {
		cfg.History.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: history takes no arguments", cli.ErrUsage)
	}
	conf, err := config.Load()
	if err != nil {
		return err
	}
	entries, err := store.NewFileStore(conf.HistoryPath).Load()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(cc.Out, "%s  %s  %s\n", e.SavedAt.Format("2006-01-02 15:04:05"), e.ID, e.Name)
		if cfg.Full {
			fmt.Fprintln(cc.Out, e.Text)
		}
	}
	return nil
}
