package main

import (
	"fmt"
	"strings"

	"github.com/fgoni/json-assistant/config"
	"github.com/fgoni/json-assistant/feedback"
	"github.com/fgoni/json-assistant/log"

	"github.com/scott-cotton/cli"
)

func sendFeedback(cfg *FeedbackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Feedback.Parse(cc, args)
	if err != nil {
		cfg.Feedback.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: feedback requires a message", cli.ErrUsage)
	}
	conf, err := config.Load()
	if err != nil {
		return err
	}
	if conf.FeedbackURL == "" {
		return fmt.Errorf("no feedback endpoint configured, set JA_FEEDBACK_URL")
	}
	if err := log.InitConsole(conf.LogLevel); err != nil {
		return err
	}
	c := feedback.New(conf.FeedbackURL, log.L())
	c.Send(strings.Join(args, " "))
	c.Wait()
	fmt.Fprintln(cc.Out, "thanks!")
	return nil
}
