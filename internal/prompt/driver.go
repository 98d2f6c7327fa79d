// Package prompt collects missing page inputs interactively for the CLI.
package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-boxton/pkg/layout"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// InputConfig configures a single line prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// TextAreaConfig configures a multi-line prompt.
type TextAreaConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// Driver abstracts the terminal so Complete can be tested without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	TextArea(ctx context.Context, cfg TextAreaConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

// NewSurveyDriver returns a Driver backed by survey prompts on the terminal.
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

type surveyDriver struct{}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// Complete asks for the title and main content when the page lacks them, and
// offers to fill the optional regions that are still empty.
func Complete(ctx context.Context, driver Driver, page *layout.Page) error {
	if driver == nil || page == nil {
		return errors.New("prompt: driver and page are required")
	}

	if page.Title == "" {
		title, err := driver.Input(ctx, InputConfig{
			Message: "Page title",
			Help:    "Leave blank to omit the title block.",
		})
		if err != nil {
			return err
		}
		page.Title = strings.TrimSpace(title)
	}

	if !layout.IsPresent(page.Content.Content) {
		body, err := driver.TextArea(ctx, TextAreaConfig{
			Message: "Main content (HTML)",
		})
		if err != nil {
			return err
		}
		page.Content.Content = layout.Markup(body)
	}

	for _, name := range []string{layout.RegionHeader, layout.RegionTop, layout.RegionBottom, layout.RegionFooter} {
		current, err := page.Content.Get(name)
		if err != nil {
			return err
		}
		if layout.IsPresent(current) {
			continue
		}
		fill, err := driver.Confirm(ctx, ConfirmConfig{Message: "Add " + name + " region?"})
		if err != nil {
			return err
		}
		if !fill {
			continue
		}
		markup, err := driver.TextArea(ctx, TextAreaConfig{Message: strings.ToUpper(name[:1]) + name[1:] + " markup"})
		if err != nil {
			return err
		}
		if err := page.Content.Set(name, layout.Markup(markup)); err != nil {
			return err
		}
	}
	return nil
}
