package dashboard

import (
	"context"
	"log/slog"

	"healthgpt/internal/logging"
)

// Form holds the raw Create Prompt inputs.
type Form struct {
	UserPrompt    string
	MedicinesName string
	SymptomsText  string
}

// CreateView collects a prompt record and submits it.
type CreateView struct {
	api    API
	logger *slog.Logger
}

// NewCreateView builds the Create Prompt view.
func NewCreateView(api API, logger *slog.Logger) *CreateView {
	return &CreateView{api: api, logger: logging.NewComponentLogger(logger, "create")}
}

// Item reports the menu entry this view renders.
func (v *CreateView) Item() MenuItem { return MenuCreatePrompt }

// Render reads the form, asks for confirmation and submits it.
func (v *CreateView) Render(ctx context.Context, con *Console) error {
	con.Header("Create Prompt Record")
	var form Form
	var err error
	if form.UserPrompt, err = con.Prompt(ctx, "User Prompt / Symptoms"); err != nil {
		return err
	}
	if form.MedicinesName, err = con.Prompt(ctx, "Medicine Names (comma separated)"); err != nil {
		return err
	}
	if form.SymptomsText, err = con.ReadBlock(ctx, "Symptoms"); err != nil {
		return err
	}
	submit, err := con.Confirm(ctx, "Submit prompt?")
	if err != nil {
		return err
	}
	if !submit {
		con.Info("Prompt not submitted")
		return nil
	}
	v.Submit(ctx, con, form)
	return nil
}

// Submit sends the shaped form and renders the outcome. The response body of
// a successful create is shown exactly as received.
func (v *CreateView) Submit(ctx context.Context, con *Console, form Form) Phase {
	it := beginInteraction(ctx, v.logger, MenuCreatePrompt, "create prompt")
	symptoms := ShapeSymptoms(form.SymptomsText)
	it.submit()
	result := v.api.CreatePrompt(it.ctx, form.UserPrompt, form.MedicinesName, symptoms)
	if !result.OK {
		renderFailure(con, result, "")
		return it.fail(result.Failure())
	}
	con.Success("Prompt saved successfully!")
	if result.RawText != "" {
		con.Block(result.RawText)
	}
	return it.finish(true)
}
