package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"healthgpt/internal/healthapi"
	"healthgpt/internal/logging"
)

const missingID = "N/A"

// medicinesWidth wraps long medicine lists inside the summary table.
const medicinesWidth = 48

// ListView shows stored prompt records and deletes them on request.
type ListView struct {
	api    API
	logger *slog.Logger
}

// NewListView builds the View Prompts view.
func NewListView(api API, logger *slog.Logger) *ListView {
	return &ListView{api: api, logger: logging.NewComponentLogger(logger, "list")}
}

// Item reports the menu entry this view renders.
func (v *ListView) Item() MenuItem { return MenuViewPrompts }

// Render fetches the records and runs the section browser until the user
// returns to the menu. Deletions do not refresh the rendered list.
func (v *ListView) Render(ctx context.Context, con *Console) error {
	con.Header("View All Prompts")
	records, ok := v.Load(ctx, con)
	if !ok || len(records) == 0 {
		return nil
	}
	con.Println(SummaryTable(records))

	expanded := make([]bool, len(records))
	for {
		v.renderSections(con, records, expanded)
		input, err := con.Prompt(ctx, "<n> toggle, d <n> delete, blank to return")
		if err != nil {
			return err
		}
		fields := strings.Fields(input)
		switch {
		case len(fields) == 0:
			return nil
		case len(fields) == 1:
			if n, ok := recordIndex(fields[0], len(records)); ok {
				expanded[n] = !expanded[n]
				continue
			}
		case len(fields) == 2 && strings.EqualFold(fields[0], "d"):
			if n, ok := recordIndex(fields[1], len(records)); ok {
				v.Delete(ctx, con, records[n])
				continue
			}
		}
		con.Warn(fmt.Sprintf("Unknown command %q", input))
	}
}

// Load fetches every record and renders fetch failures inline. ok is false
// when the list could not be obtained.
func (v *ListView) Load(ctx context.Context, con *Console) ([]healthapi.PromptRecord, bool) {
	it := beginInteraction(ctx, v.logger, MenuViewPrompts, "list prompts")
	it.submit()
	result := v.api.ListPrompts(it.ctx)
	if !result.OK {
		renderFailure(con, result, "")
		it.fail(result.Failure())
		return nil, false
	}
	records, err := healthapi.DecodeRecords(result)
	if err != nil {
		con.Error("Invalid JSON response from API")
		it.fail(err)
		return nil, false
	}
	if len(records) == 0 {
		con.Info("No prompts stored")
	}
	it.finish(true)
	return records, true
}

// RenderAll fetches the records and prints every section expanded.
func (v *ListView) RenderAll(ctx context.Context, con *Console) Phase {
	records, ok := v.Load(ctx, con)
	if !ok {
		return PhaseFailure
	}
	if len(records) == 0 {
		return PhaseSuccess
	}
	con.Println(SummaryTable(records))
	for i, record := range records {
		renderRecord(con, i, record, true)
	}
	return PhaseSuccess
}

// Delete removes record from the backend and reports the outcome inline.
func (v *ListView) Delete(ctx context.Context, con *Console, record healthapi.PromptRecord) Phase {
	it := beginInteraction(ctx, v.logger, MenuViewPrompts, "delete prompt")
	it.submit()
	result := v.api.DeletePrompt(it.ctx, record.ID)
	if !result.OK {
		renderFailure(con, result, "Delete failed")
		return it.fail(result.Failure())
	}
	con.Success("Deleted successfully!")
	return it.finish(true)
}

func (v *ListView) renderSections(con *Console, records []healthapi.PromptRecord, expanded []bool) {
	for i, record := range records {
		renderRecord(con, i, record, expanded[i])
	}
}

func renderRecord(con *Console, index int, record healthapi.PromptRecord, expanded bool) {
	marker := "+"
	if expanded {
		marker = "-"
	}
	con.Printf("[%s] %d. Prompt ID: %s\n", marker, index+1, displayID(record))
	if !expanded {
		return
	}
	con.Printf("    User Prompt: %s\n", record.UserPrompt)
	con.Printf("    Medicines: %s\n", record.MedicinesName)
	con.Println("    Symptoms:")
	for _, symptom := range record.Symptoms {
		con.Printf("    - %s (Severity: %s)\n", symptom.Name, symptom.DisplaySeverity())
	}
}

// SummaryTable renders one row per record: position, id, symptom count and
// medicines. The footer carries the record count.
func SummaryTable(records []healthapi.PromptRecord) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Prompt ID", "Symptoms", "Medicines"})
	for i, record := range records {
		tw.AppendRow(table.Row{i + 1, displayID(record), len(record.Symptoms), record.MedicinesName})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d records", len(records)), "", ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Name: "Symptoms", Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Name: "Medicines", WidthMax: medicinesWidth},
	})
	return tw.Render()
}

func displayID(record healthapi.PromptRecord) string {
	if strings.TrimSpace(record.ID) == "" {
		return missingID
	}
	return record.ID
}

func recordIndex(value string, count int) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n - 1, true
}
