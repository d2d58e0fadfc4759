package dashboard

import (
	"context"
	"io"
	"log/slog"

	"healthgpt/internal/healthapi"
)

// API is the subset of the backend client the views use.
type API interface {
	CreatePrompt(ctx context.Context, userPrompt, medicinesName string, symptoms []healthapi.Symptom) healthapi.Result
	ListPrompts(ctx context.Context) healthapi.Result
	DeletePrompt(ctx context.Context, id string) healthapi.Result
	TranscribeAudio(ctx context.Context, filename string, audio io.Reader) healthapi.Result
}

// View renders one dashboard screen. Render returns only console errors
// (including io.EOF); backend failures are rendered inline.
type View interface {
	Item() MenuItem
	Render(ctx context.Context, con *Console) error
}

// Dispatcher maps every MenuItem to its view.
type Dispatcher struct {
	Home       HomeView
	Create     *CreateView
	List       *ListView
	Transcribe *TranscribeView
}

// NewDispatcher builds all four views over api.
func NewDispatcher(api API, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		Create:     NewCreateView(api, logger),
		List:       NewListView(api, logger),
		Transcribe: NewTranscribeView(api, logger),
	}
}

// View returns the view for item.
func (d *Dispatcher) View(item MenuItem) View {
	switch item {
	case MenuCreatePrompt:
		return d.Create
	case MenuViewPrompts:
		return d.List
	case MenuAudioTranscription:
		return d.Transcribe
	default:
		return d.Home
	}
}

// Render renders exactly one view.
func (d *Dispatcher) Render(ctx context.Context, con *Console, item MenuItem) error {
	return d.View(item).Render(ctx, con)
}
