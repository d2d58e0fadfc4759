package dashboard

import "context"

// Title is shown above the menu.
const Title = "Health GPT Dashboard"

var homeBullets = []string{
	"Use Create Prompt to manually add user symptoms.",
	"Use View Prompts to see all stored prompts and manage them.",
	"Use Audio Transcription to upload audio and get Gemini transcription + prescription.",
}

// HomeView renders static welcome text.
type HomeView struct{}

func (HomeView) Item() MenuItem { return MenuHome }

func (HomeView) Render(_ context.Context, con *Console) error {
	con.Header("Welcome to " + Title)
	for _, bullet := range homeBullets {
		con.Printf("  - %s\n", bullet)
	}
	return nil
}
