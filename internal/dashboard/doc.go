// Package dashboard implements the menu-driven Health GPT dashboard.
//
// A Dispatcher maps the selected MenuItem to one of four views (Home, Create
// Prompt, View Prompts, Audio Transcription). Each view owns its round trip to
// the backend through the API interface and renders the outcome inline on a
// Console; failures are shown to the user and never end the session. Views
// keep no state between renders: the prompt list is fetched again every time
// the View Prompts screen is opened.
//
// The same view methods back the one-shot CLI commands, so scripted and
// interactive use render identical text.
package dashboard
