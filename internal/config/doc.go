// Package config loads, normalizes, and validates Health GPT dashboard
// configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours HEALTHGPT_* environment overrides.
// The API base URL is resolved once here and handed to the API client; nothing
// downstream re-reads the environment.
package config
