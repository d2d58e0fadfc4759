package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"healthgpt/internal/healthapi"
)

// printDecoded writes the decoded payload of a successful result as indented
// JSON. A failed result returns its error with the response body attached,
// since JSON mode skips the inline failure rendering.
func printDecoded[T any](cmd *cobra.Command, result healthapi.Result, decode func(healthapi.Result) (T, error)) error {
	if err := result.Failure(); err != nil {
		return withResponseBody(result, err)
	}
	value, err := decode(result)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func withResponseBody(result healthapi.Result, err error) error {
	body := strings.TrimSpace(result.RawText)
	if result.StatusCode == 0 || body == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("response: %s", body))
}
