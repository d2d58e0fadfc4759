package dashboard

import (
	"errors"
	"fmt"

	"healthgpt/internal/healthapi"
	"healthgpt/internal/services"
)

// renderFailure shows an unsuccessful result inline. fallback prefixes the
// status text when the body is not JSON; it defaults to "Error <status>".
func renderFailure(con *Console, result healthapi.Result, fallback string) {
	err := result.Failure()
	if errors.Is(err, services.ErrValidation) {
		con.Error(result.RawText)
		return
	}
	switch services.FailureTier(err) {
	case services.TierHTTP:
		if indented, ok := result.IndentedPayload(); ok {
			con.Error(fmt.Sprintf("Error %d:", result.StatusCode))
			con.Block(indented)
			return
		}
		if fallback == "" {
			fallback = fmt.Sprintf("Error %d", result.StatusCode)
		}
		con.Error(fmt.Sprintf("%s: %s", fallback, result.RawText))
	default:
		con.Error("Request failed: " + result.RawText)
	}
}
