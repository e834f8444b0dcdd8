package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
)

// Response helpers

type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *cliError   `json:"error,omitempty"`
}

type cliError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(response{Success: true, Data: data}); err != nil {
		slog.Error("failed to encode response", "error", err)
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

func writeJSONError(w io.Writer, code, message string) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	resp := response{
		Error: &cliError{
			Code:    code,
			Message: message,
		},
	}
	if err := enc.Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// field is one "Label: value" line of text output
type field struct {
	label string
	value string
}

func writeFields(w io.Writer, fields []field) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s:\t%s\n", f.label, f.value)
	}
	return tw.Flush()
}
