package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Println(idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	fmt.Printf("%+v\n", data)
	return nil
}

// JSONSuccess writes {"success": true, key: value}
func (f *OutputFormatter) JSONSuccess(key string, value any) error {
	return json.NewEncoder(os.Stdout).Encode(map[string]any{
		"success": true,
		key:       value,
	})
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err under code and returns it wrapped with its exit code.
// Commands return the result directly from RunE.
func (f *OutputFormatter) Fail(code string, err error) error {
	return f.FailWithSuggestion(code, err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(code string, err error, suggestion string) error {
	exit := classify(err)
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		exit = cmdErr.Code
	}
	if exit == ExitNotFound && !strings.HasSuffix(code, "NOT_FOUND") {
		code = "NOT_FOUND"
	}
	_ = f.ErrorWithSuggestion(code, err.Error(), suggestion)
	return &CommandError{Code: exit, Err: err}
}
