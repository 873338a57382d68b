// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes of the caltime command.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The answer is "no", e.g. an invalid Instant for valid
	ExitCommandError = 2 // Bad arguments, config or host failure
)

// Error codes in JSON output.
const (
	ErrCodeArgument = "E001" // an argument could not be parsed
	ErrCodeInvalid  = "E002" // an Instant is not valid
	ErrCodeHost     = "E003" // the host clock or formatter failed
	ErrCodeConfig   = "E004" // the config file could not be loaded
)

// ExitError is an error with a specific exit code. The message has already
// been reported to the user when a command returns it.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// GetExitCode extracts the exit code from an error. Returns ExitCommandError
// if the error is not an ExitError, as cobra reports usage errors that way.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the JSON envelope of all output.
type Response struct {
	Status string `json:"status"`          // "ok" or "error"
	Data   any    `json:"data,omitempty"`  // success payload
	Error  *Error `json:"error,omitempty"` // error details
}

// Error is the error structure of a Response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes a successful result. In text mode, text is written; in JSON
// mode, data.
func (f *OutputFormatter) Success(text string, data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status: "ok",
			Data:   data,
		})
	}
	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// Fail reports err and returns an ExitError carrying exit, for the command
// to return.
func (f *OutputFormatter) Fail(exit int, code string, err error) error {
	if f.Format == "json" {
		_ = json.NewEncoder(f.Writer).Encode(Response{
			Status: "error",
			Error:  &Error{Code: code, Message: err.Error()},
		})
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %v\n", code, err)
	}
	return &ExitError{Code: exit, Message: code, Err: err}
}
