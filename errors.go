package main

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema is returned when the input lacks a required column or header row
	ErrSchema = errors.New("schema error")

	// ErrEmptyPartition marks a group or top-performer set with no records
	ErrEmptyPartition = errors.New("empty partition")

	// ErrRenderIO is returned when an output artifact cannot be produced
	ErrRenderIO = errors.New("render io error")
)

// SchemaError reports a required column absent from the input.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema: required column '%s' not found", e.Column)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// EmptyPartitionError is soft: callers treat it as a valid degenerate case.
type EmptyPartitionError struct {
	Label string
	What  string
}

func (e *EmptyPartitionError) Error() string {
	return fmt.Sprintf("%s for '%s' is empty", e.What, e.Label)
}

func (e *EmptyPartitionError) Is(target error) bool {
	return target == ErrEmptyPartition
}

// RenderIOError wraps a failure of a single render call.
type RenderIOError struct {
	Renderer string
	Path     string
	Err      error
}

func (e *RenderIOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("render %s to '%s': %v", e.Renderer, e.Path, e.Err)
	}
	return fmt.Sprintf("render %s: %v", e.Renderer, e.Err)
}

func (e *RenderIOError) Is(target error) bool {
	return target == ErrRenderIO
}

func (e *RenderIOError) Unwrap() error {
	return e.Err
}
