package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrStoreUnavailable wraps failures reaching the underlying store. Handlers
// map it to a 500; services never retry it themselves.
var ErrStoreUnavailable = errors.New("store unavailable")

// ValidationError is a missing or malformed input, always caught before any
// write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError means the referenced record does not exist.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// InvalidTransitionError means the requested status is outside the calling
// workflow's allowed set. The stored status is left untouched.
type InvalidTransitionError struct {
	Workflow Workflow
	Target   Status
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("workflow %q may not set status %q", e.Workflow, e.Target)
}

// ConflictError means a concurrent modification won the race. The caller
// must re-fetch and retry or surface the conflict.
type ConflictError struct {
	Tag    string
	Reason string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("conflict on asset %q: %s", e.Tag, e.Reason)
}

// DuplicateTagError means an insert collided with the unique tag index.
type DuplicateTagError struct {
	Tag string
}

func (e DuplicateTagError) Error() string {
	return fmt.Sprintf("asset tag %q already exists", e.Tag)
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsInvalidTransition(err error) bool {
	var it InvalidTransitionError
	return errors.As(err, &it)
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

func IsDuplicateTag(err error) bool {
	var de DuplicateTagError
	return errors.As(err, &de)
}
