package errors

// Code represents an error code
type Code string

// General error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Content defect codes. These are raised while validating or building world
// content, and by the rules engine if malformed content reaches play.
const (
	// CodeSoloUseUndefined marks a plain object that may be used alone but
	// has no room constraint, so no success branch exists for it.
	CodeSoloUseUndefined Code = "SOLO_USE_UNDEFINED"
	// CodeDoorUnpaired marks a door with no paired room.
	CodeDoorUnpaired Code = "DOOR_UNPAIRED"
	// CodeUnknownReference marks a slug that points at nothing.
	CodeUnknownReference Code = "UNKNOWN_REFERENCE"
	// CodeDuplicateSlug marks two entities sharing a slug.
	CodeDuplicateSlug Code = "DUPLICATE_SLUG"
	// CodeContainment marks an object placed in more than one container.
	CodeContainment Code = "CONTAINMENT_VIOLATION"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsContentDefect reports whether the code describes malformed content
// rather than a runtime or infrastructure failure.
func (c Code) IsContentDefect() bool {
	switch c {
	case CodeSoloUseUndefined, CodeDoorUnpaired, CodeUnknownReference,
		CodeDuplicateSlug, CodeContainment:
		return true
	default:
		return false
	}
}
