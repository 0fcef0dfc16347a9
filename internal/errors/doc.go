// Package errors provides structured errors for the adventure engine.
//
// Two classes of failure exist in the engine. Narrative rejections (a locked
// door, an object that cannot be picked up) are not errors at all: they are
// outcomes returned by the rules engine. Everything in this package describes
// the other class: malformed content, bad input to a repository, or an
// unavailable backing store.
//
// # Basic Usage
//
//	err := errors.NotFound("world not found")
//	err := errors.InvalidArgumentf("unknown verb %q", verb)
//
// Content defects carry a stable code and the offending slug:
//
//	err := errors.ContentDefect(errors.CodeDoorUnpaired, "gate",
//	    "door %q has no paired room", "gate")
//
// Wrapping preserves the code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load world")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("rooms[0].slug", room.Slug, vb)
//	vb.Defect(errors.CodeSoloUseUndefined, "objects.lamp", "no success branch")
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// errors.IsContentDefect reports true for both a single coded error and a
// validation error that collected at least one defect.
package errors
