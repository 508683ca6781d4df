// Package errors provides menucli's domain-specific error types.
//
// Every error menucli returns to its CLI layer carries a Code drawn from a
// fixed set of failure kinds; internal/cli maps each Code to an exit status
// and stderr shape.
//
// # Usage
//
//	err := errors.New(errors.CodeNotFound, "no menu item matched the query")
//	err := errors.Wrap(cause, errors.CodeAxFailure, "failed to read children")
//
//	if errors.IsCode(err, errors.CodeAmbiguous) {
//		// emit the candidate list and exit 3
//	}
package errors
