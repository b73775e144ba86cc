// Package job models the harvest job aggregate and its lifecycle.
//
// A job carries three tracks that move independently and only forward:
//
//	| track     | states               | trigger          |
//	|-----------|----------------------|------------------|
//	| overall   | pending -> completed | Complete         |
//	| labour    | pending -> accepted  | Accept(Labour)   |
//	| transport | pending -> accepted  | Accept(Transport)|
//
// Key business rules:
//   - a second acceptance of a track is a conflict that names the current holder
//   - completion does not require either track to be accepted
//   - a completed job rejects any further acceptance or completion
//
// Every violated lifecycle precondition surfaces as *errs.ConflictError; malformed
// input surfaces as one of the errs validation errors.
package job
