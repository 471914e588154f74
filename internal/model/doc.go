// Package model defines the domain entities, request/response types,
// and validation rules for the Gatherly API.
//
// # Entities
//
// Seven entity types make up the schema: User, Post, Comment, Like,
// Event, Attending, and Invoice. Posts own their comments and likes;
// events own their attendings and invoices. Ownership matters for
// deletes: removing a parent removes its children.
//
// # Requests and Validation
//
// Each mutable entity has a Create...Request and Update...Request type.
// Update requests use pointer fields so an omitted value and an explicit
// zero value are distinguishable: nil leaves the stored value unchanged.
//
// Validate() methods return []FieldError listing every violated field,
// not just the first, so clients can report all problems at once:
//
//	if errs := req.Validate(); len(errs) > 0 {
//	    return model.NewValidationError(errs)
//	}
//
// # Views
//
// Transport representations are explicit projection structs rather than
// entity structs with tag tricks. Each context declares its own
// allow-list: an event exposes its owner as {name, email}, a post
// exposes its author as {id, name}, and nested comments omit the post
// back-reference. Password hashes never appear in any view.
//
// # Errors
//
// API errors follow RFC 9457 Problem Details, constructed via the
// New...Error helpers in errors.go.
package model
