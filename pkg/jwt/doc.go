// Package jwt implements HS256 JSON Web Token signing and validation.
//
// Tokens carry the authenticated user's id, email, display name and admin
// flag. The package depends only on the standard library so it can be used
// by both the server and the admin CLI without pulling in the rest of the
// application.
package jwt
