// Package auth defines the core identity model shared by the authkit
// packages: the closed set of HR platform roles with their hierarchy,
// and the Principal attached to a request after successful token
// verification.
//
// Subpackages provide the moving parts:
//   - auth/token: access/refresh JWT issuance and verification
//   - auth/password: hashing, comparison, and strength validation
//   - auth/authctx: typed context propagation of the Principal
//
// A Principal is only ever produced by token verification — handlers
// receive it from the request context and must treat it as immutable.
package auth
