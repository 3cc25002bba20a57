// Package validation validates inbound request payloads before they reach
// the auth services.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// the default for request DTOs such as auth.LoginRequest.
//
// # Struct Tag Validation
//
//	var req auth.LoginRequest
//	if err := c.ShouldBindJSON(&req); err != nil { ... }
//	if err := validation.Validate(req); err != nil {
//	    server.RespondWithError(c, err)
//	    return
//	}
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("email", req.Email)
//	if appErr := v.Validate(); appErr != nil { ... }
package validation
