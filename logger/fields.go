package logger

import (
	"time"
)

// Standard field key constants for structured logging. Authentication and
// authorization events use these so log queries work across middlewares.
const (
	FieldComponent     = "component"
	FieldCorrelationID = "correlation_id"
	FieldUserID        = "user_id"
	FieldEmail         = "email"
	FieldRole          = "role"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldOutcome       = "outcome"
	FieldRequirement   = "requirement"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
)

// Outcome values for authentication and authorization log events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeAllowed = "allowed"
	OutcomeDenied  = "denied"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("op", "save", "id", 42))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// RequestFields creates fields describing the request line of an
// authentication or authorization event.
func RequestFields(method, path, outcome string) map[string]interface{} {
	return map[string]interface{}{
		FieldMethod:  method,
		FieldPath:    path,
		FieldOutcome: outcome,
	}
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}

// MergeWithError adds an error field to an existing map.
func MergeWithError(fields map[string]interface{}, err error) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields[FieldError] = err.Error()
	return fields
}

// MergeWithDuration adds a duration field to an existing map.
func MergeWithDuration(fields map[string]interface{}, d time.Duration) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields[FieldDuration] = d.Milliseconds()
	return fields
}
