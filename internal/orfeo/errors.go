package orfeo

import "fmt"

// TransportError covers network failures and non-2xx responses. Status is 0
// when the request never reached the server.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("orfeo: request failed: %v", e.Err)
	}
	return fmt.Sprintf("orfeo: status=%d body=%s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SchemaError means a response record did not match the WorkingHours contract.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("orfeo: schema violation on %q: %s", e.Field, e.Reason)
}

// NotePatchError reports the partial failure of DeclareHours: the hours write
// succeeded (Updated holds the server's record) but attaching the note did not.
type NotePatchError struct {
	Updated WorkingHours
	Err     error
}

func (e *NotePatchError) Error() string {
	return fmt.Sprintf("orfeo: hours saved but note was not attached: %v", e.Err)
}

func (e *NotePatchError) Unwrap() error {
	return e.Err
}
