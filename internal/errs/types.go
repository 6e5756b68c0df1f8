package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// ValidationError: a required field is missing or malformed. Always raised
// before any store write, so no partial state is possible.
type ValidationError struct {
	ErrorMessage
}

// NotFoundError: a referenced id did not resolve on lookup.
type NotFoundError struct {
	ErrorMessage
}

// InsufficientFundsError: an expense or transfer exceeds the source account
// balance at check time. The check is best-effort against possibly cached
// balances; it never leaves partial state because it fires before any write.
type InsufficientFundsError struct {
	ErrorMessage
}

// StoreError: a spreadsheet round trip failed. Op names the adapter call,
// Step records how far a multi-step ledger operation got before the failure,
// which is what an operator needs to reconcile a partial application.
type StoreError struct {
	ErrorMessage
	Op        string
	Step      string
	Transient bool
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewInsufficientFundsError(message string) *InsufficientFundsError {
	return &InsufficientFundsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewStoreError(op, message string) *StoreError {
	return &StoreError{
		ErrorMessage: ErrorMessage{Message: message},
		Op:           op,
	}
}

// WithStep annotates a store error with the ledger step that was reached.
func (e *StoreError) WithStep(step string) *StoreError {
	e.Step = step
	return e
}
