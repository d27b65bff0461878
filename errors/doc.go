/*
Package errors provides semantic error types for the ModelStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound          = errors.New("key not found")
	    ErrAlreadyRegistered = errors.New("already registered")
	    ErrNoRegistry        = errors.New("no attribute registry for type")
	    ErrInvalidInput      = errors.New("invalid input")
	    ErrSchemaDrift       = errors.New("schema drift")
	)

Usage:

	// Check error type
	user, err := users.Load(ctx, "1000")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle missing key
	        return nil, fmt.Errorf("user %s does not exist", "1000")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("mem", "user#1000")
	err := errors.NewValidationError("key", "must not be empty")
	err := errors.NewSchemaDriftError("User", "attribute order differs")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
