package apperrors

import "errors"

// Domain errors shared across the repository, service and HTTP
// layers. Storage failures are translated into these at the service
// boundary; controllers map them onto HTTP status codes.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")

	// Book catalog
	ErrNoInstances = errors.New("book has no available instances")

	// Borrowing workflow
	ErrAlreadyBorrowed  = errors.New("reader has already borrowed this book")
	ErrTooManyLoans     = errors.New("reader already has 3 borrowed books")
	ErrUnableToBorrow   = errors.New("unable to borrow book, no instances available")
	ErrAlreadyReturned  = errors.New("borrowed book has already been returned")
	ErrInvalidDateRange = errors.New("borrow date must be before return date")

	// Auth
	ErrInvalidPassword = errors.New("password verification failed")
)
