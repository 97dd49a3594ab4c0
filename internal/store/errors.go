package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registering a user whose
	// username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already taken. Email comparison is case-sensitive exact match.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountNotFound is returned when an operation targets a social
	// account that does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrPostNotFound is returned when an operation targets a post that
	// does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrNotOwner is returned when the targeted resource exists but belongs
	// to a different user. Ownership is checked before any mutation, so the
	// record is always left intact.
	ErrNotOwner = errors.New("resource is owned by a different user")
)

// Low-level database operation errors. These are returned (or wrapped) by the
// SQL repositories when an operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty update set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for driver-level reasons.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrSnapshotWrite is returned when the JSON-snapshot backend cannot
	// write its state file. The in-memory mutation is rolled back so that
	// memory and disk stay consistent.
	ErrSnapshotWrite = errors.New("failed to write snapshot file")
)
