package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned by [LocalStorage.GetItem] when the key is
	// absent.
	ErrItemNotFound = errors.New("local storage item not found")

	// ErrTokenNotFound is returned by [TokenStore.Token] when no token is
	// stored.
	ErrTokenNotFound = errors.New("access token not found")

	// ErrEmptyKey is returned when an empty key is passed to a storage
	// method.
	ErrEmptyKey = errors.New("empty local storage key")

	// ErrEmptyToken is returned when an empty or blank token is passed to
	// [TokenStore.SetToken].
	ErrEmptyToken = errors.New("empty access token")

	// ErrUnknownStorageKind is returned by [NewClientStorages] for a storage
	// kind it cannot build.
	ErrUnknownStorageKind = errors.New("unknown storage kind")
)

// Low-level database operation errors. These are wrapped by the SQLite
// storage when a SQL-level operation fails.
var (
	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan local storage row")
)
