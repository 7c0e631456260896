package constants

import "errors"

// ErrDuplicateUsername is returned by repositories when the unique constraint
// on the username rejects an insert.
var ErrDuplicateUsername = errors.New("username already exists")
