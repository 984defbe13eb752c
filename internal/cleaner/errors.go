package cleaner

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ErrorReason categorizes why a deletion failed
type ErrorReason int

const (
	ReasonPermissionDenied ErrorReason = iota
	ReasonFileInUse
	ReasonNotFound
	ReasonIsDirectory
	ReasonUnknown
)

// String returns a human-readable error reason
func (r ErrorReason) String() string {
	switch r {
	case ReasonPermissionDenied:
		return "Permission denied"
	case ReasonFileInUse:
		return "File is in use"
	case ReasonNotFound:
		return "File not found"
	case ReasonIsDirectory:
		return "Is a directory"
	case ReasonUnknown:
		return "Unknown error"
	default:
		return "Unspecified error"
	}
}

// DeleteError represents a single failed deletion
type DeleteError struct {
	Path   string
	Reason ErrorReason
	Err    error
}

// Error implements the error interface
func (e *DeleteError) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Path, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *DeleteError) Unwrap() error {
	return e.Err
}

// Cause returns the short lower-level cause, without the path prefix the
// wrapped os errors carry
func (e *DeleteError) Cause() string {
	var perr *os.PathError
	if errors.As(e.Err, &perr) {
		return perr.Err.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Reason.String()
}

// Categorize analyzes a deletion error and wraps it with a reason
func Categorize(path string, err error) *DeleteError {
	if err == nil {
		return nil
	}

	delErr := &DeleteError{
		Path:   path,
		Err:    err,
		Reason: ReasonUnknown,
	}

	if os.IsNotExist(err) {
		delErr.Reason = ReasonNotFound
		return delErr
	}

	if os.IsPermission(err) {
		delErr.Reason = ReasonPermissionDenied
		return delErr
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EACCES, syscall.EPERM:
			delErr.Reason = ReasonPermissionDenied
		case syscall.EBUSY, syscall.ETXTBSY:
			delErr.Reason = ReasonFileInUse
		case syscall.ENOENT:
			delErr.Reason = ReasonNotFound
		case syscall.EISDIR:
			delErr.Reason = ReasonIsDirectory
		}
	}

	return delErr
}

// GroupByReason groups deletion errors by reason
func GroupByReason(errs []*DeleteError) map[ErrorReason][]*DeleteError {
	grouped := make(map[ErrorReason][]*DeleteError)
	for _, err := range errs {
		grouped[err.Reason] = append(grouped[err.Reason], err)
	}
	return grouped
}

// FormatErrorSummary creates a user-friendly summary of deletion failures
func FormatErrorSummary(errs []*DeleteError) string {
	if len(errs) == 0 {
		return ""
	}

	grouped := GroupByReason(errs)
	summary := "\n⚠️  Issues encountered:\n"

	if perms, ok := grouped[ReasonPermissionDenied]; ok {
		summary += fmt.Sprintf("   ├─ Permission denied: %d files\n", len(perms))
		summary += "   │  └─ Tip: Elevate permissions and retry\n"
	}

	if busy, ok := grouped[ReasonFileInUse]; ok {
		summary += fmt.Sprintf("   ├─ File in use: %d files\n", len(busy))
		summary += "   │  └─ Tip: Close applications and retry\n"
	}

	if missing, ok := grouped[ReasonNotFound]; ok {
		summary += fmt.Sprintf("   ├─ Vanished before deletion: %d files\n", len(missing))
	}

	if dirs, ok := grouped[ReasonIsDirectory]; ok {
		summary += fmt.Sprintf("   ├─ Directories: %d items\n", len(dirs))
	}

	if unknown, ok := grouped[ReasonUnknown]; ok {
		summary += fmt.Sprintf("   └─ Other errors: %d files\n", len(unknown))
	}

	return summary
}
