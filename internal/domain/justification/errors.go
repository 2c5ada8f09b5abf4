package justification

import "errors"

var (
	ErrJustificationNotFound = errors.New("justification not found")
	ErrPermitTypeNotFound    = errors.New("permit type not found")

	// ErrOverlappingJustification rejects a new record whose date range
	// overlaps an existing one for the same employee.
	ErrOverlappingJustification = errors.New("another justification for this employee overlaps the requested date range")

	ErrAttachmentRequired = errors.New("this permit type requires an attachment")
	ErrAlreadyResolved    = errors.New("justification has already been approved or rejected")
)
