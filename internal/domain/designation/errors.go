package designation

import "errors"

var (
	ErrDesignationNotFound   = errors.New("designation not found")
	ErrDesignationNameExists = errors.New("designation name already exists")
	ErrDesignationInUse      = errors.New("designation still has employees assigned")
)
