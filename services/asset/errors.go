package assetservice

import (
	"assetledger/services/employee"

	"github.com/pkg/errors"
)

var (
	ErrNotFound                     = errors.New("not found")
	ErrInvalidState                 = errors.New("invalid state")
	ErrEmployeeDirectoryUnavailable = employee.ErrDirectoryUnavailable
	ErrValidation                   = errors.New("validation failed")
)
