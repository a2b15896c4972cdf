package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid employee id or password")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked    = errors.New("refresh token has been revoked")
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrForbidden              = errors.New("access to another employee's data is not allowed")
)
