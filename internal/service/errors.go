package service

import "errors"

// Authorization failures. Each case carries its own operator-facing message —
// a generic "login failed" would hide whether the problem is billing, the
// store id, or the credentials.
var (
	ErrTenantNotFound           = errors.New("business node not found — check the Store ID")
	ErrSubscriptionExpired      = errors.New("terminal locked: subscription has expired, contact ByteWave management for renewal")
	ErrTenantSuspended          = errors.New("subscription suspended: connection interrupted by ByteWave billing")
	ErrInvalidOwnerCredentials  = errors.New("auth failure: merchant email/password mismatch")
	ErrInvalidStaffCredentials  = errors.New("auth failure: incorrect staff credentials")
	ErrInvalidMasterCredentials = errors.New("security alert: system master password incorrect")
)

// Tenancy lifecycle failures.
var (
	ErrDuplicateTenantID    = errors.New("a business node with this ID already exists")
	ErrOfflineWriteRejected = errors.New("offline: node administration requires an active connection")
)

// Order completion failures.
var (
	ErrEmptyCart     = errors.New("cannot complete an empty sale")
	ErrTotalMismatch = errors.New("register total does not match the computed total")
)
