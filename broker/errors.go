package broker

import "errors"

var (
	// ErrBindingNotFound get or delete was called for a binding id that has no record in the binding store
	ErrBindingNotFound = errors.New("service binding does not exist")
	// ErrIdentityProvisioning creating the binding user failed, nothing has been written yet
	ErrIdentityProvisioning = errors.New("failed to provision the binding user")
	// ErrVaultOperation the vault refused the credentials, the binding record has not been written
	ErrVaultOperation = errors.New("vault operation failed")
)
