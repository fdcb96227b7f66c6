package vault

import (
	"fmt"

	"github.com/rabobank/bssb/conf"
)

// CreateBinding Stores the credentials of a new binding in the vault before the binding record is
// persisted. A write failure propagates up and aborts the whole binding creation.
type CreateBinding struct {
	vault   Vault
	appName string
}

func NewCreateBinding(vault Vault, appName string) *CreateBinding {
	return &CreateBinding{vault: vault, appName: appName}
}

func (w *CreateBinding) BuildResponse(serviceDefinitionId, bindingId string, credentials map[string]interface{}) (map[string]interface{}, error) {
	name, err := BuildCredentialName(w.appName, serviceDefinitionId, bindingId)
	if err != nil {
		return nil, err
	}
	if err = w.vault.Write(name, credentials); err != nil {
		return nil, err
	}
	return credentials, nil
}

// DeleteBinding Removes the credentials of a binding from the vault. The existence check makes the
// delete idempotent: some vault backends error on delete-of-nonexistent, and a binding that never
// reached the vault (or was already cleaned up) must still unbind without error.
type DeleteBinding struct {
	vault   Vault
	appName string
}

func NewDeleteBinding(vault Vault, appName string) *DeleteBinding {
	return &DeleteBinding{vault: vault, appName: appName}
}

func (w *DeleteBinding) BuildResponse(serviceDefinitionId, bindingId string) error {
	name, err := BuildCredentialName(w.appName, serviceDefinitionId, bindingId)
	if err != nil {
		return err
	}
	exists, err := w.vault.Exists(name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if conf.Debug {
		fmt.Printf("deleting binding credentials with name %s from the vault...\n", name)
	}
	if err = w.vault.Delete(name); err != nil {
		fmt.Printf("error deleting binding credentials with name %s from the vault: %s\n", name, err)
		return err
	}
	if conf.Debug {
		fmt.Printf("finished deleting binding credentials with name %s from the vault\n", name)
	}
	return nil
}
