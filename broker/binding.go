package broker

import (
	"fmt"
	"strings"

	"github.com/rabobank/bssb/model"
	"github.com/rabobank/bssb/vault"
)

const (
	UriKey      = "uri"
	UsernameKey = "username"
	PasswordKey = "password"

	// FullAccess the authority granted to every binding user
	FullAccess = "ROLE_FULL_ACCESS"
	// BookStoreIdPrefix prefix for the authority that scopes a binding user to one bookstore instance
	BookStoreIdPrefix = "BOOK_STORE_ID="
)

// BindingStore Durable keyed store of binding records. Get returns (nil, nil) when no record exists.
type BindingStore interface {
	Exists(bindingId string) (bool, error)
	Get(bindingId string) (*model.ServiceBinding, error)
	Put(binding model.ServiceBinding) error
	Delete(bindingId string) error
}

// UserService Creates and destroys the generated identities, keyed by binding id.
type UserService interface {
	CreateUser(bindingId string, authorities ...string) (model.User, error)
	DeleteUser(bindingId string) error
}

// BindingService The binding lifecycle orchestrator. It keeps no state of its own, all state lives in the
// collaborators, so one instance serves any number of concurrent requests. The vault workflows are optional,
// a nil workflow means no vault is configured for this deployment.
type BindingService struct {
	store          BindingStore
	users          UserService
	createWorkflow *vault.CreateBinding
	deleteWorkflow *vault.DeleteBinding
	baseUrl        string
}

func NewBindingService(store BindingStore, users UserService, createWorkflow *vault.CreateBinding, deleteWorkflow *vault.DeleteBinding, baseUrl string) *BindingService {
	return &BindingService{store: store, users: users, createWorkflow: createWorkflow, deleteWorkflow: deleteWorkflow, baseUrl: baseUrl}
}

// CreateBinding Creates the binding, or returns the stored credentials with alreadyExisted=true when a record
// for this binding id exists (the cf api may resend an identical request after a timeout, so re-creation must
// be idempotent and side-effect free). On the fresh path the binding record is only written after the vault
// accepted the credentials, so a vault failure never leaves a half-committed binding.
func (s *BindingService) CreateBinding(serviceInstanceId, bindingId string, request model.CreateServiceBindingRequest) (map[string]interface{}, bool, error) {
	binding, err := s.store.Get(bindingId)
	if err != nil {
		return nil, false, err
	}
	if binding != nil {
		return binding.Credentials, true, nil
	}

	user, err := s.users.CreateUser(bindingId, FullAccess, BookStoreIdPrefix+serviceInstanceId)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrIdentityProvisioning, err)
	}

	credentials := map[string]interface{}{
		UriKey:      s.buildUri(serviceInstanceId),
		UsernameKey: user.Username,
		PasswordKey: user.Password,
	}

	if s.createWorkflow != nil {
		credentials, err = s.createWorkflow.BuildResponse(request.ServiceId, bindingId, credentials)
		if err != nil {
			// the user is left behind, a retried create for the same binding id will replace it
			fmt.Printf("failed to store credentials for binding %s in the vault, user %s is now orphaned, error: %s\n", bindingId, user.Username, err)
			return nil, false, fmt.Errorf("%w: %s", ErrVaultOperation, err)
		}
	}

	if err = s.store.Put(model.ServiceBinding{BindingId: bindingId, ServiceInstanceId: serviceInstanceId, Parameters: request.Parameters, Credentials: credentials}); err != nil {
		return nil, false, err
	}
	return credentials, false, nil
}

// GetBinding Returns the stored parameters and credentials verbatim, only the binding store is consulted.
func (s *BindingService) GetBinding(bindingId string) (*model.ServiceBinding, error) {
	binding, err := s.store.Get(bindingId)
	if err != nil {
		return nil, err
	}
	if binding == nil {
		return nil, ErrBindingNotFound
	}
	return binding, nil
}

// DeleteBinding Deletes the binding record first: once the record is gone the binding is no longer live,
// whatever happens to the user or vault cleanup after that. User and vault cleanup are best effort, their
// failures are logged but do not fail the delete.
func (s *BindingService) DeleteBinding(bindingId, serviceDefinitionId string) error {
	exists, err := s.store.Exists(bindingId)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBindingNotFound
	}

	if err = s.store.Delete(bindingId); err != nil {
		return err
	}
	if err = s.users.DeleteUser(bindingId); err != nil {
		fmt.Printf("failed to delete user for binding %s, error: %s\n", bindingId, err)
	}
	if s.deleteWorkflow != nil {
		if err = s.deleteWorkflow.BuildResponse(serviceDefinitionId, bindingId); err != nil {
			fmt.Printf("failed to delete credentials for binding %s from the vault, error: %s\n", bindingId, err)
		}
	}
	return nil
}

func (s *BindingService) buildUri(serviceInstanceId string) string {
	return fmt.Sprintf("%s/bookstores/%s", strings.TrimSuffix(s.baseUrl, "/"), serviceInstanceId)
}
