package vault

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVault struct {
	secrets     map[string]map[string]interface{}
	writeErr    error
	deleteErr   error
	existsErr   error
	deleteCalls int
}

func newFakeVault() *fakeVault {
	return &fakeVault{secrets: make(map[string]map[string]interface{})}
}

func (f *fakeVault) Exists(name string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.secrets[name]
	return ok, nil
}

func (f *fakeVault) Write(name string, credentials map[string]interface{}) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.secrets[name] = credentials
	return nil
}

func (f *fakeVault) Delete(name string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.secrets, name)
	return nil
}

func credentials() map[string]interface{} {
	return map[string]interface{}{"uri": "https://bookstore.example.com/bookstores/i1", "username": "b1", "password": "secret"}
}

func TestCreateBindingWorkflow(t *testing.T) {
	v := newFakeVault()
	workflow := NewCreateBinding(v, "bookstore")

	result, err := workflow.BuildResponse("service-1", "b1", credentials())
	require.NoError(t, err)
	assert.Equal(t, credentials(), result)
	assert.Equal(t, credentials(), v.secrets["/c/bookstore/service-1/b1/credentials-json"])
}

func TestCreateBindingWorkflowWriteFailure(t *testing.T) {
	v := newFakeVault()
	v.writeErr = errors.New("vault unavailable")
	workflow := NewCreateBinding(v, "bookstore")

	_, err := workflow.BuildResponse("service-1", "b1", credentials())
	assert.EqualError(t, err, "vault unavailable")
}

func TestCreateBindingWorkflowInvalidName(t *testing.T) {
	workflow := NewCreateBinding(newFakeVault(), "bookstore")
	_, err := workflow.BuildResponse("service/1", "b1", credentials())
	assert.ErrorIs(t, err, ErrInvalidCredentialName)
}

func TestDeleteBindingWorkflow(t *testing.T) {
	v := newFakeVault()
	v.secrets["/c/bookstore/service-1/b1/credentials-json"] = credentials()
	workflow := NewDeleteBinding(v, "bookstore")

	require.NoError(t, workflow.BuildResponse("service-1", "b1"))
	assert.Empty(t, v.secrets)
	assert.Equal(t, 1, v.deleteCalls)
}

func TestDeleteBindingWorkflowIdempotent(t *testing.T) {
	v := newFakeVault()
	workflow := NewDeleteBinding(v, "bookstore")

	// nothing in the vault for this binding, both deletes are a no-op success
	require.NoError(t, workflow.BuildResponse("service-1", "b1"))
	require.NoError(t, workflow.BuildResponse("service-1", "b1"))
	assert.Equal(t, 0, v.deleteCalls)
}

func TestDeleteBindingWorkflowTwiceAfterWrite(t *testing.T) {
	v := newFakeVault()
	v.secrets["/c/bookstore/service-1/b1/credentials-json"] = credentials()
	workflow := NewDeleteBinding(v, "bookstore")

	require.NoError(t, workflow.BuildResponse("service-1", "b1"))
	require.NoError(t, workflow.BuildResponse("service-1", "b1"))
	assert.Equal(t, 1, v.deleteCalls)
}

func TestDeleteBindingWorkflowDeleteFailure(t *testing.T) {
	v := newFakeVault()
	v.secrets["/c/bookstore/service-1/b1/credentials-json"] = credentials()
	v.deleteErr = errors.New("vault unavailable")
	workflow := NewDeleteBinding(v, "bookstore")

	assert.EqualError(t, workflow.BuildResponse("service-1", "b1"), "vault unavailable")
}

func TestDeleteBindingWorkflowExistsFailure(t *testing.T) {
	v := newFakeVault()
	v.existsErr = errors.New("vault unavailable")
	workflow := NewDeleteBinding(v, "bookstore")

	assert.EqualError(t, workflow.BuildResponse("service-1", "b1"), "vault unavailable")
	assert.Equal(t, 0, v.deleteCalls)
}
