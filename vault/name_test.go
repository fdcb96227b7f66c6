package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCredentialName(t *testing.T) {
	name, err := BuildCredentialName("bookstore", "service-1", "b1")
	require.NoError(t, err)
	assert.Equal(t, "/c/bookstore/service-1/b1/credentials-json", name)
}

func TestBuildCredentialNameIsDeterministic(t *testing.T) {
	first, err := BuildCredentialName("bookstore", "service-1", "b1")
	require.NoError(t, err)
	second, err := BuildCredentialName("bookstore", "service-1", "b1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildCredentialNameInvalidSegments(t *testing.T) {
	_, err := BuildCredentialName("", "service-1", "b1")
	assert.ErrorIs(t, err, ErrInvalidCredentialName)

	_, err = BuildCredentialName("bookstore", "", "b1")
	assert.ErrorIs(t, err, ErrInvalidCredentialName)

	_, err = BuildCredentialName("bookstore", "service-1", "")
	assert.ErrorIs(t, err, ErrInvalidCredentialName)

	_, err = BuildCredentialName("bookstore", "service/1", "b1")
	assert.ErrorIs(t, err, ErrInvalidCredentialName)
}
