package vault

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCredentialName one of the name segments is empty or contains a separator
var ErrInvalidCredentialName = errors.New("invalid credential name")

// BuildCredentialName Returns the name under which the credentials of a binding are kept in the vault:
// /c/<appName>/<serviceDefinitionId>/<bindingId>/credentials-json
// The name is recomputed from its inputs on every vault operation and never stored anywhere.
func BuildCredentialName(appName, serviceDefinitionId, bindingId string) (string, error) {
	for _, segment := range []string{appName, serviceDefinitionId, bindingId} {
		if segment == "" || strings.Contains(segment, "/") {
			return "", fmt.Errorf("%w: segment %q", ErrInvalidCredentialName, segment)
		}
	}
	return fmt.Sprintf("/c/%s/%s/%s/credentials-json", appName, serviceDefinitionId, bindingId), nil
}
