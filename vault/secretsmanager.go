package vault

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// Vault The external secret store holding binding credentials, keyed by credential name.
type Vault interface {
	Exists(name string) (bool, error)
	Write(name string, credentials map[string]interface{}) error
	Delete(name string) error
}

// SecretsManagerAPI The subset of the AWS Secrets Manager client we use.
type SecretsManagerAPI interface {
	DescribeSecret(input *secretsmanager.DescribeSecretInput) (*secretsmanager.DescribeSecretOutput, error)
	CreateSecret(input *secretsmanager.CreateSecretInput) (*secretsmanager.CreateSecretOutput, error)
	PutSecretValue(input *secretsmanager.PutSecretValueInput) (*secretsmanager.PutSecretValueOutput, error)
	DeleteSecret(input *secretsmanager.DeleteSecretInput) (*secretsmanager.DeleteSecretOutput, error)
}

type SecretsManagerVault struct {
	client SecretsManagerAPI
}

func NewSecretsManagerVault(client SecretsManagerAPI) *SecretsManagerVault {
	return &SecretsManagerVault{client: client}
}

func (v *SecretsManagerVault) Exists(name string) (bool, error) {
	_, err := v.client.DescribeSecret(&secretsmanager.DescribeSecretInput{SecretId: aws.String(name)})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == secretsmanager.ErrCodeResourceNotFoundException {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (v *SecretsManagerVault) Write(name string, credentials map[string]interface{}) error {
	payload, err := json.Marshal(credentials)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials for secret %s: %s", name, err)
	}
	_, err = v.client.CreateSecret(&secretsmanager.CreateSecretInput{Name: aws.String(name), SecretString: aws.String(string(payload))})
	if err != nil {
		// the secret can already exist, for example after a create that failed between the vault write and the record write
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == secretsmanager.ErrCodeResourceExistsException {
			_, err = v.client.PutSecretValue(&secretsmanager.PutSecretValueInput{SecretId: aws.String(name), SecretString: aws.String(string(payload))})
		}
	}
	return err
}

func (v *SecretsManagerVault) Delete(name string) error {
	_, err := v.client.DeleteSecret(&secretsmanager.DeleteSecretInput{SecretId: aws.String(name), ForceDeleteWithoutRecovery: aws.Bool(true)})
	return err
}
