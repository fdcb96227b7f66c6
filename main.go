package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/rabobank/bssb/broker"
	"github.com/rabobank/bssb/conf"
	"github.com/rabobank/bssb/controllers"
	"github.com/rabobank/bssb/db"
	"github.com/rabobank/bssb/server"
	"github.com/rabobank/bssb/vault"
)

func main() {
	fmt.Printf("bssb starting, version:%s, commit:%s\n", conf.VERSION, conf.COMMIT)

	conf.EnvironmentComplete()

	initialize()

	// test the db access to tables
	fmt.Printf("found %d service instances\n", db.CountServiceInstances())
	fmt.Printf("found %d service bindings\n", db.CountServiceBindings())

	server.StartServer()
}

// initialize bssb:
//   - read the catalog file
//   - create the AWS Secrets Manager client when the vault is enabled
//   - test the database
//   - wire up the binding lifecycle orchestrator
func initialize() {
	catalogFile := fmt.Sprintf("%s/bookstore.json", conf.CatalogDir)
	file, err := os.ReadFile(catalogFile)
	if err != nil {
		fmt.Printf("failed reading catalog file %s: %s\n", catalogFile, err)
		os.Exit(8)
	}
	err = json.Unmarshal(file, &conf.Catalog)
	if err != nil {
		fmt.Printf("failed unmarshalling json from file %s, error: %s\n", catalogFile, err)
		os.Exit(8)
	}

	var createWorkflow *vault.CreateBinding
	var deleteWorkflow *vault.DeleteBinding
	if conf.VaultEnabled {
		conf.AWSSession, err = session.NewSession(&aws.Config{Region: aws.String(conf.AWSRegion)})
		if err != nil {
			fmt.Printf("failed to create new AWS Session, error: %s\n", err)
			os.Exit(8)
		}
		conf.SMClient = secretsmanager.New(conf.AWSSession)
		if conf.Debug {
			fmt.Println("AWS Secrets Manager client created")
		}
		secretsManagerVault := vault.NewSecretsManagerVault(conf.SMClient)
		createWorkflow = vault.NewCreateBinding(secretsManagerVault, conf.AppName)
		deleteWorkflow = vault.NewDeleteBinding(secretsManagerVault, conf.AppName)
	} else {
		fmt.Println("no vault configured, binding credentials are only kept in the broker db")
	}

	// test if the DB can be opened
	database := db.GetDB()
	defer database.Close()

	controllers.Bindings = broker.NewBindingService(db.ServiceBindingStore{}, db.UserStore{}, createWorkflow, deleteWorkflow, conf.BaseUrl)
}
