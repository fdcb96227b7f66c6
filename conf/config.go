package conf

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/cloudfoundry-community/go-cfenv"
	"github.com/rabobank/bssb/model"
)

var (
	VERSION = "0.0.1"
	COMMIT  = "dev"

	AWSSession *session.Session
	SMClient   *secretsmanager.SecretsManager
	Catalog    model.Catalog
	ListenPort int
	Debug      = false
	// VaultEnabled - when true, binding credentials are also kept in AWS Secrets Manager
	VaultEnabled = false

	DebugStr        = os.Getenv("BSSB_DEBUG")
	VaultEnabledStr = os.Getenv("BSSB_VAULT_ENABLED")
	AppName         = os.Getenv("BSSB_APP_NAME")
	BaseUrl         = os.Getenv("BSSB_BASE_URL")
	BrokerUser      = os.Getenv("BSSB_BROKER_USER")
	BrokerDBUser    = os.Getenv("BSSB_BROKER_DB_USER")
	BrokerDBName    = os.Getenv("BSSB_BROKER_DB_NAME")
	BrokerDBHost    = os.Getenv("BSSB_BROKER_DB_HOST")
	CatalogDir      = os.Getenv("BSSB_CATALOG_DIR")
	ListenPortStr   = os.Getenv("BSSB_LISTEN_PORT")
	AWSRegion       = os.Getenv("BSSB_AWS_REGION")

	BrokerPassword   string
	BrokerDBPassword string
	EncryptKey       string
)

const BasicAuthRealm = "BSSB - BookStore Service Broker"

func EnvironmentComplete() {
	envComplete := true
	if DebugStr == "true" {
		Debug = true
	}
	if VaultEnabledStr == "true" {
		VaultEnabled = true
	}
	if AppName == "" {
		AppName = "bssb"
	}
	if BaseUrl == "" {
		envComplete = false
		fmt.Println("missing envvar: BSSB_BASE_URL")
	}
	if BrokerUser == "" {
		envComplete = false
		fmt.Println("missing envvar: BSSB_BROKER_USER")
	}
	if BrokerDBUser == "" {
		envComplete = false
		fmt.Println("missing envvar: BSSB_BROKER_DB_USER")
	}
	if BrokerDBName == "" {
		BrokerDBName = "bssbdb"
	}
	if BrokerDBHost == "" {
		BrokerDBHost = "localhost"
	}
	if CatalogDir == "" {
		CatalogDir = "catalog"
	}
	if ListenPortStr == "" {
		ListenPort = 8080
	} else {
		var err error
		ListenPort, err = strconv.Atoi(ListenPortStr)
		if err != nil {
			fmt.Printf("failed reading envvar BSSB_LISTEN_PORT, err: %s\n", err)
			envComplete = false
		}
	}
	if VaultEnabled && AWSRegion == "" {
		envComplete = false
		fmt.Println("missing envvar: BSSB_AWS_REGION (required when BSSB_VAULT_ENABLED=true)")
	}

	if !envComplete {
		fmt.Println("one or more required envvars missing, aborting...")
		os.Exit(8)
	}

	initCredentials()
}

// initCredentials - Get the credentials from credhub (VCAP_SERVICES envvar)
func initCredentials() {
	fmt.Println("getting credentials from credhub...")
	if appEnv, err := cfenv.Current(); err == nil {
		services, err := appEnv.Services.WithLabel("credhub")
		if err == nil {
			if len(services) != 1 {
				fmt.Printf("we expected exactly one bound credhub service instance, but found %d\n", len(services))
			} else {
				EncryptKey = fmt.Sprint(services[0].Credentials["BSSB_ENCRYPT_KEY"])
				BrokerPassword = fmt.Sprint(services[0].Credentials["BSSB_BROKER_PASSWORD"])
				BrokerDBPassword = fmt.Sprint(services[0].Credentials["BSSB_BROKER_DB_PASSWORD"])
				allVarsFound := true
				if EncryptKey == "" {
					fmt.Printf("credhub variable BSSB_ENCRYPT_KEY is missing")
					allVarsFound = false
				}
				if BrokerPassword == "" {
					fmt.Printf("credhub variable BSSB_BROKER_PASSWORD is missing")
					allVarsFound = false
				}
				if BrokerDBPassword == "" {
					fmt.Printf("credhub variable BSSB_BROKER_DB_PASSWORD is missing")
					allVarsFound = false
				}
				if !allVarsFound {
					os.Exit(8)
				}
			}
		} else {
			fmt.Printf("failed getting services from cf env: %s\n", err)
			os.Exit(8)
		}
	} else {
		fmt.Printf("failed to get the current cf env: %s\n", err)
		os.Exit(8)
	}
}
