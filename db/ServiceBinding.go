package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rabobank/bssb/model"
	"github.com/rabobank/bssb/util"
)

// ServiceBindingStore MySQL backed binding store, table service_binding:
//
//	service_binding_id varchar(64) primary key, service_instance_id varchar(64), parameters text, credentials text
//
// The primary key on service_binding_id is what protects against two concurrent creates for the same
// binding id, the second insert fails. The credentials column is encrypted at rest.
type ServiceBindingStore struct{}

func (ServiceBindingStore) Exists(bindingId string) (bool, error) {
	db := GetDB()
	defer db.Close()
	var count int
	err := db.QueryRow("select count(*) from service_binding where service_binding_id=?", bindingId).Scan(&count)
	if err != nil {
		fmt.Printf("failed to query the service_binding for binding_id %s, err: %s\n", bindingId, err)
		return false, err
	}
	return count > 0, nil
}

func (ServiceBindingStore) Get(bindingId string) (*model.ServiceBinding, error) {
	db := GetDB()
	defer db.Close()
	var serviceInstanceId, parameters, credentials string
	err := db.QueryRow("select service_instance_id, parameters, credentials from service_binding where service_binding_id=?", bindingId).
		Scan(&serviceInstanceId, &parameters, &credentials)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		fmt.Printf("failed to query the service_binding for binding_id %s, err: %s\n", bindingId, err)
		return nil, err
	}
	binding := model.ServiceBinding{BindingId: bindingId, ServiceInstanceId: serviceInstanceId}
	if err = json.Unmarshal([]byte(parameters), &binding.Parameters); err != nil {
		fmt.Printf("failed to unmarshal parameters of binding %s, err: %s\n", bindingId, err)
		return nil, err
	}
	decrypted, err := util.Decrypt(credentials)
	if err != nil {
		fmt.Printf("failed to decrypt credentials of binding %s, err: %s\n", bindingId, err)
		return nil, err
	}
	if err = json.Unmarshal([]byte(decrypted), &binding.Credentials); err != nil {
		fmt.Printf("failed to unmarshal credentials of binding %s, err: %s\n", bindingId, err)
		return nil, err
	}
	return &binding, nil
}

func (ServiceBindingStore) Put(binding model.ServiceBinding) error {
	parameters, err := json.Marshal(binding.Parameters)
	if err != nil {
		return err
	}
	credentials, err := json.Marshal(binding.Credentials)
	if err != nil {
		return err
	}
	encrypted, err := util.Encrypt(string(credentials))
	if err != nil {
		fmt.Printf("failed to encrypt credentials of binding %s, err: %s\n", binding.BindingId, err)
		return err
	}
	db := GetDB()
	defer db.Close()
	_, err = db.Exec("insert into service_binding(service_binding_id, service_instance_id, parameters, credentials) values(?,?,?,?)",
		binding.BindingId, binding.ServiceInstanceId, string(parameters), encrypted)
	if err != nil {
		fmt.Printf("failed to insert service_binding %s, error: %s\n", binding.BindingId, err)
	} else {
		fmt.Printf("inserted service_binding %s for service instance %s\n", binding.BindingId, binding.ServiceInstanceId)
	}
	return err
}

func (ServiceBindingStore) Delete(bindingId string) error {
	db := GetDB()
	defer db.Close()
	_, err := db.Exec("delete from service_binding where service_binding_id=?", bindingId)
	if err != nil {
		fmt.Printf("failed to delete service_binding %s, error: %s\n", bindingId, err)
	}
	return err
}

// CountServiceBindings used by the startup smoke test of the db connection
func CountServiceBindings() int {
	db := GetDB()
	defer db.Close()
	var count int
	if err := db.QueryRow("select count(*) from service_binding").Scan(&count); err != nil {
		fmt.Printf("failed to count the service_bindings, err: %s\n", err)
	}
	return count
}
