package db

import (
	"database/sql"
	"fmt"
)

const (
	StatusSucceeded = "succeeded"
)

// ServiceInstance A bookstore instance record, table service_instance:
//
//	service_instance_id varchar(64) primary key, service_id varchar(64), plan_id varchar(64),
//	organization_guid varchar(64), space_guid varchar(64), parameters text
type ServiceInstance struct {
	ServiceInstanceId string
	ServiceId         string
	PlanId            string
	OrganizationGuid  string
	SpaceGuid         string
	Parameters        string
}

func (si ServiceInstance) String() string {
	return fmt.Sprintf("ServiceInstance: ServiceInstanceId:%s, ServiceId:%s, PlanId:%s", si.ServiceInstanceId, si.ServiceId, si.PlanId)
}

func InsertServiceInstance(serviceInstance ServiceInstance) error {
	db := GetDB()
	defer db.Close()
	_, err := db.Exec("insert into service_instance(service_instance_id, service_id, plan_id, organization_guid, space_guid, parameters) values(?,?,?,?,?,?)",
		serviceInstance.ServiceInstanceId, serviceInstance.ServiceId, serviceInstance.PlanId, serviceInstance.OrganizationGuid, serviceInstance.SpaceGuid, serviceInstance.Parameters)
	if err != nil {
		fmt.Printf("failed to insert %v, error: %s\n", serviceInstance, err)
	} else {
		fmt.Printf("inserted %v\n", serviceInstance)
	}
	return err
}

func GetServiceInstanceByInstanceId(id string) ServiceInstance {
	var serviceInstance ServiceInstance
	db := GetDB()
	defer db.Close()
	err := db.QueryRow("select service_instance_id, service_id, plan_id, organization_guid, space_guid, parameters from service_instance where service_instance_id=?", id).
		Scan(&serviceInstance.ServiceInstanceId, &serviceInstance.ServiceId, &serviceInstance.PlanId, &serviceInstance.OrganizationGuid, &serviceInstance.SpaceGuid, &serviceInstance.Parameters)
	if err != nil && err != sql.ErrNoRows {
		fmt.Printf("failed to query the service_instance for instance_id %s, err: %s\n", id, err)
	}
	return serviceInstance
}

func DeleteServiceInstance(id string) error {
	db := GetDB()
	defer db.Close()
	_, err := db.Exec("delete from service_instance where service_instance_id=?", id)
	if err != nil {
		fmt.Printf("failed to delete service_instance %s, error: %s\n", id, err)
	}
	return err
}

// CountServiceInstances used by the startup smoke test of the db connection
func CountServiceInstances() int {
	db := GetDB()
	defer db.Close()
	var count int
	if err := db.QueryRow("select count(*) from service_instance").Scan(&count); err != nil {
		fmt.Printf("failed to count the service_instances, err: %s\n", err)
	}
	return count
}
