package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rabobank/bssb/conf"
	"github.com/rabobank/bssb/db"
	"github.com/rabobank/bssb/model"
	"github.com/rabobank/bssb/util"
)

func Catalog(w http.ResponseWriter, r *http.Request) {
	fmt.Printf("get service broker catalog from %s...\n", r.RemoteAddr)
	util.WriteHttpResponse(w, http.StatusOK, conf.Catalog)
}

func GetServiceInstance(w http.ResponseWriter, r *http.Request) {
	serviceInstanceId := mux.Vars(r)["service_instance_guid"]
	fmt.Printf("get service instance for %s...\n", serviceInstanceId)
	serviceInstance := db.GetServiceInstanceByInstanceId(serviceInstanceId)
	if serviceInstance.ServiceInstanceId == "" {
		util.WriteHttpResponse(w, http.StatusNotFound, fmt.Sprintf("service instance with guid %s not found", serviceInstanceId))
		return
	}
	response := model.CreateServiceInstanceResponse{
		ServiceId:    serviceInstance.ServiceId,
		PlanId:       serviceInstance.PlanId,
		DashboardUrl: fmt.Sprintf("%s/bookstores/%s", conf.BaseUrl, serviceInstanceId),
	}
	util.WriteHttpResponse(w, http.StatusOK, response)
}

func GetServiceInstanceLastOperation(w http.ResponseWriter, r *http.Request) {
	serviceInstanceId := mux.Vars(r)["service_instance_guid"]
	fmt.Printf("get service instance LastOperation for %s...\n", serviceInstanceId)
	// bookstore instances are provisioned synchronously, so a created instance is always succeeded
	response := &model.LastOperation{State: db.StatusSucceeded, Description: "bookstore instance is ready"}
	util.WriteHttpResponse(w, http.StatusOK, response)
}

func CreateServiceInstance(w http.ResponseWriter, r *http.Request) {
	serviceInstanceId := mux.Vars(r)["service_instance_guid"]
	fmt.Printf("create service instance for %s...\n", serviceInstanceId)
	var serviceInstance model.ServiceInstance
	if err := util.ProvisionObjectFromRequest(r, &serviceInstance); err != nil {
		util.WriteHttpResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if util.GetServiceById(serviceInstance.ServiceId).Name == "" {
		util.WriteHttpResponse(w, http.StatusBadRequest, fmt.Sprintf("service with id %s is not in the catalog", serviceInstance.ServiceId))
		return
	}
	dashboardUrl := fmt.Sprintf("%s/bookstores/%s", conf.BaseUrl, serviceInstanceId)
	existing := db.GetServiceInstanceByInstanceId(serviceInstanceId)
	if existing.ServiceInstanceId != "" {
		response := model.CreateServiceInstanceResponse{DashboardUrl: dashboardUrl}
		util.WriteHttpResponse(w, http.StatusOK, response)
		return
	}
	parmsBA, err := json.Marshal(serviceInstance.Parameters)
	if err != nil {
		util.WriteHttpResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	err = db.InsertServiceInstance(db.ServiceInstance{
		ServiceInstanceId: serviceInstanceId,
		ServiceId:         serviceInstance.ServiceId,
		PlanId:            serviceInstance.PlanId,
		OrganizationGuid:  serviceInstance.OrganizationGuid,
		SpaceGuid:         serviceInstance.SpaceGuid,
		Parameters:        string(parmsBA),
	})
	if err != nil {
		util.WriteHttpResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	response := model.CreateServiceInstanceResponse{DashboardUrl: dashboardUrl}
	util.WriteHttpResponse(w, http.StatusCreated, response)
}

func DeleteServiceInstance(w http.ResponseWriter, r *http.Request) {
	serviceInstanceId := mux.Vars(r)["service_instance_guid"]
	fmt.Printf("delete service instance %s...\n", serviceInstanceId)
	serviceInstance := db.GetServiceInstanceByInstanceId(serviceInstanceId)
	if serviceInstance.ServiceInstanceId == "" {
		util.WriteHttpResponse(w, http.StatusGone, fmt.Sprintf("service instance with guid %s not found", serviceInstanceId))
		return
	}
	if err := db.DeleteServiceInstance(serviceInstanceId); err != nil {
		util.WriteHttpResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	util.WriteHttpResponse(w, http.StatusOK, struct{}{})
}
