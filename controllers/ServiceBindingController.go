package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rabobank/bssb/broker"
	"github.com/rabobank/bssb/model"
	"github.com/rabobank/bssb/util"
)

// Bindings the binding lifecycle orchestrator, wired up during startup
var Bindings *broker.BindingService

func CreateServiceBinding(w http.ResponseWriter, r *http.Request) {
	serviceInstanceId := mux.Vars(r)["service_instance_guid"]
	serviceBindingId := mux.Vars(r)["service_binding_guid"]
	fmt.Printf("create service binding %s for service instance %s...\n", serviceBindingId, serviceInstanceId)
	var request model.CreateServiceBindingRequest
	if err := util.ProvisionObjectFromRequest(r, &request); err != nil {
		util.WriteHttpResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	credentials, alreadyExisted, err := Bindings.CreateBinding(serviceInstanceId, serviceBindingId, request)
	if err != nil {
		util.WriteHttpResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	response := model.CreateServiceBindingResponse{Credentials: credentials}
	if alreadyExisted {
		util.WriteHttpResponse(w, http.StatusOK, response)
	} else {
		util.WriteHttpResponse(w, http.StatusCreated, response)
	}
}

func GetServiceBinding(w http.ResponseWriter, r *http.Request) {
	serviceInstanceId := mux.Vars(r)["service_instance_guid"]
	serviceBindingId := mux.Vars(r)["service_binding_guid"]
	fmt.Printf("get service binding %s for service instance %s...\n", serviceBindingId, serviceInstanceId)
	binding, err := Bindings.GetBinding(serviceBindingId)
	if errors.Is(err, broker.ErrBindingNotFound) {
		util.WriteHttpResponse(w, http.StatusNotFound, fmt.Sprintf("ServiceBinding %s not found", serviceBindingId))
		return
	}
	if err != nil {
		util.WriteHttpResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	util.WriteHttpResponse(w, http.StatusOK, model.GetServiceBindingResponse{Parameters: binding.Parameters, Credentials: binding.Credentials})
}

func DeleteServiceBinding(w http.ResponseWriter, r *http.Request) {
	serviceInstanceId := mux.Vars(r)["service_instance_guid"]
	serviceBindingId := mux.Vars(r)["service_binding_guid"]
	serviceDefinitionId := r.URL.Query().Get("service_id")
	fmt.Printf("delete service binding %s for service instance %s...\n", serviceBindingId, serviceInstanceId)
	err := Bindings.DeleteBinding(serviceBindingId, serviceDefinitionId)
	if errors.Is(err, broker.ErrBindingNotFound) {
		util.WriteHttpResponse(w, http.StatusGone, fmt.Sprintf("ServiceBinding %s not found", serviceBindingId))
		return
	}
	if err != nil {
		util.WriteHttpResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	util.WriteHttpResponse(w, http.StatusOK, struct{}{})
}
