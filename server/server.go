package server

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rabobank/bssb/conf"
	"github.com/rabobank/bssb/controllers"
)

func StartServer() {
	router := mux.NewRouter()
	router.Use(controllers.DebugMiddleware)
	router.Use(controllers.AddHeadersMiddleware)
	router.Use(controllers.BasicAuthMiddleware)

	router.HandleFunc("/v2/catalog", controllers.Catalog).Methods(http.MethodGet)

	router.HandleFunc("/v2/service_instances/{service_instance_guid}", controllers.CreateServiceInstance).Methods(http.MethodPut)
	router.HandleFunc("/v2/service_instances/{service_instance_guid}", controllers.GetServiceInstance).Methods(http.MethodGet)
	router.HandleFunc("/v2/service_instances/{service_instance_guid}", controllers.DeleteServiceInstance).Methods(http.MethodDelete)
	router.HandleFunc("/v2/service_instances/{service_instance_guid}/last_operation", controllers.GetServiceInstanceLastOperation).Methods(http.MethodGet)

	router.HandleFunc("/v2/service_instances/{service_instance_guid}/service_bindings/{service_binding_guid}", controllers.CreateServiceBinding).Methods(http.MethodPut)
	router.HandleFunc("/v2/service_instances/{service_instance_guid}/service_bindings/{service_binding_guid}", controllers.GetServiceBinding).Methods(http.MethodGet)
	router.HandleFunc("/v2/service_instances/{service_instance_guid}/service_bindings/{service_binding_guid}", controllers.DeleteServiceBinding).Methods(http.MethodDelete)

	fmt.Printf("bssb listening on port %d...\n", conf.ListenPort)
	err := http.ListenAndServe(fmt.Sprintf(":%d", conf.ListenPort), router)
	if err != nil {
		fmt.Printf("failed to start http server on port %d, err: %s\n", conf.ListenPort, err)
		os.Exit(8)
	}
}
