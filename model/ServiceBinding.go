package model

// ServiceBinding The binding record as persisted in the broker db, the parameters are stored verbatim,
// the credentials are produced by the broker and never come from the caller.
type ServiceBinding struct {
	BindingId         string
	ServiceInstanceId string
	Parameters        map[string]interface{}
	Credentials       map[string]interface{}
}

type CreateServiceBindingRequest struct {
	ServiceId    string                 `json:"service_id"`
	PlanId       string                 `json:"plan_id"`
	AppGuid      string                 `json:"app_guid"`
	BindResource *BindResource          `json:"bind_resource"`
	Context      *Context               `json:"context"`
	Parameters   map[string]interface{} `json:"parameters,omitempty"`
}

type BindResource struct {
	AppGuid   string `json:"app_guid"`
	SpaceGuid string `json:"space_guid"`
}

type CreateServiceBindingResponse struct {
	Credentials map[string]interface{} `json:"credentials"`
}

type GetServiceBindingResponse struct {
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
	Credentials map[string]interface{} `json:"credentials"`
}
