package dto

type PlanFormRequest struct {
	PlanID string `param:"id"`
	Button bool   `query:"button"`
	ID     string `query:"submit_id"`
}

type PlanFormResponse struct {
	PlanID   string `json:"plan_id"`
	Endpoint string `json:"endpoint"`
	HTML     string `json:"html"`
}
