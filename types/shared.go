package types

// StatusEnvelope is the error body the LoL API returns for non-200
// responses, e.g. {"status": {"message": "Not Found", "status_code": 404}}.
type StatusEnvelope struct {
	Status Status `json:"status"`
}

type Status struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}
