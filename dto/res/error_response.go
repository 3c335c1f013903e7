package res

type ErrorResponse struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"statusCode"`
	Error      interface{} `json:"error"`
}
