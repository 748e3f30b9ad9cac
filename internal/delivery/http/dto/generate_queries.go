package dto

// GenerateQueriesRequest is the form payload. Missing flags decode as false.
type GenerateQueriesRequest struct {
	JobTitle   string `json:"jobTitle"`
	FullTime   bool   `json:"fullTime"`
	PartTime   bool   `json:"partTime"`
	Contract   bool   `json:"contract"`
	Internship bool   `json:"internship"`
}

type GenerateQueriesResponse struct {
	Message             string   `json:"message"`
	Data                []string `json:"data"`
	AdditionalJobTitles []string `json:"additional_job_titles"`
}

type HealthResponse struct {
	Cache string `json:"cache"`
}
