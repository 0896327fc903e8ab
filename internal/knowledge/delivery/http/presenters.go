package http

// trainingResp reports the outcome of an ingestion run.
type trainingResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const trainedMessage = "Conversational model trained successfully."
