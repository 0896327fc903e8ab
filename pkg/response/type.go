package response

// ErrorResp is the standard error body.
type ErrorResp struct {
	Detail string `json:"detail"`
}

// MessageResp is a plain informational body.
type MessageResp struct {
	Message string `json:"message"`
}
