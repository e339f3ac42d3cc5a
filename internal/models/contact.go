package models

// ContactSubmission is the assessment request form posted from the site.
// Both JSON and url-encoded bodies bind to it.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Company string `json:"company" form:"company"`
	Email   string `json:"email" form:"email"`
	Problem string `json:"problem" form:"problem"`
}

type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details string   `json:"details,omitempty"`
	Fields  []string `json:"fields,omitempty"`
	Hint    string   `json:"hint,omitempty"`
}
