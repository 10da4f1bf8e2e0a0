package dto

type RegisterData struct {
	Message          string `json:"message"`
	VerificationCode string `json:"verification_code"`
}

type IdentityView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginData struct {
	User IdentityView `json:"user"`
}

type MessageData struct {
	Message string `json:"message"`
}
