package dto

// -------- Registration / login --------

type RegisterRequest struct {
	AccountID   string `json:"accountID" validate:"required"`
	AccountType string `json:"accountType" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

func (r *RegisterRequest) Validate() error {
	return validateStruct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}

// -------- Email verification --------

type VerifyRequest struct {
	AccountID string `json:"accountID" validate:"required"`
	Code      string `json:"code" validate:"required"`
}

func (r *VerifyRequest) Validate() error {
	return validateStruct(r)
}

type ResendCodeRequest struct {
	AccountID string `json:"accountID" validate:"required"`
}

func (r *ResendCodeRequest) Validate() error {
	return validateStruct(r)
}
