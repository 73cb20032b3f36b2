package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	FirstName       string `json:"firstname" binding:"required,min=1,max=50"`
	LastName        string `json:"lastname" binding:"required,min=1,max=50"`
	Country         string `json:"country" binding:"required,min=1,max=60"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}
