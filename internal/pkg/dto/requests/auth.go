package requests

type RegisterUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"password"`
	Role     string `json:"role" validate:"required,role"`
	Name     string `json:"name,omitempty" validate:"omitempty,max=64"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
