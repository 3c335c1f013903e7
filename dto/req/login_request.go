package req

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,max=11"`
	Password string `json:"password" validate:"required"`
}
