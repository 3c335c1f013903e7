package req

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=40"`
	Phone    string `json:"phone" validate:"required,numeric,max=11"`
	Password string `json:"password" validate:"required,min=4"`
	Dob      string `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender   string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
}
