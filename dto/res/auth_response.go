package res

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Dob       string `json:"dob"`
	Gender    string `json:"gender,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
