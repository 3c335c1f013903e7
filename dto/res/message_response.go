package res

type MessageResponse struct {
	MessageId string `json:"messageId"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}
