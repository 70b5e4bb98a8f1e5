package response

type SignupResponse struct {
	Msg string `json:"msg"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}
