package command

type RefreshTokenCommand struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenCommandResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
