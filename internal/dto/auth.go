package dto

type LoginRequest struct {
	IDToken string `json:"idToken"`
}

type VerifyResponse struct {
	Authenticated bool `json:"authenticated"`
}
