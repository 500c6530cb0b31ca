package dto

type AdminLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type AuthResponse struct {
	Username string  `json:"username"`
	Expiry   float64 `json:"exp"`
	Iat      float64 `json:"iat"`
}

type DecisionRequest struct {
	ID     uint   `json:"id"`
	Reason string `json:"reason"`
}
