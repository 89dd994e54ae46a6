package dto

type SessionRequestDTO struct {
	// BootstrapToken - необязательный токен начальной загрузки. Если он
	// не передан, создается анонимная идентичность.
	BootstrapToken string `json:"bootstrap_token" validate:"omitempty"`
}

type SessionDTO struct {
	IdentityID  string `json:"identity_id"`
	AccessToken string `json:"access_token"`
	Anonymous   bool   `json:"anonymous"`

	// ExpiresIn - срок жизни токена в секундах, чтобы клиент знал, когда
	// сессия перестанет действовать.
	ExpiresIn int64 `json:"expires_in"`
}
