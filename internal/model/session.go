package model

// Environment names used across the service.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Identity is an authenticated admin account as reported by the identity
// provider.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
