package service

// TokenGenerator produces opaque bearer token values.
type TokenGenerator interface {
	Generate() (string, error)
}
