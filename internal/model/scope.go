package model

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the acting identity through use-case calls.
type Scope struct {
	UserID string
}

// SystemScope is the scope used by automated callers (webhook intake,
// sweepers, the remediation engine).
var SystemScope = Scope{UserID: "system"}
