package core

type AppConfig interface {
	GetPrompt() string
	GetRuntimePath() string
	IsPlain() bool
}
