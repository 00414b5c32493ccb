package core

const (
	AppName    = "replkit"
	AppVersion = "0.1.0"
)
