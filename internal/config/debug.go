package config

import "os"

func IsDebug() bool {
	return os.Getenv("REPL_DEBUG") == "1"
}
