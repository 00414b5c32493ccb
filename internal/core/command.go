package core

// CommandInfo is the presentation view of a registered command.
type CommandInfo struct {
	Word        string
	Description string
}

// TableRenderer turns a list of commands into human readable text.
type TableRenderer interface {
	RenderCommands(commands []CommandInfo) string
}
