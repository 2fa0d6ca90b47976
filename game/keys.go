package game

// Command is a steering action decoded from a keypress
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
)

// CommandForKey maps a character code to a steering command.
// Unknown keys give CommandNone.
func CommandForKey(b byte) Command {
	switch b {
	case 'a', 'A', ',', '<':
		return CommandLeft
	case 'd', 'D', '.', '>':
		return CommandRight
	}
	return CommandNone
}
