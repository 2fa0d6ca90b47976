package catalog

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// Commands understood by Dispatch
const (
	CommandPlay = "play"
	CommandHelp = "help"
)

var (
	// ErrUnknownGame is returned when no game has the requested name
	ErrUnknownGame = errors.New("unknown game")
	// ErrUnknownCommand is returned for anything other than play or help
	ErrUnknownCommand = errors.New("unknown command")
)

// Entry is a registered game
type Entry struct {
	ID       int    // Sequential id handed out by Register
	Name     string // Name typed on the command line
	Category string // Shown in listings
	Play     func()
	Help     func()
}

// Registry is the collection of games the command line can dispatch to
type Registry struct {
	entries []*Entry
	nextID  int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make([]*Entry, 0),
	}
}

// Register adds a game and returns its id.
// Registering a name again replaces the callbacks and keeps the id.
func (r *Registry) Register(name, category string, play, help func()) int {
	if e := r.Lookup(name); e != nil {
		e.Category = category
		e.Play = play
		e.Help = help
		log.Printf("[Catalog] Replaced game %s (id %d)", e.Name, e.ID)
		return e.ID
	}

	e := &Entry{
		ID:       r.nextID,
		Name:     name,
		Category: category,
		Play:     play,
		Help:     help,
	}
	r.nextID++
	r.entries = append(r.entries, e)
	log.Printf("[Catalog] Registered game %s in %s (id %d)", name, category, e.ID)
	return e.ID
}

// Lookup finds a game by name, ignoring case.
// Returns nil if nothing matches.
func (r *Registry) Lookup(name string) *Entry {
	for _, e := range r.entries {
		if strings.EqualFold(e.Name, name) {
			return e
		}
	}
	return nil
}

// Dispatch runs "<game> [play|help]"; the command defaults to play
func (r *Registry) Dispatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no game given", ErrUnknownGame)
	}

	e := r.Lookup(args[0])
	if e == nil {
		return fmt.Errorf("%w '%s'", ErrUnknownGame, args[0])
	}

	command := CommandPlay
	if len(args) > 1 {
		command = strings.ToLower(args[1])
	}

	var fn func()
	switch command {
	case CommandPlay:
		fn = e.Play
	case CommandHelp:
		fn = e.Help
	default:
		return fmt.Errorf("%w '%s' for %s", ErrUnknownCommand, args[1], e.Name)
	}
	if fn != nil {
		fn()
	}
	return nil
}

// List returns the registered games ordered by id
func (r *Registry) List() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = *e
	}
	return out
}

// Count returns the number of registered games
func (r *Registry) Count() int {
	return len(r.entries)
}

// String returns a one-line summary of the registry
func (r *Registry) String() string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return fmt.Sprintf("Catalog: %d games [%s]", len(r.entries), strings.Join(names, ", "))
}
