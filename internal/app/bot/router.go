package bot

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

// Handler recibe el texto completo del comando, el mensaje y los argumentos.
// Devuelve true si produjo una respuesta.
type Handler func(ctx context.Context, command string, msg domain.Message, args string) (bool, error)

type Command struct {
	Name        string
	Aliases     []string
	Description string
	Process     Handler
}

func (c Command) HelpString() string {
	s := fmt.Sprintf("`%s`: %s", c.Name, c.Description)
	if len(c.Aliases) > 0 {
		quoted := make([]string, len(c.Aliases))
		for i, a := range c.Aliases {
			quoted[i] = "`" + a + "`"
		}
		s += " [aliased to " + strings.Join(quoted, ", ") + "]"
	}
	return s
}

type entry struct {
	cmd    Command
	trials []*regexp.Regexp
}

// Registry es de sólo lectura una vez armado; el orden de alta define la precedencia.
type Registry struct {
	entries []entry
	byName  map[string]int
}

func NewRegistry(cmds ...Command) (*Registry, error) {
	r := &Registry{byName: make(map[string]int, len(cmds))}
	aliases := map[string]string{}
	for _, c := range cmds {
		for _, a := range c.Aliases {
			if _, ok := aliases[a]; !ok {
				aliases[a] = c.Name
			}
		}
	}
	for i, c := range cmds {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("command #%d has no name", i)
		}
		if c.Process == nil {
			return nil, fmt.Errorf("command %q has no handler", c.Name)
		}
		if _, dup := r.byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate command name %q", c.Name)
		}
		if owner, ok := aliases[c.Name]; ok && owner != c.Name {
			return nil, fmt.Errorf("command name %q collides with an alias of %q", c.Name, owner)
		}

		e := entry{cmd: c}
		for _, t := range append([]string{c.Name}, c.Aliases...) {
			e.trials = append(e.trials, regexp.MustCompile(`^`+regexp.QuoteMeta(t)+`(\s+|$)`))
		}
		r.byName[c.Name] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

func (r *Registry) List() []Command {
	out := make([]Command, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.cmd
	}
	return out
}

func (r *Registry) Get(name string) (Command, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Command{}, false
	}
	return r.entries[i].cmd, true
}

// Match devuelve el primer comando cuyo nombre o alias encabeza text, y los argumentos.
func (r *Registry) Match(text string) (Command, string, bool) {
	for _, e := range r.entries {
		for _, t := range e.trials {
			if loc := t.FindStringIndex(text); loc != nil {
				return e.cmd, text[loc[1]:], true
			}
		}
	}
	return Command{}, "", false
}

// ProcessCommand ejecuta el comando que matchea; false si no hay ninguno.
func (b *Bot) ProcessCommand(ctx context.Context, text string, msg domain.Message) (bool, error) {
	cmd, args, ok := b.registry.Match(text)
	if !ok {
		return false, nil
	}
	b.log.Debug("command matched", "command", cmd.Name, "args", args, "message_id", msg.ID)
	return cmd.Process(ctx, text, msg, args)
}
