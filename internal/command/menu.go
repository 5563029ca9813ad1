// Package command builds the per-actor battle command menu.
package command

// Symbol identifies what a command does.
type Symbol string

const (
	SymAttack  Symbol = "attack"
	SymSkill   Symbol = "skill"
	SymGuard   Symbol = "guard"
	SymItem    Symbol = "item"
	SymSpecial Symbol = "specialSkill"
	SymEscape  Symbol = "escape"
)

// Command is one row of the menu.
type Command struct {
	Name    string
	Symbol  Symbol
	Enabled bool
	SkillID int // set for SymSpecial
}

// Skill is the minimum the menu needs to know about a skill.
type Skill struct {
	ID   int
	Name string
}

// Actor is the battler choosing a command.
type Actor struct {
	Name   string
	Skills []int
}

// Knows reports whether the actor has learned skill id.
func (a Actor) Knows(id int) bool {
	for _, s := range a.Skills {
		if s == id {
			return true
		}
	}
	return false
}

// Options controls which extra commands appear.
type Options struct {
	Special   Skill // promoted skill, ID 0 for none
	CanEscape bool
}

// Menu is the actor command window. It has no cancel: the player must pick
// a command.
type Menu struct {
	actor    Actor
	commands []Command
	index    int
	open     bool
}

// NewActorMenu lists the commands for actor.
func NewActorMenu(actor Actor, opts Options) *Menu {
	cmds := []Command{
		{Name: "Attack", Symbol: SymAttack, Enabled: true},
		{Name: "Skill", Symbol: SymSkill, Enabled: true},
		{Name: "Guard", Symbol: SymGuard, Enabled: true},
		{Name: "Item", Symbol: SymItem, Enabled: true},
	}
	if opts.Special.ID > 0 && actor.Knows(opts.Special.ID) {
		cmds = append(cmds, Command{Name: opts.Special.Name, Symbol: SymSpecial, Enabled: true, SkillID: opts.Special.ID})
	}
	cmds = append(cmds, Command{Name: "Escape", Symbol: SymEscape, Enabled: opts.CanEscape})
	return &Menu{actor: actor, commands: cmds, open: true}
}

// Actor returns the actor the menu was built for.
func (m *Menu) Actor() Actor { return m.actor }

// Commands returns the rows in display order.
func (m *Menu) Commands() []Command { return m.commands }

// Index returns the cursor row.
func (m *Menu) Index() int { return m.index }

// Current returns the command under the cursor.
func (m *Menu) Current() Command { return m.commands[m.index] }

// Next moves the cursor down, wrapping.
func (m *Menu) Next() { m.index = (m.index + 1) % len(m.commands) }

// Prev moves the cursor up, wrapping.
func (m *Menu) Prev() { m.index = (m.index - 1 + len(m.commands)) % len(m.commands) }

// Select puts the cursor on row i if it exists.
func (m *Menu) Select(i int) {
	if i >= 0 && i < len(m.commands) {
		m.index = i
	}
}

// Ok confirms the current command. Disabled commands are refused.
func (m *Menu) Ok() (Command, bool) {
	if !m.open {
		return Command{}, false
	}
	c := m.Current()
	if !c.Enabled {
		return Command{}, false
	}
	return c, true
}

// Cancel is disabled for the actor menu and always reports false.
func (m *Menu) Cancel() bool { return false }

// IsOpen reports whether the menu accepts input.
func (m *Menu) IsOpen() bool { return m.open }

// Close hides the menu.
func (m *Menu) Close() { m.open = false }

// FilterSkills hides the promoted skill from the skill list.
func FilterSkills(skills []Skill, special int) []Skill {
	out := make([]Skill, 0, len(skills))
	for _, s := range skills {
		if special > 0 && s.ID == special {
			continue
		}
		out = append(out, s)
	}
	return out
}
