package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/guard"
	"github.com/dmitrijs2005/coordinet/internal/models"
)

// execIface is the command surface the REPL drives. App implements it;
// tests use a stub.
type execIface interface {
	currentSession() *models.Session
	println(args ...any)

	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Dashboard(ctx context.Context) error
	ShowFestival(ctx context.Context, id string) error
	ShowSubEvent(ctx context.Context, id string) error

	AddClub(ctx context.Context) error
	AddFestival(ctx context.Context) error
	AddSubEvent(ctx context.Context, festivalID string) error
	AddTask(ctx context.Context, festivalID string) error
	AddExpense(ctx context.Context, festivalID string) error

	RegisterFestival(ctx context.Context, festivalID string) error
	JoinSubEvent(ctx context.Context, subEventID string) error

	Backup(ctx context.Context, path string) error
	Restore(ctx context.Context, path string) error
}

var (
	anyone     = []models.Role{models.RoleClubLeader, models.RoleStudent}
	leaderOnly = []models.Role{models.RoleClubLeader}
)

// command is one REPL verb. Commands with a nil route need no session.
type command struct {
	usage string
	route func(arg string) string
	roles []models.Role
	run   func(ctx context.Context, a execIface, arg string) error
}

func fixed(path string) func(string) string {
	return func(string) string { return path }
}

func under(prefix string) func(string) string {
	return func(id string) string { return prefix + id }
}

var commands = map[string]command{
	"signup": {usage: "signup", run: func(ctx context.Context, a execIface, _ string) error { return a.SignUp(ctx) }},
	"signin": {usage: "signin", run: func(ctx context.Context, a execIface, _ string) error { return a.SignIn(ctx) }},

	"signout":   {usage: "signout", route: fixed("/"), roles: anyone, run: func(ctx context.Context, a execIface, _ string) error { return a.SignOut(ctx) }},
	"whoami":    {usage: "whoami", route: fixed("/"), roles: anyone, run: func(ctx context.Context, a execIface, _ string) error { return a.WhoAmI(ctx) }},
	"dashboard": {usage: "dashboard", route: fixed("/dashboard"), roles: anyone, run: func(ctx context.Context, a execIface, _ string) error { return a.Dashboard(ctx) }},
	"festival":  {usage: "festival <festival-id>", route: under("/festivals/"), roles: anyone, run: func(ctx context.Context, a execIface, id string) error { return a.ShowFestival(ctx, id) }},
	"subevent":  {usage: "subevent <sub-event-id>", route: under("/subevents/"), roles: anyone, run: func(ctx context.Context, a execIface, id string) error { return a.ShowSubEvent(ctx, id) }},
	"register":  {usage: "register <festival-id>", route: under("/festivals/"), roles: anyone, run: func(ctx context.Context, a execIface, id string) error { return a.RegisterFestival(ctx, id) }},
	"join":      {usage: "join <sub-event-id>", route: under("/subevents/"), roles: anyone, run: func(ctx context.Context, a execIface, id string) error { return a.JoinSubEvent(ctx, id) }},
	"backup":    {usage: "backup <file>", route: fixed("/backup"), roles: anyone, run: func(ctx context.Context, a execIface, p string) error { return a.Backup(ctx, p) }},
	"restore":   {usage: "restore <file>", route: fixed("/backup"), roles: anyone, run: func(ctx context.Context, a execIface, p string) error { return a.Restore(ctx, p) }},

	"addclub":     {usage: "addclub", route: fixed(guard.LeaderDashboardPath), roles: leaderOnly, run: func(ctx context.Context, a execIface, _ string) error { return a.AddClub(ctx) }},
	"addfestival": {usage: "addfestival", route: fixed("/festivals/create"), roles: leaderOnly, run: func(ctx context.Context, a execIface, _ string) error { return a.AddFestival(ctx) }},
	"addsubevent": {usage: "addsubevent <festival-id>", route: under("/festivals/"), roles: leaderOnly, run: func(ctx context.Context, a execIface, id string) error { return a.AddSubEvent(ctx, id) }},
	"addtask":     {usage: "addtask <festival-id>", route: under("/festivals/"), roles: leaderOnly, run: func(ctx context.Context, a execIface, id string) error { return a.AddTask(ctx, id) }},
	"addexpense":  {usage: "addexpense <festival-id>", route: under("/festivals/"), roles: leaderOnly, run: func(ctx context.Context, a execIface, id string) error { return a.AddExpense(ctx, id) }},
}

// needsArg reports whether the command's usage names an argument.
func (c command) needsArg() bool {
	return strings.Contains(c.usage, "<")
}

// runREPL reads commands from reader until EOF, "exit", "quit" or the end
// of ctx.
//
// Commands that need a session are checked with guard.Check first. A
// visitor without a session is asked to sign in; a session with the wrong
// role is shown its own dashboard instead. Command errors are printed and
// the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		a.println(fmt.Sprintf("coordinet%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, arg := parts[0], ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch name {
		case "help":
			a.println(helpText(a.currentSession()))
			continue
		case "exit", "quit":
			a.println("Bye!")
			return
		}

		cmd, ok := commands[name]
		if !ok {
			a.println("Unknown command:", name)
			continue
		}
		if cmd.needsArg() && arg == "" {
			a.println("Usage:", cmd.usage)
			continue
		}

		if cmd.route != nil && !allowed(ctx, a, cmd, arg) {
			continue
		}

		if err := cmd.run(ctx, a, arg); err != nil {
			a.println("Error:", describe(err))
		}
	}
}

func allowed(ctx context.Context, a execIface, cmd command, arg string) bool {
	decision := guard.Check(a.currentSession(), cmd.route(arg), cmd.roles...)
	switch {
	case decision.Allowed:
		return true
	case decision.Redirect == guard.SignInPath:
		a.println("Please sign in first (signin) or create an account (signup).")
	case decision.Redirect != "":
		a.println("Not available for your role; here is your dashboard.")
		if err := a.Dashboard(ctx); err != nil {
			a.println("Error:", describe(err))
		}
	default:
		a.println("Not available for your role.")
	}
	return false
}

func helpText(sess *models.Session) string {
	switch {
	case sess == nil:
		return "Available commands: signup, signin, exit"
	case sess.Role == models.RoleClubLeader:
		return "Available commands: dashboard, addclub, addfestival, festival <id>, addsubevent <id>, addtask <id>, addexpense <id>, subevent <id>, backup <file>, restore <file>, whoami, signout, exit"
	default:
		return "Available commands: dashboard, festival <id>, register <festival-id>, subevent <id>, join <sub-event-id>, backup <file>, restore <file>, whoami, signout, exit"
	}
}

// describe turns well-known errors into user-facing text.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, common.ErrSubEventFull):
		return "This sub-event is already full."
	case errors.Is(err, common.ErrDuplicateKey):
		return "Already exists: " + err.Error()
	case errors.Is(err, common.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, common.ErrVersionConflict):
		return "The data was changed elsewhere, please try again"
	default:
		return err.Error()
	}
}
