package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/coordinet/internal/datastore"
	"github.com/dmitrijs2005/coordinet/internal/logging"
	"github.com/dmitrijs2005/coordinet/internal/models"
	"github.com/dmitrijs2005/coordinet/internal/services"
	"github.com/dmitrijs2005/coordinet/internal/session"
)

// getPassword is swapped in tests.
var getPassword = GetPassword

type App struct {
	store        *datastore.Store
	auth         services.AuthService
	registration services.RegistrationService
	organizer    services.OrganizerService
	dashboard    services.DashboardService
	log          logging.Logger
	in           io.Reader
	reader       *bufio.Reader
	out          io.Writer
	session      *models.Session
}

func NewApp(store *datastore.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		store:        store,
		auth:         services.NewAuthService(store, log),
		registration: services.NewRegistrationService(store, log),
		organizer:    services.NewOrganizerService(store, log),
		dashboard:    services.NewDashboardService(store),
		log:          log.With("component", "cli"),
		in:           in,
		reader:       bufio.NewReader(in),
		out:          out,
	}
}

// Run restores the persisted session and serves commands until exit, end
// of input or cancellation of ctx. Cancellation also interrupts a pending
// read.
func (a *App) Run(ctx context.Context) error {
	a.reader = bufio.NewReader(newCancelableReader(ctx, a.in))

	sess, err := a.auth.Current(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	a.session = sess

	a.println("Welcome to CoordiNet (type 'help' for commands)")
	if sess != nil {
		a.println("Signed in as", sess.Name, "("+string(sess.Role)+")")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	if ctx.Err() != nil {
		a.log.Info(ctx, "interrupted")
	}
	return nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// withSession attaches the signed-in user to ctx for the services.
func (a *App) withSession(ctx context.Context) context.Context {
	return session.WithSession(ctx, a.session)
}

func (a *App) currentSession() *models.Session {
	return a.session
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.Name, a.session.Role)
}
