package logsvc

import (
	"log"
	"regexp"
	"strings"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/user"
)

// backend tokens travel in the session user and in request extras
var scrubFields = regexp.MustCompile(`(?i)(password|secret|token|authorization|cookie|fyp_session)`)

// RollbarLogger reports to Rollbar and mirrors every entry on a std logger.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetPlatform("fyp-portal")
	rollbar.SetCustom(map[string]interface{}{"backend": conf.Backend.URL})
	rollbar.SetScrubFields(scrubFields)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) { l.report(rollbar.DEBUG, msg, args) }
func (l RollbarLogger) Info(msg string, args ...interface{})  { l.report(rollbar.INFO, msg, args) }
func (l RollbarLogger) Warn(msg string, args ...interface{})  { l.report(rollbar.WARN, msg, args) }
func (l RollbarLogger) Error(msg string, args ...interface{}) { l.report(rollbar.ERR, msg, args) }

// Fatal waits for the report to be delivered before exiting.
func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.report(rollbar.CRIT, msg, args)
	rollbar.Wait()
	l.std.Fatal(msg)
}

// report accepts args of type error, map[string]interface{} (extras) and user.SessionUser.
// The first authenticated session user becomes the Rollbar person of the item.
func (l RollbarLogger) report(level, msg string, args []interface{}) {
	var person *user.SessionUser
	items := make([]interface{}, 0, len(args)+1)
	items = append(items, msg)
	for _, arg := range args {
		if usr, ok := arg.(user.SessionUser); ok {
			if person == nil && usr.ID != "" {
				person = &usr
			}
			continue
		}
		items = append(items, arg)
	}

	if person != nil {
		rollbar.SetPerson(person.ID, person.Name, person.Email)
	} else {
		rollbar.ClearPerson()
	}
	rollbar.Log(level, items...)
	l.print(level, msg, person, items[1:])
}

// print never writes the session token: the user is reduced to its id and role.
func (l RollbarLogger) print(level, msg string, person *user.SessionUser, extras []interface{}) {
	var b strings.Builder
	b.WriteString(strings.ToUpper(level))
	b.WriteString(": ")
	b.WriteString(msg)
	if person != nil {
		b.WriteString(" [user " + person.ID + " " + person.Role.String() + "]")
	}
	l.std.Println(b.String())
	for _, extra := range extras {
		if err, ok := extra.(error); ok && err.Error() == msg {
			continue
		}
		l.std.Printf("\t%+v\n", extra)
	}
}
