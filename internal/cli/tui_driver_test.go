package cli

import (
	"testing"

	"github.com/sansu-app/sansu/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals (view
// stack, shared state, home view) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app at 120x40 and drains Init, which
// loads the progress snapshot synchronously from the in-memory DB.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Home returns the home view at the bottom of the stack.
func (d *TestDriver) Home() *homeView {
	return d.appModel().viewStack[0].(*homeView)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Notice returns the one-line notice above the status bar.
func (d *TestDriver) Notice() string {
	return d.appModel().notice
}

// IsQuitting reports whether the app model or a tea.Quit command stopped
// the program.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
