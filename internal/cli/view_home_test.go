package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sansu-app/sansu/internal/domain"
	"github.com/sansu-app/sansu/internal/teatest"
	"github.com/sansu-app/sansu/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProgressSource struct {
	mu    sync.Mutex
	snap  *domain.ProgressSnapshot
	err   error
	calls int
}

func (s *stubProgressSource) Snapshot(context.Context, time.Time) (*domain.ProgressSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.snap, s.err
}

func (s *stubProgressSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type startCall struct {
	mode  domain.GameMode
	level domain.Level
}

type startRecorder struct {
	calls []startCall
}

func (r *startRecorder) start(mode domain.GameMode, level domain.Level) tea.Cmd {
	r.calls = append(r.calls, startCall{mode, level})
	return nil
}

func newTestHome(t *testing.T, src ProgressSource, rec *startRecorder) (*homeView, *teatest.Driver) {
	t.Helper()
	v := newHomeView(src, rec.start,
		withClock(func() time.Time { return testNow }),
		withLogger(testutil.NewTestLogger()),
	)
	d := teatest.New(t, v)
	d.DrainInit()
	return v, d
}

func TestHomeView_MountLoadsProgressWithoutStartingGame(t *testing.T) {
	src := &stubProgressSource{snap: testutil.NewTestSnapshot(testNow, 10, nil)}
	rec := &startRecorder{}

	v, _ := newTestHome(t, src, rec)

	assert.Empty(t, rec.calls)
	assert.Equal(t, 1, src.Calls())
	assert.NotNil(t, v.snapshot)
}

func TestHomeView_EachControlStartsItsGameOnce(t *testing.T) {
	for p, mode := range domain.GameModes {
		for r, level := range domain.Levels {
			want := []startCall{{mode, level}}

			t.Run(fmt.Sprintf("%s/enter/%d", mode, level), func(t *testing.T) {
				rec := &startRecorder{}
				_, d := newTestHome(t, &stubProgressSource{}, rec)
				for range p {
					d.PressRight()
				}
				for range r {
					d.PressDown()
				}
				d.PressEnter()
				assert.Equal(t, want, rec.calls)
			})

			t.Run(fmt.Sprintf("%s/space/%d", mode, level), func(t *testing.T) {
				rec := &startRecorder{}
				_, d := newTestHome(t, &stubProgressSource{}, rec)
				for range p {
					d.PressKey('l')
				}
				for range r {
					d.PressKey('j')
				}
				d.PressSpace()
				assert.Equal(t, want, rec.calls)
			})

			t.Run(fmt.Sprintf("%s/hotkey/%d", mode, level), func(t *testing.T) {
				rec := &startRecorder{}
				v, d := newTestHome(t, &stubProgressSource{}, rec)
				for range p {
					d.PressTab()
				}
				d.PressKey(rune('1' + r))
				assert.Equal(t, want, rec.calls)
				assert.Equal(t, r, v.row)
			})
		}
	}
}

func TestHomeView_ButtonsAreBoundToTheirPair(t *testing.T) {
	rec := &startRecorder{}
	v, _ := newTestHome(t, &stubProgressSource{}, rec)

	var want []startCall
	for p, mode := range domain.GameModes {
		for r, level := range domain.Levels {
			b := v.button(p, r)
			assert.Equal(t, int(level), b.Level)
			assert.Equal(t, mode.Info().Color, b.Color)
			assert.Equal(t, mode.LevelLabel(level), b.Label)
			b.Activate()
			want = append(want, startCall{mode, level})
		}
	}
	assert.Equal(t, want, rec.calls)
}

func TestHomeView_NavigationWrapsPanelsAndClampsRows(t *testing.T) {
	v, d := newTestHome(t, &stubProgressSource{}, &startRecorder{})

	d.PressLeft()
	assert.Equal(t, 1, v.panel)
	d.PressRight()
	assert.Equal(t, 0, v.panel)

	d.PressUp()
	assert.Equal(t, 0, v.row)
	for range 5 {
		d.PressDown()
	}
	assert.Equal(t, 2, v.row)
}

func TestHomeView_CalendarGetsSnapshotUnchanged(t *testing.T) {
	snap := testutil.NewTestSnapshot(testNow, 5, map[string]int{domain.DayKey(testNow): 5})
	src := &stubProgressSource{snap: snap}

	v, _ := newTestHome(t, src, &startRecorder{})

	cal := v.calendar()
	assert.Same(t, snap, cal.Snapshot)
	assert.Contains(t, v.View(), "クリア")
}

func TestHomeView_LoadErrorRendersEmptyCalendar(t *testing.T) {
	src := &stubProgressSource{
		snap: testutil.NewTestSnapshot(testNow, 3, map[string]int{domain.DayKey(testNow): 4}),
	}
	v, d := newTestHome(t, src, &startRecorder{})
	require.NotNil(t, v.snapshot)

	src.mu.Lock()
	src.snap, src.err = nil, errors.New("database is locked")
	src.mu.Unlock()
	d.PressKey('r')

	assert.Equal(t, 2, src.Calls())
	assert.Nil(t, v.calendar().Snapshot)

	out := v.View()
	assert.Contains(t, out, "0 / 10")
	assert.NotContains(t, out, "★")
	assert.NotContains(t, out, "database is locked")
}

func TestHomeView_NilSourceRendersDefaults(t *testing.T) {
	v, _ := newTestHome(t, nil, &startRecorder{})

	assert.Nil(t, v.snapshot)
	assert.Contains(t, v.View(), "2026年10月")
}

func TestHomeView_RendersAllControls(t *testing.T) {
	v, _ := newTestHome(t, &stubProgressSource{}, &startRecorder{})

	out := v.View()
	for _, mode := range domain.GameModes {
		assert.Contains(t, out, mode.Info().Heading)
		for _, level := range domain.Levels {
			assert.Contains(t, out, mode.LevelLabel(level))
		}
	}
	assert.Contains(t, out, "スタンプカード")
	assert.Contains(t, out, Version)
}

func TestHomeView_RenderIsPure(t *testing.T) {
	snap := testutil.NewTestSnapshot(testNow, 10, map[string]int{domain.DayKey(testNow): 3})
	a, _ := newTestHome(t, &stubProgressSource{snap: snap}, &startRecorder{})
	b, _ := newTestHome(t, &stubProgressSource{snap: snap}, &startRecorder{})

	first := a.View()
	assert.Equal(t, first, a.View())
	assert.Equal(t, first, b.View())
}

func TestHomeView_LayoutFollowsWidth(t *testing.T) {
	v, d := newTestHome(t, &stubProgressSource{}, &startRecorder{})

	lineOf := func(out, s string) int {
		for i, line := range strings.Split(out, "\n") {
			if strings.Contains(line, s) {
				return i
			}
		}
		return -1
	}

	d.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	wide := v.View()
	assert.Equal(t, lineOf(wide, "たしざん"), lineOf(wide, "ひきざん"))

	d.Send(tea.WindowSizeMsg{Width: 60, Height: 40})
	narrow := v.View()
	assert.Less(t, lineOf(narrow, "たしざん"), lineOf(narrow, "ひきざん"))
}

func TestHomeView_PollTickReloads(t *testing.T) {
	src := &stubProgressSource{}
	_, d := newTestHome(t, src, &startRecorder{})

	d.Send(progressTickMsg{})
	assert.Equal(t, 2, src.Calls())
}
