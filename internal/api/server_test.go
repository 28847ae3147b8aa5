package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pi3th0n/robocup-software/internal/joystick"
	"github.com/Pi3th0n/robocup-software/internal/logstore"
	"github.com/Pi3th0n/robocup-software/internal/processor"
	"github.com/Pi3th0n/robocup-software/internal/state"
)

type fakeController struct {
	mu       sync.Mutex
	manual   int
	blue     bool
	plusX    bool
	external bool
	sync     bool
	commands []byte
	game     state.GameState
	status   processor.Status
}

func (f *fakeController) SetManualID(id int)        { f.mu.Lock(); f.manual = id; f.mu.Unlock() }
func (f *fakeController) ManualID() int             { f.mu.Lock(); defer f.mu.Unlock(); return f.manual }
func (f *fakeController) SetBlueTeam(v bool)        { f.mu.Lock(); f.blue = v; f.mu.Unlock() }
func (f *fakeController) BlueTeam() bool            { f.mu.Lock(); defer f.mu.Unlock(); return f.blue }
func (f *fakeController) SetDefendPlusX(v bool)     { f.mu.Lock(); f.plusX = v; f.mu.Unlock() }
func (f *fakeController) DefendPlusX() bool         { f.mu.Lock(); defer f.mu.Unlock(); return f.plusX }
func (f *fakeController) SetExternalReferee(v bool) { f.mu.Lock(); f.external = v; f.mu.Unlock() }
func (f *fakeController) ExternalReferee() bool     { f.mu.Lock(); defer f.mu.Unlock(); return f.external }
func (f *fakeController) SetSyncToVision(v bool)    { f.mu.Lock(); f.sync = v; f.mu.Unlock() }
func (f *fakeController) SyncToVision() bool        { f.mu.Lock(); defer f.mu.Unlock(); return f.sync }
func (f *fakeController) Autonomous() bool          { return true }
func (f *fakeController) JoystickValid() bool       { return false }
func (f *fakeController) Status() processor.Status  { return f.status }

func (f *fakeController) InternalRefCommand(c byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, c)
	if c == 'g' {
		f.game.OurScore++
	}
}

func (f *fakeController) GameState() state.GameState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.game
}

type fakeJoystick struct {
	got []joystick.Input
}

func (f *fakeJoystick) Set(in joystick.Input) { f.got = append(f.got, in) }

func newTestServer(t *testing.T, joy JoystickInput, logs *logstore.Store) (*fakeController, http.Handler) {
	t.Helper()
	ctl := &fakeController{manual: -1}
	s := NewServer(ctl, joy, logs, "v-test")
	return ctl, s.Handler(http.NewServeMux())
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if method == http.MethodPost && strings.HasPrefix(body, "command=") {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStatusAndVersion(t *testing.T) {
	ctl, h := newTestServer(t, nil, nil)
	ctl.status = processor.Status{Cycles: 42, Overruns: 3, RadioChannel: 1}

	rec := do(t, h, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var st processor.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, uint64(42), st.Cycles)
	assert.Equal(t, uint64(3), st.Overruns)
	assert.Equal(t, 1, st.RadioChannel)

	rec = do(t, h, http.MethodGet, "/api/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"v-test"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/status", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestConfig_PartialUpdate(t *testing.T) {
	ctl, h := newTestServer(t, nil, nil)

	rec := do(t, h, http.MethodPost, "/api/config", `{"manual_id": 3, "defend_plus_x": true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got ConfigView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	want := ConfigView{ManualID: 3, DefendPlusX: true, Autonomous: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, ctl.BlueTeam())

	rec = do(t, h, http.MethodPost, "/api/config", `{"blue_team": true, "external_referee": true, "sync_to_vision": true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, ctl.ManualID())
	assert.True(t, ctl.BlueTeam())
	assert.True(t, ctl.ExternalReferee())
	assert.True(t, ctl.SyncToVision())

	rec = do(t, h, http.MethodGet, "/api/config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.BlueTeam)
}

func TestConfig_Rejects(t *testing.T) {
	ctl, h := newTestServer(t, nil, nil)

	tests := []struct {
		name   string
		method string
		body   string
		code   int
	}{
		{"bad json", http.MethodPost, `{`, http.StatusBadRequest},
		{"manual below -1", http.MethodPost, `{"manual_id": -2}`, http.StatusBadRequest},
		{"delete", http.MethodDelete, ``, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, "/api/config", tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
	assert.Equal(t, -1, ctl.ManualID())
}

func TestRefereeCommand(t *testing.T) {
	ctl, h := newTestServer(t, nil, nil)

	rec := do(t, h, http.MethodPost, "/api/referee", url.Values{"command": {"g"}}.Encode())
	require.Equal(t, http.StatusOK, rec.Code)
	var g GameView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Equal(t, 1, g.OurScore)
	assert.Equal(t, []byte{'g'}, ctl.commands)

	rec = do(t, h, http.MethodPost, "/api/referee", url.Values{"command": {"gg"}}.Encode())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/referee", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Len(t, ctl.commands, 1)
}

func TestGame(t *testing.T) {
	ctl, h := newTestServer(t, nil, nil)
	ctl.game = state.GameState{Period: state.Playing, TheirScore: 2, OurRestart: true, TimeRemaining: 300}

	rec := do(t, h, http.MethodGet, "/api/game", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var g GameView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	want := GameView{
		Period:        state.Playing.String(),
		TheirScore:    2,
		OurRestart:    true,
		TimeRemaining: 300,
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("game mismatch (-want +got):\n%s", diff)
	}
}

func TestJoystick(t *testing.T) {
	_, h := newTestServer(t, nil, nil)
	rec := do(t, h, http.MethodPost, "/api/joystick", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	joy := &fakeJoystick{}
	_, h = newTestServer(t, joy, nil)
	rec = do(t, h, http.MethodPost, "/api/joystick", `{"forward": 0.5, "autonomous": false}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, joy.got, 1)
	assert.InDelta(t, 0.5, joy.got[0].Forward, 1e-9)

	rec = do(t, h, http.MethodPost, "/api/joystick", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, joy.got, 1)
}

func TestSessions(t *testing.T) {
	_, h := newTestServer(t, nil, nil)
	rec := do(t, h, http.MethodGet, "/api/sessions", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	store, err := logstore.Open(filepath.Join(t.TempDir(), "log.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	first, err := store.StartSession(ctx, logstore.Session{StartedAt: 1})
	require.NoError(t, err)
	second, err := store.StartSession(ctx, logstore.Session{StartedAt: 2, BlueTeam: true})
	require.NoError(t, err)
	require.NoError(t, store.InsertFrames(ctx, []logstore.Record{
		{Session: first, StartTime: 10, Data: []byte{1}},
		{Session: first, StartTime: 20, Data: []byte{2}},
	}))

	_, h = newTestServer(t, nil, store)
	rec = do(t, h, http.MethodGet, "/api/sessions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []sessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, second, got[0].ID)
	assert.Equal(t, 0, got[0].Frames)
	assert.Equal(t, first, got[1].ID)
	assert.Equal(t, 2, got[1].Frames)

	rec = do(t, h, http.MethodGet, "/api/sessions?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)

	rec = do(t, h, http.MethodGet, "/api/sessions?limit=zero", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusCodeColor(t *testing.T) {
	assert.Contains(t, statusCodeColor(200), colorBoldGreen)
	assert.Contains(t, statusCodeColor(302), colorYellow)
	assert.Contains(t, statusCodeColor(404), colorBoldRed)
	assert.Equal(t, "100", statusCodeColor(100))
}

func TestListenAndServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- ListenAndServe(ctx, "127.0.0.1:0", http.NewServeMux())
	}()
	cancel()
	require.NoError(t, <-errc)
}
