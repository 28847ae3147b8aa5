package logstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/packet"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
)

func TestMain(m *testing.M) {
	monitoring.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "log.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_AppliesMigrations(t *testing.T) {
	s := openTestStore(t)
	version, dirty, err := s.MigrateVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)

	// Running again is a no-op.
	require.NoError(t, s.MigrateUp())
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.db")
	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.StartSession(context.Background(), Session{StartedAt: 1})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	sessions, err := s.Sessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, id, sessions[0].ID)
}

func TestSessionsAndFrames(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	first, err := s.StartSession(ctx, Session{StartedAt: 100, BlueTeam: true, Version: "test"})
	require.NoError(t, err)
	second, err := s.StartSession(ctx, Session{StartedAt: 200, Simulation: true, RadioChannel: 1})
	require.NoError(t, err)

	sessions, err := s.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second, sessions[0].ID)
	assert.True(t, sessions[0].Simulation)
	assert.Equal(t, 1, sessions[0].RadioChannel)
	assert.Equal(t, first, sessions[1].ID)
	assert.True(t, sessions[1].BlueTeam)
	assert.Equal(t, "test", sessions[1].Version)

	require.NoError(t, s.InsertFrames(ctx, []Record{
		{Session: first, StartTime: 1, ManualID: -1, Data: []byte{1}},
		{Session: first, StartTime: 2, ManualID: 3, Robots: 2, Data: []byte{2}},
		{Session: second, StartTime: 3, Data: []byte{3}},
	}))

	frames, err := s.Frames(ctx, first, 0, 10)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, int64(2), frames[1].StartTime)
	assert.Equal(t, 3, frames[1].ManualID)
	assert.Equal(t, 2, frames[1].Robots)
	assert.Equal(t, []byte{2}, frames[1].Data)

	page, err := s.Frames(ctx, first, frames[0].ID, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, frames[1].ID, page[0].ID)

	n, err := s.FrameCount(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInsertFrames_UnknownSessionRollsBack(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	known, err := s.StartSession(ctx, Session{})
	require.NoError(t, err)

	err = s.InsertFrames(ctx, []Record{
		{Session: known, Data: []byte{1}},
		{Session: uuid.New(), Data: []byte{2}},
	})
	require.Error(t, err)

	n, err := s.FrameCount(ctx, known)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWriter_StoresFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := openTestStore(t)
	session, err := s.StartSession(ctx, Session{})
	require.NoError(t, err)

	w := NewWriter(WriterConfig{Store: s, Session: session, BatchSize: 2, FlushInterval: time.Hour})
	done := make(chan error)
	go func() { done <- w.Run(ctx) }()

	var f packet.LogFrame
	for i := range 5 {
		f.Reset(int64(i))
		f.RadioTx = &packet.RadioTx{Robots: []packet.RadioRobot{{BoardID: 1}}}
		w.AddFrame(&f)
	}
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, uint64(5), w.Written())
	assert.Zero(t, w.Dropped())
	frames, err := s.Frames(context.Background(), session, 0, 10)
	require.NoError(t, err)
	require.Len(t, frames, 5)

	var got packet.LogFrame
	require.NoError(t, got.Unmarshal(frames[4].Data))
	assert.Equal(t, int64(4), got.StartTime)
	assert.Equal(t, 1, frames[4].Robots)
}

func TestWriter_FlushesOnTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := openTestStore(t)
	session, err := s.StartSession(ctx, Session{})
	require.NoError(t, err)

	clock := timeutil.NewMockClock(time.Unix(1000, 0))
	w := NewWriter(WriterConfig{Store: s, Session: session, BatchSize: 10, FlushInterval: time.Second, Clock: clock})
	done := make(chan error)
	go func() { done <- w.Run(ctx) }()

	var f packet.LogFrame
	f.Reset(1)
	w.AddFrame(&f)
	assert.Never(t, func() bool { return w.Written() > 0 }, 20*time.Millisecond, time.Millisecond,
		"a partial batch waits for the ticker")

	require.Eventually(t, func() bool {
		clock.Advance(time.Second)
		return w.Written() == 1
	}, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	frames, err := s.Frames(context.Background(), session, 0, 10)
	require.NoError(t, err)
	assert.Len(t, frames, 1)
}

func TestWriter_DropsWhenFull(t *testing.T) {
	w := NewWriter(WriterConfig{QueueSize: 2})
	var f packet.LogFrame
	f.Reset(0)
	for range 5 {
		w.AddFrame(&f)
	}
	assert.Equal(t, uint64(3), w.Dropped())
}

func TestAttachAdminRoutes(t *testing.T) {
	s := openTestStore(t)
	mux := http.NewServeMux()
	require.NoError(t, s.AttachAdminRoutes(mux))

	req := httptest.NewRequest(http.MethodGet, "/debug/backup", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	// Debug access may be refused depending on how tsweb classifies the peer.
	require.NotEqual(t, http.StatusNotFound, rec.Code, "backup route not registered")
	if rec.Code == http.StatusOK {
		assert.Equal(t, "application/gzip", rec.Header().Get("Content-Type"))
		assert.NotEmpty(t, rec.Body.Bytes())
	}

	req = httptest.NewRequest(http.MethodGet, "/debug/tailsql/", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.NotEqual(t, http.StatusNotFound, rec.Code, "tailsql route not registered")
}
