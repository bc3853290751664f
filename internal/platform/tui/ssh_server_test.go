package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSSHServer(t *testing.T) *SSHServer {
	t.Helper()
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "flappy.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	require.NotNil(t, srv.store, "journal should open in a temp dir")
	return srv
}

func TestSSHServerRejectsUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no-such-game"
	cfg.Logger = log.New(io.Discard)

	_, err := NewSSHServer(cfg)
	assert.Error(t, err)
}

func TestSSHServerShutdownDrainsBeforeClosingJournal(t *testing.T) {
	srv := newTestSSHServer(t)
	store := srv.store

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	served := make(chan error, 1)
	go func() { served <- srv.server.Serve(ln) }()

	// An open connection keeps the server draining until it goes away.
	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond) // let the server pick the connection up

	done := make(chan error, 1)
	go func() { done <- srv.Shutdown() }()

	time.Sleep(100 * time.Millisecond)
	_, err = store.RecentReplays(1)
	assert.NoError(t, err, "journal must stay open while sessions drain")

	conn.Close()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("Shutdown did not return")
	}
	<-served

	_, err = store.RecentReplays(1)
	assert.Error(t, err, "journal should be closed after shutdown")
}
