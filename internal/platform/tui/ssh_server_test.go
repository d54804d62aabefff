package tui

import (
	"errors"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hangman/internal/words"
)

func TestNewSSHServerRequiresPool(t *testing.T) {
	_, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
		MaxAttempts: 10,
	}, nil)
	if !errors.Is(err, words.ErrEmptyPool) {
		t.Errorf("NewSSHServer() error = %v, want ErrEmptyPool", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: keyPath,
		IdleTimeout: time.Minute,
		Pool:        []string{"apple"},
		MaxAttempts: 10,
	}, nil)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}

func TestListenAndServeReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() failed: %v", err)
	}
	defer ln.Close()

	srv, err := NewSSHServer(SSHServerConfig{
		Address:     ln.Addr().String(),
		HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
		Pool:        []string{"apple"},
		MaxAttempts: 10,
	}, nil)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe() }()

	select {
	case err := <-done:
		if err == nil {
			t.Error("ListenAndServe() on a busy address should fail")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() did not return")
	}
}
