package eventloop

import (
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-rwm/rwm/internal/config"
	"github.com/go-rwm/rwm/internal/geom"
	"github.com/go-rwm/rwm/internal/ipc"
	"github.com/go-rwm/rwm/internal/monitor"
	"github.com/go-rwm/rwm/internal/wm"
	"github.com/go-rwm/rwm/internal/x11"
)

func TestLoopServesOneIPCCommandThenQuits(t *testing.T) {
	dir := t.TempDir()
	sockPath := filepath.Join(dir, "rwm.sock")

	server, err := ipc.Listen(sockPath)
	if err != nil {
		t.Fatal(err)
	}
	defer server.Close()

	port := x11.NewFakePort()
	cfgMgr, err := config.NewManager(filepath.Join(dir, "rwm.toml"), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	core := wm.New(port, cfgMgr, zerolog.Nop())
	core.Monitors = monitor.NewHistory([]*monitor.Monitor{
		monitor.New(geom.NewRect(0, 0, 1920, 1080), cfgMgr.Get().DefaultLayout()),
	})

	loop := New(core, port, server, zerolog.Nop())

	done := make(chan error, 1)
	go func() { done <- loop.Run() }()

	conn, err := net.Dial("unix", sockPath)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	payload, _ := json.Marshal(ipc.Command{Kind: ipc.KindQuit})
	if err := ipc.WriteFrame(conn, payload); err != nil {
		t.Fatal(err)
	}
	reply, err := ipc.ReadFrame(conn)
	if err != nil {
		t.Fatal(err)
	}
	var r ipc.Reply
	if err := json.Unmarshal(reply, &r); err != nil {
		t.Fatal(err)
	}
	if r.Err != "" {
		t.Fatalf("unexpected error reply: %s", r.Err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after a Quit command")
	}
}
