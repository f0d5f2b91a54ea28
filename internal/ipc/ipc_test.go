package ipc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-rwm/rwm/internal/geom"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte(`{"Quit":null}`)
	if err := WriteFrame(&buf, payload); err != nil {
		t.Fatal(err)
	}
	if got := buf.String()[:4]; got != "0013" {
		t.Fatalf("length prefix = %q, want 0013", got)
	}
	got, err := ReadFrame(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %s, want %s", got, payload)
	}
}

func TestWriteFrameRejectsOversizedPayload(t *testing.T) {
	var buf bytes.Buffer
	big := make([]byte, MaxFrameSize+1)
	if err := WriteFrame(&buf, big); err == nil {
		t.Fatal("expected an error for a payload over the frame limit")
	}
}

func TestCommandQuitMarshalsAsBareString(t *testing.T) {
	data, err := json.Marshal(Command{Kind: KindQuit})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Quit"` {
		t.Fatalf("got %s, want \"Quit\"", data)
	}
}

func TestCommandWindowShiftRoundTrip(t *testing.T) {
	want := Command{Kind: KindWindow, Window: WindowCommand{Kind: WindowShift, Shift: geom.Down}}
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `{"Window":{"Shift":"Down"}}`) {
		t.Fatalf("got %s", data)
	}

	var got Command
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Kind != KindWindow || got.Window.Kind != WindowShift || got.Window.Shift != geom.Down {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCommandTagSwitchRoundTrip(t *testing.T) {
	tag3, _ := geom.NewTagID(3)
	want := Command{Kind: KindTag, Tag: TagCommand{Kind: TagSwitch, Tag: tag3}}
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	var got Command
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Tag.Tag != tag3 {
		t.Fatalf("got tag %v, want 3", got.Tag.Tag)
	}
}

func TestReplyRoundTrip(t *testing.T) {
	data, err := json.Marshal(Err("no such window"))
	if err != nil {
		t.Fatal(err)
	}
	var got Reply
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Err != "no such window" {
		t.Fatalf("got %q", got.Err)
	}

	data, _ = json.Marshal(OK())
	if string(data) != `"Ok"` {
		t.Fatalf("got %s, want \"Ok\"", data)
	}
}

func TestReplyWithPayloadRoundTrip(t *testing.T) {
	data, err := json.Marshal(OKWithPayload("gap = 4"))
	if err != nil {
		t.Fatal(err)
	}
	var got Reply
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Err != "" || got.Payload != "gap = 4" {
		t.Fatalf("got %+v", got)
	}
}

func TestCommandConfigLoadRoundTrip(t *testing.T) {
	data, err := json.Marshal(Command{Kind: KindConfig, Config: ConfigCommand{Kind: ConfigLoad}})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"Config":"Load"}` {
		t.Fatalf("got %s, want a bare Load with no path", data)
	}

	data, err = json.Marshal(Command{Kind: KindConfig, Config: ConfigCommand{Kind: ConfigLoad, Path: "/tmp/good.toml"}})
	if err != nil {
		t.Fatal(err)
	}
	var got Command
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Config.Kind != ConfigLoad || got.Config.Path != "/tmp/good.toml" {
		t.Fatalf("round trip mismatch: %+v", got.Config)
	}
}

func TestCommandConfigPrintRoundTrip(t *testing.T) {
	data, err := json.Marshal(Command{Kind: KindConfig, Config: ConfigCommand{Kind: ConfigPrint}})
	if err != nil {
		t.Fatal(err)
	}
	var got Command
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Config.Kind != ConfigPrint {
		t.Fatalf("got %+v", got.Config)
	}
}
