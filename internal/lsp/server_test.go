package lsp

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func newTestServer(out io.Writer) *Server {
	return NewServer(bytes.NewReader(nil), out, ServerOptions{
		Debounce: time.Hour,
		Version:  "test",
		Log:      io.Discard,
	})
}

func notify(t *testing.T, s *Server, method string, params any) {
	t.Helper()
	raw, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal %s: %v", method, err)
	}
	if err := s.handleMessage(&rpcMessage{JSONRPC: "2.0", Method: method, Params: raw}); err != nil {
		t.Fatalf("%s: %v", method, err)
	}
}

// flush runs the pending diagnostics pass for uri synchronously.
func flush(t *testing.T, s *Server, uri string) {
	t.Helper()
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil {
		s.mu.Unlock()
		t.Fatalf("document %s is not open", uri)
	}
	doc.timer.Stop()
	seq := doc.seq
	s.mu.Unlock()
	s.runDiagnostics(uri, seq)
}

func readAll(t *testing.T, data []byte) []rpcMessage {
	t.Helper()
	r := bufio.NewReader(bytes.NewReader(data))
	var msgs []rpcMessage
	for {
		payload, err := readMessage(r)
		if errors.Is(err, io.EOF) {
			return msgs
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatalf("decode: %v", err)
		}
		msgs = append(msgs, msg)
	}
}

func publishOf(t *testing.T, msg rpcMessage) publishDiagnosticsParams {
	t.Helper()
	if msg.Method != "textDocument/publishDiagnostics" {
		t.Fatalf("expected publishDiagnostics, got %q", msg.Method)
	}
	var params publishDiagnosticsParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		t.Fatalf("decode params: %v", err)
	}
	return params
}

func open(t *testing.T, s *Server, uri, text string) {
	t.Helper()
	notify(t, s, "textDocument/didOpen", didOpenTextDocumentParams{
		TextDocument: textDocumentItem{URI: uri, LanguageID: "zinc", Version: 1, Text: text},
	})
}

func TestPublishSyntaxError(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)
	uri := "file:///w/main.zn"
	open(t, s, uri, "print(1)\nlet = 1")
	flush(t, s, uri)

	msgs := readAll(t, out.Bytes())
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	params := publishOf(t, msgs[0])
	if params.URI != uri {
		t.Fatalf("unexpected uri %q", params.URI)
	}
	if params.Version == nil || *params.Version != 1 {
		t.Fatalf("unexpected version %v", params.Version)
	}
	if len(params.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(params.Diagnostics))
	}
	got := params.Diagnostics[0]
	want := lspRange{Start: position{1, 4}, End: position{1, 5}}
	if got.Range != want {
		t.Fatalf("range = %+v, want %+v", got.Range, want)
	}
	if got.Severity != severityError || got.Source != "zinc" || got.Code != "SYN2102" {
		t.Fatalf("unexpected diagnostic %+v", got)
	}
	if got.Message != "expected identifier, found `=`\ncheck syntax near the reported location" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestPublishRangeInUTF16Units(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)
	uri := "file:///w/wide.zn"
	open(t, s, uri, "print(\"😀 é\") =")
	flush(t, s, uri)

	params := publishOf(t, readAll(t, out.Bytes())[0])
	if len(params.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(params.Diagnostics))
	}
	// '=' is the 14th character; the emoji takes two UTF-16 units
	want := lspRange{Start: position{0, 14}, End: position{0, 15}}
	if got := params.Diagnostics[0].Range; got != want {
		t.Fatalf("range = %+v, want %+v", got, want)
	}
}

func TestPublishEmptyProgramAtOrigin(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)
	uri := "file:///w/empty.zn"
	open(t, s, uri, "   \n")
	flush(t, s, uri)

	params := publishOf(t, readAll(t, out.Bytes())[0])
	if len(params.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(params.Diagnostics))
	}
	if r := params.Diagnostics[0].Range; r != (lspRange{}) {
		t.Fatalf("expected 0:0-0:0, got %+v", r)
	}
}

func TestChangeFixesError(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)
	uri := "file:///w/main.zn"
	open(t, s, uri, "let = 1")
	notify(t, s, "textDocument/didChange", didChangeTextDocumentParams{
		TextDocument:   versionedTextDocumentIdentifier{URI: uri, Version: 2},
		ContentChanges: []textDocumentContentChangeEvent{{Text: "let a = 1"}},
	})
	flush(t, s, uri)

	params := publishOf(t, readAll(t, out.Bytes())[0])
	if len(params.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", params.Diagnostics)
	}
	if *params.Version != 2 {
		t.Fatalf("expected version 2, got %d", *params.Version)
	}
}

func TestStaleDiagnosticsDiscarded(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)
	uri := "file:///w/main.zn"
	open(t, s, uri, "let = 1")

	s.mu.Lock()
	oldSeq := s.docs[uri].seq
	s.mu.Unlock()
	notify(t, s, "textDocument/didChange", didChangeTextDocumentParams{
		TextDocument:   versionedTextDocumentIdentifier{URI: uri, Version: 2},
		ContentChanges: []textDocumentContentChangeEvent{{Text: "let a = 1"}},
	})
	s.runDiagnostics(uri, oldSeq)
	if out.Len() != 0 {
		t.Fatalf("stale pass published: %q", out.String())
	}
}

func TestStrictPublishesWarnings(t *testing.T) {
	var out bytes.Buffer
	s := NewServer(bytes.NewReader(nil), &out, ServerOptions{Debounce: time.Hour, Strict: true, Log: io.Discard})
	uri := "file:///w/main.zn"
	open(t, s, uri, "db.query(1)")
	flush(t, s, uri)

	params := publishOf(t, readAll(t, out.Bytes())[0])
	if len(params.Diagnostics) == 0 {
		t.Fatal("expected warnings")
	}
	for _, d := range params.Diagnostics {
		if d.Severity != severityWarning {
			t.Fatalf("expected warning severity, got %+v", d)
		}
	}
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)
	uri := "file:///w/main.zn"
	open(t, s, uri, "let = 1")
	notify(t, s, "textDocument/didClose", didCloseTextDocumentParams{TextDocument: textDocumentIdentifier{URI: uri}})

	msgs := readAll(t, out.Bytes())
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if params := publishOf(t, msgs[0]); len(params.Diagnostics) != 0 || params.URI != uri {
		t.Fatalf("expected cleared diagnostics, got %+v", params)
	}
	s.mu.Lock()
	_, still := s.docs[uri]
	s.mu.Unlock()
	if still {
		t.Fatal("document still tracked after close")
	}
}

func frame(t *testing.T, msgs ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, m := range msgs {
		if err := writeMessage(&buf, []byte(m)); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func TestRunSession(t *testing.T) {
	in := frame(t,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"initialized","params":{}}`,
		`{"jsonrpc":"2.0","method":"textDocument/didOpen","params":{"textDocument":{"uri":"file:///a.zn","languageId":"zinc","version":1,"text":"let s = spider."}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"textDocument/completion","params":{"textDocument":{"uri":"file:///a.zn"},"position":{"line":0,"character":15}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"textDocument/hover","params":{}}`,
		`{"jsonrpc":"2.0","id":4,"method":"shutdown"}`,
		`{"jsonrpc":"2.0","method":"exit"}`,
	)
	var out bytes.Buffer
	s := NewServer(bytes.NewReader(in), &out, ServerOptions{Debounce: time.Hour, Version: "9.9", Log: io.Discard})
	if err := s.Run(t.Context()); !errors.Is(err, ErrExit) {
		t.Fatalf("expected ErrExit, got %v", err)
	}

	msgs := readAll(t, out.Bytes())
	if len(msgs) != 4 {
		t.Fatalf("expected 4 responses, got %d", len(msgs))
	}

	var init initializeResult
	if err := json.Unmarshal(msgs[0].Result, &init); err != nil {
		t.Fatalf("decode initialize: %v", err)
	}
	if init.ServerInfo.Name != "zinc-lsp" || init.ServerInfo.Version != "9.9" {
		t.Fatalf("unexpected server info %+v", init.ServerInfo)
	}
	if init.Capabilities.TextDocumentSync.Change != syncFull || init.Capabilities.CompletionProvider == nil {
		t.Fatalf("unexpected capabilities %+v", init.Capabilities)
	}

	var list completionList
	if err := json.Unmarshal(msgs[1].Result, &list); err != nil {
		t.Fatalf("decode completion: %v", err)
	}
	if got := labels(list.Items); len(got) != 2 || got[0] != "get" || got[1] != "proxy" {
		t.Fatalf("unexpected completion %v", got)
	}

	if msgs[2].Error == nil || msgs[2].Error.Code != codeMethodNotFound {
		t.Fatalf("expected method not found, got %+v", msgs[2])
	}
	if string(msgs[3].ID) != "4" || msgs[3].Error != nil {
		t.Fatalf("unexpected shutdown response %+v", msgs[3])
	}
}

func TestExitWithoutShutdown(t *testing.T) {
	in := frame(t, `{"jsonrpc":"2.0","method":"exit"}`)
	s := NewServer(bytes.NewReader(in), io.Discard, ServerOptions{Log: io.Discard})
	if err := s.Run(t.Context()); !errors.Is(err, ErrExitWithoutShutdown) {
		t.Fatalf("expected ErrExitWithoutShutdown, got %v", err)
	}
}

func TestRunEOF(t *testing.T) {
	s := NewServer(bytes.NewReader(nil), io.Discard, ServerOptions{Log: io.Discard})
	if err := s.Run(t.Context()); err != nil {
		t.Fatalf("expected nil on EOF, got %v", err)
	}
}
