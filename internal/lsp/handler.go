// Package lsp implements a Language Server Protocol front end over
// internal/exprlang: one expression per line, with diagnostics on parse
// failure and hover text showing the simplified form and (when the
// expression carries no free variables) its evaluated value.
package lsp

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"symexpr/internal/exprlang"
)

// Handler implements the glsp server handlers for the expression language.
type Handler struct {
	mu      sync.RWMutex
	content map[string][]string // path -> lines
}

// NewHandler creates and returns a new Handler instance.
func NewHandler() *Handler {
	return &Handler{content: make(map[string][]string)}
}

// Initialize responds to the LSP client's initialize request and advertises
// the server's capabilities. Semantic tokens are not advertised: a
// one-expression-per-line language has no keywords, types, or declarations
// to classify.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("symexpr-lsp: initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: ptrBool(true),
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("symexpr-lsp: initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("symexpr-lsp: shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return h.updateAndPublish(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange handles file change notifications from the editor.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// TextDocumentSyncKindFull means the last change event carries the
	// entire new document text.
	last := params.ContentChanges[len(params.ContentChanges)-1]
	full, ok := last.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return fmt.Errorf("symexpr-lsp: expected full-document change event, got %T", last)
	}
	return h.updateAndPublish(ctx, params.TextDocument.URI, full.Text)
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}
	h.mu.Lock()
	delete(h.content, path)
	h.mu.Unlock()
	return nil
}

// TextDocumentHover shows an expression's simplified form, and its
// evaluated value when it carries no free variables.
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	lines := h.content[path]
	h.mu.RUnlock()

	line := int(params.Position.Line)
	if line < 0 || line >= len(lines) {
		return nil, nil
	}

	text := strings.TrimSpace(lines[line])
	if text == "" {
		return nil, nil
	}

	expr, err := exprlang.ParseAndLower(text)
	if err != nil {
		return nil, nil
	}

	simplified := expr.Simplify()
	contents := fmt.Sprintf("simplified: %s", simplified.String())
	if v, ok := simplified.ToUsize(); ok {
		contents = fmt.Sprintf("%s\nvalue: %d", contents, v)
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: contents,
		},
	}, nil
}

func (h *Handler) updateAndPublish(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return err
	}

	lines := strings.Split(text, "\n")
	h.mu.Lock()
	h.content[path] = lines
	h.mu.Unlock()

	diagnostics := DiagnosticsForLines(lines)
	sendDiagnosticNotification(ctx, uri, diagnostics)
	return nil
}

func uriToPath(rawURI protocol.DocumentUri) (string, error) {
	u, err := url.Parse(string(rawURI))
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool { return &b }

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
