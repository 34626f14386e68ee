package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"symexpr/internal/lsp"
)

const lsName = "symexpr"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	commonlog.Configure(1, nil)

	h := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:            h.Initialize,
		Initialized:           h.Initialized,
		Shutdown:              h.Shutdown,
		TextDocumentDidOpen:   h.TextDocumentDidOpen,
		TextDocumentDidClose:  h.TextDocumentDidClose,
		TextDocumentDidChange: h.TextDocumentDidChange,
		TextDocumentHover:     h.TextDocumentHover,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting symexpr LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting symexpr LSP server:", err)
		os.Exit(1)
	}
}
