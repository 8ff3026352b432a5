package runner

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimiro1/banner"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is stamped at build time.
const Version = "dev"

// PrintBanner writes the startup banner to stderr, keeping stdout free
// for the stdio tool transport.
func PrintBanner() {
	tpl := "{{ .Title \"TYPECAST\" \"\" 0 }}\nVersion: " + Version + "\n"
	banner.Init(os.Stderr, true, true, bytes.NewBufferString(tpl))
}

// Run serves the MCP server over stdio until the client disconnects or
// the process receives an interrupt.
func Run(ctx context.Context, srv *mcp.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, &mcp.StdioTransport{})
}
