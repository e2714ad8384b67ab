package rpc

import (
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/secure-site/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

// New returns the JSON-RPC 2.0 handler with the blog and assessment namespaces.
func New(logger *slog.Logger, store *blog.Store, pageSize int) http.Handler {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("blog", NewBlogService(store, pageSize))
	rpcServer.Register("assessment", NewAssessmentService())
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "secure-site", nil))

	return rpcServer
}
