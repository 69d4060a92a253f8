// Package server exposes the search engine over HTTP with chi.
//
//	GET  /health            liveness
//	GET  /algorithms        the fixed algorithm names, in menu order
//	GET  /scenarios         catalog summary
//	GET  /scenarios/{name}  one scenario document
//	POST /search            run one algorithm on a named or inline scenario
//	GET  /metrics           Prometheus exposition (when metrics are enabled)
//
// Each search gets a run ID that appears in the response and in log lines.
// Runs are cancelled when the client goes away.
package server
