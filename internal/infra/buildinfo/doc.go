// Package buildinfo exposes build-time information injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/dev-go/internal/infra/buildinfo.Version=v1.2.0 \
//	    -X github.com/yndnr/dev-go/internal/infra/buildinfo.Commit=abc123" ./cmd/dev
package buildinfo
