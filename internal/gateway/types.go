package gateway

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Doer performs a single HTTP round trip. *http.Client satisfies it.
	Doer interface {
		Do(req *http.Request) (*http.Response, error)
	}
	// Metrics records outbound explorer calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
