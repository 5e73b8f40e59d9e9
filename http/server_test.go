package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWebAPI_StopsOnContextCancel(t *testing.T) {
	api := NewWebAPI(zerolog.New(zerolog.NewTestWriter(t)), ServerConfig{
		Addr:            "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}, http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- api.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestWebAPI_ListenError(t *testing.T) {
	api := NewWebAPI(zerolog.Nop(), ServerConfig{Addr: "127.0.0.1:99999"}, http.NotFoundHandler())

	err := api.Start(context.Background())
	assert.Error(t, err)
}
