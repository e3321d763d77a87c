package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rpupo63/job-tracker-backend/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartReportsServerClosedAfterShutdown(t *testing.T) {
	server := Server{Server: &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}}
	errChannel := make(chan error, 2)

	errChannel <- errors.New("interrupt")
	server.ShutdownGracefully(time.Second)

	done := make(chan struct{})
	go func() {
		server.Start(errChannel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start blocked on a channel nobody reads")
	}

	require.Len(t, errChannel, 2)
	<-errChannel
	assert.ErrorIs(t, <-errChannel, http.ErrServerClosed)
}

func TestNewServerRequiresSessions(t *testing.T) {
	_, err := NewServer(map[string]string{}, database.Database{}, Dependencies{})
	assert.Error(t, err)
}
