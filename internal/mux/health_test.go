package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMux_getHealth(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(testMux(t))
	defer ts.Close()

	var resp healthResponse
	assertGet(t, ts, "/health", &resp, 200)
	a.Equal("OK", resp.Status)
	a.Equal("test", resp.Version)
}
