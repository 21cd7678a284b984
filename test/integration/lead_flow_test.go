//go:build integration
// +build integration

package integration

import (
	"io"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLead(t *testing.T) {
	resetTables(t)

	testCases := []struct {
		name     string
		email    string
		wantCode int
		wantBody string
	}{
		{name: "valid lead", email: "reader@example.com", wantCode: http.StatusSeeOther},
		{name: "duplicate lead", email: "READER@example.com ", wantCode: http.StatusConflict, wantBody: "Email already registered."},
		{name: "invalid email", email: "not-an-email", wantCode: http.StatusUnprocessableEntity, wantBody: "Invalid email address."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postForm(t, newClient(t), "/leads", url.Values{"email": {tc.email}}, "application/json")
			assert.Equal(t, tc.wantCode, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM leads`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestPostLead_Concurrent(t *testing.T) {
	resetTables(t)

	const workers = 8
	client := newClient(t)
	codes := make(chan int, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.PostForm(testServerURL+"/leads", url.Values{"email": {"race@example.com"}})
			if err != nil {
				codes <- 0
				return
			}
			_ = resp.Body.Close()
			codes <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(codes)

	created := 0
	for code := range codes {
		if code == http.StatusSeeOther {
			created++
			continue
		}
		assert.Equal(t, http.StatusConflict, code)
	}
	assert.Equal(t, 1, created)
}
