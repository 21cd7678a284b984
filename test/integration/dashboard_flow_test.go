//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoice struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

func TestDashboard_RequiresSession(t *testing.T) {
	resp := get(t, newClient(t), "/dashboard/newsletters", "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestInvoiceFlow(t *testing.T) {
	resetTables(t)
	client, userID := signIn(t, "owner@example.com")

	resp := postForm(t, client, "/dashboard/invoices", url.Values{
		"customerId": {userID}, "amount": {"12.50"}, "status": {"pending"},
	}, "")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = get(t, client, "/dashboard/invoices", "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []invoice
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, int64(1250), list[0].Amount)

	resp = postForm(t, client, "/dashboard/invoices/"+list[0].ID+"/delete", url.Values{}, "application/json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Deleted Invoice.")

	resp = get(t, client, "/dashboard/invoices", "application/json")
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list)
}

func TestNewsletterFlow(t *testing.T) {
	resetTables(t)
	client, userID := signIn(t, "editor@example.com")

	resp := postForm(t, client, "/dashboard/newsletters", url.Values{
		"name": {"ab"}, "frequency": {"DAILY"}, "ownerId": {userID},
	}, "application/json")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = postForm(t, client, "/dashboard/newsletters", url.Values{
		"name": {"Morning brief"}, "ownerId": {userID},
	}, "")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var id, frequency string
	require.NoError(t, db.QueryRow(`SELECT id, frequency FROM newsletters`).Scan(&id, &frequency))
	assert.Equal(t, "WEEKLY", frequency)

	resp = get(t, client, "/dashboard/newsletters/"+id, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postForm(t, client, "/dashboard/newsletters", url.Values{
		"name": {"Ghost owner"}, "ownerId": {"00000000-0000-0000-0000-000000000001"},
	}, "application/json")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = postForm(t, client, "/logout", url.Values{}, "")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	resp = get(t, client, "/dashboard", "")
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
