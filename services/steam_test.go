package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steamstatus/status-bot/models"
)

func TestSteamClientPlayerSummaries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ISteamUser/GetPlayerSummaries/v0002/", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "1,2", r.URL.Query().Get("steamids"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response":{"players":[
			{"steamid":"1","personaname":"alice_s","personastate":1,"gameextrainfo":"Chess","lastlogoff":1700000000},
			{"steamid":"2","personastate":0,"lastlogoff":1690000000}
		]}}`)
	}))
	defer srv.Close()

	client := NewSteamClient("secret", srv.URL+"/", time.Second)
	players, err := client.PlayerSummaries(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, models.PlayerSummary{SteamID: "1", PersonaName: "alice_s", PersonaState: 1, GameExtraInfo: "Chess", LastLogoff: 1700000000}, players[0])
	assert.Equal(t, "2", players[1].SteamID)
	assert.Equal(t, 0, players[1].PersonaState)
	assert.Empty(t, players[1].GameExtraInfo)
}

func TestSteamClientBatchesRequests(t *testing.T) {
	var mu sync.Mutex
	var batches []int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids := strings.Split(r.URL.Query().Get("steamids"), ",")
		mu.Lock()
		batches = append(batches, len(ids))
		mu.Unlock()

		var body models.PlayerSummariesResponse
		for _, id := range ids {
			body.Response.Players = append(body.Response.Players, models.PlayerSummary{SteamID: id, PersonaState: 1})
		}
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	defer srv.Close()

	ids := make([]string, 250)
	for i := range ids {
		ids[i] = fmt.Sprint(i)
	}

	client := NewSteamClient("k", srv.URL, time.Second)
	players, err := client.PlayerSummaries(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, players, 250)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{100, 100, 50}, batches)
}

func TestSteamClientErrors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "forbidden", http.StatusForbidden)
		}))
		defer srv.Close()

		_, err := NewSteamClient("bad", srv.URL, time.Second).PlayerSummaries(context.Background(), []string{"1"})
		assert.ErrorContains(t, err, "403")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html>")
		}))
		defer srv.Close()

		_, err := NewSteamClient("k", srv.URL, time.Second).PlayerSummaries(context.Background(), []string{"1"})
		assert.ErrorContains(t, err, "decode")
	})

	t.Run("no ids makes no request", func(t *testing.T) {
		players, err := NewSteamClient("k", "http://127.0.0.1:1", time.Second).PlayerSummaries(context.Background(), nil)
		assert.NoError(t, err)
		assert.Empty(t, players)
	})
}
