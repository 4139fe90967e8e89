// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nowplaying

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backend(t *testing.T, fail *atomic.Bool) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/now-playing", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"hasData":true,"isPlaying":false,"title":"Song","artist":"Band","album":"Record","albumImageUrl":"http://img/a.png","songUrl":"http://song"}`)
	})
	mux.HandleFunc("/api/top-tracks", func(w http.ResponseWriter, r *http.Request) {
		if fail != nil && fail.Load() {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"tracks":[{"title":"One","artist":"A","songUrl":"http://1"},{"title":"Two","artist":"B","songUrl":"http://2"}]}`)
	})
	mux.HandleFunc("/api/top-artists", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"artists":[{"name":"A","artistUrl":"http://a","imageUrl":"http://a.png"}]}`)
	})
	mux.HandleFunc("/api/steam-game", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1091500", r.URL.Query().Get("appid"))
		fmt.Fprint(w, `{"name":"Game","description":"Fun","imageUrl":"http://g.png","steamUrl":"http://store/1091500"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	srv := backend(t, nil)
	cl := &Client{BaseURL: srv.URL + "/", GameID: "1091500"}
	sn, err := cl.Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, sn.NowPlaying.HasData)
	assert.Equal(t, "Song", sn.NowPlaying.Title)
	assert.Len(t, sn.Tracks, 2)
	assert.Equal(t, "Two", sn.Tracks[1].Title)
	require.Len(t, sn.Artists, 1)
	assert.Equal(t, "http://a", sn.Artists[0].ArtistURL)
	require.NotNil(t, sn.Game)
	assert.Equal(t, "Game", sn.Game.Name)

	md := sn.Markdown()
	assert.Contains(t, md, "### Last Played")
	assert.Contains(t, md, "[Song](http://song)")
	assert.Contains(t, md, "* [Two](http://2) B")
	assert.Contains(t, md, "### Currently Playing")
}

func TestFetchNoGame(t *testing.T) {
	srv := backend(t, nil)
	sn, err := (&Client{BaseURL: srv.URL}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sn.Game)
	assert.NotContains(t, sn.Markdown(), "Currently Playing")
}

func TestFetchFailure(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	srv := backend(t, &fail)
	_, err := (&Client{BaseURL: srv.URL}).Fetch(context.Background())
	assert.ErrorContains(t, err, "500")
}

func TestEmptyMarkdown(t *testing.T) {
	assert.Equal(t, "", (&Snapshot{}).Markdown())
}

func TestPoller(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	srv := backend(t, &fail)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updates := make(chan *Snapshot, 4)
	var errs atomic.Int32
	pl := &Poller{
		Client:   &Client{BaseURL: srv.URL},
		Interval: 20 * time.Millisecond,
		OnError: func(err error) {
			errs.Add(1)
			fail.Store(false)
		},
		OnUpdate: func(sn *Snapshot) { updates <- sn },
	}
	done := make(chan error, 1)
	go func() { done <- pl.Run(ctx) }()

	select {
	case sn := <-updates:
		assert.Len(t, sn.Tracks, 2)
	case <-ctx.Done():
		t.Fatal("no update")
	}
	assert.Equal(t, int32(1), errs.Load())
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
