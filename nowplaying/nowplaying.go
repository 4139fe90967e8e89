// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nowplaying fetches the listening and gaming activity shown in
// the sidebar widget from a remote backend, on a fixed poll interval.
package nowplaying

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cogentcore.org/core/base/iox/jsonx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// FailureMessage replaces the widget when a fetch fails.
const FailureMessage = "Could not load external data at the moment."

// NowPlaying is the current or last played song.
type NowPlaying struct {
	HasData       bool   `json:"hasData"`
	IsPlaying     bool   `json:"isPlaying"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Album         string `json:"album"`
	AlbumImageURL string `json:"albumImageUrl"`
	SongURL       string `json:"songUrl"`
}

// Track is one of the top tracks.
type Track struct {
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	AlbumImageURL string `json:"albumImageUrl"`
	SongURL       string `json:"songUrl"`
}

// Artist is one of the top artists.
type Artist struct {
	Name      string `json:"name"`
	ArtistURL string `json:"artistUrl"`
	ImageURL  string `json:"imageUrl"`
}

// Game is the game currently being played.
type Game struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	SteamURL    string `json:"steamUrl"`
}

// Snapshot is one complete fetch of the widget data.
type Snapshot struct {
	NowPlaying NowPlaying
	Tracks     []Track
	Artists    []Artist

	// Game is nil when no game is configured.
	Game *Game

	Fetched time.Time
}

// Client fetches snapshots from the backend.
type Client struct {

	// BaseURL is the backend root.
	BaseURL string

	// GameID is the store id of the current game; empty skips it.
	GameID string

	// HTTP is the client used; http.DefaultClient if nil.
	HTTP *http.Client
}

func (cl *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(cl.BaseURL, "/")+path, nil)
	if err != nil {
		return err
	}
	hc := cl.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nowplaying: %s: %s", path, resp.Status)
	}
	if err := jsonx.Read(v, resp.Body); err != nil {
		return fmt.Errorf("nowplaying: %s: %w", path, err)
	}
	return nil
}

// Fetch requests every endpoint concurrently. Any failure fails the
// whole snapshot.
func (cl *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	sn := &Snapshot{}
	var tracks struct {
		Tracks []Track `json:"tracks"`
	}
	var artists struct {
		Artists []Artist `json:"artists"`
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return cl.get(ctx, "/api/now-playing", &sn.NowPlaying) })
	g.Go(func() error { return cl.get(ctx, "/api/top-tracks", &tracks) })
	g.Go(func() error { return cl.get(ctx, "/api/top-artists", &artists) })
	if cl.GameID != "" {
		sn.Game = &Game{}
		g.Go(func() error {
			return cl.get(ctx, "/api/steam-game?appid="+url.QueryEscape(cl.GameID), sn.Game)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sn.Tracks = tracks.Tracks
	sn.Artists = artists.Artists
	sn.Fetched = time.Now()
	return sn, nil
}

// Poller fetches a snapshot immediately and then once per Interval.
type Poller struct {
	Client *Client

	// Interval between fetches.
	Interval time.Duration

	// OnUpdate receives every successful snapshot.
	OnUpdate func(sn *Snapshot)

	// OnError receives every failed fetch; the next attempt waits for
	// the following interval.
	OnError func(err error)
}

// Run polls until ctx is done and returns its error.
func (pl *Poller) Run(ctx context.Context) error {
	lim := rate.NewLimiter(rate.Every(pl.Interval), 1)
	for {
		if err := lim.Wait(ctx); err != nil {
			return ctx.Err()
		}
		sn, err := pl.Client.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Error("nowplaying: fetch failed", "err", err)
			if pl.OnError != nil {
				pl.OnError(err)
			}
			continue
		}
		if pl.OnUpdate != nil {
			pl.OnUpdate(sn)
		}
	}
}
