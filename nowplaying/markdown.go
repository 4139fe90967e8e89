// Copyright (c) 2026, Adam Mhal. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nowplaying

import (
	"fmt"
	"strings"
)

// Markdown renders the snapshot as the sidebar widget content. Empty
// sections are omitted.
func (sn *Snapshot) Markdown() string {
	var b strings.Builder
	if np := sn.NowPlaying; np.HasData {
		if np.IsPlaying {
			b.WriteString("### Now Playing\n\n")
		} else {
			b.WriteString("### Last Played\n\n")
		}
		if np.AlbumImageURL != "" {
			fmt.Fprintf(&b, "![Album art for %s](%s)\n\n", np.Album, np.AlbumImageURL)
		}
		fmt.Fprintf(&b, "[%s](%s)\n\n%s\n\n", np.Title, np.SongURL, np.Artist)
	}
	if len(sn.Tracks) > 0 {
		b.WriteString("### Top Tracks\n\n")
		for _, tr := range sn.Tracks {
			fmt.Fprintf(&b, "* [%s](%s) %s\n", tr.Title, tr.SongURL, tr.Artist)
		}
		b.WriteString("\n")
	}
	if len(sn.Artists) > 0 {
		b.WriteString("### Top Artists\n\n")
		for _, ar := range sn.Artists {
			fmt.Fprintf(&b, "* [%s](%s)\n", ar.Name, ar.ArtistURL)
		}
		b.WriteString("\n")
	}
	if gm := sn.Game; gm != nil && gm.Name != "" {
		b.WriteString("### Currently Playing\n\n")
		if gm.ImageURL != "" {
			fmt.Fprintf(&b, "![Banner for %s](%s)\n\n", gm.Name, gm.ImageURL)
		}
		fmt.Fprintf(&b, "[%s](%s)\n\n%s\n", gm.Name, gm.SteamURL, gm.Description)
	}
	return b.String()
}
