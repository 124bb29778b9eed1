package lastfm

// Wire types for the subset of the Last.fm API this daemon reads.
// Field names with a leading '#' come from the API's XML heritage.

type apiText struct {
	Text string `json:"#text"`
}

type apiImage struct {
	Size string `json:"size"`
	Text string `json:"#text"`
}

type apiAttr struct {
	NowPlaying string `json:"nowplaying"`
}

type apiDate struct {
	Text string `json:"#text"`
	UTS  string `json:"uts"`
}

type apiTrack struct {
	Name   string     `json:"name"`
	Artist apiText    `json:"artist"`
	Album  apiText    `json:"album"`
	Image  []apiImage `json:"image"`
	Attr   apiAttr    `json:"@attr"`
	Date   apiDate    `json:"date"`
}

type recentTracksResponse struct {
	RecentTracks struct {
		Track []apiTrack `json:"track"`
	} `json:"recenttracks"`
}

type weeklyArtistChartResponse struct {
	WeeklyArtistChart struct {
		Artist []struct {
			Name      string `json:"name"`
			PlayCount string `json:"playcount"`
		} `json:"artist"`
	} `json:"weeklyartistchart"`
}

type userInfoResponse struct {
	User struct {
		PlayCount string `json:"playcount"`
	} `json:"user"`
}
