package matchfetcher

import (
	"encoding/json"
	"time"
)

// RiotTime handles the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// MarshalJSON writes the time back as the upstream milliseconds value.
func (rt RiotTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(rt).UnixMilli())
}

// MatchData is the return type from the match_v5 endpoint.
type MatchData struct {
	Info MatchInfo `json:"info"`
}

// MatchInfo contains the basic match metadata.
type MatchInfo struct {
	EndOfGameResult    string        `json:"endOfGameResult"`
	GameDuration       int           `json:"gameDuration"`
	GameStartTimestamp RiotTime      `json:"gameStartTimestamp"`
	GameVersion        string        `json:"gameVersion"`
	Participants       []MatchPlayer `json:"participants"`
	QueueId            int           `json:"queueId"`
	Teams              []TeamInfo    `json:"teams"`
}

// MatchPlayer contains the stats and information about a given player in a Match.
type MatchPlayer struct {
	Assists                     int    `json:"assists"`
	ChampionName                string `json:"championName"`
	Deaths                      int    `json:"deaths"`
	DoubleKills                 int    `json:"doubleKills"`
	GoldEarned                  int    `json:"goldEarned"`
	Item0                       int    `json:"item0"`
	Item1                       int    `json:"item1"`
	Item2                       int    `json:"item2"`
	Item3                       int    `json:"item3"`
	Item4                       int    `json:"item4"`
	Item5                       int    `json:"item5"`
	Item6                       int    `json:"item6"`
	Kills                       int    `json:"kills"`
	ParticipantId               int    `json:"participantId"`
	PentaKills                  int    `json:"pentaKills"`
	Puuid                       string `json:"puuid"`
	QuadraKills                 int    `json:"quadraKills"`
	Summoner1Id                 int    `json:"summoner1Id"`
	Summoner2Id                 int    `json:"summoner2Id"`
	TeamId                      int    `json:"teamId"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	TripleKills                 int    `json:"tripleKills"`
	VisionScore                 int    `json:"visionScore"`
	Win                         bool   `json:"win"`
}

// TeamInfo contains the id and if the team won.
type TeamInfo struct {
	TeamId int  `json:"teamId"`
	Win    bool `json:"win"`
}
