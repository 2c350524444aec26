package matchfetcher

// MatchTimeline is the default match timeline.
type MatchTimeline struct {
	Info MatchTimelineData `json:"info"`
}

// Data of the timeline.
type MatchTimelineData struct {
	EndOfGameResult string                      `json:"endOfGameResult"`
	FrameInterval   int64                       `json:"frameInterval"`
	Frames          []MatchTimelineFrame        `json:"frames"`
	Participants    []MatchTimelineParticipants `json:"participants"`
}

// Frame generated every FrameInterval interval.
type MatchTimelineFrame struct {
	Events []EventFrame `json:"events"`
}

// EventFrame is a single raw event inside a frame.
// The event union has no fixed schema, the fields vary by Type,
// so everything type specific is a pointer.
type EventFrame struct {
	AfterId                 *int    `json:"afterId,omitempty"`
	AssistingParticipantIds []int   `json:"assistingParticipantIds,omitempty"`
	BeforeId                *int    `json:"beforeId,omitempty"`
	BuildingType            *string `json:"buildingType,omitempty"`
	ItemId                  *int    `json:"itemId,omitempty"`
	KillerId                *int    `json:"killerId,omitempty"`
	KillerTeamId            *int    `json:"killerTeamId,omitempty"`
	LaneType                *string `json:"laneType,omitempty"`
	MonsterSubType          *string `json:"monsterSubType,omitempty"`
	MonsterType             *string `json:"monsterType,omitempty"`
	ParticipantId           *int    `json:"participantId,omitempty"`
	TeamId                  *int    `json:"teamId,omitempty"`
	Timestamp               int64   `json:"timestamp"`
	TowerType               *string `json:"towerType,omitempty"`
	Type                    string  `json:"type"`
	VictimId                *int    `json:"victimId,omitempty"`
}

// Each participant with it's respective ID inside the timeline.
type MatchTimelineParticipants struct {
	ParticipantId int    `json:"participantId"`
	Puuid         string `json:"puuid"`
}
