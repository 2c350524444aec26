package timeline

import (
	"strconv"
	"strings"
)

// EventType tags the domain event variants produced by the extractor.
type EventType string

const (
	EventItem        EventType = "ITEM"
	EventKill        EventType = "KILL"
	EventDeath       EventType = "DEATH"
	EventAssist      EventType = "ASSIST"
	EventMonsterKill EventType = "MONSTER_KILL"
	EventTowerKill   EventType = "TOWER_KILL"
)

// Item actions for the ITEM variant.
const (
	ItemPurchased = "purchased"
	ItemSold      = "sold"
	ItemUndo      = "undo"
)

// Event is a single extracted domain event.
// Only the fields relevant to the Type tag are filled.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"`

	// ITEM fields.
	Action string `json:"action,omitempty"`
	ItemId int    `json:"itemId,omitempty"`

	// Combat fields.
	VictimChampion        string   `json:"victimChampion,omitempty"`
	KillerChampion        string   `json:"killerChampion,omitempty"`
	AssistingParticipants []string `json:"assistingParticipants,omitempty"`

	// Objective fields. ParticipantId is the credited killer.
	ParticipantId  int    `json:"participantId,omitempty"`
	MonsterType    string `json:"monsterType,omitempty"`
	MonsterSubType string `json:"monsterSubType,omitempty"`
	TowerType      string `json:"towerType,omitempty"`
	LaneType       string `json:"laneType,omitempty"`
	TeamId         int    `json:"teamId,omitempty"`
}

// dedupKey builds the composite key used to suppress the duplicated
// events the upstream timeline occasionally repeats across frames.
// Two events with the same key are treated as one.
func (e Event) dedupKey() string {
	return strings.Join([]string{
		strconv.FormatInt(e.Timestamp, 10),
		string(e.Type),
		e.Action,
		strconv.Itoa(e.ItemId),
		e.KillerChampion,
		e.VictimChampion,
		strconv.Itoa(e.ParticipantId),
		e.MonsterType,
		e.MonsterSubType,
		e.TowerType,
		e.LaneType,
		strconv.Itoa(e.TeamId),
	}, "|")
}
