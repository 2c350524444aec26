package timeline

import (
	"errors"
	matchfetcher "leaguedash/fetcher/data/match"
	"sort"
)

// ErrParticipantNotFound is returned when the focus participant does not
// exist on the match roster. Distinct from a match with no events.
var ErrParticipantNotFound = errors.New("participant not found on the match roster")

// Raw event type discriminators handled by the extractor.
const (
	rawItemPurchased   = "ITEM_PURCHASED"
	rawItemSold        = "ITEM_SOLD"
	rawItemUndo        = "ITEM_UNDO"
	rawChampionKill    = "CHAMPION_KILL"
	rawEliteMonster    = "ELITE_MONSTER_KILL"
	rawBuildingKill    = "BUILDING_KILL"
	towerBuildingValue = "TOWER_BUILDING"
)

// Extract flattens the timeline frames into a deduplicated, chronologically
// sorted sequence of domain events.
//
// With a focus participant only the events where that participant is the
// actor, the victim or a listed assistant are emitted. With a nil focus the
// extractor runs in all participants mode and emits only the objective and
// structure events, credited to their killers, which is the input for the
// objective scoring pass.
//
// Malformed events (missing required fields) and unknown event tags are
// skipped, never fatal.
func Extract(frames []matchfetcher.MatchTimelineFrame, roster Roster, focus *int) ([]Event, error) {
	if focus != nil && !roster.Contains(*focus) {
		return nil, ErrParticipantNotFound
	}

	// The upstream frames occasionally repeat identical events, so every
	// candidate is checked against the already emitted composite keys.
	seen := make(map[string]struct{})
	events := []Event{}

	for _, frame := range frames {
		for _, raw := range frame.Events {
			var event *Event

			switch raw.Type {
			case rawItemPurchased, rawItemSold, rawItemUndo:
				event = extractItemEvent(raw, focus)

			case rawChampionKill:
				event = extractChampionKill(raw, roster, focus)

			case rawEliteMonster:
				event = extractMonsterKill(raw, focus)

			case rawBuildingKill:
				event = extractTowerKill(raw, focus)

			default:
				// Unknown tags are rejected explicitly instead of falling through.
				continue
			}

			if event == nil {
				continue
			}

			key := event.dedupKey()
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}

			events = append(events, *event)
		}
	}

	// Ascending by timestamp, preserving the original relative order on ties.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})

	return events, nil
}

// extractItemEvent maps a raw item event to the ITEM variant.
// Item events only exist on the focus scoped timeline.
func extractItemEvent(raw matchfetcher.EventFrame, focus *int) *Event {
	if focus == nil {
		return nil
	}

	// The participant ID must be defined for a item event.
	if raw.ParticipantId == nil || *raw.ParticipantId != *focus {
		return nil
	}

	var action string
	var itemId int

	switch raw.Type {
	case rawItemPurchased:
		action = ItemPurchased
	case rawItemSold:
		action = ItemSold
	case rawItemUndo:
		action = ItemUndo
	}

	if raw.Type == rawItemUndo {
		// The before ID is the item being restored, not the undone purchase.
		if raw.BeforeId == nil {
			return nil
		}
		itemId = *raw.BeforeId
	} else {
		if raw.ItemId == nil {
			return nil
		}
		itemId = *raw.ItemId
	}

	// An undo back to a empty slot has nothing to display.
	if itemId == 0 {
		return nil
	}

	return &Event{
		Type:      EventItem,
		Timestamp: raw.Timestamp,
		Action:    action,
		ItemId:    itemId,
	}
}

// extractChampionKill classifies a kill relative to the focus participant.
// A single raw kill yields at most one event: KILL when the focus is the
// killer, DEATH when the victim, ASSIST when on the assist list.
func extractChampionKill(raw matchfetcher.EventFrame, roster Roster, focus *int) *Event {
	// Champion kills are not objective events, so the all participants
	// mode has no use for them.
	if focus == nil {
		return nil
	}

	if raw.VictimId == nil {
		return nil
	}

	victimId := *raw.VictimId

	var killerId int
	if raw.KillerId != nil {
		killerId = *raw.KillerId
	}

	switch {
	case killerId == *focus:
		victimChampion, exists := roster.ChampionName(victimId)
		if !exists {
			return nil
		}

		return &Event{
			Type:                  EventKill,
			Timestamp:             raw.Timestamp,
			VictimChampion:        victimChampion,
			AssistingParticipants: resolveAssists(raw.AssistingParticipantIds, roster),
		}

	case victimId == *focus:
		event := &Event{
			Type:      EventDeath,
			Timestamp: raw.Timestamp,
		}

		// Killer id 0 (or the victim itself) is a environmental death,
		// so there is no killer champion to name.
		if killerId != 0 && killerId != victimId {
			if killerChampion, exists := roster.ChampionName(killerId); exists {
				event.KillerChampion = killerChampion
			}
		}

		return event

	case containsParticipant(raw.AssistingParticipantIds, *focus):
		killerChampion, killerExists := roster.ChampionName(killerId)
		victimChampion, victimExists := roster.ChampionName(victimId)
		if !killerExists || !victimExists {
			return nil
		}

		return &Event{
			Type:           EventAssist,
			Timestamp:      raw.Timestamp,
			KillerChampion: killerChampion,
			VictimChampion: victimChampion,
		}
	}

	return nil
}

// extractMonsterKill maps a elite monster takedown, credited to the killer.
func extractMonsterKill(raw matchfetcher.EventFrame, focus *int) *Event {
	if raw.KillerId == nil || raw.MonsterType == nil {
		return nil
	}

	killerId := *raw.KillerId
	if !objectiveApplies(killerId, focus) {
		return nil
	}

	event := &Event{
		Type:          EventMonsterKill,
		Timestamp:     raw.Timestamp,
		ParticipantId: killerId,
		MonsterType:   *raw.MonsterType,
	}

	if raw.MonsterSubType != nil {
		event.MonsterSubType = *raw.MonsterSubType
	}

	return event
}

// extractTowerKill maps a building kill, filtered to towers only.
func extractTowerKill(raw matchfetcher.EventFrame, focus *int) *Event {
	if raw.KillerId == nil || raw.BuildingType == nil || *raw.BuildingType != towerBuildingValue {
		return nil
	}

	if raw.TowerType == nil || raw.LaneType == nil || raw.TeamId == nil {
		return nil
	}

	killerId := *raw.KillerId
	if !objectiveApplies(killerId, focus) {
		return nil
	}

	return &Event{
		Type:          EventTowerKill,
		Timestamp:     raw.Timestamp,
		ParticipantId: killerId,
		TowerType:     *raw.TowerType,
		LaneType:      *raw.LaneType,
		TeamId:        *raw.TeamId,
	}
}

// objectiveApplies verifies the killer against the extraction mode.
// Focused extractions only keep the focus participant objectives, while
// the all participants mode keeps any player credited kill. Killer id 0
// is a minion/environment takedown and has no participant to credit.
func objectiveApplies(killerId int, focus *int) bool {
	if focus != nil {
		return killerId == *focus
	}
	return killerId > 0
}

// resolveAssists resolves the assisting ids to champion names,
// dropping any id that is not on the roster.
func resolveAssists(assistingIds []int, roster Roster) []string {
	var names []string
	for _, id := range assistingIds {
		if name, exists := roster.ChampionName(id); exists {
			names = append(names, name)
		}
	}
	return names
}

// containsParticipant verifies if the participant is on the assist list.
func containsParticipant(ids []int, participantId int) bool {
	for _, id := range ids {
		if id == participantId {
			return true
		}
	}
	return false
}
