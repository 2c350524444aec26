package timeline

import (
	matchfetcher "leaguedash/fetcher/data/match"
)

// Roster maps the numeric participant ids of one match to champion names.
// The ids are only stable inside a single match, so a roster must be
// built fresh per match and never reused across matches.
type Roster map[int]string

// RosterFromMatch builds the roster from the match summary participant list.
func RosterFromMatch(match *matchfetcher.MatchData) Roster {
	roster := make(Roster, len(match.Info.Participants))
	for _, participant := range match.Info.Participants {
		roster[participant.ParticipantId] = participant.ChampionName
	}
	return roster
}

// ChampionName resolves a participant id to it's champion name.
func (r Roster) ChampionName(participantId int) (string, bool) {
	name, exists := r[participantId]
	return name, exists
}

// Contains verifies if the participant id exists on this match.
func (r Roster) Contains(participantId int) bool {
	_, exists := r[participantId]
	return exists
}
