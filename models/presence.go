package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownStatus = errors.New("unknown persona state")
	ErrNoLastSeen    = errors.New("last logoff not reported")
)

// Status is a Steam persona state as declared by the Web API.
type Status int

const (
	StatusOffline Status = iota
	StatusOnline
	StatusBusy
	StatusAway
	StatusSnoozing
	StatusLookingToTrade
	StatusLookingToPlay
)

var statusNames = [...]string{
	StatusOffline:        "OFFLINE",
	StatusOnline:         "ONLINE",
	StatusBusy:           "BUSY",
	StatusAway:           "AWAY",
	StatusSnoozing:       "SNOOZING",
	StatusLookingToTrade: "LOOKING_TO_TRADE",
	StatusLookingToPlay:  "LOOKING_TO_PLAY",
}

// ParseStatus maps a personastate code to a Status.
func ParseStatus(code int) (Status, error) {
	if code < 0 || code >= len(statusNames) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownStatus, code)
	}
	return Status(code), nil
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Word is the status as it reads in a report line, e.g. "lookingtoplay".
func (s Status) Word() string {
	return strings.ToLower(strings.ReplaceAll(s.String(), "_", ""))
}

// PlayerSummary is one entry of a GetPlayerSummaries (v0002) response.
type PlayerSummary struct {
	SteamID       string `json:"steamid"`
	PersonaName   string `json:"personaname,omitempty"`
	PersonaState  int    `json:"personastate"`
	GameExtraInfo string `json:"gameextrainfo,omitempty"`
	LastLogoff    int64  `json:"lastlogoff,omitempty"`
}

type PlayerSummariesResponse struct {
	Response struct {
		Players []PlayerSummary `json:"players"`
	} `json:"response"`
}

// PresenceRecord is the presence of one roster player for a single report.
type PresenceRecord struct {
	SteamID  string
	Name     string
	Status   Status
	Game     string // empty when not in game
	LastSeen time.Time
}

// NewPresenceRecord builds a record from an upstream summary and the roster display name.
func NewPresenceRecord(summary PlayerSummary, name string) (PresenceRecord, error) {
	status, err := ParseStatus(summary.PersonaState)
	if err != nil {
		return PresenceRecord{}, fmt.Errorf("player %s: %w", summary.SteamID, err)
	}
	// Steam omits lastlogoff for private profiles
	if status == StatusOffline && summary.LastLogoff <= 0 {
		return PresenceRecord{}, fmt.Errorf("player %s: %w", summary.SteamID, ErrNoLastSeen)
	}
	return PresenceRecord{
		SteamID:  summary.SteamID,
		Name:     name,
		Status:   status,
		Game:     summary.GameExtraInfo,
		LastSeen: time.Unix(summary.LastLogoff, 0),
	}, nil
}

func (p PresenceRecord) Offline() bool {
	return p.Status == StatusOffline
}
