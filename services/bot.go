package services

import (
	"context"
	"errors"
	"fmt"

	"steamstatus/status-bot/command"
	"steamstatus/status-bot/models"
	"steamstatus/status-bot/report"
	"steamstatus/status-bot/utils"
)

const (
	noMatchesReply = "No matching players found."
	nobodyReply    = "No players to show."
)

var ErrNotCommand = errors.New("not a status command")

type RosterLookup interface {
	Lookup(ctx context.Context, names []string) (map[string]string, error)
}

type PresenceLookup interface {
	Lookup(ctx context.Context, roster map[string]string) ([]models.PresenceRecord, error)
}

type Poster interface {
	Post(ctx context.Context, text string) error
}

// StatusBot answers status commands posted in the group.
type StatusBot struct {
	roster    RosterLookup
	presence  PresenceLookup
	poster    Poster
	formatter *report.Formatter
	prefix    string
	logger    *utils.Logger
}

func NewStatusBot(roster RosterLookup, presence PresenceLookup, poster Poster, formatter *report.Formatter, prefix string, logger *utils.Logger) *StatusBot {
	if prefix == "" {
		prefix = command.DefaultPrefix
	}
	return &StatusBot{
		roster:    roster,
		presence:  presence,
		poster:    poster,
		formatter: formatter,
		prefix:    prefix,
		logger:    logger,
	}
}

// HandleMessage reacts to one group message. It returns true when msg was a
// status command and a reply was posted.
func (b *StatusBot) HandleMessage(ctx context.Context, msg models.CallbackMessage) (bool, error) {
	logger := utils.LoggerFrom(ctx, b.logger)

	// never answer ourselves or other bots
	if msg.FromBot() {
		logger.Debug("Ignoring bot message", "sender", msg.Name)
		return false, nil
	}

	args, ok := command.MatchCommand(msg.Text, b.prefix)
	if !ok {
		logger.Info("Not responding to message")
		return false, nil
	}

	req := b.Parse(ctx, args)
	reply, err := b.Report(ctx, req)
	if err != nil {
		return false, err
	}

	if err := b.poster.Post(ctx, reply); err != nil {
		return false, fmt.Errorf("failed to post reply: %w", err)
	}
	logger.Info("Responded to status command", "sender", msg.Name, "targets", len(req.Targets))
	return true, nil
}

// Parse parses command arguments and logs any unknown options.
func (b *StatusBot) Parse(ctx context.Context, args string) *command.Request {
	req := command.Parse(args)
	logger := utils.LoggerFrom(ctx, b.logger)
	for _, name := range req.Unknown {
		logger.Warn("Unknown option encountered", "option", name)
	}
	return req
}

// Report builds the reply for req without posting it.
func (b *StatusBot) Report(ctx context.Context, req *command.Request) (string, error) {
	roster, err := b.roster.Lookup(ctx, req.Targets)
	if err != nil {
		return "", fmt.Errorf("roster lookup: %w", err)
	}
	if len(roster) == 0 {
		return noMatchesReply, nil
	}

	records, err := b.presence.Lookup(ctx, roster)
	if err != nil {
		return "", fmt.Errorf("presence lookup: %w", err)
	}

	text := b.formatter.Format(req, records)
	if text == "" {
		return nobodyReply, nil
	}
	return text, nil
}

// Preview runs a full status command but returns the reply instead of posting it.
func (b *StatusBot) Preview(ctx context.Context, text string) (*command.Request, string, error) {
	args, ok := command.MatchCommand(text, b.prefix)
	if !ok {
		return nil, "", ErrNotCommand
	}
	req := b.Parse(ctx, args)
	reply, err := b.Report(ctx, req)
	if err != nil {
		return nil, "", err
	}
	return req, reply, nil
}
