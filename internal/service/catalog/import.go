package catalog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

const maxImportLine = 64 * 1024

// ImportResult summarizes a bulk voice import. Skipped counts non-blank
// lines that were malformed or named a voice id that already exists.
type ImportResult struct {
	Added   int
	Skipped int
}

// ParseVoiceList reads "name:voice_id" lines. Blank lines are ignored;
// malformed lines and voice ids repeated within the input are counted in
// skipped.
func ParseVoiceList(r io.Reader) (voices []domain.Voice, skipped int, err error) {
	seen := make(map[string]bool)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxImportLine)
	for sc.Scan() {
		line := strings.ToValidUTF8(sc.Text(), "")
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, voiceID, ok := domain.ParseVoiceLine(line)
		if !ok || seen[voiceID] {
			skipped++
			continue
		}
		seen[voiceID] = true
		voices = append(voices, domain.Voice{Name: name, VoiceID: voiceID, Active: true})
	}
	if err := sc.Err(); err != nil {
		return nil, 0, domain.NewValidationError("file", fmt.Sprintf("unreadable: %v", err))
	}
	return voices, skipped, nil
}

// Import adds every parsed voice whose id is not already in the catalog.
// All inserts commit together.
func (s *Service) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	candidates, skipped, err := ParseVoiceList(r)
	if err != nil {
		return nil, err
	}
	result := ImportResult{Skipped: skipped}

	if len(candidates) == 0 {
		return &result, nil
	}

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.VoiceID
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.voices.ExistingVoiceIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("existing voice ids: %w", err)
		}
		for _, c := range candidates {
			if existing[c.VoiceID] {
				result.Skipped++
				continue
			}
			if _, err := s.voices.Create(txCtx, c); err != nil {
				return fmt.Errorf("create voice %s: %w", c.VoiceID, err)
			}
			result.Added++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Added > 0 {
		s.refresh(ctx)
	}

	s.log.InfoContext(ctx, "voices imported",
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
	)
	return &result, nil
}
