package handhistory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SpecVersion is the hand-history document version this package produces
const SpecVersion = "1.4.6"

// Session is an ordered collection of completed hands for one table/site
// context. It lives for the operating lifetime of the table.
type Session struct {
	ID    string  `json:"session_id"`
	Meta  Meta    `json:"meta"`
	Hands []*Hand `json:"hands"`
}

// NewSession returns an empty session stamped with site metadata
func NewSession(siteName, networkName, internalVersion string) *Session {
	return &Session{
		ID: uuid.New().String(),
		Meta: Meta{
			SpecVersion:     SpecVersion,
			SiteName:        siteName,
			NetworkName:     networkName,
			InternalVersion: internalVersion,
		},
		Hands: make([]*Hand, 0),
	}
}

// AddHand appends a completed hand to the session
func (s *Session) AddHand(hand *Hand) {
	s.Hands = append(s.Hands, hand)
}

// Save writes the session to {dir}/session_{id}.ohh, one document per hand
func (s *Session) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("session_%s.ohh", s.ID))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create session file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	for _, hand := range s.Hands {
		if err := enc.Encode(hand.Document(s.Meta)); err != nil {
			return fmt.Errorf("could not encode hand %d: %w", hand.GameNumber, err)
		}

		if _, err := file.WriteString("\n"); err != nil {
			return err
		}
	}

	return nil
}
