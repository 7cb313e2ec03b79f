package models

import (
	"encoding/base64"
	"errors"
	"strings"
)

type PageInfo struct {
	StartCursor string `json:"startCursor"`
	EndCursor   string `json:"endCursor"`
	HasNextPage *bool  `json:"hasNextPage,omitempty"`
}

type Edge[N any] struct {
	Node   *N
	Cursor string
}

// EPDEdge is a concrete alias for Edge[EPD] so gqlgen can bind to it
// (gqlgen's models config cannot reference instantiated generic types).
type EPDEdge = Edge[EPD]

// composite cursor = sort value + id tiebreaker, "value|id" base64 encoded

func DecodeCompositeCursor(cursor *string) (string, string, error) {
	if cursor == nil || *cursor == "" {
		return "", "", nil
	}

	decoded, err := base64.StdEncoding.DecodeString(*cursor)
	if err != nil {
		return "", "", err
	}

	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return "", "", errors.New("malformed cursor")
	}

	return parts[0], parts[1], nil
}

func EncodeCompositeCursor(value string, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(value + "|" + id))
}
