package handlers

import (
	"github.com/gorilla/schema"
	"github.com/vancomm/mines/internal/mines"
	"github.com/vancomm/mines/internal/session"
)

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

// NewGameDTO holds the optional query of the connect endpoint. Missing fields
// fall back to the server defaults; a preset overrides the rest.
type NewGameDTO struct {
	Preset    string `schema:"preset"`
	Width     *int   `schema:"width"`
	Height    *int   `schema:"height"`
	MineCount *int   `schema:"mine_count"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

func (dto NewGameDTO) Params(defaults mines.Params) (mines.Params, error) {
	if dto.Preset != "" {
		return mines.ParseSeed(dto.Preset)
	}
	params := defaults
	if dto.Width != nil {
		params.Width = *dto.Width
	}
	if dto.Height != nil {
		params.Height = *dto.Height
	}
	if dto.MineCount != nil {
		params.MineCount = *dto.MineCount
	}
	return params, params.Validate()
}

// ReplyDTO is sent after every websocket message. Error and Line are set
// when a command of the message failed; the snapshot is always current.
type ReplyDTO struct {
	Error string `json:"error,omitempty"`
	Line  string `json:"line,omitempty"`
	session.Snapshot
}
