package handlers

import (
	"github.com/gorilla/schema"
	"github.com/vancomm/classic-mines/internal/mines"
	"github.com/vancomm/classic-mines/internal/session"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type PositionDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (PositionDTO, error) {
	var dto PositionDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameSessionDTO struct {
	SessionId string     `json:"session_id"`
	Grid      mines.Grid `json:"grid"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	GameOver  bool       `json:"game_over"`
	Changed   bool       `json:"changed"`
	StartedAt int64      `json:"started_at"`
}

func NewGameSessionDTO(s session.Snapshot) *GameSessionDTO {
	return &GameSessionDTO{
		SessionId: s.Id.String(),
		Grid:      s.Grid,
		Width:     s.Geometry.Width,
		Height:    s.Geometry.Height,
		GameOver:  s.GameOver,
		Changed:   s.Changed,
		StartedAt: s.StartedAt.UnixMilli(),
	}
}

type CommandErrorDTO struct {
	Loc     int    `json:"loc"`
	Message string `json:"message"`
}
