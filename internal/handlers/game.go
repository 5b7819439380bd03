package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/classic-mines/internal/config"
	"github.com/vancomm/classic-mines/internal/mines"
	"github.com/vancomm/classic-mines/internal/session"
)

const maxBatchBytes = 1 << 16

type GameHandler struct {
	log   *logrus.Logger
	store *session.Store
	ws    *config.WebSocket
}

func NewGameHandler(
	log *logrus.Logger,
	store *session.Store,
	ws *config.WebSocket,
) *GameHandler {
	return &GameHandler{
		log:   log,
		store: store,
		ws:    ws,
	}
}

// lookup resolves the {id} path value, writing the error response itself
// when it fails.
func (g GameHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		sendStatus(w, g.log, http.StatusBadRequest, wrapError(errors.New("invalid session id")))
		return nil, false
	}
	s, err := g.store.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		sendStatus(w, g.log, http.StatusNotFound, wrapError(err))
		return nil, false
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to fetch session")
		return nil, false
	}
	return s, true
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	s := g.store.Create()
	g.log.WithField("id", s.Id).Debug("new game")
	sendStatus(w, g.log, http.StatusCreated, NewGameSessionDTO(s.Snapshot()))
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(s.Snapshot()))
}

func (g GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}
	g.store.Delete(s.Id)
	w.WriteHeader(http.StatusNoContent)
}

func (g GameHandler) pick(w http.ResponseWriter, r *http.Request, intent func(int) mines.Intent) {
	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		sendStatus(w, g.log, http.StatusBadRequest, wrapError(err))
		return
	}
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}
	geometry := s.Snapshot().Geometry
	if !geometry.ValidatePoint(pos.X, pos.Y) {
		sendStatus(w, g.log, http.StatusBadRequest, wrapError(ErrInvalidPosition))
		return
	}
	snap := s.Apply(intent(geometry.Index(pos.X, pos.Y)))
	sendJSONOrLog(w, g.log, NewGameSessionDTO(snap))
}

func (g GameHandler) Open(w http.ResponseWriter, r *http.Request) {
	g.pick(w, r, mines.LeftPickAt)
}

func (g GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	g.pick(w, r, mines.RightPickAt)
}

func (g GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(s.Apply(mines.ResetIntent())))
}

// Batch accepts newline-separated commands (see [ParseCommand]) in the
// request body. Commands are applied in order. If any command is malformed,
// none is applied and the response has a status of
// [http.StatusBadRequest] and a payload with the command's line number and
// an error message. Bodies over maxBatchBytes are rejected whole with
// [http.StatusRequestEntityTooLarge].
func (g GameHandler) Batch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBatchBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		sendStatus(w, g.log, http.StatusRequestEntityTooLarge, wrapError(err))
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to read batch")
		return
	}
	intents, err := ParseCommands(s.Snapshot().Geometry, string(body))
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		sendStatus(w, g.log, http.StatusBadRequest, CommandErrorDTO{
			Loc:     cmdErr.Loc,
			Message: cmdErr.Err.Error(),
		})
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(s.Apply(intents...)))
}

// ConnectWS upgrades to a WebSocket on which every text message is a batch
// of commands. Each batch is answered with the resulting game session, a
// malformed one with a [CommandErrorDTO] and no changes. The socket is
// closed once the session is deleted or swept from the store.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r)
	if !ok {
		return
	}
	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("upgrade")
		return
	}
	defer c.Close()
	c.SetReadLimit(maxBatchBytes)

	log := g.log.WithField("id", s.Id)
	log.Debug("ws connected")
	geometry := s.Snapshot().Geometry
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		log.Debug("\t> ", string(message))

		if _, err := g.store.Get(s.Id); err != nil {
			log.WithError(err).Debug("closing ws")
			c.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, err.Error()),
				time.Now().Add(time.Second),
			)
			break
		}

		var reply any
		intents, err := ParseCommands(geometry, string(message))
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			reply = CommandErrorDTO{Loc: cmdErr.Loc, Message: cmdErr.Err.Error()}
		} else {
			snap := s.Apply(intents...)
			if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
				log.Debug("\n" + snap.Grid.ToString(geometry.Width))
			}
			reply = NewGameSessionDTO(snap)
		}
		if err := c.WriteJSON(reply); err != nil {
			log.WithError(err).Error("write")
			break
		}
	}
}
