package handlers

import (
	"context"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/mines/internal/command"
	"github.com/vancomm/mines/internal/mines"
	"github.com/vancomm/mines/internal/session"
)

type GameHandler struct {
	log      logrus.FieldLogger
	defaults mines.Params
	newRand  func() *rand.Rand
	upgrader websocket.Upgrader
}

func NewGameHandler(
	log logrus.FieldLogger,
	defaults mines.Params,
	newRand func() *rand.Rand,
	upgrader websocket.Upgrader,
) *GameHandler {
	return &GameHandler{
		log:      log,
		defaults: defaults,
		newRand:  newRand,
		upgrader: upgrader,
	}
}

// Connect starts a fresh session and serves it over a websocket. Every text
// message is a newline separated batch of commands; the reply is the session
// snapshot, carrying the first failed command and its error if any.
func (g GameHandler) Connect(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	params, err := dto.Params(g.defaults)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	game, err := session.New(params, g.newRand(), nil)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusInternalServerError, err)
		return
	}
	log := g.log.WithField("session", game.ID.String())

	c, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()
	// unblocks the read loop on server shutdown
	stop := context.AfterFunc(r.Context(), func() { c.Close() })
	defer stop()

	log.WithField("game", params.Seed()).Info("session connected")

	if err := c.WriteJSON(ReplyDTO{Snapshot: game.Snapshot()}); err != nil {
		log.Error("write: ", err)
		return
	}

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway,
			) {
				log.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		log.Debug("\t> ", text)

		reply := ReplyDTO{}
		for _, line := range command.Lines(text) {
			if err := runLine(game, line); err != nil {
				log.WithField("line", line).Debug("command: ", err)
				reply.Error, reply.Line = err.Error(), line
				break
			}
		}
		reply.Snapshot = game.Snapshot()

		if err := c.WriteJSON(reply); err != nil {
			log.Error("write: ", err)
			break
		}
		log.Debug("\t< ", reply.State)
	}

	log.Info("session disconnected")
}

func runLine(game *session.Session, line string) error {
	cmd, err := command.Parse(line)
	if err != nil {
		return err
	}
	return command.Execute(game, cmd)
}
