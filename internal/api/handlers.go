package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Pi3th0n/robocup-software/internal/httputil"
	"github.com/Pi3th0n/robocup-software/internal/joystick"
)

// ConfigView is the operator-adjustable configuration.
type ConfigView struct {
	ManualID        int  `json:"manual_id"`
	BlueTeam        bool `json:"blue_team"`
	DefendPlusX     bool `json:"defend_plus_x"`
	ExternalReferee bool `json:"external_referee"`
	SyncToVision    bool `json:"sync_to_vision"`
	Autonomous      bool `json:"autonomous"`
	JoystickValid   bool `json:"joystick_valid"`
}

// ConfigUpdate changes the fields that are present.
type ConfigUpdate struct {
	ManualID        *int  `json:"manual_id"`
	BlueTeam        *bool `json:"blue_team"`
	DefendPlusX     *bool `json:"defend_plus_x"`
	ExternalReferee *bool `json:"external_referee"`
	SyncToVision    *bool `json:"sync_to_vision"`
}

// GameView is the game state as served over HTTP.
type GameView struct {
	Period        string `json:"period"`
	OurScore      int    `json:"our_score"`
	TheirScore    int    `json:"their_score"`
	OurRestart    bool   `json:"our_restart"`
	TimeRemaining int    `json:"time_remaining"`
}

func (s *Server) showStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSONOK(w, s.ctl.Status())
}

func (s *Server) configView() ConfigView {
	return ConfigView{
		ManualID:        s.ctl.ManualID(),
		BlueTeam:        s.ctl.BlueTeam(),
		DefendPlusX:     s.ctl.DefendPlusX(),
		ExternalReferee: s.ctl.ExternalReferee(),
		SyncToVision:    s.ctl.SyncToVision(),
		Autonomous:      s.ctl.Autonomous(),
		JoystickValid:   s.ctl.JoystickValid(),
	}
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		httputil.WriteJSONOK(w, s.configView())
	case http.MethodPost, http.MethodPatch:
		var u ConfigUpdate
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			httputil.BadRequest(w, fmt.Sprintf("Invalid config body: %v", err))
			return
		}
		if u.ManualID != nil && *u.ManualID < -1 {
			httputil.BadRequest(w, "manual_id must be -1 or a shell number")
			return
		}
		if u.ManualID != nil {
			s.ctl.SetManualID(*u.ManualID)
		}
		if u.BlueTeam != nil {
			s.ctl.SetBlueTeam(*u.BlueTeam)
		}
		if u.DefendPlusX != nil {
			s.ctl.SetDefendPlusX(*u.DefendPlusX)
		}
		if u.ExternalReferee != nil {
			s.ctl.SetExternalReferee(*u.ExternalReferee)
		}
		if u.SyncToVision != nil {
			s.ctl.SetSyncToVision(*u.SyncToVision)
		}
		httputil.WriteJSONOK(w, s.configView())
	default:
		httputil.MethodNotAllowed(w)
	}
}

func (s *Server) showGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	s.writeGame(w)
}

func (s *Server) writeGame(w http.ResponseWriter) {
	g := s.ctl.GameState()
	httputil.WriteJSONOK(w, GameView{
		Period:        g.Period.String(),
		OurScore:      g.OurScore,
		TheirScore:    g.TheirScore,
		OurRestart:    g.OurRestart,
		TimeRemaining: g.TimeRemaining,
	})
}

// sendRefereeCommand injects one legacy referee command character, given
// as the "command" form value.
func (s *Server) sendRefereeCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	command := r.FormValue("command")
	if len(command) != 1 {
		httputil.BadRequest(w, "command must be a single character")
		return
	}
	s.ctl.InternalRefCommand(command[0])
	s.writeGame(w)
}

func (s *Server) setJoystick(w http.ResponseWriter, r *http.Request) {
	if s.joystick == nil {
		httputil.NotFound(w, "No network joystick configured")
		return
	}
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	var in joystick.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("Invalid joystick body: %v", err))
		return
	}
	s.joystick.Set(in)
	w.WriteHeader(http.StatusNoContent)
}

type sessionView struct {
	ID           uuid.UUID `json:"id"`
	StartedAt    int64     `json:"started_at"`
	BlueTeam     bool      `json:"blue_team"`
	Simulation   bool      `json:"simulation"`
	RadioChannel int       `json:"radio_channel"`
	Version      string    `json:"version"`
	Frames       int       `json:"frames"`
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	if s.logs == nil {
		httputil.NotFound(w, "Cycle logging is disabled")
		return
	}
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	sessions, err := s.logs.Sessions(r.Context())
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("Failed to list sessions: %v", err))
		return
	}
	limit := len(sessions)
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			httputil.BadRequest(w, "Invalid 'limit' parameter")
			return
		}
		limit = min(n, limit)
	}
	out := make([]sessionView, 0, limit)
	for _, sess := range sessions[:limit] {
		n, err := s.logs.FrameCount(r.Context(), sess.ID)
		if err != nil {
			httputil.InternalServerError(w, fmt.Sprintf("Failed to count frames: %v", err))
			return
		}
		out = append(out, sessionView{
			ID:           sess.ID,
			StartedAt:    sess.StartedAt,
			BlueTeam:     sess.BlueTeam,
			Simulation:   sess.Simulation,
			RadioChannel: sess.RadioChannel,
			Version:      sess.Version,
			Frames:       n,
		})
	}
	httputil.WriteJSONOK(w, out)
}

func (s *Server) showVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSONOK(w, map[string]string{"version": s.version})
}
