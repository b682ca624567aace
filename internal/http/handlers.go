package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/altplay/altplay/internal/auth"
	"github.com/altplay/altplay/internal/insights"
	"github.com/altplay/altplay/internal/investment"
	"github.com/altplay/altplay/internal/player"
	"github.com/altplay/altplay/internal/user"
)

// maxPhotoBytes caps profile photo uploads.
const maxPhotoBytes = 5 << 20

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear all stores")
		s.Users.Clear()
		s.Players.Clear()
		s.Insights.Clear()
		s.Investments.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

// sessionResponse is the body returned by register and login.
type sessionResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string    `json:"name"`
			Email    string    `json:"email"`
			Password string    `json:"password"`
			Role     user.Role `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "name, email and password are required", http.StatusBadRequest)
			return
		}

		u, token, err := s.Auth.Register(req.Name, req.Email, req.Password, req.Role)
		if err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			log.Error("Failed to register user", "error", err, "email", req.Email)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, http.StatusCreated, sessionResponse{Token: token, User: u})
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		u, token, err := s.Auth.Login(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			log.Error("Failed to log in user", "error", err, "email", req.Email)
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, sessionResponse{Token: token, User: u})
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Players.List()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) UpsertPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile player.Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		profile.UserID = userIDFromContext(r)

		// A re-submit keeps the original profile identity; only a first
		// registration mints one.
		existing, err := s.Players.GetByOwner(profile.UserID)
		switch {
		case err == nil:
			profile.ID = existing.ID
			profile.CreatedAt = existing.CreatedAt
		case errors.Is(err, player.ErrNotFound):
			profile.ID = uuid.NewString()
			profile.CreatedAt = time.Now().UnixMilli()
		default:
			log.Error("Failed to look up player profile", "error", err, "userID", profile.UserID)
			http.Error(w, "Failed to save profile", http.StatusInternalServerError)
			return
		}

		if profile.FullName == "" {
			http.Error(w, "fullName is required", http.StatusBadRequest)
			return
		}
		if !player.ValidUPILink(profile.UPILink) {
			http.Error(w, "Please enter a valid UPI payment link", http.StatusBadRequest)
			return
		}
		if !player.ValidYouTubeURL(profile.YouTubeURL) {
			http.Error(w, "Please enter a valid YouTube video link", http.StatusBadRequest)
			return
		}

		if err := s.Players.Upsert(&profile); err != nil {
			log.Error("Failed to upsert player profile", "error", err, "userID", profile.UserID)
			http.Error(w, "Failed to save profile", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

func (s *Server) UploadPhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFromContext(r)

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}

		body := http.MaxBytesReader(w, r.Body, maxPhotoBytes)
		defer body.Close()

		key := player.PhotoKey(userID)
		url, err := s.Blobs.Upload(r.Context(), key, body, contentType)
		if err != nil {
			log.Error("Failed to upload profile photo", "error", err, "userID", userID)
			http.Error(w, "Failed to upload photo", http.StatusInternalServerError)
			return
		}

		if err := s.Players.SetPhoto(userID, url); err != nil {
			if errors.Is(err, player.ErrNotFound) {
				http.Error(w, "Player profile not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to store photo URL", "error", err, "userID", userID)
			http.Error(w, "Failed to save photo", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"profilePhoto": url})
	}
}

func (s *Server) MyProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := s.Players.GetByOwner(userIDFromContext(r))
		if err != nil {
			if errors.Is(err, player.ErrNotFound) {
				http.Error(w, "Player profile not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to get player profile", "error", err)
			http.Error(w, "Failed to get profile", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

func (s *Server) InvestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PlayerID string   `json:"playerId"`
			Amount   *float64 `json:"investmentAmount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.PlayerID == "" {
			http.Error(w, "playerId is required", http.StatusBadRequest)
			return
		}

		// The player's name is captured on the record at investment time so
		// the investor's history stays stable even if the profile changes.
		profile, err := s.Players.Get(req.PlayerID)
		if err != nil {
			if errors.Is(err, player.ErrNotFound) {
				http.Error(w, "Player not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to resolve player", "error", err, "playerID", req.PlayerID)
			http.Error(w, "Failed to resolve player", http.StatusInternalServerError)
			return
		}

		rec, err := s.Investments.Invest(userIDFromContext(r), profile.ID, profile.FullName, req.Amount)
		if err != nil {
			log.Error("Failed to record investment", "error", err, "playerID", req.PlayerID)
			http.Error(w, "Failed to record investment", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, rec)
	}
}

func (s *Server) ListInvestmentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.Investments.ListForInvestor(userIDFromContext(r))
		if err != nil {
			log.Error("Failed to list investments", "error", err)
			http.Error(w, "Failed to list investments", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, records)
	}
}

func (s *Server) CheckInvestmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerId")
		if playerID == "" {
			http.Error(w, "playerId is required", http.StatusBadRequest)
			return
		}

		invested, err := s.Investments.HasInvested(userIDFromContext(r), playerID)
		if err != nil {
			log.Error("Failed to check investment", "error", err, "playerID", playerID)
			http.Error(w, "Failed to check investment", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"hasInvested": invested})
	}
}

func (s *Server) ListBackersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := s.Players.GetByOwner(userIDFromContext(r))
		if err != nil {
			if errors.Is(err, player.ErrNotFound) {
				http.Error(w, "Player profile not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to get player profile", "error", err)
			http.Error(w, "Failed to get profile", http.StatusInternalServerError)
			return
		}

		backers, err := s.Investments.BackersForPlayer(profile.ID)
		if err != nil {
			log.Error("Failed to list backers", "error", err, "playerID", profile.ID)
			http.Error(w, "Failed to list investors", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, backers)
	}
}

// saveInsightResponse pairs the stored snapshot with the comparison view the
// client renders right after a save. Comparison is null when nothing changed.
type saveInsightResponse struct {
	Snapshot   *insights.Snapshot   `json:"snapshot"`
	Comparison *insights.Comparison `json:"comparison"`
}

func (s *Server) SaveInsightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub insights.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		snap, comparison, err := s.Insights.Save(userIDFromContext(r), &sub)
		if err != nil {
			var vErr *insights.ValidationError
			if errors.As(err, &vErr) {
				http.Error(w, vErr.Error(), http.StatusBadRequest)
				return
			}
			log.Error("Failed to save snapshot", "error", err)
			http.Error(w, "Failed to save performance insights", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, saveInsightResponse{Snapshot: snap, Comparison: comparison})
	}
}

func (s *Server) LatestInsightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := s.Insights.Latest(userIDFromContext(r))
		if err != nil {
			log.Error("Failed to load latest snapshot", "error", err)
			http.Error(w, "Failed to load latest snapshot", http.StatusInternalServerError)
			return
		}
		// snap is null when the player has no snapshots yet; the client
		// uses that to start from a blank form.
		respondJSON(w, http.StatusOK, snap)
	}
}

// insightSubject resolves whose history a read endpoint targets: the
// caller's own by default, or the user named by ?userId= for cross-role
// views such as an investor inspecting a player.
func insightSubject(r *http.Request) string {
	if subject := r.URL.Query().Get("userId"); subject != "" {
		return subject
	}
	return userIDFromContext(r)
}

func (s *Server) InsightHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := s.Insights.History(insightSubject(r))
		if err != nil {
			log.Error("Failed to load snapshot history", "error", err)
			http.Error(w, "Failed to load history", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, history)
	}
}

func (s *Server) InsightChartsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := s.Insights.Charts(insightSubject(r))
		if err != nil {
			log.Error("Failed to build chart report", "error", err)
			http.Error(w, "Failed to build charts", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

// adminOverview is the platform-wide summary served to admins.
type adminOverview struct {
	Investments investment.AggregateStats `json:"investments"`
	Players     int                       `json:"players"`
}

func (s *Server) AdminOverviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Investments.Aggregate()
		if err != nil {
			log.Error("Failed to aggregate investments", "error", err)
			http.Error(w, "Failed to aggregate investments", http.StatusInternalServerError)
			return
		}
		players, err := s.Players.List()
		if err != nil {
			log.Error("Failed to count players", "error", err)
			http.Error(w, "Failed to count players", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, adminOverview{Investments: stats, Players: len(players)})
	}
}

// decodePushMessage unwraps a push-delivery envelope: an outer JSON wrapper
// whose message data is the base64-encoded MessagePack payload.
func decodePushMessage(r *http.Request) ([]byte, error) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	log.Debug("Received push message", "body", string(bodyBytes))

	var pubsubMsg struct {
		Subscription string `json:"subscription"`
		Message      struct {
			Data string `json:"data"` // base64-encoded message payload
		} `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wrapper JSON: %w", err)
	}

	rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 data: %w", err)
	}
	return rawData, nil
}

func (s *Server) InvestmentRecordedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := decodePushMessage(r)
		if err != nil {
			log.Error("Failed to decode push message", "error", err)
			http.Error(w, "Invalid push message", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		rec := investment.Record{}
		if err := s.pubsub.ProcessMessage(rawData, &rec); err != nil {
			log.Error("Failed to decode investment payload", "error", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		if err := s.Notifier.SendInvestmentNotification(&rec, isDryRun); err != nil {
			log.Error("Failed to notify investment", "error", err, "recordID", rec.ID)
			http.Error(w, "Failed to notify investment", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) InsightChangedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawData, err := decodePushMessage(r)
		if err != nil {
			log.Error("Failed to decode push message", "error", err)
			http.Error(w, "Invalid push message", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		event := insights.ChangeEvent{}
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			log.Error("Failed to decode insight change payload", "error", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		snap, err := s.Insights.Latest(event.UserID)
		if err != nil || snap == nil {
			log.Error("Failed to load changed snapshot", "error", err, "userID", event.UserID)
			http.Error(w, "Failed to load snapshot", http.StatusInternalServerError)
			return
		}

		playerName := investment.UnknownBacker
		if profile, err := s.Players.GetByOwner(event.UserID); err == nil {
			playerName = profile.FullName
		}

		if err := s.Notifier.SendPerformanceUpdateNotification(snap, playerName, isDryRun); err != nil {
			log.Error("Failed to notify performance update", "error", err, "userID", event.UserID)
			http.Error(w, "Failed to notify performance update", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
