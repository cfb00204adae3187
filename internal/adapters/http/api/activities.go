// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/mergington/activities/internal/domain/model"
)

// ActivityLister defines the interface for directory listing.
type ActivityLister interface {
	List(ctx context.Context) ([]model.Activity, error)
}

// ActivitiesHandler handles directory listing requests.
type ActivitiesHandler struct {
	deps ActivityLister
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivityLister) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleGetActivities handles GET /activities requests.
// The response is an object keyed by activity name, mirroring the
// directory's mapping shape.
func (h *ActivitiesHandler) HandleGetActivities(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_activities"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	activities, err := h.deps.List(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, WrapKind(op, ErrServe, err).Error())
		return
	}

	out := make(map[string]activityResponse, len(activities))
	for _, a := range activities {
		out[a.Name] = activityResponse{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
