package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Debug("failed to encode response", "error", err)
	}
}

// writeError picks the status from the error code. Internal causes stay in
// the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	resp := errorResponse{Code: string(code), Message: errors.GetMessage(err), Meta: errors.GetMeta(err)}
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path,
			"request_id", r.Header.Get(RequestIDHeader),
			"error", err)
		resp = errorResponse{Code: string(code), Message: "internal error"}
	}
	writeJSON(w, status, resp)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.InvalidArgumentf("malformed request body: %v", err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.InvalidArgumentf("invalid %s %q", name, raw).WithMeta("field", name)
	}
	return id, nil
}

// matchRouteID adopts the route id when the body omits it and rejects a
// different one
func matchRouteID(routeID int64, bodyID *int64) error {
	if *bodyID == 0 {
		*bodyID = routeID
		return nil
	}
	if *bodyID != routeID {
		return errors.InvalidArgumentf("body id %d does not match route id %d", *bodyID, routeID).
			WithMeta("route_id", routeID).
			WithMeta("body_id", *bodyID)
	}
	return nil
}
