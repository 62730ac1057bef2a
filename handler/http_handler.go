package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// PayloadObserver is told about the outcome of every decoded payload.
type PayloadObserver interface {
	PayloadReceived(urlCount int)
	PayloadRejected()
}

type noopObserver struct{}

func (noopObserver) PayloadReceived(int) {}
func (noopObserver) PayloadRejected()    {}

// ProcessURLHandler accepts a URLPayload and acknowledges it. The payload is
// not stored or forwarded.
type ProcessURLHandler struct {
	MaxBodyBytes int64
	Observer     PayloadObserver
}

// NewProcessURLHandler creates a new instance of ProcessURLHandler. A nil
// observer is replaced by a no-op.
func NewProcessURLHandler(maxBodyBytes int64, observer PayloadObserver) *ProcessURLHandler {
	if observer == nil {
		observer = noopObserver{}
	}
	return &ProcessURLHandler{
		MaxBodyBytes: maxBodyBytes,
		Observer:     observer,
	}
}

// ServeHTTP implements the http.Handler interface for ProcessURLHandler.
func (h *ProcessURLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.MaxBodyBytes))
	if err != nil {
		h.Observer.PayloadRejected()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logAndReturnError(w, r, "Request Entity Too Large", http.StatusRequestEntityTooLarge,
				fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit))
			return
		}
		logAndReturnError(w, r, "Bad Request: unable to read body", http.StatusBadRequest,
			fmt.Sprintf("reading body: %v", err))
		return
	}

	payload, violations, err := decodeURLPayload(body)
	if err != nil {
		h.Observer.PayloadRejected()
		logAndReturnError(w, r, "Bad Request: invalid JSON", http.StatusBadRequest)
		return
	}
	if len(violations) > 0 {
		h.Observer.PayloadRejected()
		log.Warnf("%s -- payload rejected: %s %v", r.RemoteAddr, violations[0].Msg, violations[0].Loc)
		writeJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Detail: violations})
		return
	}

	h.Observer.PayloadReceived(len(payload.URLs))
	log.Debugf("%s -- payload received with %d urls", r.RemoteAddr, len(payload.URLs))
	writeJSON(w, http.StatusOK, Acknowledgement{Status: StatusReceived})
}
