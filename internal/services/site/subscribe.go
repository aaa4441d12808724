package site

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/murmurhq/website/internal/platform/dictionary"
	"github.com/murmurhq/website/internal/platform/id"
	"github.com/murmurhq/website/internal/platform/timeouts"
	apperrors "github.com/murmurhq/website/internal/services/site/platform/errors"
	"github.com/murmurhq/website/internal/services/site/platform/httpx"
	"github.com/murmurhq/website/internal/services/site/platform/i18n"
	"github.com/murmurhq/website/internal/services/site/storage"
)

// maxSubscribeBody bounds the subscribe request body.
const maxSubscribeBody = 16 << 10

type subscribeRequest struct {
	Email  string `json:"email"`
	Locale string `json:"locale"`
	Source string `json:"source"`
}

// handleSubscribe persists a newsletter signup. Duplicate emails succeed
// without a second row, so the form stays safely retryable.
func (h *handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	code, err := h.subscribe(r)
	copy := i18n.Subscribe(code)
	if err != nil {
		_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), subscribeMessage(copy, err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": copy.Thanks})
}

// subscribe validates and stores one signup, returning the request locale
// alongside a typed error so the response stays localized.
func (h *handler) subscribe(r *http.Request) (string, error) {
	req, err := parseSubscribeRequest(r)
	if err != nil {
		return dictionary.DefaultLocale, apperrors.EK(apperrors.KindInvalidInput, "subscribe.invalidEmail", "malformed subscribe request")
	}
	code := dictionary.ParseLocale(req.Locale)

	if h.store == nil {
		return code, apperrors.EK(apperrors.KindUnavailable, "subscribe.unavailable", "subscriber store is not configured")
	}

	email := strings.TrimSpace(req.Email)
	if !validEmail(email) {
		return code, apperrors.EK(apperrors.KindInvalidInput, "subscribe.invalidEmail", "invalid email address")
	}

	subscriberID, err := id.NewID()
	if err != nil {
		log.Printf("subscribe id: %v", err)
		return code, err
	}

	ctx, cancel := context.WithTimeout(httpx.RequestContext(r), timeouts.SubscribeWrite)
	defer cancel()
	err = h.store.PutSubscriber(ctx, storage.Subscriber{
		ID:        subscriberID,
		Email:     email,
		Locale:    code,
		Source:    strings.TrimSpace(req.Source),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("subscribe put: %v", err)
		return code, err
	}
	return code, nil
}

// subscribeMessage picks the localized response line for a subscribe failure.
func subscribeMessage(copy i18n.SubscribeCopy, err error) string {
	if apperrors.LocalizationKey(err) == "subscribe.invalidEmail" {
		return copy.InvalidEmail
	}
	return copy.Unavailable
}

func parseSubscribeRequest(r *http.Request) (subscribeRequest, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req subscribeRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxSubscribeBody)).Decode(&req); err != nil {
			return subscribeRequest{}, err
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return subscribeRequest{}, err
	}
	return subscribeRequest{
		Email:  r.PostFormValue("email"),
		Locale: r.PostFormValue("locale"),
		Source: r.PostFormValue("source"),
	}, nil
}

func validEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
