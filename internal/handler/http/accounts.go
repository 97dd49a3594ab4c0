package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/utils"
	"github.com/socialpulse/socialpulse/models"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("request reached handler without authentication")
		writeJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	accounts, fromCache, err := h.services.AccountService.ListAccounts(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("account listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AccountsResponse{
		Accounts:  accounts,
		Total:     len(accounts),
		FromCache: fromCache,
		Timestamp: time.Now(),
	}, http.StatusOK)
}

func (h *Handler) connectAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("request reached handler without authentication")
		writeJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ConnectAccountRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.ConnectAccount(r.Context(), userID, req)
	if err != nil {
		log.Err(err).Str("platform", string(req.Platform)).Msg("account connection failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AccountResponse{
		Message: "Account connected successfully",
		Account: account,
	}, http.StatusCreated)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("request reached handler without authentication")
		writeJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	accountID, err := int64URLParam(r, "accountID")
	if err != nil {
		log.Err(err).Msg("invalid account id in url")
		writeJSONError(w, "invalid account id", http.StatusBadRequest)
		return
	}

	if err = h.services.AccountService.DeleteAccount(r.Context(), userID, accountID); err != nil {
		log.Err(err).Int64("account_id", accountID).Msg("account deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{
		"message": "Account disconnected successfully",
	}, http.StatusOK)
}
