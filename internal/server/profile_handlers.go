package server

import (
	"log"
	"net/http"
	"time"

	"podosite/internal/auth"
	"podosite/internal/i18n"
)

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	if req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "La contraseña es requerida")
		return
	}

	ctx := r.Context()
	claims := claimsFromContext(ctx)

	admin, err := s.Admins.FindByUsername(ctx, claims.Username)
	if err != nil || admin == nil {
		log.Printf("change-password: lookup %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	if !s.Hasher.Compare(admin.PasswordHash, req.CurrentPassword) {
		writeError(w, http.StatusBadRequest, "Contraseña incorrecta")
		return
	}

	hashed, err := s.Hasher.Hash(req.NewPassword)
	if err != nil {
		log.Printf("change-password: hash for %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	if err := s.Admins.UpdatePassword(ctx, admin.Username, hashed); err != nil {
		log.Printf("change-password: persist for %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Contraseña actualizada exitosamente"})
}

type emailChangeRequest struct {
	NewEmail string `json:"newEmail"`
}

// handleEmailChangeRequest starts the two-step email change: the code goes to
// the NEW address to prove the operator controls it.
func (s *Server) handleEmailChangeRequest(w http.ResponseWriter, r *http.Request) {
	var req emailChangeRequest
	if err := decodeJSON(r, &req); err != nil || !validateEmail(req.NewEmail) {
		writeError(w, http.StatusBadRequest, "Email inválido")
		return
	}

	ctx := r.Context()
	locale := i18n.LocaleFromRequest(r)
	claims := claimsFromContext(ctx)

	code := auth.NewVerificationCode()
	expires := time.Now().Add(auth.CodeTTL)
	if err := s.Admins.SavePendingEmail(ctx, claims.Username, req.NewEmail, auth.HashString(code), expires); err != nil {
		log.Printf("email-request: persist for %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	if err := s.sendCodeEmail(ctx, i18n.EmailChangeEmail(locale, code, codeValidityMinutes), req.NewEmail); err != nil {
		log.Printf("email-request: email to %q failed: %v", req.NewEmail, err)
		writeError(w, http.StatusInternalServerError, "Error al enviar el correo")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Código enviado al nuevo correo"})
}

type emailConfirmRequest struct {
	Code string `json:"code"`
}

// handleEmailChangeConfirm promotes the pending email after code validation.
// Already-issued tokens stay valid until natural expiry; there is no
// blacklist. The client is expected to re-authenticate.
func (s *Server) handleEmailChangeConfirm(w http.ResponseWriter, r *http.Request) {
	var req emailConfirmRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	claims := claimsFromContext(ctx)

	admin, err := s.Admins.FindByUsername(ctx, claims.Username)
	if err != nil || admin == nil {
		log.Printf("email-confirm: lookup %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	if !s.checkCode(w, admin, req.Code) {
		return
	}

	if admin.PendingEmail == nil {
		writeError(w, http.StatusBadRequest, "No hay cambio de correo pendiente")
		return
	}

	if err := s.Admins.ConfirmPendingEmail(ctx, admin.Username); err != nil {
		log.Printf("email-confirm: persist for %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Correo actualizado exitosamente"})
}
