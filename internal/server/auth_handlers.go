package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"podosite/internal/auth"
	"podosite/internal/i18n"
)

const codeValidityMinutes = 5

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin is the entry point of the auth gate. Accounts that never
// completed setup get a setup-scoped token; everyone else gets a fresh email
// code and a 2fa-scoped token. A full token is only ever issued by verify-2fa.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	locale := i18n.LocaleFromRequest(r)

	admin, err := s.Admins.FindByUsername(ctx, req.Username)
	if err != nil {
		log.Printf("login: lookup %q failed: %v", req.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}
	if admin == nil {
		writeError(w, http.StatusBadRequest, "Usuario no encontrado")
		return
	}

	if !s.Hasher.Compare(admin.PasswordHash, req.Password) {
		writeError(w, http.StatusBadRequest, "Contraseña incorrecta")
		return
	}

	if !admin.IsSetup {
		token, err := s.Tokens.Issue(admin.Username, auth.ScopeSetup, auth.SetupTokenTTL)
		if err != nil {
			log.Printf("login: issue setup token for %q failed: %v", admin.Username, err)
			writeError(w, http.StatusInternalServerError, "Error interno")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "SETUP_REQUIRED",
			"token":  token,
		})
		return
	}

	// Every login that reaches this branch overwrites the previous code,
	// invalidating it.
	code := auth.NewVerificationCode()
	expires := time.Now().Add(auth.CodeTTL)
	if err := s.Admins.SaveVerificationCode(ctx, admin.Username, auth.HashString(code), expires); err != nil {
		log.Printf("login: save verification code for %q failed: %v", admin.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	if admin.Email != nil {
		// Delivery failure is logged, not fatal: a previously delivered or
		// resent code must remain usable.
		if err := s.sendCodeEmail(ctx, i18n.TwoFactorEmail(locale, code, codeValidityMinutes), *admin.Email); err != nil {
			log.Printf("login: two-factor email for %q failed: %v", admin.Username, err)
		}
	}

	token, err := s.Tokens.Issue(admin.Username, auth.ScopeTwoFactor, auth.TwoFactorTokenTTL)
	if err != nil {
		log.Printf("login: issue 2fa token for %q failed: %v", admin.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "2FA_REQUIRED",
		"token":  token,
	})
}

type sendCodeRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleSendSetupCode(w http.ResponseWriter, r *http.Request) {
	var req sendCodeRequest
	if err := decodeJSON(r, &req); err != nil || !validateEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Email inválido")
		return
	}

	ctx := r.Context()
	locale := i18n.LocaleFromRequest(r)
	claims := claimsFromContext(ctx)

	code := auth.NewVerificationCode()
	expires := time.Now().Add(auth.CodeTTL)
	if err := s.Admins.SaveVerificationCode(ctx, claims.Username, auth.HashString(code), expires); err != nil {
		log.Printf("send-code: save verification code for %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	// Unlike login, this is an explicit send: a delivery failure is fatal.
	if err := s.sendCodeEmail(ctx, i18n.SetupCodeEmail(locale, code, codeValidityMinutes), req.Email); err != nil {
		log.Printf("send-code: email to %q failed: %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, "Error al enviar el correo")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Code sent successfully"})
}

type setupRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// handleCompleteSetup finishes the one-time account setup. It never issues a
// session token: the operator must log in again afterwards.
func (s *Server) handleCompleteSetup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}
	if !validateEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Email inválido")
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
		log.Printf("setup: lookup %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	if !s.checkCode(w, admin, req.Code) {
		return
	}

	hashed, err := s.Hasher.Hash(req.NewPassword)
	if err != nil {
		log.Printf("setup: hash password for %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	if err := s.Admins.CompleteSetup(ctx, admin.Username, req.Email, hashed); err != nil {
		log.Printf("setup: persist for %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Setup completed successfully"})
}

type verifyTwoFactorRequest struct {
	Code string `json:"code"`
}

// handleVerifyTwoFactor is the only path that yields a full-scope token.
func (s *Server) handleVerifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req verifyTwoFactorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	ctx := r.Context()
	claims := claimsFromContext(ctx)

	admin, err := s.Admins.FindByUsername(ctx, claims.Username)
	if err != nil || admin == nil {
		log.Printf("verify-2fa: lookup %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	if !s.checkCode(w, admin, req.Code) {
		return
	}

	if err := s.Admins.ClearVerificationCode(ctx, admin.Username); err != nil {
		log.Printf("verify-2fa: clear code for %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	token, err := s.Tokens.Issue(admin.Username, auth.ScopeFull, auth.FullTokenTTL)
	if err != nil {
		log.Printf("verify-2fa: issue full token for %q failed: %v", claims.Username, err)
		writeError(w, http.StatusInternalServerError, "Error interno")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// checkCode validates presence and match before expiry: a missing and a wrong
// code are indistinguishable, an expired-but-correct code gets its own error.
// Writes the error response and returns false on failure.
func (s *Server) checkCode(w http.ResponseWriter, admin *auth.Admin, code string) bool {
	if code == "" || !admin.HasValidCode(code) {
		writeError(w, http.StatusBadRequest, "Código inválido")
		return false
	}
	if admin.CodeExpired(time.Now()) {
		writeError(w, http.StatusBadRequest, "El código ha expirado")
		return false
	}
	return true
}

func (s *Server) sendCodeEmail(ctx context.Context, content i18n.EmailContent, to string) error {
	return s.Mailer.Send(ctx, []string{to}, content.Subject, content.Text, content.HTML)
}
