package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
)

type quoteRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    string  `json:"phone"`
	Services []struct {
		Name string `json:"name"`
	} `json:"services"`
}

// handleQuote emails a quotation request to the configured recipients and
// records the requester as a contact. The contact upsert must never block
// the email, so its errors are only logged.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" || req.Phone == "" {
		writeError(w, http.StatusBadRequest, "Nombre y teléfono son requeridos")
		return
	}

	ctx := r.Context()

	if err := s.Contacts.Upsert(ctx, req.Name, req.Email, req.Phone); err != nil {
		log.Printf("quote: contact upsert for %q failed: %v", req.Phone, err)
	}

	var serviceList strings.Builder
	for _, svc := range req.Services {
		serviceList.WriteString("- " + svc.Name + "\n")
	}

	emailLine := ""
	if req.Email != nil && *req.Email != "" {
		emailLine = fmt.Sprintf("Email: %s\n", *req.Email)
	}

	subject := fmt.Sprintf("Cliente: %s", req.Name)
	text := fmt.Sprintf("Nombre: %s\n%sTeléfono: %s\n\nServicios Seleccionados:\n%s",
		req.Name, emailLine, req.Phone, serviceList.String())

	if len(s.Config.QuoteRecipients) == 0 {
		log.Printf("quote: no recipients configured, dropping request from %q", req.Name)
		writeError(w, http.StatusInternalServerError, "Error sending email")
		return
	}

	if err := s.Mailer.Send(ctx, s.Config.QuoteRecipients, subject, text, ""); err != nil {
		log.Printf("quote: email send failed: %v", err)
		writeError(w, http.StatusBadRequest, "Error sending email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully"})
}
