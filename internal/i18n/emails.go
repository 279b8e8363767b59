package i18n

import (
	"strconv"
	"strings"
)

type EmailContent struct {
	Subject string
	Text    string
	HTML    string
}

type emailStrings struct {
	TwoFactorSubject string
	TwoFactorText    string
	TwoFactorHTML    string

	SetupCodeSubject string
	SetupCodeText    string
	SetupCodeHTML    string

	EmailChangeSubject string
	EmailChangeText    string
	EmailChangeHTML    string
}

var emailTranslations = map[string]emailStrings{
	"es": {
		TwoFactorSubject: "Código de Verificación - Podología Coni",
		TwoFactorText:    "Tu código de acceso es: {code}\n\nEste código expira en {minutes} minutos.",
		TwoFactorHTML: "<p>Tu código de acceso es: <strong>{code}</strong></p>" +
			"<p>Este código expira en {minutes} minutos.</p>",

		SetupCodeSubject: "Código de Verificación - Configuración Inicial",
		SetupCodeText:    "Tu código de validación es: {code}\n\nEste código expira en {minutes} minutos.",
		SetupCodeHTML: "<p>Tu código de validación es: <strong>{code}</strong></p>" +
			"<p>Este código expira en {minutes} minutos.</p>",

		EmailChangeSubject: "Código de Verificación - Cambio de Correo",
		EmailChangeText:    "Tu código para confirmar el cambio de correo es: {code}\n\nEste código expira en {minutes} minutos.",
		EmailChangeHTML: "<p>Tu código para confirmar el cambio de correo es: <strong>{code}</strong></p>" +
			"<p>Este código expira en {minutes} minutos.</p>",
	},
	"en": {
		TwoFactorSubject: "Verification Code - Podología Coni",
		TwoFactorText:    "Your access code is: {code}\n\nThis code expires in {minutes} minutes.",
		TwoFactorHTML: "<p>Your access code is: <strong>{code}</strong></p>" +
			"<p>This code expires in {minutes} minutes.</p>",

		SetupCodeSubject: "Verification Code - Initial Setup",
		SetupCodeText:    "Your validation code is: {code}\n\nThis code expires in {minutes} minutes.",
		SetupCodeHTML: "<p>Your validation code is: <strong>{code}</strong></p>" +
			"<p>This code expires in {minutes} minutes.</p>",

		EmailChangeSubject: "Verification Code - Email Change",
		EmailChangeText:    "Your code to confirm the email change is: {code}\n\nThis code expires in {minutes} minutes.",
		EmailChangeHTML: "<p>Your code to confirm the email change is: <strong>{code}</strong></p>" +
			"<p>This code expires in {minutes} minutes.</p>",
	},
}

func emailStringsForLocale(locale string) emailStrings {
	if templates, ok := emailTranslations[locale]; ok {
		return templates
	}
	return emailTranslations[DefaultLocale]
}

func renderTemplate(template string, values map[string]string) string {
	out := template
	for key, val := range values {
		out = strings.ReplaceAll(out, "{"+key+"}", val)
	}
	return out
}

func TwoFactorEmail(locale, code string, minutes int) EmailContent {
	templates := emailStringsForLocale(locale)
	values := map[string]string{
		"code":    code,
		"minutes": strconv.Itoa(minutes),
	}
	return EmailContent{
		Subject: templates.TwoFactorSubject,
		Text:    renderTemplate(templates.TwoFactorText, values),
		HTML:    renderTemplate(templates.TwoFactorHTML, values),
	}
}

func SetupCodeEmail(locale, code string, minutes int) EmailContent {
	templates := emailStringsForLocale(locale)
	values := map[string]string{
		"code":    code,
		"minutes": strconv.Itoa(minutes),
	}
	return EmailContent{
		Subject: templates.SetupCodeSubject,
		Text:    renderTemplate(templates.SetupCodeText, values),
		HTML:    renderTemplate(templates.SetupCodeHTML, values),
	}
}

func EmailChangeEmail(locale, code string, minutes int) EmailContent {
	templates := emailStringsForLocale(locale)
	values := map[string]string{
		"code":    code,
		"minutes": strconv.Itoa(minutes),
	}
	return EmailContent{
		Subject: templates.EmailChangeSubject,
		Text:    renderTemplate(templates.EmailChangeText, values),
		HTML:    renderTemplate(templates.EmailChangeHTML, values),
	}
}
