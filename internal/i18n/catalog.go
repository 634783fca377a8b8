// Package i18n holds the bilingual message catalog the web client ships with.
// Lookups never fail: an unknown key resolves to the key itself and an
// unknown status resolves to the raw status string, so a missing translation
// degrades to something visible instead of an error.
package i18n

import (
	"time"

	"golang.org/x/text/language"

	"parcel-tracking-service/internal/domain"
)

// Lang is a supported interface language.
type Lang string

const (
	PT Lang = "pt"
	EN Lang = "en"
)

// DefaultLang matches the client default.
const DefaultLang = PT

var supported = []language.Tag{
	language.Portuguese, // first entry is the fallback
	language.English,
}

var matcher = language.NewMatcher(supported)

// Match maps an arbitrary language tag ("pt", "pt-BR", "en-US", ...) to a
// supported Lang. Unparseable or unsupported input falls back to Portuguese.
func Match(tag string) Lang {
	t, err := language.Parse(tag)
	if err != nil {
		return DefaultLang
	}
	_, idx, _ := matcher.Match(t)
	if idx == 1 {
		return EN
	}
	return PT
}

// Resolve returns the message for key in the given language. Unknown keys
// return the key itself.
func Resolve(lang Lang, key string) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[DefaultLang]
	}
	if msg, ok := table[key]; ok {
		return msg
	}
	return key
}

// StatusLabel returns the customer-facing label for a shipment status.
// Statuses outside the known set render as their raw value.
func StatusLabel(lang Lang, status domain.Status) string {
	table, ok := statusLabels[lang]
	if !ok {
		table = statusLabels[DefaultLang]
	}
	if label, ok := table[status]; ok {
		return label
	}
	return string(status)
}

// FormatDate renders a timestamp the way each locale expects it.
func FormatDate(lang Lang, t time.Time) string {
	if lang == EN {
		return t.Format("Jan 2, 2006 3:04 PM")
	}
	return t.Format("02/01/2006 15:04")
}

var statusLabels = map[Lang]map[domain.Status]string{
	PT: {
		domain.StatusPending:   "Aguardando envio",
		domain.StatusTransit:   "Em trânsito",
		domain.StatusDelivered: "Entregue",
		domain.StatusContact:   "Entre em contacto",
	},
	EN: {
		domain.StatusPending:   "Awaiting shipment",
		domain.StatusTransit:   "In transit",
		domain.StatusDelivered: "Delivered",
		domain.StatusContact:   "Contact support",
	},
}

var messages = map[Lang]map[string]string{
	PT: {
		"tracking.title":      "Rastreio de Encomendas",
		"tracking.search":     "Pesquisar pelo código de rastreio",
		"tracking.button":     "Rastrear",
		"tracking.error":      "Código não encontrado.",
		"tracking.noAuth":     "Faça login para ver todas as suas encomendas.",
		"tracking.mine":       "Minhas Encomendas",
		"tracking.status":     "Status",
		"tracking.updated":    "Última atualização",
		"tracking.object":     "Objeto",
		"tracking.recipient":  "Destinatário",
		"tracking.timeline":   "Histórico de Movimentação",
		"tracking.empty":      "Nenhum resultado encontrado.",
		"admin.contacts":      "Mensagens de Contato",
		"admin.shipments":     "Gestão de Encomendas",
		"admin.added":         "Encomenda adicionada.",
		"admin.updated":       "Status atualizado.",
		"admin.deleted":       "Encomenda excluída.",
		"admin.code":          "Código da encomenda",
		"admin.selectUser":    "Selecionar usuário (e-mail)",
		"login.title":         "Bem-vindo(a)!",
		"login.subtitle":      "Entre com sua conta para continuar",
		"login.email":         "E-mail",
		"login.password":      "Senha",
		"login.action":        "Acessar",
		"login.forgotSent":    "E-mail de recuperação enviado! Verifique sua caixa.",
		"error.emailInvalid":  "Informe um e-mail válido",
		"error.passwordShort": "Mínimo 4 caracteres",
	},
	EN: {
		"tracking.title":      "Order Tracking",
		"tracking.search":     "Search by tracking code",
		"tracking.button":     "Track",
		"tracking.error":      "Code not found.",
		"tracking.noAuth":     "Login to see all your shipments.",
		"tracking.mine":       "My Shipments",
		"tracking.status":     "Status",
		"tracking.updated":    "Last update",
		"tracking.object":     "Object",
		"tracking.recipient":  "Recipient",
		"tracking.timeline":   "Tracking History",
		"tracking.empty":      "No results found.",
		"admin.contacts":      "Contact Messages",
		"admin.shipments":     "Shipment Management",
		"admin.added":         "Shipment added.",
		"admin.updated":       "Status updated.",
		"admin.deleted":       "Shipment deleted.",
		"admin.code":          "Tracking code",
		"admin.selectUser":    "Select user (e-mail)",
		"login.title":         "Welcome!",
		"login.subtitle":      "Sign in to continue",
		"login.email":         "Email",
		"login.password":      "Password",
		"login.action":        "Login",
		"login.forgotSent":    "Recovery e-mail sent! Check your inbox.",
		"error.emailInvalid":  "Enter a valid e-mail",
		"error.passwordShort": "Min 4 characters",
	},
}
