package i18n

import "strings"

// Czech is the app's native language; English is kept for API consumers.
var translations = map[string]map[string]string{
	"cs": {
		"app_title":        "Evidence zakázek",
		"login":            "Přihlásit se",
		"logout":           "Odhlásit se",
		"bad_password":     "Nesprávné heslo",
		"required":         "Povinné pole",
		"must_be_positive": "Musí být kladné číslo",
		"invalid_date":     "Neplatné datum",
		"not_found":        "Záznam nenalezen",
		"conflict":         "Záznam již existuje",
		"job_number_taken": "Zakázka s tímto číslem již existuje",
		"worker_name_taken": "Pracovník s tímto jménem již existuje",
		"invoice_exists":   "Faktura pro tuto zakázku již existuje",
		"saved":            "Uloženo",
		"deleted":          "Smazáno",
		"invoice_created":  "Faktura byla vystavena",
		"invoice_paid":     "Faktura byla označena jako uhrazená",
		"job_done":         "Zakázka byla označena jako dokončená",
		"jobs":             "Zakázky",
		"customers":        "Zákazníci",
		"workers":          "Pracovníci",
		"invoices":         "Faktury",
		"settings":         "Nastavení",
		"total_hours":      "Odpracované hodiny",
		"total_price":      "Celková cena",
	},
	"en": {
		"app_title":        "Job tracker",
		"login":            "Log in",
		"logout":           "Log out",
		"bad_password":     "Wrong password",
		"required":         "Required",
		"must_be_positive": "Must be positive",
		"invalid_date":     "Invalid date",
		"not_found":        "Not found",
		"conflict":         "Already exists",
		"job_number_taken": "A job with this number already exists",
		"worker_name_taken": "A worker with this name already exists",
		"invoice_exists":   "An invoice already exists for this job",
		"saved":            "Saved",
		"deleted":          "Deleted",
		"invoice_created":  "Invoice created",
		"invoice_paid":     "Invoice marked as paid",
		"job_done":         "Job marked as done",
		"jobs":             "Jobs",
		"customers":        "Customers",
		"workers":          "Workers",
		"invoices":         "Invoices",
		"settings":         "Settings",
		"total_hours":      "Hours logged",
		"total_price":      "Total price",
	},
}

// T returns the translation for code in lang, falling back to Czech and
// finally to the code itself so missing keys stay visible.
func T(lang, code string) string {
	if m, ok := translations[lang]; ok {
		if s, ok2 := m[code]; ok2 {
			return s
		}
	}
	if s, ok := translations["cs"][code]; ok {
		return s
	}
	return code
}

// DetectLanguage picks cs or en from an Accept-Language header, defaulting
// to Czech.
func DetectLanguage(header string) string {
	h := strings.ToLower(header)
	for _, part := range strings.Split(h, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "en" || strings.HasPrefix(tag, "en-") {
			return "en"
		}
		if tag == "cs" || strings.HasPrefix(tag, "cs-") {
			return "cs"
		}
	}
	return "cs"
}
