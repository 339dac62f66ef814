package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	message.SetString(lang, "app.name", "Sol-Calc")
	message.SetString(lang, "title.project", "%s | Solar Project")
	message.SetString(lang, "project.heading", "Sol-Calc")
	message.SetString(lang, "project.calculate", "Calculate")
	message.SetString(lang, "project.project_id", "Project ID:")
	message.SetString(lang, "project.checkout", "Checkout")
	message.SetString(lang, "project.checkout_url", "Checkout URL:")
	message.SetString(lang, "project.download", "Download PDF")
	message.SetString(lang, "project.pdf_url", "PDF URL:")

	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	message.SetString(lang, "web.error.page_title_not_found", "Page not found")
	message.SetString(lang, "web.error.page_title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you requested does not exist.")
	message.SetString(lang, "web.error.message_server_error", "The request could not be completed.")
	message.SetString(lang, "web.error.action_back", "Back to the project")
}
